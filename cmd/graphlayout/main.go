package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(iconError+" "+err.Error()))
		os.Exit(1)
	}
}
