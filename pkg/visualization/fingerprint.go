package visualization

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a BLAKE2b-256 digest of node IDs and the exact bits of
// their coordinates. Two results share a fingerprint only when they are
// bit-identical, which makes it a cheap reproducibility check across runs.
//
// Each node contributes its ID, a zero byte, then X and Y as little-endian
// IEEE 754 bits.
func (r *Result) Fingerprint() string {
	data := make([]byte, 0, len(r.Nodes)*24)
	for _, n := range r.Nodes {
		data = append(data, string(n.ID)...)
		data = append(data, 0)
		data = binary.LittleEndian.AppendUint64(data, math.Float64bits(n.Position.X))
		data = binary.LittleEndian.AppendUint64(data, math.Float64bits(n.Position.Y))
	}

	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
