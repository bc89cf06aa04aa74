package logging

import "time"

// TimedOperation logs a message with the elapsed time once an operation
// finishes. The engine starts one per layout call.
type TimedOperation struct {
	logger Logger
	msg    string
	start  time.Time
	fields []Field
}

// StartTimer begins timing an operation
func StartTimer(logger Logger, msg string, fields ...Field) *TimedOperation {
	return &TimedOperation{
		logger: logger,
		msg:    msg,
		start:  time.Now(),
		fields: fields,
	}
}

func (t *TimedOperation) finish(extra ...Field) []Field {
	all := make([]Field, 0, len(t.fields)+len(extra)+1)
	all = append(all, t.fields...)
	all = append(all, extra...)
	return append(all, Latency(time.Since(t.start)))
}

// End logs the operation at info level
func (t *TimedOperation) End() {
	t.logger.Info(t.msg, t.finish()...)
}

// EndWith adds fields only known on completion, such as the chosen algorithm
func (t *TimedOperation) EndWith(fields ...Field) {
	t.logger.Info(t.msg, t.finish(fields...)...)
}

// EndError logs the operation at error level
func (t *TimedOperation) EndError(err error) {
	t.logger.Error(t.msg, t.finish(Error(err))...)
}
