package application

import (
	"time"

	"github.com/sirupsen/logrus"
)

// instrument wraps an orchestrator call and emits one log event with the
// operation name, duration and outcome. Keeps timing out of the use cases.
func instrument[T any](logger *logrus.Logger, op string, fields logrus.Fields, fn func() Result[T]) Result[T] {
	start := time.Now()
	res := fn()
	if logger == nil {
		return res
	}
	entry := logger.WithFields(fields).
		WithField("op", op).
		WithField("duration_ms", float64(time.Since(start).Microseconds())/1000.0)
	if res.IsSuccess {
		entry.Info("operation succeeded")
	} else {
		entry.WithField("kind", res.Kind().String()).Warn(res.Message)
	}
	return res
}
