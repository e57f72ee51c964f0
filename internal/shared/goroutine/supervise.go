// Package goroutine launches long-lived goroutines whose failure is a
// process fault rather than a request fault.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/lrsproject/lrs/internal/shared/logger"
)

// Supervise runs fn in its own goroutine. A returned error or a panic is
// logged and passed to onFault, which is expected to stop the process.
func Supervise(log logger.Interface, name string, fn func() error, onFault func(error)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				onFault(fmt.Errorf("%s panicked: %v", name, r))
			}
		}()

		if err := fn(); err != nil {
			log.Errorw("goroutine failed", "goroutine", name, "error", err)
			onFault(fmt.Errorf("%s: %w", name, err))
		}
	}()
}
