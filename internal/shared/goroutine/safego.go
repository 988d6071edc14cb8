// Package goroutine launches goroutines with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"officetools/internal/shared/logger"
)

// SafeGo runs fn in a goroutine and logs instead of crashing if it panics.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
