// Package goroutine launches background work with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// SafeGo runs fn in a goroutine. A panic is logged with its stack instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer Recover(log, name)
		fn()
	}()
}

// Recover is the deferred half of SafeGo for callers that manage their own goroutine.
func Recover(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
