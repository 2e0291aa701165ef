package launcher

import (
	"syscall"

	"crylauncher/internal/logger"
)

// newErrorHandler is used to register the error hook callback, the
// 64-bit stub calls it with the standard x64 calling convention.
func newErrorHandler(lg logger.Logger) uintptr {
	return syscall.NewCallback(errorHandler(lg))
}
