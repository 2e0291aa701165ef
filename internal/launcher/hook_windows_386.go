package launcher

import (
	"syscall"

	"crylauncher/internal/logger"
)

// newErrorHandler is used to register the error hook callback, the
// 32-bit stub cleans up its own arguments and calls it cdecl.
func newErrorHandler(lg logger.Logger) uintptr {
	return syscall.NewCallbackCDecl(errorHandler(lg))
}
