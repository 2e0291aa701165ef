package launcher

import (
	"os"

	"crylauncher/internal/logger"
	"crylauncher/internal/winapi"
	"crylauncher/internal/xpanic"
)

// errorHandler builds the Go side of the engine error hook. The stub
// that replaces the engine handler passes the C format string and the
// argument list through untouched, both are expanded by the C runtime
// and only the result crosses into Go. An engine error is fatal, the
// process never returns into the broken engine state.
func errorHandler(lg logger.Logger) func(format, args uintptr) uintptr {
	return func(format, args uintptr) uintptr {
		defer os.Exit(1)
		defer func() {
			if r := recover(); r != nil {
				lg.Println(logger.Error, "engine", xpanic.Print(r, "errorHandler"))
			}
		}()
		lg.Println(logger.Fatal, "engine", winapi.VSNPrintf(format, args))
		return 0
	}
}
