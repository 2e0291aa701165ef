package launcher

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"crylauncher/internal/arch"
	"crylauncher/internal/catalog"
	"crylauncher/internal/logger"
	"crylauncher/internal/memory"
	"crylauncher/internal/mempatch"
	"crylauncher/internal/winapi"
)

// LoadEngine is used to load the engine DLLs, detect and verify the
// game build and build a launcher that patches them. CrySystem must
// be loadable, it carries the version resource that the build is
// detected from. Every other DLL that cannot be loaded is skipped
// together with its capabilities.
func LoadEngine(config *Config, lg logger.Logger) (*Launcher, error) {
	sysHandle, err := winapi.LoadLibrary(catalog.CrySystem)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to load the engine")
	}
	build, err := detectGameBuild(sysHandle)
	if err != nil {
		return nil, err
	}
	err = VerifyGameBuild(build)
	if err != nil {
		return nil, err
	}
	lg.Printf(logger.Info, logSrc, "detected game build %d", build)

	images := make(map[string]mempatch.Image)
	images[catalog.CrySystem] = mempatch.Image{
		Base: uintptr(sysHandle),
		Name: catalog.CrySystem,
	}
	for _, target := range catalog.Targets() {
		if target.Name == catalog.CrySystem {
			continue
		}
		handle, err := winapi.LoadLibrary(target.Name)
		if err != nil {
			lg.Printf(logger.Debug, logSrc, "%s is not loaded, skipped", target.Name)
			continue
		}
		images[target.Name] = mempatch.Image{
			Base: uintptr(handle),
			Name: target.Name,
		}
	}

	opts := mempatch.Options{ErrorHandler: newErrorHandler(lg)}
	patcher, err := mempatch.NewPatcher(catalog.Default(), arch.Current, memory.NewProcess(), &opts)
	if err != nil {
		return nil, err
	}
	return New(config, lg, patcher, build, images)
}

// detectGameBuild reads the game build from the version resource of
// the loaded CrySystem DLL, the build is the last part of the four
// part file version.
func detectGameBuild(handle windows.Handle) (int, error) {
	path, err := winapi.GetModuleFileName(handle)
	if err != nil {
		return 0, errors.WithMessage(err, "failed to locate the engine")
	}
	info, err := winapi.GetFileVersion(path)
	if err != nil {
		return 0, errors.WithMessage(err, "failed to detect the game build")
	}
	_, _, _, build := info.FileVersion()
	return build, nil
}
