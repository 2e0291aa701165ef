package launcher

import (
	"github.com/pkg/errors"

	"crylauncher/internal/catalog"
	"crylauncher/internal/logger"
	"crylauncher/internal/mempatch"
)

const logSrc = "launcher"

// Launcher applies the configured capabilities to the resolved engine
// images. The engine DLLs must be loaded and the game build verified
// before New is called, and Patch must finish before any code of the
// patched images runs.
type Launcher struct {
	config  *Config
	logger  logger.Logger
	patcher *mempatch.Patcher
	build   int
	images  map[string]mempatch.Image
}

// New is used to create a launcher. The images map holds the loaded
// target images by DLL file name, a DLL that is not loaded has no
// entry and all its capabilities are skipped.
func New(
	config *Config,
	lg logger.Logger,
	patcher *mempatch.Patcher,
	build int,
	images map[string]mempatch.Image,
) (*Launcher, error) {
	if config == nil {
		return nil, errors.New("empty launcher config")
	}
	if lg == nil {
		return nil, errors.New("empty logger")
	}
	if patcher == nil {
		return nil, errors.New("empty patcher")
	}
	err := VerifyGameBuild(build)
	if err != nil {
		return nil, err
	}
	launcher := Launcher{
		config:  config,
		logger:  lg,
		patcher: patcher,
		build:   build,
		images:  images,
	}
	return &launcher, nil
}

// VerifyGameBuild is used to check the detected game build before any
// patch is applied. Patch offsets are only valid for the exact build
// they were made for, an unknown build would silently match nothing.
func VerifyGameBuild(build int) error {
	if !catalog.IsKnownBuild(build) {
		return errors.Errorf(
			"unknown game build %d, supported builds are %v",
			build, catalog.KnownBuilds(),
		)
	}
	return nil
}

// Patch is used to apply all enabled capabilities to the loaded
// images, one DLL after the other in catalog order. The first failed
// write aborts the startup, running the engine with an unknown patch
// state is worse than not running it.
func (l *Launcher) Patch() error {
	for _, target := range catalog.Targets() {
		image, ok := l.images[target.Name]
		if !ok {
			l.logger.Printf(logger.Debug, logSrc, "%s is not loaded, skipped", target.Name)
			continue
		}
		for _, cap := range target.Capabilities {
			if !l.enabled(cap) {
				l.logger.Printf(logger.Debug, logSrc, "%s is disabled, skipped", cap)
				continue
			}
			err := l.patcher.Apply(image, cap, l.build)
			if err != nil {
				l.logger.Println(logger.Fatal, logSrc, err)
				return err
			}
			l.logger.Printf(logger.Info, logSrc, "applied %s to %s", cap, target.Name)
		}
	}
	return nil
}

func (l *Launcher) enabled(cap mempatch.Capability) bool {
	// the 3DNow! flag only needs clearing on processors that
	// dropped the instruction set
	if cap == catalog.Disable3DNow && !need3DNowFix() {
		return false
	}
	return l.config.Enabled(cap)
}
