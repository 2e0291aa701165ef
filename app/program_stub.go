// +build !windows

package main

import (
	"github.com/kardianos/service"
	"github.com/pkg/errors"

	"crylauncher/internal/launcher"
)

// the engine DLLs only exist on windows, other platforms can still
// build the catalog tools
type program struct {
	config *launcher.Config
}

func newProgram(config *launcher.Config) *program {
	return &program{config: config}
}

func (p *program) Start(_ service.Service) error {
	return errors.New("the launcher can only patch the engine on windows")
}

func (p *program) Stop(_ service.Service) error {
	return nil
}
