package main

import (
	"os"
	"sync"

	"github.com/kardianos/service"

	"crylauncher/internal/launcher"
	"crylauncher/internal/logger"
	"crylauncher/internal/xpanic"
)

// program patches the engine inside the startup window, before any
// code of the patched DLLs runs.
type program struct {
	config *launcher.Config
	log    *logger.File

	stopOnce sync.Once
}

func newProgram(config *launcher.Config) *program {
	return &program{config: config}
}

func (p *program) Start(_ service.Service) error {
	level, err := logger.Parse(p.config.LogLevel)
	if err != nil {
		return err
	}
	p.log, err = logger.NewFile(p.config.LogFile, level, os.Stdout)
	if err != nil {
		return err
	}
	go p.run()
	return nil
}

func (p *program) run() {
	defer func() {
		if r := recover(); r != nil {
			p.log.Println(logger.Fatal, "main", xpanic.Print(r, "program.run"))
			os.Exit(1)
		}
	}()
	launch, err := launcher.LoadEngine(p.config, p.log)
	if err != nil {
		p.log.Println(logger.Fatal, "main", err)
		os.Exit(1)
	}
	err = launch.Patch()
	if err != nil {
		// the launcher already logged the failed capability,
		// running a partially patched engine is not safe
		os.Exit(1)
	}
	p.log.Println(logger.Info, "main", "engine patched, handing over to the game")
}

func (p *program) Stop(_ service.Service) error {
	p.stopOnce.Do(func() {
		if p.log != nil {
			_ = p.log.Close()
		}
	})
	return nil
}
