package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"

	"github.com/kardianos/service"
	"github.com/pkg/errors"

	"crylauncher/internal/launcher"
	"crylauncher/internal/system"
)

func main() {
	var (
		debug      bool
		configPath string
		install    bool
		uninstall  bool
	)
	flag.BoolVar(&debug, "debug", false, "don't change current path")
	flag.StringVar(&configPath, "config", "config.toml", "launcher configuration file")
	flag.BoolVar(&install, "install", false, "install service")
	flag.BoolVar(&uninstall, "uninstall", false, "uninstall service")
	flag.Parse()

	if !debug {
		err := system.ChangeCurrentDirectory()
		if err != nil {
			log.Fatal(err)
		}
	}
	config := loadConfig(configPath)
	pg := newProgram(config)
	svc, err := service.New(pg, &service.Config{
		Name:        "CryEngine Server Launcher",
		DisplayName: "CryEngine Server Launcher",
		Description: "Patches and launches the dedicated game server",
	})
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case install:
		err = svc.Install()
		if err != nil {
			log.Fatal(errors.Wrap(err, "failed to install service"))
		}
		log.Print("install service successfully")
	case uninstall:
		err = svc.Uninstall()
		if err != nil {
			log.Fatal(errors.Wrap(err, "failed to uninstall service"))
		}
		log.Print("uninstall service successfully")
	default:
		lg, err := svc.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		err = svc.Run()
		if err != nil {
			_ = lg.Error(err)
		}
	}
}

// a missing configuration file is not an error, every capability has
// a usable default
func loadConfig(path string) *launcher.Config {
	data, err := ioutil.ReadFile(path) // #nosec
	if err != nil && !os.IsNotExist(err) {
		log.Fatal(err)
	}
	config, err := launcher.LoadConfig(data)
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to load configuration"))
	}
	return config
}
