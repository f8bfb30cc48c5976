/*
Runs one of the game-math drills headless. The drill's key script comes
from the config file, e.g.

	anima-drills -drill facing -config drills/facing.toml
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spaghettifunk/anima-drills/engine"
	"github.com/spaghettifunk/anima-drills/engine/config"
	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/testbed"
)

func main() {
	drill := flag.String("drill", "containment", "drill to run: "+strings.Join(testbed.DrillNames(), ", "))
	configPath := flag.String("config", "", "TOML file overlaid on the drill defaults")
	list := flag.Bool("list", false, "list the drills and exit")
	flag.Parse()

	if *list {
		for _, name := range testbed.DrillNames() {
			desc, _ := testbed.Describe(name)
			fmt.Printf("%-16s %s\n", name, desc)
		}
		return
	}

	if err := run(*drill, *configPath); err != nil {
		if errors.Is(err, core.ErrUnknownDrill) {
			core.LogError("%s (known drills: %s)", err, strings.Join(testbed.DrillNames(), ", "))
			os.Exit(2)
		}
		core.LogFatal("%s", err)
	}
}

func run(drill, configPath string) error {
	defaults, err := testbed.Defaults(drill)
	if err != nil {
		return err
	}
	cfg := defaults
	if configPath != "" {
		if cfg, err = config.Load(configPath, defaults); err != nil {
			return err
		}
	} else if err := cfg.Validate(); err != nil {
		return err
	}

	tb, err := testbed.NewTestGame(drill, cfg)
	if err != nil {
		return err
	}
	if cfg.Application.Watch && configPath != "" {
		tb.ApplicationConfig.WatchPath = configPath
		tb.ApplicationConfig.WatchBase = defaults
	}

	e, err := engine.New(tb.Game)
	if err != nil {
		return err
	}
	if err := e.Initialize(); err != nil {
		return err
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		if _, ok := <-sigCh; ok {
			core.LogInfo("signal received, stopping after this frame")
			e.Stop()
		}
	}()

	runErr := e.Run()
	if err := e.Shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
