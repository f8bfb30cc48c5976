//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs a drill by name with its default configuration.
func (Run) Drill(name string) error {
	fmt.Printf("Run drill %s...\n", name)
	if _, err := executeCmd("go", withArgs("run", ".", "-drill", name), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs a drill by name with a config file overlaid on its defaults.
func (Run) DrillWithConfig(name, path string) error {
	fmt.Printf("Run drill %s with %s...\n", name, path)
	if _, err := executeCmd("go", withArgs("run", ".", "-drill", name, "-config", path), withStream()); err != nil {
		return err
	}
	return nil
}

// Lists the available drills.
func (Run) List() error {
	_, err := executeCmd("go", withArgs("run", ".", "-list"), withStream())
	return err
}
