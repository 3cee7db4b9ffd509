package commands

import (
	"fmt"

	"git.home.luguber.info/inful/seogen/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(global *Global, root *CLI) error {
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	_, err := fmt.Fprintf(global.Stdout, "Wrote example configuration to %s\n", root.Config)
	return err
}
