package commands

import (
	"fmt"

	"git.home.luguber.info/inful/seogen/internal/version"
)

// VersionCmd implements the 'version' command.
type VersionCmd struct{}

func (VersionCmd) Run(global *Global) error {
	_, err := fmt.Fprintln(global.Stdout, version.String())
	return err
}
