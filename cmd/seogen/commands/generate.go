package commands

import (
	"fmt"
)

// GenerateCmd implements the 'generate' command, which also runs when seogen
// is invoked without arguments.
type GenerateCmd struct {
	Overrides `embed:""`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root, g.Overrides)
	if err != nil {
		return err
	}
	s, err := openSession(cfg, useAll)
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := s.gen.Run(global.Ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(global.Stdout, report.Summary())
	return err
}
