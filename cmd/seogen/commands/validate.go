package commands

import "fmt"

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Overrides `embed:""`
}

func (v *ValidateCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root, v.Overrides)
	if err != nil {
		return err
	}
	s, err := openSession(cfg, 0)
	if err != nil {
		return err
	}
	defer s.Close()

	pages, err := s.gen.Plan(global.Ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(global.Stdout, "Dimension tables are valid: %d pages planned\n", len(pages))
	return err
}
