package commands

import (
	"fmt"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
)

// StaleCmd implements the 'stale' command.
type StaleCmd struct {
	Overrides `embed:""`
	Ledger    string `help:"Run ledger database (overrides ledger.path)"`
}

func (c *StaleCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root, c.Overrides)
	if err != nil {
		return err
	}
	if c.Ledger != "" {
		cfg.Ledger.Path = c.Ledger
	}
	if cfg.Ledger.Path == "" {
		return ferrors.ConfigError("no run ledger configured; set ledger.path or pass --ledger").Build()
	}
	s, err := openSession(cfg, useLedger)
	if err != nil {
		return err
	}
	defer s.Close()

	stale, err := s.gen.Stale(global.Ctx)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		_, err = fmt.Fprintln(global.Stdout, "No stale pages")
		return err
	}
	for _, p := range stale {
		if _, err := fmt.Fprintln(global.Stdout, p); err != nil {
			return err
		}
	}
	return nil
}
