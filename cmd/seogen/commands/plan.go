package commands

import (
	"fmt"
	"text/tabwriter"
)

// PlanCmd implements the 'plan' command.
type PlanCmd struct {
	Overrides `embed:""`
}

func (p *PlanCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root, p.Overrides)
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
	tw := tabwriter.NewWriter(global.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KIND\tURL\tPATH")
	for _, pg := range pages {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", pg.Kind, pg.CanonicalURL, pg.OutputPath)
	}
	return tw.Flush()
}
