package generator

import (
	"context"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/seogen/internal/logfields"
	"git.home.luguber.info/inful/seogen/internal/sitemap"
)

// stageWritePages materializes every planned page. Output paths are disjoint,
// so pages are written concurrently up to generation.concurrency.
func (g *Generator) stageWritePages(ctx context.Context, rs *runState) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Generation.Concurrency)
	for _, spec := range rs.pages {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := g.out.Materialize(spec.OutputPath, spec.Content); err != nil {
				return err
			}
			slog.Debug("Wrote page", logfields.Kind(string(spec.Kind)), logfields.Path(spec.OutputPath))
			return nil
		})
	}
	return eg.Wait()
}

// stageWriteSitemap lists every page in plan order and writes the sitemap.
// It runs only after every page write has succeeded.
func (g *Generator) stageWriteSitemap(_ context.Context, rs *runState) error {
	b := sitemap.NewBuilder(rs.report.RunDate)
	for _, spec := range rs.pages {
		b.Add(spec.CanonicalURL)
	}
	data, err := b.Serialize()
	if err != nil {
		return err
	}
	if err := g.out.Materialize(g.cfg.Output.SitemapFile, data); err != nil {
		return err
	}
	rs.report.SitemapPath = filepath.Join(g.out.Root(), g.cfg.Output.SitemapFile)
	slog.Info("Wrote sitemap", logfields.Path(rs.report.SitemapPath), logfields.Pages(b.Len()))
	return nil
}
