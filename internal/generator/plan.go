package generator

import (
	"context"
	"log/slog"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
	"git.home.luguber.info/inful/seogen/internal/logfields"
	"git.home.luguber.info/inful/seogen/internal/page"
	"git.home.luguber.info/inful/seogen/internal/render"
	"git.home.luguber.info/inful/seogen/internal/slug"
	"git.home.luguber.info/inful/seogen/internal/urlplan"
	"git.home.luguber.info/inful/seogen/internal/util/sets"
)

// stagePlan renders every page in kind order and checks that no two pages
// share a canonical URL or an output path.
func (g *Generator) stagePlan(ctx context.Context, rs *runState) error {
	r := render.New(render.Site{Product: g.cfg.Site.Product, RunDate: rs.report.RunDate})
	urls := sets.New[string]()
	paths := sets.New[string]()

	for _, kind := range page.Kinds() {
		if err := ctx.Err(); err != nil {
			return ferrors.RuntimeError("generation canceled").WithCause(err).Build()
		}
		specs, err := g.planKind(r, kind)
		if err != nil {
			return err
		}
		for _, spec := range specs {
			if !urls.Insert(spec.CanonicalURL) || !paths.Insert(spec.OutputPath) {
				return ferrors.PlanError("two pages resolve to the same location").
					WithContext("kind", string(kind)).
					WithContext("url", spec.CanonicalURL).
					WithContext("path", spec.OutputPath).
					Build()
			}
			slog.Debug("Planned page", logfields.Kind(string(kind)), logfields.URL(spec.CanonicalURL))
		}
		rs.pages = append(rs.pages, specs...)
		rs.report.addKind(kind, len(specs))
		slog.Info("Planned pages", logfields.Kind(string(kind)), logfields.Pages(len(specs)))
	}
	return nil
}

func (g *Generator) planKind(r *render.Renderer, kind page.Kind) ([]page.Spec, error) {
	var specs []page.Spec
	emit := func(key slug.Slug, build func(urlplan.Location) (page.Spec, error)) error {
		loc, err := g.planner.Plan(kind, key)
		if err != nil {
			return err
		}
		spec, err := build(loc)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
		return nil
	}

	var err error
	switch kind {
	case page.KindComparison:
		for _, c := range g.registry.Competitors() {
			if err = emit(slug.Slug(c.Slug), func(loc urlplan.Location) (page.Spec, error) { return r.Comparison(c, loc) }); err != nil {
				break
			}
		}
	case page.KindAlternative:
		for _, u := range g.registry.UseCases() {
			if err = emit(slug.Slug(u.Slug), func(loc urlplan.Location) (page.Spec, error) { return r.Alternative(u, loc) }); err != nil {
				break
			}
		}
	case page.KindFeature:
		for _, f := range g.registry.Features() {
			if err = emit(slug.Slug(f.Slug), func(loc urlplan.Location) (page.Spec, error) { return r.Feature(f, loc) }); err != nil {
				break
			}
		}
	case page.KindIndustry:
		uses := g.registry.SimplifiedUseCases()
	industries:
		for _, ind := range g.registry.Industries() {
			for _, use := range uses {
				key := slug.Compose(slug.Slug(ind), slug.Slug(use))
				if err = emit(key, func(loc urlplan.Location) (page.Spec, error) { return r.Industry(ind, use, loc) }); err != nil {
					break industries
				}
			}
		}
	default:
		err = ferrors.PlanError("unknown page kind").WithContext("kind", string(kind)).Build()
	}
	if err != nil {
		return nil, err
	}
	return specs, nil
}
