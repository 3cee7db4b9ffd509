// Package dimensions holds the hand-authored content axes that the generator
// expands into pages: competitors, use cases, features, industries and the
// simplified use cases paired with industries.
//
// A Registry is immutable once built. Accessors return copies so callers can
// not reorder or edit rows behind the generator's back.
package dimensions

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
	"git.home.luguber.info/inful/seogen/internal/slug"
	"git.home.luguber.info/inful/seogen/internal/util/sets"
)

// Axis names used in error context and logs.
const (
	AxisCompetitors        = "competitors"
	AxisUseCases           = "use_cases"
	AxisFeatures           = "features"
	AxisIndustries         = "industries"
	AxisSimplifiedUseCases = "simplified_use_cases"
)

//go:embed defaults.yaml
var defaultTables []byte

// Competitor is one row of the comparison axis.
type Competitor struct {
	Slug string   `yaml:"slug"`
	Name string   `yaml:"name"`
	Pros []string `yaml:"pros"`
	Cons []string `yaml:"cons"`
}

// UseCase is one row of the alternative axis.
type UseCase struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Feature is one row of the feature axis.
type Feature struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Industry is a bare token; it doubles as its own slug.
type Industry string

// SimplifiedUseCase is a bare token used only in the industry cross-product.
type SimplifiedUseCase string

type tables struct {
	Competitors        []Competitor        `yaml:"competitors"`
	UseCases           []UseCase           `yaml:"use_cases"`
	Features           []Feature           `yaml:"features"`
	Industries         []Industry          `yaml:"industries"`
	SimplifiedUseCases []SimplifiedUseCase `yaml:"simplified_use_cases"`
}

// Registry is the read-only set of dimension tables for one run.
type Registry struct {
	t tables
}

// New builds a registry from explicit rows. Inputs are copied.
func New(competitors []Competitor, useCases []UseCase, features []Feature, industries []Industry, simplified []SimplifiedUseCase) *Registry {
	return &Registry{t: tables{
		Competitors:        cloneCompetitors(competitors),
		UseCases:           slices.Clone(useCases),
		Features:           slices.Clone(features),
		Industries:         slices.Clone(industries),
		SimplifiedUseCases: slices.Clone(simplified),
	}}
}

// Default returns the built-in tables compiled into the binary.
func Default() (*Registry, error) {
	r, err := Parse(defaultTables)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "parse built-in dimension tables").Fatal().Build()
	}
	return r, nil
}

// LoadFile reads dimension tables from a YAML file.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "read dimension tables").
			Fatal().
			WithContext("path", path).
			Build()
	}
	r, err := Parse(data)
	if err != nil {
		if c, ok := ferrors.AsClassified(err); ok {
			return nil, c.WithContext("path", path)
		}
		return nil, err
	}
	return r, nil
}

// Parse decodes YAML dimension tables. Unknown keys are rejected so a typo in an
// operator file does not silently drop an axis.
func Parse(data []byte) (*Registry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var t tables
	if err := dec.Decode(&t); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "decode dimension tables").Fatal().Build()
	}
	return &Registry{t: t}, nil
}

// Competitors returns the comparison axis in authored order.
func (r *Registry) Competitors() []Competitor { return cloneCompetitors(r.t.Competitors) }

// UseCases returns the alternative axis in authored order.
func (r *Registry) UseCases() []UseCase { return slices.Clone(r.t.UseCases) }

// Features returns the feature axis in authored order.
func (r *Registry) Features() []Feature { return slices.Clone(r.t.Features) }

// Industries returns the industry tokens in authored order.
func (r *Registry) Industries() []Industry { return slices.Clone(r.t.Industries) }

// SimplifiedUseCases returns the cross-product use-case tokens in authored order.
func (r *Registry) SimplifiedUseCases() []SimplifiedUseCase {
	return slices.Clone(r.t.SimplifiedUseCases)
}

// Size reports row counts per axis, keyed by axis name.
func (r *Registry) Size() map[string]int {
	return map[string]int{
		AxisCompetitors:        len(r.t.Competitors),
		AxisUseCases:           len(r.t.UseCases),
		AxisFeatures:           len(r.t.Features),
		AxisIndustries:         len(r.t.Industries),
		AxisSimplifiedUseCases: len(r.t.SimplifiedUseCases),
	}
}

// Validate checks every axis and returns the first defect found: an unsafe slug
// (validation error), a missing required field or a duplicate slug within an
// axis (configuration error).
func (r *Registry) Validate() error {
	checks := []func() error{
		r.validateCompetitors,
		r.validateUseCases,
		r.validateFeatures,
		func() error { return validateTokens(AxisIndustries, r.t.Industries) },
		func() error { return validateTokens(AxisSimplifiedUseCases, r.t.SimplifiedUseCases) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) validateCompetitors() error {
	seen := sets.New[string]()
	for i, c := range r.t.Competitors {
		if err := checkRow(AxisCompetitors, i, c.Slug, seen); err != nil {
			return err
		}
		if blank(c.Name) {
			return missingField(AxisCompetitors, c.Slug, "name")
		}
		for _, list := range []struct {
			field string
			items []string
		}{{"pros", c.Pros}, {"cons", c.Cons}} {
			for _, item := range list.items {
				if blank(item) {
					return missingField(AxisCompetitors, c.Slug, list.field)
				}
			}
		}
	}
	return nil
}

func (r *Registry) validateUseCases() error {
	seen := sets.New[string]()
	for i, u := range r.t.UseCases {
		if err := checkRow(AxisUseCases, i, u.Slug, seen); err != nil {
			return err
		}
		if blank(u.Title) {
			return missingField(AxisUseCases, u.Slug, "title")
		}
		if blank(u.Description) {
			return missingField(AxisUseCases, u.Slug, "description")
		}
	}
	return nil
}

func (r *Registry) validateFeatures() error {
	seen := sets.New[string]()
	for i, f := range r.t.Features {
		if err := checkRow(AxisFeatures, i, f.Slug, seen); err != nil {
			return err
		}
		if blank(f.Title) {
			return missingField(AxisFeatures, f.Slug, "title")
		}
		if blank(f.Description) {
			return missingField(AxisFeatures, f.Slug, "description")
		}
	}
	return nil
}

func validateTokens[T ~string](axis string, tokens []T) error {
	seen := sets.New[string]()
	for i, tok := range tokens {
		if err := checkRow(axis, i, string(tok), seen); err != nil {
			return err
		}
	}
	return nil
}

func checkRow(axis string, index int, value string, seen sets.Set[string]) error {
	if _, err := slug.Validate(axis, value); err != nil {
		if c, ok := ferrors.AsClassified(err); ok {
			return c.WithContext("row", index)
		}
		return err
	}
	if !seen.Insert(value) {
		return ferrors.ConfigError("duplicate slug within axis").
			WithContext("axis", axis).
			WithContext("slug", value).
			WithContext("row", index).
			Build()
	}
	return nil
}

func missingField(axis, s, field string) error {
	return ferrors.ConfigError(fmt.Sprintf("row is missing required field %q", field)).
		WithContext("axis", axis).
		WithContext("slug", s).
		WithContext("field", field).
		Build()
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func cloneCompetitors(in []Competitor) []Competitor {
	if in == nil {
		return nil
	}
	out := make([]Competitor, len(in))
	for i, c := range in {
		c.Pros = slices.Clone(c.Pros)
		c.Cons = slices.Clone(c.Cons)
		out[i] = c
	}
	return out
}
