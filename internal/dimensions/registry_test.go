package dimensions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
)

func TestDefault_TablesMatchBuiltInAxes(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	require.NoError(t, r.Validate())

	require.Equal(t, map[string]int{
		AxisCompetitors:        10,
		AxisUseCases:           15,
		AxisFeatures:           10,
		AxisIndustries:         15,
		AxisSimplifiedUseCases: 5,
	}, r.Size())

	first := r.Competitors()[0]
	require.Equal(t, "erase-bg", first.Slug)
	require.Equal(t, "Erase.bg", first.Name)
	require.Equal(t, []string{"Free tier", "Simple UI"}, first.Pros)

	require.Equal(t, "Meet Amazon's white background requirements easily", r.UseCases()[2].Description)
	require.Equal(t, "5 free uses daily, upgrade for unlimited", r.Features()[5].Description)
	require.Equal(t, Industry("home-decor"), r.Industries()[14])
	require.Equal(t, []SimplifiedUseCase{"product-photos", "marketing", "social-media", "ecommerce", "design"}, r.SimplifiedUseCases())
}

func TestAccessorsReturnCopies(t *testing.T) {
	r := New([]Competitor{{Slug: "a", Name: "A", Pros: []string{"x"}}}, nil, nil, nil, nil)
	c := r.Competitors()
	c[0].Name = "changed"
	c[0].Pros[0] = "changed"
	require.Equal(t, "A", r.Competitors()[0].Name)
	require.Equal(t, "x", r.Competitors()[0].Pros[0])
}

func TestValidate_BadSlug(t *testing.T) {
	r := New([]Competitor{{Slug: "Bad Slug!", Name: "Bad"}}, nil, nil, nil, nil)
	err := r.Validate()
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	axis, _ := ferrors.ContextString(err, "axis")
	value, _ := ferrors.ContextString(err, "value")
	require.Equal(t, AxisCompetitors, axis)
	require.Equal(t, "Bad Slug!", value)
}

func TestValidate_MissingFields(t *testing.T) {
	cases := []struct {
		name  string
		reg   *Registry
		axis  string
		field string
	}{
		{"competitor name", New([]Competitor{{Slug: "x"}}, nil, nil, nil, nil), AxisCompetitors, "name"},
		{"competitor blank pro", New([]Competitor{{Slug: "x", Name: "X", Pros: []string{" "}}}, nil, nil, nil, nil), AxisCompetitors, "pros"},
		{"use case title", New(nil, []UseCase{{Slug: "x", Description: "d"}}, nil, nil, nil), AxisUseCases, "title"},
		{"use case description", New(nil, []UseCase{{Slug: "x", Title: "T"}}, nil, nil, nil), AxisUseCases, "description"},
		{"feature title", New(nil, nil, []Feature{{Slug: "x", Description: "d"}}, nil, nil), AxisFeatures, "title"},
		{"feature description", New(nil, nil, []Feature{{Slug: "x", Title: "T"}}, nil, nil), AxisFeatures, "description"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.reg.Validate()
			require.Error(t, err)
			require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
			axis, _ := ferrors.ContextString(err, "axis")
			field, _ := ferrors.ContextString(err, "field")
			require.Equal(t, tc.axis, axis)
			require.Equal(t, tc.field, field)
		})
	}
}

func TestValidate_DuplicateSlugs(t *testing.T) {
	r := New(nil, nil, nil, []Industry{"fashion", "food", "fashion"}, nil)
	err := r.Validate()
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	s, _ := ferrors.ContextString(err, "slug")
	require.Equal(t, "fashion", s)

	// The same slug on different axes is fine: prefixes keep the URLs apart.
	r = New(nil, []UseCase{{Slug: "ecommerce", Title: "E", Description: "d"}}, nil, nil, []SimplifiedUseCase{"ecommerce"})
	require.NoError(t, r.Validate())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dims.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
competitors:
  - {slug: foo, name: Foo, pros: [Fast], cons: [Pricey]}
industries: [toys]
simplified_use_cases: [design]
`), 0o600))

	r, err := LoadFile(path)
	require.NoError(t, err)
	require.NoError(t, r.Validate())
	require.Len(t, r.Competitors(), 1)
	require.Empty(t, r.Features())

	require.NoError(t, os.WriteFile(path, []byte("competitor:\n  - {slug: foo}\n"), 0o600))
	_, err = LoadFile(path)
	require.Error(t, err)
	p, _ := ferrors.ContextString(err, "path")
	require.Equal(t, path, p)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}
