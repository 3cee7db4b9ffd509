package slug

import (
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
)

func TestValidate_Accepts(t *testing.T) {
	for _, v := range []string{"erase-bg", "no-watermark", "3d", "a", "home-decor"} {
		s, err := Validate("competitors", v)
		require.NoError(t, err, v)
		require.Equal(t, v, s.String())
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []string{
		"",
		"Bad Slug!",
		"Upper",
		"with space",
		"tab\there",
		"../etc",
		"a/b",
		`a\b`,
		"under_score",
		"dot.ted",
		"ünïcode",
	}
	for _, v := range cases {
		_, err := Validate("features", v)
		require.Error(t, err, "%q should be rejected", v)
		require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))

		axis, _ := ferrors.ContextString(err, "axis")
		value, _ := ferrors.ContextString(err, "value")
		require.Equal(t, "features", axis)
		require.Equal(t, v, value)
	}
}

func TestCompose(t *testing.T) {
	require.Equal(t, Slug("fashion-product-photos"), Compose("fashion", "product-photos"))
}
