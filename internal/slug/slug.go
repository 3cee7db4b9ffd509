// Package slug enforces that every axis key is a filesystem- and URL-safe token.
package slug

import (
	"regexp"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
)

var pattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Slug is a token that has passed Validate. Only lowercase letters, digits and
// hyphens; never empty.
type Slug string

func (s Slug) String() string { return string(s) }

// Validate checks value against the slug character set. The returned error is a
// classified validation error carrying the axis and the offending value.
func Validate(axis, value string) (Slug, error) {
	if value == "" {
		return "", ferrors.ValidationError("slug is empty").
			WithContext("axis", axis).
			WithContext("value", value).
			Build()
	}
	if !pattern.MatchString(value) {
		return "", ferrors.ValidationError("slug must match [a-z0-9-]+").
			WithContext("axis", axis).
			WithContext("value", value).
			Build()
	}
	return Slug(value), nil
}

// Compose joins two validated slugs into a cross-product key.
func Compose(a, b Slug) Slug {
	return a + "-" + b
}
