// Package normalization maps loosely-typed configuration strings onto typed enums.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer converts case- and whitespace-insensitive strings into enum values.
type Normalizer[T comparable] struct {
	values   map[string]T
	fallback T
	keys     []string
}

// New builds a Normalizer; keys of values are folded before lookup.
func New[T comparable](values map[string]T, fallback T) *Normalizer[T] {
	folded := make(map[string]T, len(values))
	keys := make([]string, 0, len(values))
	for k, v := range values {
		key := fold(k)
		folded[key] = v
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return &Normalizer[T]{values: folded, fallback: fallback, keys: keys}
}

// Normalize returns the enum for raw, or the fallback when raw is unknown.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[fold(raw)]; ok {
		return v
	}
	return n.fallback
}

// Parse is Normalize with an error for unknown input. Empty input yields the fallback.
func (n *Normalizer[T]) Parse(raw string) (T, error) {
	if fold(raw) == "" {
		return n.fallback, nil
	}
	if v, ok := n.values[fold(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, n.keys)
}

// Keys returns the accepted spellings in sorted order.
func (n *Normalizer[T]) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
