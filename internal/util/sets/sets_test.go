package sets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetInsertAndDifference(t *testing.T) {
	s := New("vs/a/index.html", "vs/b/index.html")
	require.True(t, s.Insert("p/x/index.html"))
	require.False(t, s.Insert("vs/a/index.html"))

	cur := New("vs/a/index.html")
	require.Equal(t, []string{"p/x/index.html", "vs/b/index.html"}, Sorted(s.Difference(cur)))
	require.Empty(t, cur.Difference(s))
}
