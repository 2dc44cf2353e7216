package rotation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prospect-engine/internal/domain"
)

func TestRotatorCategoryMajorOrder(t *testing.T) {
	r := New([]string{"A", "B"}, []string{"x", "y", "z"})

	want := []domain.Pair{
		{Location: "A", Category: "x"},
		{Location: "A", Category: "y"},
		{Location: "A", Category: "z"},
		{Location: "B", Category: "x"},
		{Location: "B", Category: "y"},
		{Location: "B", Category: "z"},
	}
	for i, w := range want {
		require.Equal(t, w, r.Current(), "pair %d", i)
		r.Advance()
	}

	// full cross product covered, back at the start
	require.Equal(t, want[0], r.Current())
}

func TestRotatorFullCoverageBeforeRepeat(t *testing.T) {
	r := New([]string{"A", "B", "C"}, []string{"x", "y"})

	seen := make(map[domain.Pair]bool)
	for i := 0; i < r.Size(); i++ {
		p := r.Current()
		require.False(t, seen[p], "pair repeated before full coverage: %+v", p)
		seen[p] = true
		r.Advance()
	}
	require.Len(t, seen, r.Size())
	require.Equal(t, domain.Pair{Location: "A", Category: "x"}, r.Current())
}

func TestRotatorSinglePair(t *testing.T) {
	r := New([]string{"Solo"}, []string{"Only"})
	p := r.Current()
	r.Advance()
	require.Equal(t, p, r.Current())
}
