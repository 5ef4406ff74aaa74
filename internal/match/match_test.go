package match

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	require.Equal(t, 1.0, Score("", "anything"), "empty query matches everything")
	require.Equal(t, 1.0, Score("yes", "YES"), "case insensitive exact match")
	require.Equal(t, 0.0, Score("yes", ""))

	sub := Score("straw", "Strawberry")
	far := Score("straw", "Banana")
	require.Greater(t, sub, far, "substring hit should outrank edit distance")

	typo := Score("strwberry", "Strawberry")
	require.Greater(t, typo, 0.7, "one-typo query should still score high")
}

func TestFilterOrdersBestFirst(t *testing.T) {
	candidates := []string{"Banana", "Strawberry", "Straw hat", "Apple"}
	got := Filter("straw", candidates, 0.5)
	require.NotEmpty(t, got)
	require.Equal(t, 1, got[0], "equal scores keep original option order")
	require.NotContains(t, got, 0)
	require.NotContains(t, got, 3)
}

func TestFilterEmptyQueryKeepsOrder(t *testing.T) {
	got := Filter("", []string{"a", "b", "c"}, 0.5)
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("indices = %v, want original order", got)
	}
}
