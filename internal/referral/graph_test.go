package referral

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

func ptr(v int64) *int64 {
	return &v
}

// chain builds 1 <- 2 <- 3 <- 4 and a side branch 2 <- 5, 5 <- 6.
func chain(t *testing.T) *Graph {
	g := New()
	require.NoError(t, g.Add(1, nil))
	require.NoError(t, g.Add(2, ptr(1)))
	require.NoError(t, g.Add(3, ptr(2)))
	require.NoError(t, g.Add(4, ptr(3)))
	require.NoError(t, g.Add(5, ptr(2)))
	require.NoError(t, g.Add(6, ptr(5)))
	return g
}

func TestGraphAdd(t *testing.T) {
	g := chain(t)

	assert.Error(t, g.Add(3, ptr(1)), "re-adding an account must fail")
	assert.Error(t, g.Add(7, ptr(99)), "unknown parent must fail")
	assert.Equal(t, 6, g.Len())
	assert.True(t, g.Has(6))
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, g.IDs())

	parent, ok := g.Parent(4)
	assert.True(t, ok)
	assert.Equal(t, int64(3), parent)
	_, ok = g.Parent(1)
	assert.False(t, ok)
}

func TestGraphAncestors(t *testing.T) {
	g := chain(t)

	tests := []struct {
		name     string
		id       int64
		maxDepth int
		want     []Ancestor
	}{
		{"full chain", 4, 6, []Ancestor{{3, 1}, {2, 2}, {1, 3}}},
		{"bounded", 4, 2, []Ancestor{{3, 1}, {2, 2}}},
		{"branch", 6, 6, []Ancestor{{5, 1}, {2, 2}, {1, 3}}},
		{"root", 1, 6, nil},
		{"unknown", 42, 6, nil},
		{"zero depth", 4, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(g.Ancestors(tt.id, tt.maxDepth)))
		})
	}
}

func TestGraphAncestorsRestartable(t *testing.T) {
	g := chain(t)
	seq := g.Ancestors(4, 6)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	var stopped []Ancestor
	for a := range seq {
		stopped = append(stopped, a)
		break
	}
	assert.Equal(t, []Ancestor{{3, 1}}, stopped)
}

func TestGraphTeamCounts(t *testing.T) {
	g := chain(t)

	assert.Equal(t, []int{1, 2, 2}, g.TeamCounts(1, 3))
	assert.Equal(t, []int{2, 2, 0}, g.TeamCounts(2, 3))
	assert.Equal(t, []int{0, 0}, g.TeamCounts(4, 2))
	assert.Equal(t, []int{0}, g.TeamCounts(99, 1))
}

func TestFromAccounts(t *testing.T) {
	g, err := FromAccounts([]domain.Account{
		{ID: 5, ParentID: ptr(2)},
		{ID: 6, ParentID: ptr(5)},
		{ID: 7, ParentID: ptr(6)},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())

	_, ok := g.Parent(5)
	assert.False(t, ok, "parent outside the snapshot becomes a root")

	var got []Ancestor
	for a := range g.Ancestors(7, 6) {
		got = append(got, a)
	}
	assert.Equal(t, []Ancestor{{ID: 6, Depth: 1}, {ID: 5, Depth: 2}}, got)

	_, err = FromAccounts([]domain.Account{{ID: 1}, {ID: 1}})
	assert.Error(t, err)
}
