package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, names ...string) *State {
	t.Helper()
	s := NewState(DefaultOptions())
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{Position: i, Name: name}
	}
	s.ReplaceItems(items)
	return s
}

func selected(t *testing.T, s *State) int {
	t.Helper()
	pos, ok := s.Selected()
	require.True(t, ok, "expected a selection")
	return pos
}

func TestResetSelectionIdempotent(t *testing.T) {
	s := newTestState(t, "one", "two", "three")
	s.filter = "t"
	s.ResetSelection()
	first, firstOK := s.Selected()
	assert.False(t, s.ResetSelection())
	second, secondOK := s.Selected()
	assert.Equal(t, firstOK, secondOK)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, second)
}

func TestResetSelectionEmptyVisibleClears(t *testing.T) {
	s := newTestState(t, "one", "two")
	s.ResetSelection()
	s.filter = "zzz"
	assert.True(t, s.ResetSelection())
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestWraparound(t *testing.T) {
	s := newTestState(t, "a1", "b", "a2", "c", "a3")
	s.AppendFilter('a')
	// visible: 0, 2, 4
	assert.Equal(t, 0, selected(t, s))

	s.setSelected(4)
	s.SelectDown()
	assert.Equal(t, 0, selected(t, s))

	s.SelectUp()
	assert.Equal(t, 4, selected(t, s))

	s.SelectUp()
	assert.Equal(t, 2, selected(t, s))
	s.SelectDown()
	assert.Equal(t, 4, selected(t, s))
}

func TestRecoveryFromHiddenSelection(t *testing.T) {
	s := newTestState(t, "alpha", "beta", "gamma")
	s.filter = "gamma"
	s.setSelected(1)

	down := *s
	down.SelectDown()
	assert.Equal(t, 2, selected(t, &down))

	up := *s
	up.SelectUp()
	assert.Equal(t, 2, selected(t, &up))
}

func TestRecoveryFallbacksWithSeveralVisible(t *testing.T) {
	s := newTestState(t, "xa", "b", "xc")
	s.filter = "x"
	s.setSelected(1)
	s.SelectDown()
	assert.Equal(t, 0, selected(t, s))

	s.setSelected(1)
	s.SelectUp()
	assert.Equal(t, 2, selected(t, s))
}

func TestNavigationNoSelectionStart(t *testing.T) {
	s := newTestState(t, "a", "b", "c")
	_, ok := s.Selected()
	require.False(t, ok)
	s.SelectDown()
	assert.Equal(t, 0, selected(t, s))

	s.clearSelection()
	s.SelectUp()
	assert.Equal(t, 2, selected(t, s))
}

func TestNavigationEmptyVisibleUnchanged(t *testing.T) {
	s := newTestState(t, "a", "b")
	s.setSelected(1)
	s.filter = "zzz"
	assert.False(t, s.SelectDown())
	assert.False(t, s.SelectUp())
	assert.Equal(t, 1, selected(t, s))
}

func TestAppendBackspaceRoundTrip(t *testing.T) {
	s := newTestState(t, "main", "logs", "build", "docs")
	for _, prior := range []string{"", "o", "s"} {
		s.filter = prior
		s.ResetSelection()
		want, wantOK := s.Selected()

		s.AppendFilter('g')
		s.DeleteFilterRune()

		assert.Equal(t, prior, s.Filter())
		got, gotOK := s.Selected()
		assert.Equal(t, wantOK, gotOK)
		assert.Equal(t, want, got)
	}
}

func TestDeleteFilterRuneEmptyStillResets(t *testing.T) {
	s := newTestState(t, "a", "b")
	s.setSelected(1)
	assert.False(t, s.DeleteFilterRune())
	assert.Equal(t, 0, selected(t, s))
}

func TestDeleteFilterRuneMultibyte(t *testing.T) {
	s := newTestState(t, "naïve")
	s.filter = "naï"
	assert.True(t, s.DeleteFilterRune())
	assert.Equal(t, "na", s.Filter())
}

func TestReplaceItemsSyncsToActive(t *testing.T) {
	s := newTestState(t, "a", "b", "c")
	s.setSelected(0)
	s.ReplaceItems([]Item{
		{Position: 2, Name: "c"},
		{Position: 0, Name: "a"},
		{Position: 1, Name: "b", Active: true},
	})
	assert.Equal(t, 1, selected(t, s))
	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{items[0].Position, items[1].Position, items[2].Position})

	s.ReplaceItems([]Item{{Position: 0, Name: "a"}})
	_, ok := s.Selected()
	assert.False(t, ok, "no active item clears the selection")
}
