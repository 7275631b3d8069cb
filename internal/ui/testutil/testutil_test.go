package testutil

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{ n int }

func ping(n int) tea.Cmd {
	return func() tea.Msg { return pingMsg{n} }
}

func TestStripANSI(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello")
	assert.Equal(t, "hello", StripANSI(styled))
}

func TestMeasureWidth(t *testing.T) {
	assert.Equal(t, 5, MeasureWidth("ab\nabcde\nc"))
	assert.Equal(t, 4, MeasureWidth("日本"))
}

func TestSplitLines_TrimsTrailing(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\n\nb\n  \n"))
}

func TestFindLine(t *testing.T) {
	assert.Equal(t, "second line", FindLine("first\nsecond line", "second"))
	assert.Empty(t, FindLine("first", "missing"))
}

func TestDrain_FlattensBatches(t *testing.T) {
	cmd := tea.Batch(ping(1), tea.Batch(ping(2), nil), ping(3))
	msgs := Drain(cmd)
	assert.Equal(t, []tea.Msg{pingMsg{1}, pingMsg{2}, pingMsg{3}}, msgs)
	assert.Nil(t, Drain(nil))
}

func TestMouseHelpers(t *testing.T) {
	assert.Equal(t, tea.MouseActionPress, Press(1, 2).Action)
	assert.Equal(t, tea.MouseActionRelease, Release(1, 2).Action)
	assert.Equal(t, tea.MouseButtonLeft, Motion(1, 2, true).Button)
	assert.Equal(t, tea.MouseButtonNone, Motion(1, 2, false).Button)
}

func TestTimers_FireInOrder(t *testing.T) {
	timers := NewTimers()
	var got []tea.Msg
	timers.Deliver = func(msg tea.Msg) { got = append(got, msg) }

	timers.Tick(300*time.Millisecond, func(time.Time) tea.Msg { return pingMsg{2} })
	timers.Tick(100*time.Millisecond, func(time.Time) tea.Msg { return pingMsg{1} })

	timers.Advance(200 * time.Millisecond)
	assert.Equal(t, []tea.Msg{pingMsg{1}}, got)
	assert.Equal(t, 1, timers.Pending())

	timers.Advance(100 * time.Millisecond)
	assert.Equal(t, []tea.Msg{pingMsg{1}, pingMsg{2}}, got)
}
