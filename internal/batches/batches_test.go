package batches

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2021, 3, 10, 9, 30, 0, 0, time.UTC)

func TestStatic_List(t *testing.T) {
	s := NewStatic(testNow)
	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 6)

	assert.Equal(t, "CRASH COURSE", list[1].Topic)
	assert.Equal(t, testNow.Truncate(time.Hour).Add(7*24*time.Hour), list[1].StartsAt)
	assert.True(t, list[3].Started(testNow))
	assert.False(t, list[0].Started(testNow))

	list[0].Title = "changed"
	again, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again[0].Title)
}

func TestStatic_Get(t *testing.T) {
	s := NewStatic(testNow)

	b, err := s.Get(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "LIVE CLASSES", b.Topic)

	_, err = s.Get(context.Background(), "42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatic_DelayHonoursContext(t *testing.T) {
	s := NewStatic(testNow)
	s.Delay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilter(t *testing.T) {
	list, err := NewStatic(testNow).List(context.Background())
	require.NoError(t, err)

	tests := []struct {
		query string
		ids   []string
	}{
		{"", []string{"1", "2", "3", "4", "5", "6"}},
		{"neet", []string{"1", "5", "6"}},
		{"crash", []string{"2"}},
		{"dr. singh", []string{"4"}},
		{"  TEST series ", []string{"5"}},
		{"nothing", nil},
	}
	for _, tt := range tests {
		var ids []string
		for _, b := range Filter(list, tt.query) {
			ids = append(ids, b.ID)
		}
		assert.Equal(t, tt.ids, ids, "Filter(%q)", tt.query)
	}
}
