package resize

import (
	"sort"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimers is a manual clock. Timers are registered when the controller
// schedules them and fire when Advance passes their deadline.
type fakeTimers struct {
	now     time.Time
	pending []fakeTimer
	ctrl    *Controller
}

type fakeTimer struct {
	at  time.Time
	msg tea.Msg
}

func (f *fakeTimers) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	at := f.now.Add(d)
	f.pending = append(f.pending, fakeTimer{at: at, msg: fn(at)})
	return nil
}

func (f *fakeTimers) clock() time.Time { return f.now }

func (f *fakeTimers) Advance(d time.Duration) {
	target := f.now.Add(d)
	for {
		sort.SliceStable(f.pending, func(i, j int) bool {
			return f.pending[i].at.Before(f.pending[j].at)
		})
		if len(f.pending) == 0 || f.pending[0].at.After(target) {
			break
		}
		next := f.pending[0]
		f.pending = f.pending[1:]
		f.now = next.at
		f.ctrl.Update(next.msg)
	}
	f.now = target
}

type memStore struct {
	values map[string]string
	writes int
}

func newMemStore() *memStore { return &memStore{values: map[string]string{}} }

func (s *memStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *memStore) Set(key, value string) {
	s.values[key] = value
	s.writes++
}

type varRecorder map[string]float64

func (v varRecorder) SetVar(name string, size float64) { v[name] = size }

type surfaceRecorder struct {
	width  float64
	writes int
}

func (s *surfaceRecorder) SetWidth(size float64) {
	s.width = size
	s.writes++
}

type hostRecorder struct {
	captured  []int
	resizing  bool
	endCalled int
}

func (h *hostRecorder) BeginResize(pointerID int) {
	h.captured = append(h.captured, pointerID)
	h.resizing = true
}

func (h *hostRecorder) EndResize() {
	h.resizing = false
	h.endCalled++
}

func newTestController(t *testing.T, cfg Config, ports Ports) (*Controller, *fakeTimers) {
	t.Helper()
	timers := &fakeTimers{now: time.Unix(1700000000, 0)}
	c := New(cfg, ports, WithTick(timers.tick), WithClock(timers.clock))
	timers.ctrl = c
	return c, timers
}

func TestClamp_RangeAndIdempotent(t *testing.T) {
	for _, v := range []float64{-1000, 0, 191.9, 192, 256, 399.5, 400, 400.1, 1e9} {
		got := Clamp(v, DefaultMin, DefaultMax)
		assert.GreaterOrEqual(t, got, float64(DefaultMin), "clamp(%v)", v)
		assert.LessOrEqual(t, got, float64(DefaultMax), "clamp(%v)", v)
		assert.Equal(t, got, Clamp(got, DefaultMin, DefaultMax), "clamp not idempotent for %v", v)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"256", 256, true},
		{" 300.5 ", 300.5, true},
		{"-4", -4, true},
		{"abc", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseSize(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseSize(%q)", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "ParseSize(%q)", tt.in)
		}
	}
}

func TestNew_InitialSize(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		want   float64
	}{
		{"nothing stored", nil, 256},
		{"valid value", ptr("300"), 300},
		{"above max is clamped", ptr("999"), 400},
		{"below min is clamped", ptr("10"), 192},
		{"garbage falls back to default", ptr("abc"), 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			if tt.stored != nil {
				store.values["sidebar"] = *tt.stored
			}
			cfg := DefaultConfig()
			cfg.PersistenceKey = "sidebar"
			c, _ := newTestController(t, cfg, Ports{Store: store})
			assert.Equal(t, tt.want, c.Size())
			assert.Zero(t, store.writes, "initialization must not write the store")
		})
	}
}

func TestNew_IgnoresStoreWithoutKey(t *testing.T) {
	store := newMemStore()
	store.values[""] = "300"
	c, _ := newTestController(t, DefaultConfig(), Ports{Store: store})
	assert.Equal(t, float64(256), c.Size())
}

func TestNew_WritesVariable(t *testing.T) {
	vars := varRecorder{}
	cfg := DefaultConfig()
	cfg.VariableName = "--sidebar-width"
	_, _ = newTestController(t, cfg, Ports{Vars: vars})
	assert.Equal(t, float64(256), vars["--sidebar-width"])
}

func TestBind_WritesCurrentSize(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig(), Ports{})
	s := &surfaceRecorder{}
	c.Bind(s)
	assert.Equal(t, float64(256), s.width)
}

func TestDrag_ClampsToMax(t *testing.T) {
	host := &hostRecorder{}
	c, _ := newTestController(t, DefaultConfig(), Ports{Host: host})

	c.DragStart(7, 100)
	require.True(t, c.IsDragging())
	assert.Equal(t, []int{7}, host.captured)
	assert.True(t, host.resizing)

	c.DragMove(600)
	assert.Equal(t, float64(400), c.Size())

	c.DragEnd()
	assert.False(t, c.IsDragging())
	assert.False(t, host.resizing)
}

func TestDrag_PathIndependent(t *testing.T) {
	stepped, _ := newTestController(t, DefaultConfig(), Ports{})
	stepped.DragStart(1, 50)
	stepped.DragMove(60)
	stepped.DragMove(70)
	stepped.DragMove(80)

	direct, _ := newTestController(t, DefaultConfig(), Ports{})
	direct.DragStart(1, 50)
	direct.DragMove(80)

	assert.Equal(t, float64(286), stepped.Size())
	assert.Equal(t, direct.Size(), stepped.Size())
}

func TestDrag_OvershootThenReturn(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig(), Ports{})
	c.DragStart(1, 0)
	c.DragMove(1000)
	assert.Equal(t, float64(400), c.Size())
	c.DragMove(-20)
	assert.Equal(t, float64(236), c.Size(), "delta is measured from the drag start, not the clamped size")
}

func TestDrag_MoveAndEndIgnoredWhenIdle(t *testing.T) {
	host := &hostRecorder{}
	store := newMemStore()
	cfg := DefaultConfig()
	cfg.PersistenceKey = "k"
	c, _ := newTestController(t, cfg, Ports{Host: host, Store: store})

	assert.Nil(t, c.DragMove(300))
	c.DragEnd()

	assert.Equal(t, float64(256), c.Size())
	assert.Zero(t, store.writes)
	assert.Zero(t, host.endCalled)
}

func TestDragStart_HidesTooltipAndCancelsHover(t *testing.T) {
	c, timers := newTestController(t, DefaultConfig(), Ports{})
	c.HoverEnter()
	timers.Advance(600 * time.Millisecond)
	require.True(t, c.ShowTooltip())

	c.DragStart(1, 0)
	assert.False(t, c.ShowTooltip())
	assert.True(t, c.IsHovering())
}

func TestKeyStep_Sizes(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		dir   Direction
		shift bool
		want  float64
	}{
		{"right", 256, Right, false, 266},
		{"left", 256, Left, false, 246},
		{"shift right", 256, Right, true, 306},
		{"shift left from 300", 300, Left, true, 250},
		{"clamped at max", 395, Right, false, 400},
		{"clamped at min", 200, Left, true, 192},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.values["k"] = FormatSize(tt.start)
			cfg := DefaultConfig()
			cfg.PersistenceKey = "k"
			c, _ := newTestController(t, cfg, Ports{Store: store})
			c.KeyStep(tt.dir, tt.shift)
			assert.Equal(t, tt.want, c.Size())
		})
	}
}

func TestKeyStep_RoundTrip(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig(), Ports{})
	for _, shift := range []bool{false, true} {
		c.KeyStep(Right, shift)
		c.KeyStep(Left, shift)
		assert.Equal(t, float64(256), c.Size())
	}
}

func TestKeyStep_CustomSteps(t *testing.T) {
	cfg := Config{DefaultSize: 30, MinSize: 20, MaxSize: 60, KeyStep: 1, ShiftKeyStep: 5}
	c, _ := newTestController(t, cfg, Ports{})
	c.KeyStep(Right, false)
	assert.Equal(t, float64(31), c.Size())
	c.KeyStep(Right, true)
	assert.Equal(t, float64(36), c.Size())
}

func TestKeyStep_FlagClearsAfterQuietPeriod(t *testing.T) {
	c, timers := newTestController(t, DefaultConfig(), Ports{})

	c.KeyStep(Right, false)
	assert.True(t, c.IsKeyboardResizing())

	timers.Advance(200 * time.Millisecond)
	c.KeyStep(Right, false)

	timers.Advance(200 * time.Millisecond)
	assert.True(t, c.IsKeyboardResizing(), "second step restarts the clear timer")

	timers.Advance(100 * time.Millisecond)
	assert.False(t, c.IsKeyboardResizing())
}

func TestDoubleClickReset(t *testing.T) {
	c, timers := newTestController(t, DefaultConfig(), Ports{})
	c.HoverEnter()
	timers.Advance(600 * time.Millisecond)
	c.DragStart(1, 0)
	c.DragMove(100)
	require.Equal(t, float64(356), c.Size())

	c.DoubleClickReset()
	assert.Equal(t, float64(256), c.Size())
	assert.True(t, c.IsDoubleClickResetting())
	assert.False(t, c.IsHovering())
	assert.False(t, c.ShowTooltip())

	timers.Advance(ResetClearDelay)
	assert.False(t, c.IsDoubleClickResetting())
}

func TestDoubleClickReset_StaleTimerClearsLaterReset(t *testing.T) {
	c, timers := newTestController(t, DefaultConfig(), Ports{})

	c.DoubleClickReset()
	timers.Advance(200 * time.Millisecond)
	c.DoubleClickReset()

	timers.Advance(100 * time.Millisecond)
	assert.False(t, c.IsDoubleClickResetting(), "first reset's timer ends the second reset early")
}

func TestDoubleClickReset_CancelsPendingHover(t *testing.T) {
	c, timers := newTestController(t, DefaultConfig(), Ports{})
	c.HoverEnter()
	timers.Advance(100 * time.Millisecond)
	c.DoubleClickReset()
	timers.Advance(time.Second)
	assert.Equal(t, HoverNone, c.Hover())
}

func TestHover_TooltipAfterSustainedHover(t *testing.T) {
	c, timers := newTestController(t, DefaultConfig(), Ports{})

	c.HoverEnter()
	assert.Equal(t, HoverPending, c.Hover())
	assert.False(t, c.IsHovering())

	timers.Advance(HoverDelay)
	assert.True(t, c.IsHovering())
	assert.False(t, c.ShowTooltip())

	timers.Advance(TooltipDelay - time.Millisecond)
	assert.False(t, c.ShowTooltip())

	timers.Advance(time.Millisecond)
	assert.True(t, c.ShowTooltip())
}

func TestHover_LeaveCancelsBothStages(t *testing.T) {
	c, timers := newTestController(t, DefaultConfig(), Ports{})

	c.HoverEnter()
	timers.Advance(300 * time.Millisecond)
	c.HoverLeave()
	assert.False(t, c.IsHovering())

	timers.Advance(time.Second)
	assert.False(t, c.IsHovering())
	assert.False(t, c.ShowTooltip())
}

func TestHover_DragBeforeTooltipSuppressesIt(t *testing.T) {
	for _, at := range []time.Duration{0, 100 * time.Millisecond, 250 * time.Millisecond, 599 * time.Millisecond} {
		c, timers := newTestController(t, DefaultConfig(), Ports{})
		c.HoverEnter()
		timers.Advance(at)
		c.DragStart(1, 0)
		timers.Advance(time.Second)
		assert.False(t, c.ShowTooltip(), "drag at %v", at)
	}
}

func TestHover_ReenterRestartsDelay(t *testing.T) {
	c, timers := newTestController(t, DefaultConfig(), Ports{})
	c.HoverEnter()
	timers.Advance(150 * time.Millisecond)
	c.HoverEnter()
	timers.Advance(150 * time.Millisecond)
	assert.False(t, c.IsHovering())
	timers.Advance(50 * time.Millisecond)
	assert.True(t, c.IsHovering())
}

func TestNotify_DebouncesBurst(t *testing.T) {
	var calls []float64
	var callTimes []time.Time
	cfg := DefaultConfig()
	var timers *fakeTimers
	cfg.OnSizeChange = func(size float64) {
		calls = append(calls, size)
		callTimes = append(callTimes, timers.now)
	}
	c, timers := newTestController(t, cfg, Ports{})

	c.DragStart(1, 0)
	for i := 1; i <= 5; i++ {
		c.DragMove(float64(i * 10))
		timers.Advance(50 * time.Millisecond)
	}
	last := timers.now.Add(-50 * time.Millisecond)
	assert.Empty(t, calls)

	timers.Advance(time.Second)
	require.Len(t, calls, 1)
	assert.Equal(t, float64(306), calls[0])
	assert.False(t, callTimes[0].Before(last.Add(NotifyDebounce)))
}

func TestNotify_LatestCallbackWins(t *testing.T) {
	var first, second []float64
	cfg := DefaultConfig()
	cfg.OnSizeChange = func(size float64) { first = append(first, size) }
	c, timers := newTestController(t, cfg, Ports{})

	c.KeyStep(Right, false)
	c.SetOnSizeChange(func(size float64) { second = append(second, size) })
	timers.Advance(NotifyDebounce)

	assert.Empty(t, first)
	assert.Equal(t, []float64{266}, second)
}

func TestNotify_SeparateBurstsNotifyTwice(t *testing.T) {
	var calls []float64
	cfg := DefaultConfig()
	cfg.OnSizeChange = func(size float64) { calls = append(calls, size) }
	c, timers := newTestController(t, cfg, Ports{})

	c.KeyStep(Right, false)
	timers.Advance(time.Second)
	c.KeyStep(Right, false)
	timers.Advance(time.Second)

	assert.Equal(t, []float64{266, 276}, calls)
}

func TestPersistence_Immediate(t *testing.T) {
	store := newMemStore()
	cfg := DefaultConfig()
	cfg.PersistenceKey = "sidebar"
	c, _ := newTestController(t, cfg, Ports{Store: store})

	c.DragStart(1, 0)
	c.DragMove(25)
	assert.Equal(t, "281", store.values["sidebar"])
	c.DragMove(1000)
	assert.Equal(t, "400", store.values["sidebar"])
	c.KeyStep(Left, true)
	assert.Equal(t, "350", store.values["sidebar"])
}

func TestWriteThrough_SurfaceAndVariable(t *testing.T) {
	vars := varRecorder{}
	cfg := DefaultConfig()
	cfg.VariableName = "--panel"
	c, _ := newTestController(t, cfg, Ports{Vars: vars})
	s := &surfaceRecorder{}
	c.Bind(s)

	c.KeyStep(Right, true)
	assert.Equal(t, float64(306), s.width)
	assert.Equal(t, float64(306), vars["--panel"])
}

func TestClose_StopsEverything(t *testing.T) {
	var calls int
	host := &hostRecorder{}
	store := newMemStore()
	cfg := DefaultConfig()
	cfg.PersistenceKey = "k"
	cfg.OnSizeChange = func(float64) { calls++ }
	c, timers := newTestController(t, cfg, Ports{Host: host, Store: store})
	s := &surfaceRecorder{}
	c.Bind(s)

	c.HoverEnter()
	c.KeyStep(Right, false)
	c.DragStart(1, 0)
	c.Close()
	assert.False(t, host.resizing, "closing mid-drag restores the host")

	writes := s.writes
	storeWrites := store.writes
	timers.Advance(time.Second)
	c.DragStart(1, 0)
	c.DragMove(50)
	c.KeyStep(Right, false)
	c.DoubleClickReset()
	c.HoverEnter()

	assert.Zero(t, calls)
	assert.Equal(t, writes, s.writes)
	assert.Equal(t, storeWrites, store.writes)
	assert.True(t, c.IsKeyboardResizing(), "flags freeze after close")
	assert.False(t, c.IsHovering())
	assert.True(t, c.Closed())
}

func TestUpdate_IgnoresForeignMessages(t *testing.T) {
	a, timersA := newTestController(t, DefaultConfig(), Ports{})
	b, _ := newTestController(t, DefaultConfig(), Ports{})

	a.KeyStep(Right, false)
	b.KeyStep(Right, false)
	require.NotEmpty(t, timersA.pending)
	for _, p := range timersA.pending {
		assert.Nil(t, b.Update(p.msg))
	}
	assert.True(t, b.IsKeyboardResizing())
	assert.Nil(t, b.Update(tea.KeyMsg{}))
}

func ptr(s string) *string { return &s }
