package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestInputFrameSequence(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionUp)

	if !f.Has(ActionUp) || !f.Has(ActionLeft) {
		t.Error("Has should report recorded actions")
	}
	if f.Has(ActionDown) {
		t.Error("Has(ActionDown) should be false")
	}
	want := []Action{ActionUp, ActionLeft, ActionUp}
	if len(f.Sequence) != len(want) {
		t.Fatalf("Sequence = %v, expected %v", f.Sequence, want)
	}
	for i := range want {
		if f.Sequence[i] != want[i] {
			t.Errorf("Sequence[%d] = %v, expected %v", i, f.Sequence[i], want[i])
		}
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPrimary) {
		t.Error("zero frame should have no actions")
	}
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}
	f.Set(ActionPrimary)
	if !f.Has(ActionPrimary) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	f.SetPointer(1.7)
	if !f.Pointer.Valid || f.Pointer.X != 1 {
		t.Errorf("pointer = %+v, expected clamped to 1", f.Pointer)
	}
	f.SetPointer(-0.2)
	if f.Pointer.X != 0 {
		t.Errorf("pointer = %+v, expected clamped to 0", f.Pointer)
	}
	if f.Empty() {
		t.Error("frame with a pointer should not be empty")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.SetPointer(0.25)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() || f.Has(ActionRight) {
		t.Error("Clear should drop actions and pointer")
	}
	if !clone.Has(ActionRight) || clone.Pointer.X != 0.25 || len(clone.Sequence) != 1 {
		t.Errorf("clone should be independent of the original, got %+v", clone)
	}
}

func TestInputFrameMerge(t *testing.T) {
	a := NewInputFrame()
	a.Set(ActionUp)
	a.SetPointer(0.1)

	b := NewInputFrame()
	b.Set(ActionLeft)
	b.SetPointer(0.9)

	a.Merge(b)
	if len(a.Sequence) != 2 || a.Sequence[1] != ActionLeft {
		t.Errorf("Sequence after merge = %v", a.Sequence)
	}
	if a.Pointer.X != 0.9 {
		t.Errorf("merge should keep the newest pointer, got %v", a.Pointer.X)
	}

	a.Merge(NewInputFrame())
	if a.Pointer.X != 0.9 {
		t.Error("merging a frame without a pointer should keep the existing one")
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
		ok   bool
	}{
		{"left", ActionLeft, true},
		{" RIGHT ", ActionRight, true},
		{"space", ActionPrimary, true},
		{"enter", ActionConfirm, true},
		{"esc", ActionPause, true},
		{"restart", ActionRestart, true},
		{"none", ActionNone, false},
		{"jump", ActionNone, false},
		{"", ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseAction(tc.in)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ParseAction(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestActionStringRoundTrip(t *testing.T) {
	for a := ActionUp; a <= ActionQuit; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, expected %v", a.String(), got, a)
		}
	}
	if Action(99).String() != "unknown" {
		t.Error("out of range action should be unknown")
	}
}

func TestPhaseJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Phase Phase `json:"phase"`
	}{PhaseGameOver})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"phase":"gameOver"}` {
		t.Errorf("json = %s", b)
	}

	var back struct {
		Phase Phase `json:"phase"`
	}
	if err := json.Unmarshal([]byte(`{"phase":"paused"}`), &back); err != nil || back.Phase != PhasePaused {
		t.Errorf("decoded %v (%v), expected paused", back.Phase, err)
	}
	if err := json.Unmarshal([]byte(`{"phase":"sleeping"}`), &back); err == nil {
		t.Error("unknown phase names should fail to decode")
	}
}

func TestGameStateHelpers(t *testing.T) {
	if !(GameState{Phase: PhaseGameOver}).GameOver() {
		t.Error("GameOver() should be true in PhaseGameOver")
	}
	if !(GameState{Phase: PhasePaused}).Paused() {
		t.Error("Paused() should be true in PhasePaused")
	}
	if (GameState{Phase: PhasePlaying}).GameOver() {
		t.Error("GameOver() should be false while playing")
	}
}

func TestFrameInterval(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).FrameInterval(); got != 20*time.Millisecond {
		t.Errorf("FrameInterval() = %v, expected 20ms", got)
	}
	if got := (RuntimeConfig{}).FrameInterval(); got != time.Second/60 {
		t.Errorf("FrameInterval() with no rate = %v, expected 1/60s", got)
	}
}
