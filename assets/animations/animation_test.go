package animations

import "testing"

func TestCycleAdvancesAndLoops(t *testing.T) {
	c := NewCycle(4, 3)

	var got []int
	for i := 0; i < 13; i++ {
		got = append(got, c.Frame())
		c.Update()
	}

	want := []int{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frames = %v, want %v", got, want)
		}
	}
	if !c.Looped {
		t.Error("Looped = false after a full cycle")
	}
}

func TestCycleFrameAt(t *testing.T) {
	c := NewCycle(4, 1)
	c.Update() // frame 1

	tests := []struct {
		phase uint64
		want  int
	}{
		{0, 1},
		{1, 2},
		{3, 0},
		{10, 3},
	}
	for _, tc := range tests {
		if got := c.FrameAt(tc.phase); got != tc.want {
			t.Errorf("FrameAt(%d) = %d, want %d", tc.phase, got, tc.want)
		}
	}
}

func TestCycleRestartAndClamp(t *testing.T) {
	c := NewCycle(0, 0)
	if c.Frames != 1 || c.TicksPerFrame != 1 {
		t.Fatalf("NewCycle(0, 0) = %+v, want 1 frame at 1 tick", c)
	}

	c = NewCycle(2, 1)
	c.Update()
	c.Update()
	c.Restart()
	if c.Frame() != 0 || c.Looped {
		t.Errorf("after Restart frame=%d looped=%v", c.Frame(), c.Looped)
	}
}
