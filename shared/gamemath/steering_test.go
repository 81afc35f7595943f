package gamemath

import "testing"

func TestSteerToward(t *testing.T) {
	tests := []struct {
		name    string
		toX     float64
		toY     float64
		wantLen float64
	}{
		{name: "on top of origin", toX: 0, toY: 0, wantLen: 0},
		{name: "inside reach", toX: 40, toY: 0, wantLen: 0.5},
		{name: "beyond reach", toX: 0, toY: 500, wantLen: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := SteerToward(0, 0, tc.toX, tc.toY, 80)
			if !approx(v.Len(), tc.wantLen) {
				t.Errorf("len = %v, want %v", v.Len(), tc.wantLen)
			}
		})
	}
}

func TestClampMagnitudeAndDeadzone(t *testing.T) {
	v := ClampMagnitude(Vec{X: 3, Y: 4}, 1)
	if !approx(v.Len(), 1) {
		t.Errorf("clamped len = %v, want 1", v.Len())
	}
	if got := ApplyDeadzone(Vec{X: 0.1}, 0.25); !got.IsZero() {
		t.Errorf("deadzone kept %+v", got)
	}
	if got := ApplyDeadzone(Vec{X: 0.5}, 0.25); got.X != 0.5 {
		t.Errorf("deadzone dropped %+v", got)
	}
}
