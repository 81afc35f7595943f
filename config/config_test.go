package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	f, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if f.Screen.Width != 800 || f.Screen.Height != 600 {
		t.Errorf("screen = %dx%d, want 800x600", f.Screen.Width, f.Screen.Height)
	}
	if len(f.Enemy.Tiers) != 9 {
		t.Fatalf("tiers = %d, want 9", len(f.Enemy.Tiers))
	}

	wantValues := []float64{1, 3, 5, 6, 7, 9, 12, 15, 20}
	for i, tier := range f.Enemy.Tiers {
		if tier.GrowthValue != wantValues[i] {
			t.Errorf("tier %d growth value = %v, want %v", i, tier.GrowthValue, wantValues[i])
		}
		if i > 0 && tier.MinSize <= f.Enemy.Tiers[i-1].MinSize {
			t.Errorf("tier %d is not larger than tier %d", i, i-1)
		}
	}
	if f.Enemy.Tiers[0].MinSize != 5 || f.Enemy.Tiers[8].MaxSize != 240 {
		t.Errorf("tier span = [%v,%v], want [5,240]", f.Enemy.Tiers[0].MinSize, f.Enemy.Tiers[8].MaxSize)
	}

	wantThresholds := []float64{20, 25, 30, 80, 120, 150, 180, 200, 240, 280}
	if len(f.Progression.GrowthThresholds) != len(wantThresholds) {
		t.Fatalf("thresholds = %v, want %v", f.Progression.GrowthThresholds, wantThresholds)
	}
	for i, v := range wantThresholds {
		if f.Progression.GrowthThresholds[i] != v {
			t.Errorf("threshold %d = %v, want %v", i, f.Progression.GrowthThresholds[i], v)
		}
	}

	if got := f.Player.DamageFlash().Milliseconds(); got != 300 {
		t.Errorf("damage flash = %dms, want 300", got)
	}
	if got := f.Simulation.Step().Milliseconds(); got != 16 {
		t.Errorf("step = %dms, want 16", got)
	}
}

func TestLoadMergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	data := []byte("player:\n  health: 3\nprogression:\n  growth_thresholds: [1, 2, 3]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Player.Health != 3 {
		t.Errorf("health = %d, want 3", f.Player.Health)
	}
	// Untouched fields keep their defaults.
	if f.Player.Speed != 2 || f.Player.StartX != 400 {
		t.Errorf("player defaults lost: %+v", f.Player)
	}
	if len(f.Progression.GrowthThresholds) != 3 {
		t.Errorf("thresholds = %v, want the override list", f.Progression.GrowthThresholds)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "player: [",
			wantErr: "parsing config file",
		},
		{
			name:    "zero canvas",
			content: "screen:\n  width: 0\n",
			wantErr: "screen size",
		},
		{
			name:    "decreasing thresholds",
			content: "progression:\n  growth_thresholds: [10, 5]\n",
			wantErr: "must not decrease",
		},
		{
			name:    "inverted tier",
			content: "enemy:\n  tiers:\n    - {min_size: 10, max_size: 5}\n",
			wantErr: "tier 0",
		},
		{
			name:    "no tiers",
			content: "enemy:\n  tiers: []\n",
			wantErr: "at least one enemy tier",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tc.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestInitInstallsGlobals(t *testing.T) {
	t.Cleanup(func() {
		if err := Init(""); err != nil {
			t.Fatalf("restoring defaults: %v", err)
		}
	})

	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, []byte("screen:\n  width: 320\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if C.Width != 320 || C.Height != 600 {
		t.Errorf("C = %+v, want 320x600", *C)
	}
	if Snapshot().Screen.Width != 320 {
		t.Error("Snapshot does not reflect the installed config")
	}
}
