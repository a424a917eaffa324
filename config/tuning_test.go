package config

import "testing"

func TestParseTuningOverlaysPresentKeys(t *testing.T) {
	base := CurrentTuning()
	data := []byte("player:\n  run_speed: 200\n  dash_cooldown: 0.9\nevolution:\n  speed: 0.01\n")

	got, err := ParseTuning(data, base)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if got.Player.RunSpeed != 200 || got.Player.DashCooldown != 0.9 {
		t.Fatalf("overridden values = %v/%v", got.Player.RunSpeed, got.Player.DashCooldown)
	}
	if got.Evolution.Speed != 0.01 {
		t.Fatalf("evolution speed = %v, want 0.01", got.Evolution.Speed)
	}
	if got.Player.JumpImpulse != base.Player.JumpImpulse || got.Player.CollisionWidth != base.Player.CollisionWidth {
		t.Fatalf("untouched keys changed: %+v", got.Player)
	}
}

func TestParseTuningRejectsMalformed(t *testing.T) {
	base := CurrentTuning()
	got, err := ParseTuning([]byte("player: [1, 2"), base)
	if err == nil {
		t.Fatal("expected error for malformed yaml")
	}
	if got != base {
		t.Fatal("malformed yaml changed the tuning")
	}
}

func TestEmbeddedTuningMatchesDefaults(t *testing.T) {
	base := CurrentTuning()
	got, err := ParseTuning(tuningYAML, base)
	if err != nil {
		t.Fatalf("embedded tuning: %v", err)
	}
	if got != base {
		t.Fatalf("embedded tuning drifted from the Go defaults:\n got %+v\nwant %+v", got, base)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	before := CurrentTuning()
	if err := LoadTuning("does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
	if CurrentTuning() != before {
		t.Fatal("failed load changed the tuning")
	}
}
