package session

import "testing"

func TestResetKeepsVolume(t *testing.T) {
	s := New(0.4)
	s.RecordDeath()
	s.RecordDeath()
	s.RecordSwitch()

	s.Reset()

	if s.Deaths != 0 || s.Switches != 0 {
		t.Fatalf("counters after reset = %d/%d, want 0/0", s.Deaths, s.Switches)
	}
	if s.MasterVolume != 0.4 {
		t.Fatalf("volume after reset = %v, want 0.4", s.MasterVolume)
	}
}

func TestSetVolumeClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		s := New(tt.in)
		if s.MasterVolume != tt.want {
			t.Errorf("New(%v).MasterVolume = %v, want %v", tt.in, s.MasterVolume, tt.want)
		}
	}
}

func TestSummary(t *testing.T) {
	s := New(DefaultVolume)
	s.RecordDeath()
	s.RecordSwitch()
	s.RecordSwitch()

	got := s.Summary()
	want := []string{"Deaths : 1", "Dimension switches : 2"}
	if len(got) != len(want) {
		t.Fatalf("Summary() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Summary()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
