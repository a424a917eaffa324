package systems

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/quasilyte/gdata"
)

func TestMergeRecord(t *testing.T) {
	tests := []struct {
		name             string
		prev             *SavedRecord
		deaths, switches int
		want             SavedRecord
	}{
		{"first run", nil, 4, 10, SavedRecord{Deaths: 4, Switches: 10, Completions: 1}},
		{"fewer deaths wins", &SavedRecord{Deaths: 5, Switches: 2, Completions: 1}, 3, 20, SavedRecord{Deaths: 3, Switches: 20, Completions: 2}},
		{"worse run keeps record", &SavedRecord{Deaths: 1, Switches: 9, Completions: 3}, 2, 1, SavedRecord{Deaths: 1, Switches: 9, Completions: 4}},
		{"switches break ties", &SavedRecord{Deaths: 2, Switches: 9, Completions: 1}, 2, 7, SavedRecord{Deaths: 2, Switches: 7, Completions: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mergeRecord(tt.prev, tt.deaths, tt.switches); *got != tt.want {
				t.Fatalf("mergeRecord = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestStepVolume(t *testing.T) {
	tests := []struct {
		v, step, want float64
	}{
		{0.1, 0.1, 0.2},
		{0.95, 0.1, 1},
		{0.05, -0.1, 0},
		{0.3, -0.1, 0.2},
	}
	for _, tt := range tests {
		if got := stepVolume(tt.v, tt.step); got != tt.want {
			t.Fatalf("stepVolume(%v, %v) = %v, want %v", tt.v, tt.step, got, tt.want)
		}
	}
}

func TestInitPersistenceFailureLeavesReportingToCaller(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	prevOpen, prevManager := openGData, gdataManager
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		openGData, gdataManager = prevOpen, prevManager
	})

	wantErr := errors.New("no data dir")
	openGData = func(gdata.Config) (*gdata.Manager, error) { return nil, wantErr }
	gdataManager = nil

	if err := InitPersistence(); !errors.Is(err, wantErr) {
		t.Fatalf("InitPersistence = %v, want %v", err, wantErr)
	}
	if buf.Len() != 0 {
		t.Fatalf("InitPersistence logged %q, want nothing", buf.String())
	}
	if gdataManager != nil || LoadSettings() != nil {
		t.Fatal("failed open left a usable store")
	}
}
