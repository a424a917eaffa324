package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const (
	settingsKey = "settings"
	recordsKey  = "records"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MasterVolume float64 `json:"masterVolume"`
	Muted        bool    `json:"muted"`
}

// SavedRecord is the best completed run.
type SavedRecord struct {
	Deaths      int `json:"deaths"`
	Switches    int `json:"switches"`
	Completions int `json:"completions"`
}

var gdataManager *gdata.Manager

// openGData is swapped in tests.
var openGData = gdata.Open

// The record is read once and kept in sync by SaveRecord.
var (
	cachedRecord *SavedRecord
	recordLoaded bool
)

// InitPersistence opens the gdata store. On error saving stays disabled and
// the caller decides how to report it.
func InitPersistence() error {
	m, err := openGData(gdata.Config{
		AppName: "tovra",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

func loadItem(key string, v any) bool {
	if gdataManager == nil {
		return false
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func saveItem(key string, v any) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings returns the saved settings, nil when there are none.
func LoadSettings() *SavedSettings {
	var s SavedSettings
	if !loadItem(settingsKey, &s) {
		return nil
	}
	return &s
}

// SaveCurrentSettings stores the live audio settings.
func SaveCurrentSettings() {
	_ = saveItem(settingsKey, &SavedSettings{
		MasterVolume: globalMasterVolume,
		Muted:        globalMuted,
	})
}

// ApplySavedSettings applies loaded settings before the first scene starts.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetMasterVolume(clampVolume(saved.MasterVolume))
	SetMuted(saved.Muted)
}

// LoadRecord returns the best run, nil before the game was ever finished.
func LoadRecord() *SavedRecord {
	if recordLoaded {
		return cachedRecord
	}
	var r SavedRecord
	if loadItem(recordsKey, &r) {
		cachedRecord = &r
	}
	recordLoaded = gdataManager != nil
	return cachedRecord
}

// SaveRecord counts a finished run and keeps it when it beats the record.
func SaveRecord(deaths, switches int) {
	record := mergeRecord(LoadRecord(), deaths, switches)
	cachedRecord = record
	recordLoaded = true
	_ = saveItem(recordsKey, record)
}

// mergeRecord folds a finished run into the previous record. Fewer deaths
// win; switches break ties.
func mergeRecord(prev *SavedRecord, deaths, switches int) *SavedRecord {
	run := &SavedRecord{Deaths: deaths, Switches: switches, Completions: 1}
	if prev == nil {
		return run
	}
	run.Completions = prev.Completions + 1
	if prev.Deaths < deaths || (prev.Deaths == deaths && prev.Switches <= switches) {
		run.Deaths = prev.Deaths
		run.Switches = prev.Switches
	}
	return run
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
