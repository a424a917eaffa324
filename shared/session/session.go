// Package session holds the counters that live for a whole run of the game.
package session

import "fmt"

// DefaultVolume is the master volume of a fresh install.
const DefaultVolume = 0.1

// Session is shared by reference between the scenes of one run.
type Session struct {
	Deaths       int
	Switches     int
	MasterVolume float64
}

func New(volume float64) *Session {
	s := &Session{}
	s.SetVolume(volume)
	return s
}

func (s *Session) RecordDeath()  { s.Deaths++ }
func (s *Session) RecordSwitch() { s.Switches++ }

// Reset starts a new game. The master volume is a setting, not a counter,
// and survives.
func (s *Session) Reset() {
	s.Deaths = 0
	s.Switches = 0
}

// SetVolume clamps v to [0, 1].
func (s *Session) SetVolume(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	s.MasterVolume = v
}

// Summary returns the end-of-run lines.
func (s *Session) Summary() []string {
	return []string{
		fmt.Sprintf("Deaths : %d", s.Deaths),
		fmt.Sprintf("Dimension switches : %d", s.Switches),
	}
}
