package dimension

import (
	"errors"
	"log"

	"github.com/solarlune/resolv"
)

// SwitchAttempt describes one resolved switch request.
type SwitchAttempt struct {
	Requested         Side
	CollisionDetected bool
}

// Feedback receives the outcome of switch attempts (audio, flashes, text).
type Feedback interface {
	Switched(from, to Side)
	SwitchDenied(target Side)
}

// Counter records granted switches.
type Counter interface {
	RecordSwitch()
}

// Validator decides whether the player may move to the other layout and
// performs the swap when allowed.
type Validator struct {
	pair     *Pair
	counter  Counter
	feedback Feedback
}

// NewValidator wires the validator to its collaborators. A missing counter or
// feedback sink is logged and tolerated; a missing pair is an error.
func NewValidator(pair *Pair, counter Counter, feedback Feedback) (*Validator, error) {
	if pair == nil {
		return nil, errors.New("dimension: validator needs a layer pair")
	}
	if counter == nil {
		log.Printf("Warning: dimension validator has no switch counter; switches will not be counted")
	}
	if feedback == nil {
		log.Printf("Warning: dimension validator has no feedback sink; switches will be silent")
	}
	return &Validator{pair: pair, counter: counter, feedback: feedback}, nil
}

// Pair returns the layers the validator toggles.
func (v *Validator) Pair() *Pair {
	return v.pair
}

// AttemptSwitch tests volume against every solid region of target. When
// anything overlaps the switch is denied and nothing changes. Otherwise the
// current layer is deactivated, target is activated, the switch is counted
// and feedback is notified.
func (v *Validator) AttemptSwitch(volume *resolv.Object, target Side) (SwitchAttempt, bool) {
	attempt := SwitchAttempt{Requested: target}
	from := v.pair.Current()
	if target == from {
		return attempt, false
	}

	if v.pair.Blocked(volume, target) {
		attempt.CollisionDetected = true
		if v.feedback != nil {
			v.feedback.SwitchDenied(target)
		}
		return attempt, false
	}

	v.pair.activate(target)
	if v.counter != nil {
		v.counter.RecordSwitch()
	}
	if v.feedback != nil {
		v.feedback.Switched(from, target)
	}
	return attempt, true
}

// Toggle attempts a switch to whichever side is not current.
func (v *Validator) Toggle(volume *resolv.Object) (SwitchAttempt, bool) {
	return v.AttemptSwitch(volume, v.pair.Current().Other())
}
