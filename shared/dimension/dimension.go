// Package dimension holds the two parallel world layouts of a level and the
// rules for moving the player between them.
package dimension

import (
	"errors"
	"fmt"

	"github.com/solarlune/resolv"
)

// SolidTag marks a region the physics step collides with. Only regions of
// the active layer (and shared geometry) carry it.
const SolidTag = "solid"

// Side identifies one of the two world layouts.
type Side int

const (
	Tov Side = iota
	Ra
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Tov {
		return Ra
	}
	return Tov
}

func (s Side) String() string {
	if s == Ra {
		return "ra"
	}
	return "tov"
}

// Tag is the resolv tag carried by every region of this side.
func (s Side) Tag() string {
	return s.String()
}

// ParseSide maps "tov"/"ra" to a Side.
func ParseSide(name string) (Side, bool) {
	switch name {
	case "tov", "Tov", "TOV":
		return Tov, true
	case "ra", "Ra", "RA":
		return Ra, true
	}
	return Tov, false
}

// Rect is an axis-aligned box in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// RectOf returns the bounds of a resolv object.
func RectOf(obj *resolv.Object) Rect {
	return Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// Overlaps reports strict intersection. Boxes that only share an edge do not
// overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Layer is the solid geometry of one side.
type Layer struct {
	side    Side
	regions []*resolv.Object
	active  bool
}

// NewLayer tags every region with the side tag. The layer starts inactive.
func NewLayer(side Side, regions ...*resolv.Object) *Layer {
	l := &Layer{side: side}
	l.Add(regions...)
	return l
}

// Add attaches more regions, matching the layer's current activity.
func (l *Layer) Add(regions ...*resolv.Object) {
	for _, r := range regions {
		if !r.HasTags(l.side.Tag()) {
			r.AddTags(l.side.Tag())
		}
		applySolid(r, l.active)
		l.regions = append(l.regions, r)
	}
}

func (l *Layer) Side() Side                { return l.side }
func (l *Layer) Active() bool              { return l.active }
func (l *Layer) Regions() []*resolv.Object { return l.regions }

func (l *Layer) setActive(active bool) {
	l.active = active
	for _, r := range l.regions {
		applySolid(r, active)
	}
}

func applySolid(r *resolv.Object, solid bool) {
	has := r.HasTags(SolidTag)
	switch {
	case solid && !has:
		r.AddTags(SolidTag)
	case !solid && has:
		r.RemoveTags(SolidTag)
	}
}

// Pair owns both layers. Exactly one of them is active.
type Pair struct {
	layers  [2]*Layer
	current Side
}

// NewPair activates start and deactivates the other layer.
func NewPair(tov, ra *Layer, start Side) (*Pair, error) {
	if tov == nil || ra == nil {
		return nil, errors.New("dimension: both layers are required")
	}
	if tov.side != Tov || ra.side != Ra {
		return nil, fmt.Errorf("dimension: layers out of order (%s, %s)", tov.side, ra.side)
	}
	p := &Pair{layers: [2]*Layer{tov, ra}}
	p.activate(start)
	return p, nil
}

func (p *Pair) Current() Side        { return p.current }
func (p *Pair) Layer(s Side) *Layer  { return p.layers[s] }
func (p *Pair) Active() *Layer       { return p.layers[p.current] }
func (p *Pair) Inactive() *Layer     { return p.layers[p.current.Other()] }
func (p *Pair) IsActive(s Side) bool { return p.layers[s].active }

func (p *Pair) activate(s Side) {
	p.layers[s.Other()].setActive(false)
	p.layers[s].setActive(true)
	p.current = s
}

// Overlapping returns the regions of side that strictly intersect volume.
// When volume sits in a resolv space the space is used as a broadphase,
// otherwise every region of the layer is tested.
func (p *Pair) Overlapping(volume *resolv.Object, side Side) []*resolv.Object {
	bounds := RectOf(volume)
	candidates := p.layers[side].regions
	if volume.Space != nil {
		candidates = nil
		if check := volume.Check(0, 0, side.Tag()); check != nil {
			candidates = check.ObjectsByTags(side.Tag())
		}
	}

	var hits []*resolv.Object
	for _, r := range candidates {
		if r == volume {
			continue
		}
		if bounds.Overlaps(RectOf(r)) {
			hits = append(hits, r)
		}
	}
	return hits
}

// Blocked reports whether volume would be inside solid geometry of side.
func (p *Pair) Blocked(volume *resolv.Object, side Side) bool {
	return len(p.Overlapping(volume, side)) > 0
}
