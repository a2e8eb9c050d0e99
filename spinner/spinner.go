// Package spinner implements a game spinner made of wedges which can
// be uniform or of different relative widths, and can be covered
// (blocked) according to game conditions. Wedge values may be numbers,
// strings, or any comparable user type.
//
// Spinner methods return new spinners with the requested changes
// rather than modifying the original, to allow chaining and to keep
// shared spinners immutable.
package spinner

import "math/rand/v2"

// Wedge is a single slot on a spinner. Width is the wedge's relative
// share of the wheel; Active wedges return their value when landed on,
// covered wedges yield a miss.
type Wedge[T comparable] struct {
	Value  T
	Width  int
	Active bool
}

// NewWedge creates an active wedge of width 1.
func NewWedge[T comparable](value T) Wedge[T] {
	return Wedge[T]{Value: value, Width: 1, Active: true}
}

// NewWeightedWedge creates an active wedge with the given width.
func NewWeightedWedge[T comparable](value T, width int) Wedge[T] {
	return Wedge[T]{Value: value, Width: width, Active: true}
}

// Covered returns a copy of the wedge marked inactive.
func (w Wedge[T]) Covered() Wedge[T] {
	w.Active = false
	return w
}

// Uncovered returns a copy of the wedge marked active.
func (w Wedge[T]) Uncovered() Wedge[T] {
	w.Active = true
	return w
}

// WedgesFromValues creates equally weighted wedges from plain values.
func WedgesFromValues[T comparable](values []T) []Wedge[T] {
	wedges := make([]Wedge[T], len(values))
	for i, v := range values {
		wedges[i] = NewWedge(v)
	}
	return wedges
}

// WeightedValue pairs a wedge value with its width, for
// WedgesFromWeights.
type WeightedValue[T comparable] struct {
	Value T   `json:"value"`
	Width int `json:"width"`
}

// WedgesFromWeights creates weighted wedges from value/width pairs.
func WedgesFromWeights[T comparable](pairs []WeightedValue[T]) []Wedge[T] {
	wedges := make([]Wedge[T], len(pairs))
	for i, p := range pairs {
		wedges[i] = NewWeightedWedge(p.Value, p.Width)
	}
	return wedges
}

// Spinner is a wheel of wedges.
type Spinner[T comparable] struct {
	wedges []Wedge[T]
}

// New creates a spinner from the given wedges.
func New[T comparable](wedges []Wedge[T]) *Spinner[T] {
	s := &Spinner[T]{wedges: make([]Wedge[T], len(wedges))}
	copy(s.wedges, wedges)
	return s
}

// Wedges returns a copy of the spinner's wedges.
func (s *Spinner[T]) Wedges() []Wedge[T] {
	out := make([]Wedge[T], len(s.wedges))
	copy(out, s.wedges)
	return out
}

// Len returns the number of wedges on the spinner.
func (s *Spinner[T]) Len() int { return len(s.wedges) }

// Spin spins the wheel and returns the value landed on. Wedge widths
// weight the selection. Returns false when the spinner has no wedges,
// no wedge has positive width, or the wedge landed on is covered.
func (s *Spinner[T]) Spin() (T, bool) {
	var zero T
	total := 0
	for _, w := range s.wedges {
		if w.Width > 0 {
			total += w.Width
		}
	}
	if total == 0 {
		return zero, false
	}
	target := rand.IntN(total)
	for _, w := range s.wedges {
		if w.Width <= 0 {
			continue
		}
		target -= w.Width
		if target < 0 {
			if !w.Active {
				return zero, false
			}
			return w.Value, true
		}
	}
	return zero, false // unreachable
}

// Cover deactivates all wedges matching the value.
func (s *Spinner[T]) Cover(value T) *Spinner[T] {
	return s.mapWedges(func(w Wedge[T]) Wedge[T] {
		if w.Value == value {
			return w.Covered()
		}
		return w
	})
}

// Uncover reactivates all wedges matching the value.
func (s *Spinner[T]) Uncover(value T) *Spinner[T] {
	return s.mapWedges(func(w Wedge[T]) Wedge[T] {
		if w.Value == value {
			return w.Uncovered()
		}
		return w
	})
}

// CoverAll deactivates every wedge on the spinner.
func (s *Spinner[T]) CoverAll() *Spinner[T] {
	return s.mapWedges(Wedge[T].Covered)
}

// UncoverAll reactivates every wedge on the spinner.
func (s *Spinner[T]) UncoverAll() *Spinner[T] {
	return s.mapWedges(Wedge[T].Uncovered)
}

// AddWedge returns a spinner with the new wedge appended.
func (s *Spinner[T]) AddWedge(w Wedge[T]) *Spinner[T] {
	added := make([]Wedge[T], 0, len(s.wedges)+1)
	added = append(added, s.wedges...)
	added = append(added, w)
	return &Spinner[T]{wedges: added}
}

// RemoveWedges returns a spinner without any wedges matching the
// value.
func (s *Spinner[T]) RemoveWedges(value T) *Spinner[T] {
	kept := make([]Wedge[T], 0, len(s.wedges))
	for _, w := range s.wedges {
		if w.Value != value {
			kept = append(kept, w)
		}
	}
	return &Spinner[T]{wedges: kept}
}

// ReplaceValue swaps one wedge value for another, keeping widths.
// Affects all wedges with the matching value.
func (s *Spinner[T]) ReplaceValue(match, replacement T) *Spinner[T] {
	return s.mapWedges(func(w Wedge[T]) Wedge[T] {
		if w.Value == match {
			return NewWeightedWedge(replacement, w.Width)
		}
		return w
	})
}

func (s *Spinner[T]) mapWedges(f func(Wedge[T]) Wedge[T]) *Spinner[T] {
	mapped := make([]Wedge[T], len(s.wedges))
	for i, w := range s.wedges {
		mapped[i] = f(w)
	}
	return &Spinner[T]{wedges: mapped}
}
