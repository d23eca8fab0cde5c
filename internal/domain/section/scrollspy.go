package section

import (
	"errors"
	"strings"
)

// DefaultThreshold is the distance in pixels from the top of the viewport
// that a section has to straddle to count as in view.
const DefaultThreshold = 100

// Rect is a section's bounding box in viewport coordinates.
type Rect struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Contains reports whether the horizontal line y crosses the rectangle.
func (r Rect) Contains(y float64) bool {
	return r.Top <= y && r.Bottom >= y
}

// BoundsProvider is implemented by whatever owns the layout. A section
// without an anchor reports ok == false.
type BoundsProvider interface {
	Bounds(id ID) (Rect, bool)
}

// BoundsMap is a BoundsProvider backed by a snapshot of measured rects.
type BoundsMap map[ID]Rect

func (m BoundsMap) Bounds(id ID) (Rect, bool) {
	r, ok := m[id]
	return r, ok
}

// TieBreak picks a winner when several sections straddle the threshold.
type TieBreak string

const (
	FirstMatch TieBreak = "first"
	LastMatch  TieBreak = "last"
)

var ErrInvalidTieBreak = errors.New("tie break must be 'first' or 'last'")

func ParseTieBreak(raw string) (TieBreak, error) {
	switch TieBreak(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FirstMatch:
		return FirstMatch, nil
	case LastMatch:
		return LastMatch, nil
	default:
		return "", ErrInvalidTieBreak
	}
}

// ScrollSpy finds the section currently under the threshold line.
type ScrollSpy struct {
	Threshold float64
	TieBreak  TieBreak
}

func NewScrollSpy(threshold float64, tieBreak TieBreak) *ScrollSpy {
	if tieBreak == "" {
		tieBreak = FirstMatch
	}
	return &ScrollSpy{Threshold: threshold, TieBreak: tieBreak}
}

// Detect walks the sections in page order and returns the one whose
// bounds contain the threshold line. ok is false when nothing matches.
func (s *ScrollSpy) Detect(bounds BoundsProvider) (ID, bool) {
	var found ID
	for _, id := range order {
		r, ok := bounds.Bounds(id)
		if !ok || !r.Contains(s.Threshold) {
			continue
		}
		if s.TieBreak != LastMatch {
			return id, true
		}
		found = id
	}
	return found, found != ""
}

// Next returns the active section after a scroll event: the detected
// section, or current when nothing is in view.
func (s *ScrollSpy) Next(current ID, bounds BoundsProvider) ID {
	if id, ok := s.Detect(bounds); ok {
		return id
	}
	return current
}
