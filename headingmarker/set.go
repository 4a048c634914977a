package headingmarker

import (
	"slices"
	"sort"
)

// MarkerSet is an immutable set of markers ordered by From. Markers never
// overlap.
type MarkerSet struct {
	markers []Marker
}

// Empty is the set with no markers.
var Empty = MarkerSet{}

// newMarkerSet sorts markers and drops any that overlap an earlier one.
func newMarkerSet(markers []Marker) MarkerSet {
	if len(markers) == 0 {
		return Empty
	}
	sorted := slices.Clone(markers)
	slices.SortStableFunc(sorted, func(a, b Marker) int { return a.From - b.From })
	out := sorted[:1]
	for _, m := range sorted[1:] {
		if m.From <= out[len(out)-1].To {
			continue
		}
		out = append(out, m)
	}
	return MarkerSet{markers: out}
}

func (s MarkerSet) Len() int { return len(s.markers) }

// At returns the i-th marker in document order.
func (s MarkerSet) At(i int) Marker { return s.markers[i] }

// All returns a copy of the markers in document order.
func (s MarkerSet) All() []Marker { return slices.Clone(s.markers) }

func (s MarkerSet) Equal(o MarkerSet) bool { return slices.Equal(s.markers, o.markers) }

// Between returns the first marker whose From lies in [from, to].
func (s MarkerSet) Between(from, to int) (Marker, bool) {
	i := sort.Search(len(s.markers), func(i int) bool { return s.markers[i].From >= from })
	if i < len(s.markers) && s.markers[i].From <= to {
		return s.markers[i], true
	}
	return Marker{}, false
}
