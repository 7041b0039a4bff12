package almanac

import (
	"fmt"

	"github.com/google/btree"
	"github.com/pkg/errors"
)

const layerDegree = 8

// Entry translates every value of Source to the value at the same offset in
// Destination. Both intervals have the same length.
type Entry struct {
	Source      Interval
	Destination Interval
}

// NewEntry builds an entry from an almanac triple.
func NewEntry(destination, source, length uint64) (Entry, error) {
	src, err := NewInterval(source, length)
	if err != nil {
		return Entry{}, errors.Wrap(err, "invalid source")
	}

	dst, err := NewInterval(destination, length)
	if err != nil {
		return Entry{}, errors.Wrap(err, "invalid destination")
	}

	return Entry{Source: src, Destination: dst}, nil
}

func (e Entry) validate() error {
	if _, err := NewInterval(e.Source.Start, e.Source.Length); err != nil {
		return errors.Wrap(err, "invalid source")
	}
	if _, err := NewInterval(e.Destination.Start, e.Destination.Length); err != nil {
		return errors.Wrap(err, "invalid destination")
	}
	if e.Source.Length != e.Destination.Length {
		return errors.Wrapf(ErrLengthMismatch, "source %s, destination %s", e.Source, e.Destination)
	}
	return nil
}

// translate moves a sub-interval of e.Source into destination space.
func (e Entry) translate(in Interval) Interval {
	return Interval{Start: e.Destination.Start + (in.Start - e.Source.Start), Length: in.Length}
}

func (e Entry) String() string {
	return fmt.Sprintf("%s -> %s", e.Source, e.Destination)
}

func entryLess(a, b Entry) bool {
	return a.Source.Start < b.Source.Start
}

// Layer is one translation stage of an almanac, such as seed-to-soil.
//
// Entries are kept ordered by source start and their sources never overlap.
// A Layer is built once with Add or Insert and is safe for concurrent reads
// afterwards.
type Layer struct {
	from string
	to   string

	entries *btree.BTreeG[Entry]
}

// NewLayer returns an empty layer translating category from into category to.
func NewLayer(from, to string) *Layer {
	return &Layer{
		from:    from,
		to:      to,
		entries: btree.NewG[Entry](layerDegree, entryLess),
	}
}

// From is the source category of the layer.
func (l *Layer) From() string {
	return l.from
}

// To is the destination category of the layer.
func (l *Layer) To() string {
	return l.to
}

// Name returns the layer name as it appears in an almanac header.
func (l *Layer) Name() string {
	return fmt.Sprintf("%s-to-%s", l.from, l.to)
}

// Len returns the number of entries in the layer.
func (l *Layer) Len() int {
	return l.entries.Len()
}

// Entries returns the layer entries in ascending source order.
func (l *Layer) Entries() []Entry {
	entries := make([]Entry, 0, l.entries.Len())
	l.entries.Ascend(func(e Entry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

// Insert adds the entry described by an almanac triple.
func (l *Layer) Insert(destination, source, length uint64) error {
	entry, err := NewEntry(destination, source, length)
	if err != nil {
		return err
	}
	return l.Add(entry)
}

// Add adds an entry to the layer.
// An entry whose source starts where an existing entry starts is ignored:
// the first registration wins.
func (l *Layer) Add(entry Entry) error {
	if err := entry.validate(); err != nil {
		return err
	}

	if l.entries.Has(entry) {
		return nil
	}

	var neighbours []Entry
	l.entries.DescendLessOrEqual(entry, func(prev Entry) bool {
		neighbours = append(neighbours, prev)
		return false
	})
	l.entries.AscendGreaterOrEqual(entry, func(next Entry) bool {
		neighbours = append(neighbours, next)
		return false
	})
	for _, n := range neighbours {
		if n.Source.Overlaps(entry.Source) {
			return errors.Wrapf(ErrOverlap, "%s overlaps %s", entry.Source, n.Source)
		}
	}

	l.entries.ReplaceOrInsert(entry)
	return nil
}

// Map translates a single value. Values outside every entry map to themselves.
func (l *Layer) Map(x uint64) uint64 {
	mapped := x
	l.entries.DescendLessOrEqual(Entry{Source: Interval{Start: x}}, func(e Entry) bool {
		if e.Source.Contains(x) {
			mapped = e.Destination.Start + (x - e.Source.Start)
		}
		return false
	})
	return mapped
}

// Get returns the intervals r maps to.
//
// Each entry, in ascending source order, claims the part of the pending
// fragments it covers; what it does not cover stays pending for the entries
// after it. Fragments left pending once every entry has run map to
// themselves. The returned lengths always sum to r.Length.
func (l *Layer) Get(r Interval) []Interval {
	var mapped []Interval
	pending := []Interval{r}

	l.entries.Ascend(func(e Entry) bool {
		current := pending
		pending = make([]Interval, 0, len(current)+1)

		for _, fragment := range current {
			if in, ok := e.Source.Intersection(fragment); ok {
				mapped = append(mapped, e.translate(in))
			}

			left, hasLeft, right, hasRight := e.Source.RelativeComplement(fragment)
			if hasLeft {
				pending = append(pending, left)
			}
			if hasRight {
				pending = append(pending, right)
			}
		}

		return len(pending) > 0
	})

	return append(mapped, pending...)
}
