package clone

import (
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/dspinellis/mpcd/internal/tokenstore"
)

// SeenMap is the ordered associative container keyed by the content of k
// tokens rather than by their location: two locations compare equal
// whenever their leading k tokens match, regardless of which file or
// offset they came from. The comparator closes over the corpus and k, so
// both are "borrowed" state the map depends on for its entire lifetime.
//
// github.com/emirpasic/gods/maps/treemap is used instead of an
// insertion-ordered map (e.g. wk8/go-ordered-map) precisely because it
// takes an arbitrary comparator: the map's natural iteration order must
// be the content-sorted order, not insertion order.
type SeenMap struct {
	corpus *tokenstore.Corpus
	k      int
	tree   *treemap.Map
}

type seenEntry struct {
	locations []Location
}

// NewSeenMap builds an empty seen map over corpus, comparing k leading
// tokens at a time.
func NewSeenMap(corpus *tokenstore.Corpus, k int) *SeenMap {
	m := &SeenMap{corpus: corpus, k: k}
	m.tree = treemap.NewWith(m.compare)
	return m
}

// compare implements the content comparator: lexicographic order over the
// k tokens starting at each location. Ties (equal content) return 0,
// which is exactly the condition under which the tree treats two
// locations as the same seen-map key.
func (m *SeenMap) compare(a, b interface{}) int {
	la := a.(Location)
	lb := b.(Location)
	for i := 0; i < m.k; i++ {
		ta := m.corpus.Token(la.File, la.Offset+uint32(i))
		tb := m.corpus.Token(lb.File, lb.Offset+uint32(i))
		if ta != tb {
			if ta < tb {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Insert records loc as an occurrence of its own leading k-token content.
// The first location ever inserted for a given content becomes that
// entry's permanent key (the "leader"); later equal-content insertions
// only append to its location list, mirroring std::map::insert's
// no-key-replacement behavior on collision.
func (m *SeenMap) Insert(loc Location) {
	if v, found := m.tree.Get(loc); found {
		entry := v.(*seenEntry)
		entry.locations = append(entry.locations, loc)
		return
	}
	m.tree.Put(loc, &seenEntry{locations: []Location{loc}})
}

// Prune drops every entry whose content was seen at only one location —
// a site with no duplicate is not a clone.
func (m *SeenMap) Prune() {
	for _, key := range m.tree.Keys() {
		v, _ := m.tree.Get(key)
		if len(v.(*seenEntry).locations) < 2 {
			m.tree.Remove(key)
		}
	}
}

// Size reports the number of distinct content keys currently held.
func (m *SeenMap) Size() int { return m.tree.Size() }

// SeenSiteCount reports the total number of seed sites across the entries
// currently held — the "seen sites" diagnostic counter. After Prune it
// counts only the sites of multi-member entries.
func (m *SeenMap) SeenSiteCount() int {
	total := 0
	for _, key := range m.tree.Keys() {
		v, _ := m.tree.Get(key)
		total += len(v.(*seenEntry).locations)
	}
	return total
}

// SeenCloneCount sums the location counts of every entry with two or more
// members — the "seen clones" diagnostic counter, meaningful even before
// Prune runs.
func (m *SeenMap) SeenCloneCount() int {
	total := 0
	for _, key := range m.tree.Keys() {
		v, _ := m.tree.Get(key)
		if n := len(v.(*seenEntry).locations); n > 1 {
			total += n
		}
	}
	return total
}

// Each visits every surviving entry in content-sorted order, calling fn
// with the entry's leader location and its full location list.
func (m *SeenMap) Each(fn func(leader Location, locations []Location)) {
	for _, key := range m.tree.Keys() {
		v, _ := m.tree.Get(key)
		entry := v.(*seenEntry)
		fn(key.(Location), entry.locations)
	}
}
