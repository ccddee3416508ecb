package object

// Table is an append-only vector of object handles indexed by PDF object
// number. Storage is split into 16 lazily allocated segments whose sizes
// double, so both append and lookup are constant time and existing entries
// never move.
//
// Segment k covers indices [2^(10+k)-2^10, 2^(11+k)-2^10); segment 0 holds
// indices 0..1023.
type Table struct {
	segments [maxSegments][]*Object
	count    int
}

const (
	minShift    = 10
	maxSegments = 16
)

// segmentStart returns the first index covered by segment k.
func segmentStart(k int) int { return (1 << (minShift + k)) - (1 << minShift) }

// segmentSize returns the capacity of segment k.
func segmentSize(k int) int { return 1 << (minShift + k) }

// segmentFor locates the segment covering index, or -1 when out of range.
func segmentFor(index int) int {
	for k := 0; k < maxSegments; k++ {
		if index < segmentStart(k+1) {
			return k
		}
	}
	return -1
}

// Append places obj at the next free index and returns that index, or -1
// when the table is full.
func (t *Table) Append(obj *Object) int {
	index := t.count
	if !t.put(index, obj) {
		return -1
	}
	t.count++
	return index
}

// Get returns the handle at index, or nil when the index is out of range or
// the slot was cleared.
func (t *Table) Get(index int) *Object {
	if index < 0 || index >= t.count {
		return nil
	}
	k := segmentFor(index)
	if k < 0 || t.segments[k] == nil {
		return nil
	}
	return t.segments[k][index-segmentStart(k)]
}

// Set overwrites the slot at index. It is used only for controlled deletion
// (writing nil over a just-created object).
func (t *Table) Set(index int, obj *Object) {
	if index < 0 || index >= t.count {
		return
	}
	k := segmentFor(index)
	if k < 0 || t.segments[k] == nil {
		return
	}
	t.segments[k][index-segmentStart(k)] = obj
}

// Size returns the number of assigned indices.
func (t *Table) Size() int { return t.count }

// Clear releases all segments.
func (t *Table) Clear() {
	for k := range t.segments {
		t.segments[k] = nil
	}
	t.count = 0
}

func (t *Table) put(index int, obj *Object) bool {
	k := segmentFor(index)
	if k < 0 {
		return false
	}
	if t.segments[k] == nil {
		t.segments[k] = make([]*Object, segmentSize(k))
	}
	t.segments[k][index-segmentStart(k)] = obj
	return true
}
