package object

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableSegmentBounds(t *testing.T) {
	if got := segmentStart(0); got != 0 {
		t.Fatalf("segment 0 start = %d, want 0", got)
	}
	if got := segmentStart(1); got != 1024 {
		t.Fatalf("segment 1 start = %d, want 1024", got)
	}
	fixtures := map[int]int{0: 0, 1023: 0, 1024: 1, 3071: 1, 3072: 2}
	for index, want := range fixtures {
		if got := segmentFor(index); got != want {
			t.Errorf("segmentFor(%d) = %d, want %d", index, got, want)
		}
	}
}

func TestTableAppendGetAcrossSegments(t *testing.T) {
	var tbl Table
	const n = 5000
	objs := make([]*Object, n)
	for i := 0; i < n; i++ {
		objs[i] = &Object{Kind: KindStream}
		if idx := tbl.Append(objs[i]); idx != i {
			t.Fatalf("append %d returned index %d", i, idx)
		}
	}
	if tbl.Size() != n {
		t.Fatalf("size = %d, want %d", tbl.Size(), n)
	}
	for i := 0; i < n; i++ {
		if tbl.Get(i) != objs[i] {
			t.Fatalf("Get(%d) returned wrong object", i)
		}
	}
	if tbl.Get(n) != nil {
		t.Fatalf("out-of-range Get should return nil")
	}
	if tbl.Get(-1) != nil {
		t.Fatalf("negative Get should return nil")
	}
}

func TestTableSetClearsSlot(t *testing.T) {
	var tbl Table
	obj := &Object{Kind: KindFont}
	idx := tbl.Append(obj)
	tbl.Set(idx, nil)
	if tbl.Get(idx) != nil {
		t.Fatalf("slot not cleared")
	}
	if tbl.Size() != 1 {
		t.Fatalf("size changed by Set: %d", tbl.Size())
	}
}

func TestRegistryIndexMonotonicity(t *testing.T) {
	var r Registry
	r.Add(KindNone, nil)
	want := []int{1, 2, 3, 4, 5}
	var got []int
	kinds := []Kind{KindInfo, KindPages, KindCatalog, KindFont, KindPage}
	for _, k := range kinds {
		got = append(got, r.Add(k, nil).Index)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("index sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryPerKindListIntegrity(t *testing.T) {
	var r Registry
	r.Add(KindNone, nil)
	var added []*Object
	for i := 0; i < 5; i++ {
		// interleave other kinds to make sure the stream list skips them
		r.Add(KindFont, &Font{Name: "Helvetica", Local: i + 1})
		added = append(added, r.Add(KindStream, &Stream{}))
	}

	var forward []*Object
	for obj := r.First(KindStream); obj != nil; obj = obj.Next {
		forward = append(forward, obj)
	}
	var backward []*Object
	for obj := r.Last(KindStream); obj != nil; obj = obj.Prev {
		backward = append(backward, obj)
	}

	if len(forward) != len(added) || len(backward) != len(added) {
		t.Fatalf("walk lengths %d/%d, want %d", len(forward), len(backward), len(added))
	}
	for i := range added {
		if forward[i] != added[i] {
			t.Errorf("forward[%d] out of insertion order", i)
		}
		if backward[i] != added[len(added)-1-i] {
			t.Errorf("backward[%d] out of reverse order", i)
		}
	}
	if r.First(KindStream).Prev != nil {
		t.Errorf("head has a predecessor")
	}
	if r.Last(KindStream).Next != nil {
		t.Errorf("tail has a successor")
	}
	if r.Count(KindStream) != len(added) {
		t.Errorf("count = %d, want %d", r.Count(KindStream), len(added))
	}
}

func TestRegistryRemoveRelinks(t *testing.T) {
	var r Registry
	a := r.Add(KindBookmark, &Bookmark{Title: "a"})
	b := r.Add(KindBookmark, &Bookmark{Title: "b"})
	c := r.Add(KindBookmark, &Bookmark{Title: "c"})

	r.Remove(b)
	if r.Get(b.Index) != nil {
		t.Fatalf("removed object still in table")
	}
	if a.Next != c || c.Prev != a {
		t.Fatalf("neighbors not relinked")
	}
	if r.Count(KindBookmark) != 2 {
		t.Fatalf("count = %d, want 2", r.Count(KindBookmark))
	}

	r.Remove(a)
	if r.First(KindBookmark) != c || r.Last(KindBookmark) != c {
		t.Fatalf("head/tail not recomputed after removing head")
	}
	r.Remove(c)
	if r.First(KindBookmark) != nil || r.Last(KindBookmark) != nil {
		t.Fatalf("list not empty after removing all")
	}
}
