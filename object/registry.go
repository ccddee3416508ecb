package object

// Registry combines the object table with the per-kind linked lists. Every
// object a document ever creates goes through Add, so indices are dense and
// strictly increasing, and each kind's list visits its objects in insertion
// order.
type Registry struct {
	table  Table
	first  [kindCount]*Object
	last   [kindCount]*Object
	counts [kindCount]int
}

// Add creates an object of the given kind, appends it to the table, and
// splices it onto the tail of its kind's list. It returns nil only when the
// table is full.
func (r *Registry) Add(kind Kind, payload Payload) *Object {
	obj := &Object{Kind: kind, Payload: payload}
	index := r.table.Append(obj)
	if index < 0 {
		return nil
	}
	obj.Index = index

	if tail := r.last[kind]; tail != nil {
		obj.Prev = tail
		tail.Next = obj
	}
	r.last[kind] = obj
	if r.first[kind] == nil {
		r.first[kind] = obj
	}
	r.counts[kind]++
	return obj
}

// Remove clears a just-created object that could not be fully initialized.
// The table slot becomes nil and the object leaves its kind's list.
func (r *Registry) Remove(obj *Object) {
	if obj == nil {
		return
	}
	if r.table.Get(obj.Index) != obj {
		return
	}
	r.table.Set(obj.Index, nil)

	if obj.Prev != nil {
		obj.Prev.Next = obj.Next
	}
	if obj.Next != nil {
		obj.Next.Prev = obj.Prev
	}
	if r.first[obj.Kind] == obj {
		r.first[obj.Kind] = obj.Next
	}
	if r.last[obj.Kind] == obj {
		r.last[obj.Kind] = obj.Prev
	}
	obj.Prev = nil
	obj.Next = nil
	r.counts[obj.Kind]--
}

// Get returns the object at the given table index, or nil.
func (r *Registry) Get(index int) *Object { return r.table.Get(index) }

// Size returns the number of table slots, including cleared ones.
func (r *Registry) Size() int { return r.table.Size() }

// First returns the first object of a kind in insertion order, or nil.
func (r *Registry) First(kind Kind) *Object { return r.first[kind] }

// Last returns the most recently added object of a kind, or nil.
func (r *Registry) Last(kind Kind) *Object { return r.last[kind] }

// Count returns how many live objects of a kind exist.
func (r *Registry) Count(kind Kind) int { return r.counts[kind] }

// Clear releases the table. The registry is unusable afterwards.
func (r *Registry) Clear() {
	r.table.Clear()
	for k := range r.first {
		r.first[k] = nil
		r.last[k] = nil
		r.counts[k] = 0
	}
}
