package frontier

import "hash/fnv"

// Visited remembers item names already handled in this run. Names are the
// natural key, so a second index link with the same name is ignored.
type Visited struct {
	set map[uint64]struct{}
}

func NewVisited() *Visited {
	return &Visited{
		set: make(map[uint64]struct{}),
	}
}

func hash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// Add records name and reports whether it was new.
func (v *Visited) Add(name string) bool {
	k := hash(name)
	if _, ok := v.set[k]; ok {
		return false
	}
	v.set[k] = struct{}{}
	return true
}

func (v *Visited) Has(name string) bool {
	_, ok := v.set[hash(name)]
	return ok
}

func (v *Visited) Size() int { return len(v.set) }
