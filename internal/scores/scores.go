// Package scores implements an indexed binary min-heap: a keyed priority
// queue supporting O(log N) update-by-external-key in addition to the usual
// O(1) minimum lookup. It is the data structure a Metric uses to avoid
// rescanning every palette slot after each accepted move.
package scores

// Key identifies a heap entry by the palette slot that owns it. Two
// specializations are used: [Index], one entry per palette slot, and
// [PairKey], one entry per palette slot plus its current nearest-neighbor
// partner.
type Key interface {
	Owner() int
}

// Index is the key type for per-color constraint scores.
type Index int

// Owner implements [Key].
func (i Index) Owner() int { return int(i) }

// PairKey is the key type for nearest-neighbor pair-distance scores, stored
// under the upper-triangular convention: Owner < Partner.
type PairKey struct {
	OwnerIndex int
	Partner    int
}

// Owner implements [Key].
func (k PairKey) Owner() int { return k.OwnerIndex }

type entry[K Key] struct {
	value float32
	key   K
}

// Scores is a binary min-heap of (value, key) pairs plus a parallel
// position array mapping an owner index to its current heap slot. Entry
// count equals N for the lifetime of the structure; it never grows or
// shrinks after construction.
type Scores[K Key] struct {
	heap     []entry[K]
	position []int // position[owner] = heap index
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// NewIndexScores builds a Scores keyed by plain palette index from initial
// per-slot values. Panics if data is empty: N > 0 is required.
func NewIndexScores(data []float32) *Scores[Index] {
	n := len(data)
	if n == 0 {
		panic("scores: NewIndexScores requires a non-empty slice")
	}
	s := &Scores[Index]{
		heap:     make([]entry[Index], n),
		position: make([]int, n),
	}
	for i, v := range data {
		s.heap[i] = entry[Index]{value: v, key: Index(i)}
		s.position[i] = i
	}
	for i := range s.heap {
		s.percolateUp(i)
	}
	return s
}

// NewPairScores builds a Scores keyed by (owner, partner) pairs from initial
// per-slot distances and partner indices. Panics if values is empty.
func NewPairScores(values []float32, partners []int) *Scores[PairKey] {
	n := len(values)
	if n == 0 {
		panic("scores: NewPairScores requires a non-empty slice")
	}
	if len(partners) != n {
		panic("scores: NewPairScores values/partners length mismatch")
	}
	s := &Scores[PairKey]{
		heap:     make([]entry[PairKey], n),
		position: make([]int, n),
	}
	for i, v := range values {
		s.heap[i] = entry[PairKey]{value: v, key: PairKey{OwnerIndex: i, Partner: partners[i]}}
		s.position[i] = i
	}
	for i := range s.heap {
		s.percolateUp(i)
	}
	return s
}

// Len returns the number of entries, fixed at construction time.
func (s *Scores[K]) Len() int { return len(s.heap) }

// Min returns the root entry: the smallest value currently held, and its
// key. Defined for Len() > 0, which always holds after construction.
func (s *Scores[K]) Min() (float32, K) {
	return s.heap[0].value, s.heap[0].key
}

// ValueOf returns the current (value, key) pair for the entry owned by the
// given owner index, independent of its position in the heap.
func (s *Scores[K]) ValueOf(owner int) (float32, K) {
	e := s.heap[s.position[owner]]
	return e.value, e.key
}

// Update overwrites the entry owned by key.Owner() with a new value and key
// (the key is replaced wholesale so that, for [PairKey], the partner
// component is updated too), then restores the heap property in O(log N).
func (s *Scores[K]) Update(key K, val float32) {
	idx := s.position[key.Owner()]
	old := s.heap[idx].value
	s.heap[idx] = entry[K]{value: val, key: key}
	if val < old {
		s.percolateUp(idx)
	} else {
		s.percolateDown(idx)
	}
}

func (s *Scores[K]) percolateUp(i int) {
	for i != 0 {
		p := parent(i)
		if s.heap[p].value <= s.heap[i].value {
			break
		}
		s.swap(i, p)
		i = p
	}
}

func (s *Scores[K]) percolateDown(i int) {
	iVal := s.heap[i].value
	for {
		l := left(i)
		n := len(s.heap)
		if l >= n {
			break
		}
		r := right(i)
		minIdx, minVal := l, s.heap[l].value
		if r < n && s.heap[r].value < minVal {
			minIdx, minVal = r, s.heap[r].value
		}
		if iVal <= minVal {
			break
		}
		s.swap(i, minIdx)
		i = minIdx
	}
}

// swap exchanges two heap slots and keeps position in lockstep: the only
// place the heap and position arrays must be updated together.
func (s *Scores[K]) swap(i, j int) {
	s.heap[i], s.heap[j] = s.heap[j], s.heap[i]
	s.position[s.heap[i].key.Owner()] = i
	s.position[s.heap[j].key.Owner()] = j
}
