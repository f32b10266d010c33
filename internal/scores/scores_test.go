package scores

import (
	"math/rand"
	"testing"
)

func verifyIndexInvariants(t *testing.T, s *Scores[Index], data []float32) {
	t.Helper()
	n := len(data)
	if n != s.Len() || n != len(s.position) {
		t.Fatalf("length mismatch: data=%d heap=%d position=%d", n, s.Len(), len(s.position))
	}
	min, _ := s.Min()
	want := data[0]
	for _, v := range data {
		if v < want {
			want = v
		}
	}
	if min != want {
		t.Fatalf("minimum mismatch: heap says %v, data says %v", min, want)
	}
	for i := 0; i < n; i++ {
		e := s.heap[s.position[i]]
		if e.value != data[i] || e.key.Owner() != i {
			t.Fatalf("entry at position[%d]=%d has (%v, owner %d), want (%v, %d)",
				i, s.position[i], e.value, e.key.Owner(), data[i], i)
		}
	}
	for i := 0; i < n; i++ {
		val := s.heap[i].value
		l, r := left(i), right(i)
		if l < n && s.heap[l].value < val {
			t.Fatalf("heap property broken at %d: left child %v < %v", i, s.heap[l].value, val)
		}
		if r < n && s.heap[r].value < val {
			t.Fatalf("heap property broken at %d: right child %v < %v", i, s.heap[r].value, val)
		}
	}
}

func randomHeapTest(t *testing.T, rng *rand.Rand, n int) {
	t.Helper()
	data := make([]float32, n)
	for i := range data {
		data[i] = rng.Float32()
	}
	s := NewIndexScores(append([]float32(nil), data...))
	verifyIndexInvariants(t, s, data)
	for iter := 0; iter < 1000; iter++ {
		i := rng.Intn(n)
		val := rng.Float32()
		data[i] = val
		s.Update(Index(i), val)
		verifyIndexInvariants(t, s, data)
		if t.Failed() {
			t.Fatalf("iteration %d index %d value %v broke invariants", iter, i, val)
		}
	}
}

func TestIndexScoresHeapInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for p := 0; p < 5; p++ {
		n := 1
		for i := 0; i < p; i++ {
			n *= 10
		}
		randomHeapTest(t, rng, n)
		randomHeapTest(t, rng, n+1)
	}
}

func TestIndexScoresConstructionInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n < 200; n++ {
		data := make([]float32, n)
		for i := range data {
			data[i] = rng.Float32()
		}
		s := NewIndexScores(data)
		verifyIndexInvariants(t, s, data)
	}
}

func TestNewIndexScoresPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty input")
		}
	}()
	NewIndexScores(nil)
}

func TestPairScoresUpdatePreservesOwnerAndPartner(t *testing.T) {
	values := []float32{5, 3, 8, 1}
	partners := []int{1, 2, 3, 0}
	s := NewPairScores(values, partners)

	min, key := s.Min()
	if min != 1 || key.Owner() != 3 || key.Partner != 0 {
		t.Fatalf("unexpected initial min: %v %+v", min, key)
	}

	s.Update(PairKey{OwnerIndex: 3, Partner: 2}, 9)
	min, key = s.Min()
	if min != 3 || key.Owner() != 1 {
		t.Fatalf("after update, unexpected min: %v %+v", min, key)
	}

	idx := s.position[3]
	if s.heap[idx].key.Partner != 2 {
		t.Fatalf("partner not updated: got %d, want 2", s.heap[idx].key.Partner)
	}
}

func TestNewPairScoresPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched lengths")
		}
	}()
	NewPairScores([]float32{1, 2}, []int{0})
}
