// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chaintable

const (
	// Smallest number of buckets a table can have. Bucket counts are
	// always 2^n-1, n >= minCapacityBits.
	minCapacityBits = 3
	minCapacity     = 1<<minCapacityBits - 1

	// Maximum load a table is allowed to reach after an insert is 0.75.
	// Represent as loadFactorNum/loadFactorDen, to allow integer math.
	loadFactorNum = 3
	loadFactorDen = 4
)

// store is the bucket array of a Table. Each bucket holds a chain of
// elements in insertion order; an empty bucket is a nil chain.
type store[E any] struct {
	chains [][]E
	count  int     // # live elements == size of table
	load   float64 // count / len(chains)
}

func newStore[E any](capacity int) store[E] {
	return store[E]{chains: make([][]E, capacity)}
}

// capacityFor returns the smallest 2^n-1 >= hint, n >= minCapacityBits.
func capacityFor(hint int) int {
	capacity := minCapacity
	for capacity < hint {
		capacity = growCapacity(capacity)
	}
	return capacity
}

func growCapacity(capacity int) int {
	return (capacity+1)*2 - 1
}

// overLoadFactor reports whether count elements placed in capacity
// buckets is over the maximum load.
func overLoadFactor(count, capacity int) bool {
	return uint64(count)*loadFactorDen > uint64(capacity)*loadFactorNum
}

func (s *store[E]) capacity() int {
	return len(s.chains)
}

func (s *store[E]) loadFactor() float64 {
	return s.load
}

// index maps a hash to a bucket. Hashes are unsigned so every hash,
// including the ones a signed hash would wrap to, yields a valid index.
func (s *store[E]) index(hash uint64) int {
	return int(hash % uint64(len(s.chains)))
}

// find returns the chain holding hash and the position of the element
// equal to e in it, or -1.
func (s *store[E]) find(e E, hash uint64, equal func(a, b E) bool) (int, int) {
	b := s.index(hash)
	for i, x := range s.chains[b] {
		if equal(x, e) {
			return b, i
		}
	}
	return b, -1
}

// insert appends e to bucket b. The caller has checked that no equal
// element is in that chain.
func (s *store[E]) insert(b int, e E) {
	s.chains[b] = append(s.chains[b], e)
	s.count++
	s.updateLoad()
}

// delete removes position i from bucket b, keeping the order of the
// rest of the chain.
func (s *store[E]) delete(b, i int) {
	chain := s.chains[b]
	copy(chain[i:], chain[i+1:])
	var zeroE E
	// Clear the tail in case E holds pointers
	chain[len(chain)-1] = zeroE
	chain = chain[:len(chain)-1]
	if len(chain) == 0 {
		chain = nil
	}
	s.chains[b] = chain
	s.count--
	s.updateLoad()
}

func (s *store[E]) updateLoad() {
	s.load = float64(s.count) / float64(len(s.chains))
}

// grow rehashes every element into a bucket array of the next
// capacity. Elements are moved bucket by bucket, in chain order, so
// elements that stay together keep their relative order.
func (s *store[E]) grow(hash func(E) uint64) {
	oldCapacity := len(s.chains)
	next := newStore[E](growCapacity(oldCapacity))
	for _, chain := range s.chains {
		for _, e := range chain {
			b := next.index(hash(e))
			next.chains[b] = append(next.chains[b], e)
		}
	}
	next.count = s.count
	next.updateLoad()
	*s = next
	log.Debugf("grew table from %d to %d buckets holding %d elements",
		oldCapacity, len(s.chains), s.count)
}

// clear drops every element but keeps the bucket array size.
func (s *store[E]) clear() {
	for i := range s.chains {
		s.chains[i] = nil
	}
	s.count = 0
	s.load = 0
}
