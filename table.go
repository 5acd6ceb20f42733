// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chaintable provides the Table type, a hash table that
// resolves collisions by chaining, and Map, a key/value map built on
// top of it. Users provide the hash and equality of the stored values,
// either as methods (see Element) or as functions.
//
// The following requirements are the user's responsibility to follow:
//   - equal(a, b) => hash(a) == hash(b)
//   - equal(a, a) must be true for all values of a.
//   - Modifying an element in a way that changes its hash or equality
//     while it is stored results in undefined behavior.
//
// Tables are not safe for concurrent use. Callers that share a Table
// between goroutines must provide their own locking.
package chaintable

// This file contains a chaining hash table.
//
// The table is an array of buckets whose length is always 2^n-1. A
// hash selects a bucket by taking it modulo the number of buckets.
// Each bucket is a slice of the elements that hash to it, kept in
// insertion order.
//
// Before an element is appended the table checks whether the insert
// would take the load factor (elements / buckets) over 0.75. If so
// the bucket array is replaced by one of (n+1)*2-1 buckets and every
// element is rehashed before the insert proceeds. Replacing an equal
// element never grows the table, and removing never shrinks it.

// Table implements a chaining hash table.
type Table[E any] struct {
	store[E]

	hash  func(E) uint64
	equal func(a, b E) bool
}

// New instantiates an empty Table of minimum capacity for elements
// that provide their own hash and equality, initialized with any
// elements passed.
func New[E Element[E]](es ...E) *Table[E] {
	return NewFunc(equalOf[E], hashOf[E], es...)
}

// NewHint instantiates an empty Table for elements that provide their
// own hash and equality, with enough buckets to hold hint elements.
func NewHint[E Element[E]](hint int) *Table[E] {
	return NewHintFunc(hint, equalOf[E], hashOf[E])
}

// NewFunc instantiates a Table using the given equal and hash
// functions, initialized with any elements passed. If equal(a, b) then
// hash(a) == hash(b).
func NewFunc[E any](
	equal func(a, b E) bool,
	hash func(E) uint64,
	es ...E) *Table[E] {

	t := NewHintFunc(len(es), equal, hash)
	for _, e := range es {
		t.Add(e)
	}
	return t
}

// NewHintFunc instantiates a Table with a hint as to how many elements
// will be inserted. The table starts with the smallest 2^n-1 buckets
// that is at least hint, n >= 3. See NewFunc for discussion of the
// equal and hash arguments.
func NewHintFunc[E any](
	hint int,
	equal func(a, b E) bool,
	hash func(E) uint64) *Table[E] {

	if equal == nil || hash == nil {
		panic("chaintable: nil equal or hash function")
	}
	return &Table[E]{
		store: newStore[E](capacityFor(hint)),
		hash:  hash,
		equal: equal,
	}
}

// Len returns the number of elements in t.
func (t *Table[E]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Capacity returns the number of buckets in t. It is always 2^n-1 for
// some n >= 3.
func (t *Table[E]) Capacity() int {
	if t == nil {
		return 0
	}
	return t.capacity()
}

// LoadFactor returns Len() / Capacity().
func (t *Table[E]) LoadFactor() float64 {
	if t == nil {
		return 0
	}
	return t.loadFactor()
}

// Add stores e in t. If t already holds an element equal to e, that
// element is replaced by e at the same chain position and Add returns
// false. Otherwise e is appended to its chain and Add returns true.
func (t *Table[E]) Add(e E) bool {
	if t == nil {
		// We have to panic here rather than initialize an empty table
		// because we need the user to pass in hash and equal functions
		panic("Add called on nil table")
	}
	mustValid(e)
	hash := t.hash(e)
	b, i := t.find(e, hash, t.equal)
	if i >= 0 {
		// already have an equal element. Overwrite it.
		t.chains[b][i] = e
		return false
	}

	// Did not find e. If the insert takes us over the load factor,
	// grow first and recompute the bucket.
	if overLoadFactor(t.count+1, t.capacity()) {
		for overLoadFactor(t.count+1, t.capacity()) {
			t.grow(t.hash)
		}
		b = t.index(hash)
	}
	t.insert(b, e)
	return true
}

// Remove deletes the element equal to e from t, and reports whether
// there was one.
func (t *Table[E]) Remove(e E) bool {
	mustValid(e)
	if t == nil || t.count == 0 {
		return false
	}
	b, i := t.find(e, t.hash(e), t.equal)
	if i < 0 {
		return false
	}
	t.delete(b, i)
	return true
}

// Contains reports whether t holds an element equal to e.
func (t *Table[E]) Contains(e E) bool {
	_, ok := t.Get(e)
	return ok
}

// Get returns the stored element equal to e and true, otherwise it
// returns the zero value of E and false. The stored element may carry
// data that e does not, which is how Map looks up values by key.
func (t *Table[E]) Get(e E) (E, bool) {
	mustValid(e)
	var zeroE E
	if t == nil || t.count == 0 {
		return zeroE, false
	}
	b, i := t.find(e, t.hash(e), t.equal)
	if i < 0 {
		return zeroE, false
	}
	return t.chains[b][i], true
}

// Clear deletes all elements from t. The number of buckets is kept.
func (t *Table[E]) Clear() {
	if t == nil || t.count == 0 {
		return
	}
	t.clear()
}
