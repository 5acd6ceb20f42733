// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chaintable

import "iter"

// Entry contains a Key and Value. Entries stored in a Map hash and
// compare by Key only.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map implements a key/value map on top of a Table of entries.
// Putting an existing key replaces the entry, so its value is updated
// in place.
type Map[K, V any] struct {
	table *Table[Entry[K, V]]

	hash  func(K) uint64
	equal func(a, b K) bool
}

// NewMap instantiates a Map for keys that provide their own hash and
// equality, initialized with any entries passed.
func NewMap[K Element[K], V any](entries ...Entry[K, V]) *Map[K, V] {
	return NewMapFunc(equalOf[K], hashOf[K], entries...)
}

// NewMapFunc instantiates a Map using the given key equal and hash
// functions, initialized with any entries passed. If equal(a, b) then
// hash(a) == hash(b).
func NewMapFunc[K, V any](
	equal func(a, b K) bool,
	hash func(K) uint64,
	entries ...Entry[K, V]) *Map[K, V] {

	if equal == nil || hash == nil {
		panic("chaintable: nil equal or hash function")
	}
	m := &Map[K, V]{hash: hash, equal: equal}
	m.table = NewHintFunc(len(entries),
		func(a, b Entry[K, V]) bool { return equal(a.Key, b.Key) },
		func(e Entry[K, V]) uint64 { return hash(e.Key) })
	for _, e := range entries {
		m.Put(e.Key, e.Value)
	}
	return m
}

// Len returns the number of keys in m.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.table.Len()
}

// Put associates key with value in m.
func (m *Map[K, V]) Put(key K, value V) {
	if m == nil {
		panic("Put called on nil map")
	}
	mustValid(key)
	m.table.Add(Entry[K, V]{Key: key, Value: value})
}

// Get returns the value associated with key and true if key is in m,
// otherwise it returns the zero value of V and false.
func (m *Map[K, V]) Get(key K) (V, bool) {
	mustValid(key)
	var zeroV V
	if m == nil {
		return zeroV, false
	}
	e, ok := m.table.Get(Entry[K, V]{Key: key})
	if !ok {
		return zeroV, false
	}
	return e.Value, true
}

// GetOrDefault returns the value associated with key, or def if key is
// not in m.
func (m *Map[K, V]) GetOrDefault(key K, def V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

// Remove deletes key from m and returns the value it was associated
// with. The bool is false, and the value the zero value of V, if key
// was not in m.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	mustValid(key)
	var zeroV V
	if m == nil {
		return zeroV, false
	}
	probe := Entry[K, V]{Key: key}
	e, ok := m.table.Get(probe)
	if !ok {
		return zeroV, false
	}
	m.table.Remove(probe)
	return e.Value, true
}

// Keys returns the set of keys in m as a new Table using m's key hash
// and equality.
func (m *Map[K, V]) Keys() *Table[K] {
	if m == nil {
		panic("Keys called on nil map")
	}
	keys := NewHintFunc(m.Len(), m.equal, m.hash)
	for it := m.table.Iter(); it.Next(); {
		keys.Add(it.Elem().Key)
	}
	return keys
}

// Clear deletes all keys from m.
func (m *Map[K, V]) Clear() {
	if m == nil {
		return
	}
	m.table.Clear()
}

// Table returns the table backing m. Adding or removing entries
// through it bypasses Map and is not supported.
func (m *Map[K, V]) Table() *Table[Entry[K, V]] {
	if m == nil {
		return nil
	}
	return m.table
}

// All returns an iterator over key-value pairs from m.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.Table().All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Values returns an iterator over values in m.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range m.Table().All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}
