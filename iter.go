// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chaintable

import (
	"errors"
	"iter"
)

// ErrExhausted is returned by Iterator.Advance when every element has
// been visited.
var ErrExhausted = errors.New("chaintable: iterator exhausted")

// Iterator is instantiated by a call to Iter(). It walks the buckets
// of a Table in index order and each chain in insertion order.
//
// Iteration order changes when the table grows. Adding or removing
// elements while an Iterator is in use is not supported and gives
// unspecified results; it is not detected.
type Iterator[E any] struct {
	t    *Table[E]
	elem E
	// position of the next element to consider
	bucket int
	pos    int
}

// Iter instantiates an Iterator positioned before the first element of
// t. Every call returns an independent traversal.
func (t *Table[E]) Iter() *Iterator[E] {
	return &Iterator[E]{t: t}
}

// seek returns the position of the first element at or after
// (bucket, pos), and false if there is none.
func (it *Iterator[E]) seek(bucket, pos int) (int, int, bool) {
	if it.t == nil {
		return 0, 0, false
	}
	chains := it.t.chains
	for ; bucket < len(chains); bucket, pos = bucket+1, 0 {
		if pos < len(chains[bucket]) {
			return bucket, pos, true
		}
	}
	return bucket, 0, false
}

// HasNext reports whether Advance would return an element.
func (it *Iterator[E]) HasNext() bool {
	_, _, ok := it.seek(it.bucket, it.pos)
	return ok
}

// Advance returns the next element, or ErrExhausted when there are no
// more.
func (it *Iterator[E]) Advance() (E, error) {
	bucket, pos, ok := it.seek(it.bucket, it.pos)
	if !ok {
		var zeroE E
		it.bucket, it.pos = bucket, pos
		return zeroE, ErrExhausted
	}
	e := it.t.chains[bucket][pos]
	it.bucket, it.pos = bucket, pos+1
	return e, nil
}

// Next moves the iterator to the next element. Next returns false
// when the iterator is complete.
func (it *Iterator[E]) Next() bool {
	e, err := it.Advance()
	if err != nil {
		var zeroE E
		it.elem = zeroE
		return false
	}
	it.elem = e
	return true
}

// Elem returns the element at the iterator's current position. This is
// only valid after a call to Next() that returns true.
func (it *Iterator[E]) Elem() E {
	return it.elem
}

// All returns an iterator over the elements of t.
func (t *Table[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for it := t.Iter(); it.Next(); {
			if !yield(it.Elem()) {
				return
			}
		}
	}
}
