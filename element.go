// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chaintable

import (
	"errors"
	"fmt"
	"hash/maphash"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Element is the capability a value needs to be stored in a Table
// created with New or NewHint. If a.Equal(b) then a.Hash() must equal
// b.Hash().
type Element[E any] interface {
	Hash() uint64
	Equal(E) bool
}

// ErrInvalidElement is wrapped by the panic raised when a nil element
// is handed to a Table.
var ErrInvalidElement = errors.New("chaintable: invalid element")

// hashSeed is shared by the hash helpers so that hashes are stable for
// the life of the process.
var hashSeed = maphash.MakeSeed()

// IntHash hashes integers to themselves. It gives callers full control
// over which bucket a key lands in.
func IntHash[T constraints.Integer](v T) uint64 {
	return uint64(v)
}

// ComparableHash hashes any comparable value with hash/maphash.
func ComparableHash[T comparable](v T) uint64 {
	return maphash.Comparable(hashSeed, v)
}

// StringHash hashes s with hash/maphash.
func StringHash(s string) uint64 {
	return maphash.String(hashSeed, s)
}

// BytesHash hashes b with hash/maphash.
func BytesHash(b []byte) uint64 {
	return maphash.Bytes(hashSeed, b)
}

func equalOf[E Element[E]](a, b E) bool {
	return a.Equal(b)
}

func hashOf[E Element[E]](e E) uint64 {
	return e.Hash()
}

// mustValid panics if e is a nil pointer or nil interface. Nil slices
// are valid elements; bytes.Equal treats them as empty.
func mustValid[E any](e E) {
	v := reflect.ValueOf(&e).Elem()
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			panic(fmt.Errorf("%w: nil %s", ErrInvalidElement, v.Type()))
		}
	}
}
