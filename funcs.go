// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chaintable

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// String converts t to a string representation using E's String
// function.
func String[E fmt.Stringer](t *Table[E]) string {
	return StringFunc(t, func(e E) string { return e.String() })
}

// StringFunc converts t to a string representation with the help of
// str to stringify t's elements. Elements are sorted by their string
// form so the result does not depend on bucket layout.
func StringFunc[E any](t *Table[E], str func(e E) string) string {
	if t.Len() == 0 {
		return "chaintable.Table[]"
	}
	strs := make([]string, 0, t.Len())
	s := 0
	for it := t.Iter(); it.Next(); {
		e := str(it.Elem())
		s += len(e)
		strs = append(strs, e)
	}
	slices.Sort(strs)

	var b strings.Builder
	b.Grow(len("chaintable.Table[]") + // space for header and footer
		len(strs) - 1 + // space for delimiters
		s) // space for elements
	b.WriteString("chaintable.Table[")
	for i, e := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e)
	}
	b.WriteByte(']')
	return b.String()
}

type strKV struct {
	k string
	v string
}

// MapString converts m to a string representation using K's and V's
// String functions.
func MapString[K fmt.Stringer, V fmt.Stringer](m *Map[K, V]) string {
	return MapStringFunc(m,
		func(key K) string { return key.String() },
		func(value V) string { return value.String() },
	)
}

// MapStringFunc converts m to a string representation with the help of
// strK and strV functions to stringify m's keys and values.
func MapStringFunc[K, V any](m *Map[K, V],
	strK func(key K) string,
	strV func(value V) string) string {
	if m.Len() == 0 {
		return "chaintable.Map[]"
	}
	strs := make([]strKV, 0, m.Len())
	s := 0
	for k, v := range m.All() {
		kv := strKV{k: strK(k), v: strV(v)}
		s += len(kv.k) + len(kv.v)
		strs = append(strs, kv)
	}
	slices.SortFunc(strs, func(a, b strKV) bool { return a.k < b.k })

	var b strings.Builder
	b.Grow(len("chaintable.Map[]") + // space for header and footer
		len(strs)*2 - 1 + // space for delimiters
		s) // space for keys and values
	b.WriteString("chaintable.Map[")
	for i, kv := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv.k)
		b.WriteByte(':')
		b.WriteString(kv.v)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal returns true if t1 and t2 hold the same set of elements, using
// t1's equality.
func Equal[E any](t1, t2 *Table[E]) bool {
	if t1.Len() != t2.Len() {
		return false
	}
	for it := t1.Iter(); it.Next(); {
		if !t2.Contains(it.Elem()) {
			return false
		}
	}
	return true
}

// EqualMap returns true if the same set of keys and values are in m1
// and m2. Values are compared using eq.
func EqualMap[K, V any](m1, m2 *Map[K, V], eq func(V, V) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	for k, v1 := range m1.All() {
		v2, ok := m2.Get(k)
		if !ok || !eq(v1, v2) {
			return false
		}
	}
	return true
}
