// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chaintable

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Stats describes the bucket layout of a Table.
type Stats struct {
	Size         int
	Capacity     int
	LoadFactor   float64
	UsedBuckets  int
	LongestChain int
}

// Stats returns the current layout statistics of t.
func (t *Table[E]) Stats() Stats {
	if t == nil {
		return Stats{}
	}
	st := Stats{
		Size:       t.count,
		Capacity:   t.capacity(),
		LoadFactor: t.loadFactor(),
	}
	for _, chain := range t.chains {
		if len(chain) == 0 {
			continue
		}
		st.UsedBuckets++
		st.LongestChain = max(st.LongestChain, len(chain))
	}
	return st
}

// Verify walks t and reports every broken structural invariant: a
// bucket count that is not 2^n-1 (n >= 3), a size or load factor that
// disagrees with the chains, an element stored in the wrong bucket, or
// two equal elements in one chain. It returns nil for a sound table.
func (t *Table[E]) Verify() error {
	if t == nil {
		return nil
	}
	var result *multierror.Error
	capacity := t.capacity()
	if capacity < minCapacity || (capacity+1)&capacity != 0 {
		result = multierror.Append(result,
			fmt.Errorf("capacity %d is not 2^n-1 with n >= %d", capacity, minCapacityBits))
	}
	if capacity == 0 {
		return result.ErrorOrNil()
	}
	count := 0
	for b, chain := range t.chains {
		if chain != nil && len(chain) == 0 {
			result = multierror.Append(result, fmt.Errorf("bucket %d holds an empty chain", b))
		}
		for i, e := range chain {
			count++
			if want := t.index(t.hash(e)); want != b {
				result = multierror.Append(result,
					fmt.Errorf("element %d of bucket %d belongs in bucket %d", i, b, want))
			}
			for j := i + 1; j < len(chain); j++ {
				if t.equal(e, chain[j]) {
					result = multierror.Append(result,
						fmt.Errorf("elements %d and %d of bucket %d are equal", i, j, b))
				}
			}
		}
	}
	if count != t.count {
		result = multierror.Append(result,
			fmt.Errorf("size is %d but chains hold %d elements", t.count, count))
	}
	if want := float64(count) / float64(capacity); t.load != want {
		result = multierror.Append(result,
			fmt.Errorf("load factor is %v, want %v", t.load, want))
	}
	if overLoadFactor(t.count, capacity) {
		result = multierror.Append(result,
			fmt.Errorf("load factor %v is over %d/%d", t.load, loadFactorNum, loadFactorDen))
	}
	return result.ErrorOrNil()
}
