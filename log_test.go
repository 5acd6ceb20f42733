// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chaintable

import (
	stdlog "log"
	"os"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowLogging(t *testing.T) {
	mem := logging.NewMemoryBackend(16)
	logging.SetBackend(mem)
	logging.SetLevel(logging.DEBUG, LogModule)
	defer func() {
		logging.SetBackend(logging.NewLogBackend(os.Stderr, "", stdlog.LstdFlags))
		logging.SetLevel(logging.WARNING, LogModule)
	}()

	tb := newIntTable()
	for i := range 6 {
		tb.Add(i)
	}

	var msgs []string
	for n := mem.Head(); n != nil; n = n.Next() {
		msgs = append(msgs, n.Record.Message())
	}
	require.Len(t, msgs, 1)
	assert.Equal(t, "grew table from 7 to 15 buckets holding 5 elements", msgs[0])
}
