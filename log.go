// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chaintable

import "github.com/op/go-logging"

// LogModule is the go-logging module name used by this package. Growth
// events are logged at DEBUG; enable them with
// logging.SetLevel(logging.DEBUG, chaintable.LogModule).
const LogModule = "chaintable"

var log = logging.MustGetLogger(LogModule)

func init() {
	logging.SetLevel(logging.WARNING, LogModule)
}
