// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants gates expensive consistency checks behind the
// "invariants" and "race" build tags.
package invariants

import "github.com/cockroachdb/errors"

// CheckLen panics if a slice that must be kept in lock-step with another has
// drifted from the expected length. It is a no-op unless Enabled.
func CheckLen(what string, got, want int) {
	if Enabled && got != want {
		panic(errors.AssertionFailedf("%s has length %d; expected %d", errors.Safe(what), got, want))
	}
}
