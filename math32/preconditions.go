// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/geom/base/errors"

// PreconditionMode determines how the intersection and relation methods of
// [Segment] handle precondition violations: a degenerate segment, a null
// plane, a degenerate triangle or a degenerate hexahedron. In every mode
// other than [PreconditionsPanic] the methods return the fallback result
// documented on each of them. It should be set once at startup, before any
// concurrent use.
var PreconditionMode = PreconditionsLog

// precondition handles the given violation according to [PreconditionMode],
// returning whether there was one.
func precondition(err error) bool {
	if err == nil {
		return false
	}
	switch PreconditionMode {
	case PreconditionsPanic:
		panic(err)
	case PreconditionsLog:
		errors.Log(err)
	}
	return true
}

// preconditions is [precondition] for several checks,
// returning whether any of them failed.
func preconditions(errs ...error) bool {
	return precondition(errors.Join(errs...))
}
