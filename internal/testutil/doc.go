// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers shared by numguess tests: scripted console
// input, transcript splitting and resource cleanup (MustClose, MustStop).
package testutil
