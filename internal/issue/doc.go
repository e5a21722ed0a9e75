// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// suggestions for the player. Issue pages are Markdown documents rendered with
// glamour for the cases where a plain error line is not enough.
package issue
