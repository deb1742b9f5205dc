//go:build bayer_nocheck

package bayer

// rangeChecks is off: New narrows without asserting.
const rangeChecks = false
