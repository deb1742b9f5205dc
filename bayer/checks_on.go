//go:build !bayer_nocheck

package bayer

// rangeChecks enables the element-width assertion in New.
const rangeChecks = true
