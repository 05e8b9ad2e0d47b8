// Package combined is a standalone fixture exposing a single addition
// function, kept separate from arith so the harness detects two targets.
package combined

// CombinedAdd returns the sum of two integers
func CombinedAdd(a, b int32) int32 {
	return a + b
}
