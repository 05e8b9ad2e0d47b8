// Package arith is a simple library for basic arithmetic operations.
// This is an example project for testing Suitey's Go module detection.
package arith

// Add returns the sum of two integers
func Add(a, b int32) int32 {
	return a + b
}

// Multiply returns the product of two integers
func Multiply(a, b int32) int32 {
	return a * b
}

// IsEven returns true if n is even
func IsEven(n int32) bool {
	return n%2 == 0
}
