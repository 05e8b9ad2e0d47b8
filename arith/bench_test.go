package arith

import "testing"

var sink int32

func BenchmarkAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = Add(int32(i), 3)
	}
}

func BenchmarkMultiply(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = Multiply(int32(i), 3)
	}
}

func FuzzIsEven(f *testing.F) {
	f.Add(int32(0))
	f.Add(int32(1))
	f.Add(int32(-2))

	f.Fuzz(func(t *testing.T, n int32) {
		got := IsEven(n)
		if got != (n%2 == 0) {
			t.Errorf("IsEven(%d) = %v", n, got)
		}
		if got != IsEven(-n) {
			t.Errorf("IsEven(%d) != IsEven(%d)", n, -n)
		}
	})
}
