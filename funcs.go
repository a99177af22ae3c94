package main

// Identity gives back what it is given.
func Identity[T any](v T) T {
	return v
}

// Compose returns f after g.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}
