package main

import "math/rand/v2"

// Sequence is an infinite, pull-based run of integers. Next returns the
// current element together with the sequence that follows it; the
// receiver itself is left untouched.
type Sequence interface {
	Next() (int, Sequence)
}

// NewSequence seeds a sequence of integers in [min, max].
func NewSequence(seed uint64, min, max int) Sequence {
	return pcgSequence{
		src: *rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
		min: min,
		max: max,
	}
}

type pcgSequence struct {
	src      rand.PCG
	min, max int
}

func (s pcgSequence) Next() (int, Sequence) {
	src := s.src
	v := s.min + rand.New(&src).IntN(s.max-s.min+1)
	return v, pcgSequence{src: src, min: s.min, max: s.max}
}
