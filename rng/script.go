package rng

// Script replays a fixed sequence of draws. It is the deterministic
// Source used by tests; it panics once the scripted values run out so
// a test that consumes more randomness than it scripted fails loudly.
type Script struct {
	Ints   []int
	Floats []float64
}

func (s *Script) IntRange(lo, hi int) int {
	if len(s.Ints) == 0 {
		panic("rng: scripted int draws exhausted")
	}
	n := s.Ints[0]
	s.Ints = s.Ints[1:]
	if n < lo || n > hi {
		panic("rng: scripted int draw outside requested range")
	}

	return n
}

func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		panic("rng: scripted float draws exhausted")
	}
	f := s.Floats[0]
	s.Floats = s.Floats[1:]

	return f
}
