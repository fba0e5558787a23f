package rng

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Source supplies the uniform draws the game generators consume.
// IntRange is uniform over the closed range [lo, hi]; Float64 is
// uniform over [0, 1).
type Source interface {
	IntRange(lo, hi int) int
	Float64() float64
}

// Stream derives an endless sequence of uniform numbers from a
// client seed, a server seed and a timestamp by hashing a running
// counter with blake2b.
type Stream struct {
	postfix string
	counter uint64
}

func NewStream(clientSeed string, serverSeed string, timestamp uint64) *Stream {
	return &Stream{
		postfix: fmt.Sprintf("%d%s%s", timestamp, clientSeed, serverSeed),
	}
}

func (s *Stream) next() uint64 {
	hash := blake2b.Sum256([]byte(fmt.Sprintf("%d", s.counter) + s.postfix))
	s.counter++

	return uint64(hash[0])<<56 | uint64(hash[1])<<48 | uint64(hash[2])<<40 | uint64(hash[3])<<32 |
		uint64(hash[4])<<24 | uint64(hash[5])<<16 | uint64(hash[6])<<8 | uint64(hash[7])
}

func (s *Stream) IntRange(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("rng: inverted range [%d, %d]", lo, hi))
	}
	span := uint64(hi-lo) + 1

	return lo + int(s.next()%span)
}

func (s *Stream) Float64() float64 {
	// top 53 bits give a uniform float in [0, 1)
	return float64(s.next()>>11) / (1 << 53)
}
