package dice

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// cryptoSource implements Source using crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a non-reproducible Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" otherwise.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// seededSource is a reproducible Source. Two sources built from the same seed
// yield the same sequence.
type seededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource returns a deterministic Source for replays and tests.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a pseudo-random int in [0, n).
//
// Precondition: n > 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// SequenceSource replays a fixed list of die faces, cycling when exhausted.
// Faces are 1-based, the way a player would read them off the die.
type SequenceSource struct {
	faces []int
	next  int
}

// NewSequenceSource returns a SequenceSource over faces.
//
// Precondition: len(faces) > 0 and every face >= 1.
func NewSequenceSource(faces ...int) *SequenceSource {
	if len(faces) == 0 {
		panic("dice: NewSequenceSource precondition violated: no faces")
	}
	for _, f := range faces {
		if f < 1 {
			panic("dice: NewSequenceSource precondition violated: faces must be >= 1")
		}
	}
	return &SequenceSource{faces: faces}
}

// Intn returns the next face minus one, clamped into [0, n).
func (s *SequenceSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	v := s.faces[s.next%len(s.faces)] - 1
	s.next++
	if v >= n {
		return n - 1
	}
	return v
}
