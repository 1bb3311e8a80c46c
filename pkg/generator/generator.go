// Package generator produces displayed sequences for new stages.
package generator

import (
	"math/rand/v2"
	"sync"

	"github.com/aretw0/samuel/pkg/domain"
)

// Random draws sequences of length 3 or 4 with uniformly chosen colours and
// symbols. Safe for concurrent use.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Random generator.
type Option func(*Random)

// WithSeed makes the generator reproducible.
func WithSeed(seed uint64) Option {
	return func(r *Random) {
		r.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// NewRandom creates a generator seeded from the runtime's entropy source
// unless WithSeed is given.
func NewRandom(opts ...Option) *Random {
	r := &Random{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Generate returns a new displayed sequence.
func (r *Random) Generate() domain.Sequence {
	r.mu.Lock()
	defer r.mu.Unlock()

	length := domain.MinSequenceLength + r.rng.IntN(domain.MaxSequenceLength-domain.MinSequenceLength+1)
	seq := make(domain.Sequence, length)
	for i := range seq {
		seq[i] = domain.ColouredSymbol{
			Colour: domain.Colours[r.rng.IntN(domain.ColourCount)],
			Symbol: domain.Symbol(r.rng.IntN(2)),
		}
	}
	return seq
}

// Fixed replays a list of sequences in order, wrapping around at the end.
type Fixed struct {
	mu   sync.Mutex
	seqs []domain.Sequence
	next int
}

// NewFixed creates a generator that returns seqs in turn.
func NewFixed(seqs ...domain.Sequence) *Fixed {
	return &Fixed{seqs: seqs}
}

// Generate returns a copy of the next sequence.
func (f *Fixed) Generate() domain.Sequence {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.seqs) == 0 {
		return nil
	}
	seq := f.seqs[f.next%len(f.seqs)].Clone()
	f.next++
	return seq
}
