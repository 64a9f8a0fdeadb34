package random

import "math/rand/v2"

//go:generate mockgen -destination=../mocks/mock_source.go -package=mocks github.com/NethermindEth/idioms/random Source

// Source picks an integer uniformly from [0, n). *rand.Rand satisfies it, so a
// caller wanting reproducible streams can pass a seeded generator.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the process-wide generator, which is seeded randomly
// at start-up.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

var _ Source = (*rand.Rand)(nil)
