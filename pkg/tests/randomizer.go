package tests

import (
	"math/rand"
	"time"
)

const (
	hangulFirst = 0xAC00
	hangulCount = 0xD7A3 - 0xAC00 + 1
)

type Randomizer struct {
	Intn func(n int) int
	// HangulName returns n random syllables from the Hangul block.
	HangulName func(n int) string
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Intn: random.Intn,
		HangulName: func(n int) string {
			name := make([]rune, n)
			for i := range name {
				name[i] = rune(hangulFirst + random.Intn(hangulCount))
			}

			return string(name)
		},
	}
}
