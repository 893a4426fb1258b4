package service

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countFrom(s, set string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(set, r) {
			n++
		}
	}
	return n
}

func TestPasswordGenerator_Composition(t *testing.T) {
	g := NewPasswordGenerator(rand.New(rand.NewPCG(42, 7)))

	prev := ""
	for i := 0; i < 1000; i++ {
		p := g.Generate()

		n := utf8.RuneCountInString(p)
		require.GreaterOrEqual(t, n, 8, p)
		require.LessOrEqual(t, n, 16, p)
		for _, set := range []string{UpperChars, LowerChars, DigitChars, SpecialChars} {
			c := countFrom(p, set)
			require.GreaterOrEqual(t, c, 2, p)
			require.LessOrEqual(t, c, 4, p)
		}
		require.NotContains(t, p, " ")
		require.True(t, IsSecureSecret(p), p)
		require.NotEqual(t, prev, p)
		prev = p
	}
}

func TestPasswordGenerator_SeededIsReproducible(t *testing.T) {
	a := NewPasswordGenerator(rand.New(rand.NewPCG(1, 1)))
	b := NewPasswordGenerator(rand.New(rand.NewPCG(1, 1)))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestPasswordGenerator_DefaultSource(t *testing.T) {
	g := NewPasswordGenerator(nil)
	assert.NotEqual(t, g.Generate(), g.Generate())
}
