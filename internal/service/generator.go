package service

import (
	"math/rand/v2"
	"sync"
)

// Наборы символов генератора. Буквы включают испанские с диакритикой.
const (
	UpperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZÑÉÓÚÍÜ"
	LowerChars   = "abcdefghijklmnopqrstuvwxyzñéóúíü"
	DigitChars   = "0123456789"
	SpecialChars = "?-*!@#$/(){}=.,;:"
)

var charGroups = [][]rune{
	[]rune(UpperChars),
	[]rune(LowerChars),
	[]rune(DigitChars),
	[]rune(SpecialChars),
}

// PasswordGenerator берёт от 2 до 4 символов из каждой группы и перемешивает результат.
// Длина пароля — от 8 до 16 символов.
type PasswordGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewPasswordGenerator создаёт генератор поверх источника rnd.
// Если rnd == nil, используется источник, засеянный из глобального генератора.
func NewPasswordGenerator(rnd *rand.Rand) *PasswordGenerator {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &PasswordGenerator{rnd: rnd}
}

// Generate возвращает новый пароль.
func (g *PasswordGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]rune, 0, 16)
	for _, group := range charGroups {
		n := 2 + g.rnd.IntN(3)
		for range n {
			out = append(out, group[g.rnd.IntN(len(group))])
		}
	}
	g.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return string(out)
}
