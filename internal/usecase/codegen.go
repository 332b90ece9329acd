package usecase

import (
	"crypto/rand"
	"fmt"
	"io"

	"daycare-backend/internal/domain/model"
)

// CodeGenerator produces short human-typable access codes drawn from
// model.CodeAlphabet. The randomness source is injected so tests can supply
// a deterministic reader; it defaults to crypto/rand. The generator makes no
// uniqueness guarantee, the store's unique constraint is the authority.
type CodeGenerator struct {
	rand io.Reader
}

func NewCodeGenerator(r io.Reader) *CodeGenerator {
	if r == nil {
		r = rand.Reader
	}
	return &CodeGenerator{rand: r}
}

// Generate returns a fresh code of model.CodeLength characters drawn
// uniformly from the alphabet. 36 does not divide 256, so bytes past the
// largest full multiple are rejected and redrawn instead of wrapped, which
// would skew the low symbols.
func (g *CodeGenerator) Generate() (string, error) {
	const limit = 256 - 256%len(model.CodeAlphabet)

	out := make([]byte, 0, model.CodeLength)
	buf := make([]byte, model.CodeLength)
	for len(out) < model.CodeLength {
		if _, err := io.ReadFull(g.rand, buf); err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, model.CodeAlphabet[int(b)%len(model.CodeAlphabet)])
			if len(out) == model.CodeLength {
				break
			}
		}
	}
	return string(out), nil
}
