package generator_test

import (
	"testing"

	"github.com/aretw0/samuel/pkg/domain"
	"github.com/aretw0/samuel/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_ProducesValidSequences(t *testing.T) {
	gen := generator.NewRandom(generator.WithSeed(42))

	lengths := map[int]int{}
	colours := map[domain.Colour]int{}
	for i := 0; i < 2000; i++ {
		seq := gen.Generate()
		require.NoError(t, seq.Validate())
		lengths[len(seq)]++
		for _, cs := range seq {
			colours[cs.Colour]++
		}
	}

	assert.Len(t, lengths, 2, "both lengths 3 and 4 should occur")
	assert.Len(t, colours, domain.ColourCount)
}

func TestRandom_SeedIsReproducible(t *testing.T) {
	a := generator.NewRandom(generator.WithSeed(7))
	b := generator.NewRandom(generator.WithSeed(7))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestFixed_Wraps(t *testing.T) {
	first := domain.Sequence{
		{Colour: domain.Red, Symbol: domain.Dot},
		{Colour: domain.Red, Symbol: domain.Dot},
		{Colour: domain.Red, Symbol: domain.Dot},
	}
	second := domain.Sequence{
		{Colour: domain.Blue, Symbol: domain.Dash},
		{Colour: domain.Blue, Symbol: domain.Dash},
		{Colour: domain.Blue, Symbol: domain.Dash},
	}
	gen := generator.NewFixed(first, second)

	assert.Equal(t, first, gen.Generate())
	assert.Equal(t, second, gen.Generate())

	again := gen.Generate()
	assert.Equal(t, first, again)

	again[0].Colour = domain.Green
	assert.Equal(t, domain.Red, first[0].Colour, "returned sequences are copies")
}

func TestFixed_Empty(t *testing.T) {
	assert.Nil(t, generator.NewFixed().Generate())
}
