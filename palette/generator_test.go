package palette

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence returns a sampler that replays colors and then fails the test.
func sequence(t *testing.T, colors ...Color) Sampler {
	t.Helper()
	i := 0
	return func() Color {
		if i >= len(colors) {
			t.Fatalf("sampler exhausted after %d draws", i)
		}
		c := colors[i]
		i++
		return c
	}
}

func assertBand(t *testing.T, p Palette, minDiff, maxDiff float64) {
	t.Helper()
	for i := range p {
		for j := range p {
			if i == j {
				continue
			}
			d := Distance(p[i], p[j])
			assert.GreaterOrEqual(t, d, minDiff, "colors %d and %d too close", i, j)
			assert.LessOrEqual(t, d, maxDiff, "colors %d and %d too far apart", i, j)
		}
	}
}

func TestGenerate_Cardinality(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 24} {
		p, err := Generate(n)
		require.NoError(t, err)
		assert.Len(t, p, n)
	}

	p, err := Generate(100, WithMinDiff(0.01))
	require.NoError(t, err)
	assert.Len(t, p, 100)
}

func TestGenerate_DefaultBand(t *testing.T) {
	p, err := Generate(10)
	require.NoError(t, err)
	assertBand(t, p, DefaultMinDiff, DefaultMaxDiff)

	for i, c := range p {
		others := append(append(Palette{}, p[:i]...), p[i+1:]...)
		assert.True(t, IsDistinguishable(c, others, DefaultMinDiff, DefaultMaxDiff))
	}
}

func TestGenerate_LowerBound(t *testing.T) {
	p, err := Generate(10, WithMinDiff(0.5))
	require.NoError(t, err)
	assertBand(t, p, 0.5, DefaultMaxDiff)
	assert.True(t, p.Valid(0.5, DefaultMaxDiff))
}

func TestGenerate_UpperBound(t *testing.T) {
	p, err := Generate(10, WithMaxDiff(1.5))
	require.NoError(t, err)
	assertBand(t, p, DefaultMinDiff, 1.5)
}

func TestGenerate_Samplers(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, name := range SamplerNames {
		t.Run(name, func(t *testing.T) {
			s, err := SamplerByName(name, r)
			require.NoError(t, err)
			p, err := Generate(6, WithSampler(s), WithMinDiff(0.15))
			require.NoError(t, err)
			assert.Len(t, p, 6)
			assertBand(t, p, 0.15, DefaultMaxDiff)
		})
	}
}

func TestGenerate_SeedsReturnedUnchanged(t *testing.T) {
	seeds := []Color{RGB(1, 0, 0), RGB(0.95, 0, 0), RGB(0, 0, 1)}
	p, err := Generate(3, WithSeeds(seeds...), WithSampler(sequence(t)))
	require.NoError(t, err)
	assert.Equal(t, Palette(seeds), p)

	// more seeds than requested: returned as-is
	p, err = Generate(2, WithSeeds(seeds...), WithSampler(sequence(t)))
	require.NoError(t, err)
	assert.Equal(t, Palette(seeds), p)
}

func TestGenerate_SeedsAreCopied(t *testing.T) {
	seeds := []Color{RGB(1, 0, 0)}
	p, err := Generate(2, WithSeeds(seeds...))
	require.NoError(t, err)
	require.Len(t, p, 2)
	assert.Equal(t, RGB(1, 0, 0), p[0])

	p[0] = RGB(0, 0, 0)
	assert.Equal(t, RGB(1, 0, 0), seeds[0])

	// a second call does not see the first call's colors
	p2, err := Generate(1)
	require.NoError(t, err)
	assert.Len(t, p2, 1)
}

func TestGenerate_ObserverEvents(t *testing.T) {
	var accepted []int
	var rejected []Color
	var distances []float64
	obs := ObserverFuncs{
		OnAccept: func(c Color, size int) { accepted = append(accepted, size) },
		OnReject: func(c Color, against Color, d float64) {
			rejected = append(rejected, against)
			distances = append(distances, d)
		},
	}

	s := sequence(t, RGB(0.9, 0, 0), RGB(0, 1, 0))
	p, err := Generate(2, WithSeeds(RGB(1, 0, 0)), WithSampler(s), WithObserver(obs))
	require.NoError(t, err)

	assert.Equal(t, Palette{RGB(1, 0, 0), RGB(0, 1, 0)}, p)
	assert.Equal(t, []int{2}, accepted)
	require.Len(t, rejected, 1)
	assert.Equal(t, RGB(1, 0, 0), rejected[0])
	assert.InDelta(t, 0.1, distances[0], 1e-9)
}

func TestGenerate_ObserverAcceptCount(t *testing.T) {
	count := 0
	obs := ObserverFuncs{OnAccept: func(Color, int) { count++ }}
	_, err := Generate(8, WithSeeds(RGB(0, 0, 0), RGB(1, 1, 1)), WithObserver(obs))
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestGenerate_Infeasible(t *testing.T) {
	_, err := Generate(10, WithMinDiff(1.7), WithMaxAttempts(1000))
	require.Error(t, err)
	assert.True(t, IsInfeasible(err))

	var ie *InfeasibleError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 10, ie.Target)
	assert.Equal(t, 1000, ie.Attempts)
	assert.Less(t, ie.Size, 10)
}

func TestGenerate_TightUpperBoundInfeasible(t *testing.T) {
	// a band no pair of distinct samples can hit
	_, err := Generate(2, WithMinDiff(0.2), WithMaxDiff(0.2), WithMaxAttempts(500))
	assert.True(t, IsInfeasible(err))
}

func TestGenerateContext_Timeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateContext(ctx, 5)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.ErrorIs(t, err, context.Canceled)

	// satisfied by seeds: no sampling, no context check
	p, err := GenerateContext(ctx, 1, WithSeeds(RGB(0, 0, 0)))
	require.NoError(t, err)
	assert.Len(t, p, 1)
}

func TestGenerate_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		n    int
		opts []Option
	}{
		{"negative n", -1, nil},
		{"zero min diff", 5, []Option{WithMinDiff(0)}},
		{"negative min diff", 5, []Option{WithMinDiff(-0.1)}},
		{"min diff above max distance", 5, []Option{WithMinDiff(1.8)}},
		{"max diff below min diff", 5, []Option{WithMinDiff(0.5), WithMaxDiff(0.4)}},
		{"nil sampler", 5, []Option{WithSampler(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.n, tt.opts...)
			require.Error(t, err)
			assert.True(t, IsInvalidArgument(err), "got %v", err)
		})
	}
}

func TestGenerate_MinDiffAtMaxDistance(t *testing.T) {
	p, err := Generate(1, WithMinDiff(MaxDistance))
	require.NoError(t, err)
	assert.Len(t, p, 1)
}

func TestIsDistinguishable(t *testing.T) {
	tests := []struct {
		name      string
		candidate Color
		existing  []Color
		expected  bool
	}{
		{"red vs green, blue", RGB(1, 0, 0), []Color{RGB(0, 1, 0), RGB(0, 0, 1)}, true},
		{"green vs red, blue", RGB(0, 1, 0), []Color{RGB(1, 0, 0), RGB(0, 0, 1)}, true},
		{"blue vs red, green", RGB(0, 0, 1), []Color{RGB(1, 0, 0), RGB(0, 1, 0)}, true},
		{"red near dark red", RGB(1, 0, 0), []Color{RGB(0.9, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)}, false},
		{"green near dark green", RGB(0, 1, 0), []Color{RGB(1, 0, 0), RGB(0, 0.9, 0), RGB(0, 0, 1)}, false},
		{"blue near dark blue", RGB(0, 0, 1), []Color{RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 0.9)}, false},
		{"empty palette", RGB(0.5, 0.5, 0.5), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDistinguishable(tt.candidate, tt.existing, DefaultMinDiff, DefaultMaxDiff)
			assert.Equal(t, tt.expected, got)
		})
	}

	assert.False(t, IsDistinguishable(RGB(1, 0, 0), []Color{RGB(0, 1, 0)}, 0.2, 1.0))
}
