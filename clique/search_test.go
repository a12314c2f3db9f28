package clique_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lvkm/concatprimes/clique"
	"github.com/lvkm/concatprimes/pairgraph"
)

func TestSearch_SetSizeTooSmall(t *testing.T) {
	for _, k := range []int{1, 0, -5} {
		res, err := clique.Search(k)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, clique.ErrSetSize)
	}
}

// TestSearch_SetSizeRejectedBeforeWork asserts that invalid input fails
// fast: the search must not examine a single prime.
func TestSearch_SetSizeRejectedBeforeWork(t *testing.T) {
	examined := 0
	_, err := clique.Search(1, clique.WithOnPrime(func(int64, int) { examined++ }))
	assert.ErrorIs(t, err, clique.ErrSetSize)
	assert.Zero(t, examined, "no prime may be examined for invalid k")
}

func TestSearch_OptionViolation(t *testing.T) {
	res, err := clique.Search(2, clique.WithMaxPrimes(-1))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, clique.ErrOptionViolation)
}

func TestSearch_PairIsSeedAndSeven(t *testing.T) {
	res, err := clique.Search(2)
	assert.NoError(t, err)
	assert.Equal(t, []int64{3, 7}, res.Primes)
	assert.Equal(t, int64(10), res.Sum)
}

func TestSearch_TripleSum107(t *testing.T) {
	// 3, 37, 67: 337/373, 367/673 and 3767/6737 are all prime, and no
	// smaller triple completes before 67 is inserted.
	res, err := clique.Search(3)
	assert.NoError(t, err)
	assert.Equal(t, []int64{3, 37, 67}, res.Primes)
	assert.Equal(t, int64(107), res.Sum)
}

func TestSearch_QuadrupleSum792(t *testing.T) {
	res, err := clique.Search(4)
	assert.NoError(t, err)
	assert.Equal(t, []int64{3, 7, 109, 673}, res.Primes)
	assert.Equal(t, int64(792), res.Sum)
}

// TestSearch_QuintupleSum26033 reproduces the canonical minimal 5-set.
// It walks the stream past 8000 and is the slowest test in the module.
func TestSearch_QuintupleSum26033(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 5-set search in short mode")
	}
	res, err := clique.Search(5)
	assert.NoError(t, err)
	assert.Equal(t, int64(26033), res.Sum)

	sorted := append([]int64(nil), res.Primes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	assert.Equal(t, []int64{13, 5197, 5701, 6733, 8389}, sorted)

	// every pair must really be compatible
	for i, p := range res.Primes {
		for _, q := range res.Primes[i+1:] {
			ok, cErr := pairgraph.Compatible(p, q)
			assert.NoError(t, cErr)
			assert.True(t, ok, "members %d and %d not compatible", p, q)
		}
	}
}

// TestSearch_Deterministic re-runs the same search from fresh state and
// expects identical output.
func TestSearch_Deterministic(t *testing.T) {
	first, err := clique.Search(3)
	assert.NoError(t, err)
	second, err := clique.Search(3)
	assert.NoError(t, err)
	assert.Equal(t, first.Primes, second.Primes)
	assert.Equal(t, first.Sum, second.Sum)
}

func TestSearch_BudgetExhausted(t *testing.T) {
	// 67 completes the first triple but is the 16th streamed prime; a
	// budget of 5 must give up first.
	res, err := clique.Search(3, clique.WithMaxPrimes(5))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, clique.ErrNotFound)
}

func TestSearch_BudgetSufficientIsNotTriggered(t *testing.T) {
	// the pair {3,7} completes on the very first streamed prime
	res, err := clique.Search(2, clique.WithMaxPrimes(1))
	assert.NoError(t, err)
	assert.Equal(t, int64(10), res.Sum)
}

func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	res, err := clique.Search(5, clique.WithContext(ctx))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSearch_OnPrimeHook checks that the hook sees every examined prime
// with its vertex index, in stream order.
func TestSearch_OnPrimeHook(t *testing.T) {
	var seen []int64
	var indices []int
	_, err := clique.Search(3,
		clique.WithOnPrime(func(p int64, index int) {
			seen = append(seen, p)
			indices = append(indices, index)
		}),
	)
	assert.NoError(t, err)

	// stream order starts at 7; the seed 3 is not streamed
	assert.Equal(t, int64(7), seen[0])
	assert.Equal(t, int64(67), seen[len(seen)-1], "search must stop at the completing prime")
	// indices follow insertion order, offset by the seed at index 0
	for i, ix := range indices {
		assert.Equal(t, i+1, ix)
	}
}
