package resample

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/resampling/array"
)

// testN matches the dataset size of the reference statistical checks.
const testN = 2000

// statDelta is the absolute tolerance of the statistical checks.
const statDelta = 0.1

func uniformData(n int, seed uint64) []float64 {
	dist := distuv.Uniform{Min: 0, Max: 1, Src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

func normalData(n int, mu, sigma float64, seed uint64) []float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

func uniformArray(t *testing.T) *array.Array {
	t.Helper()
	return array.FromSlice(uniformData(testN, 11))
}

func normalArray(t *testing.T) *array.Array {
	t.Helper()
	return array.FromSlice(normalData(testN, 0, 1, 12))
}

// uniformNormalArray returns an N x 2 array: column 0 uniform on [0, 1),
// column 1 normal with mean 1 and standard deviation 1.
func uniformNormalArray(t *testing.T) *array.Array {
	t.Helper()
	a, err := array.FromColumns(uniformData(testN, 13), normalData(testN, 1, 1, 14))
	require.NoError(t, err)

	return a
}

func square(x float64) float64 { return x * x }

// scriptedSource replays fixed draws, cycling when exhausted.
type scriptedSource struct {
	draws [][]int
	perms [][]int
	nd    int
	np    int
}

func (s *scriptedSource) UniformInts(_, _, _ int) []int {
	d := s.draws[s.nd%len(s.draws)]
	s.nd++

	return append([]int(nil), d...)
}

func (s *scriptedSource) Permutation(_ int) []int {
	p := s.perms[s.np%len(s.perms)]
	s.np++

	return append([]int(nil), p...)
}
