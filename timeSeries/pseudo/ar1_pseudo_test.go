package pseudo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// 同 seed 必须逐位一致
func TestGenAR1Deterministic(t *testing.T) {
	a := GenAR1(rand.New(rand.NewSource(42)), 200, 0.0, 0.5, 1.0)
	b := GenAR1(rand.New(rand.NewSource(42)), 200, 0.0, 0.5, 1.0)
	require.Equal(t, a, b)

	c := GenAR1(rand.New(rand.NewSource(43)), 200, 0.0, 0.5, 1.0)
	require.NotEqual(t, a, c)
}

// 平稳 AR(1): E[y] = mu/(1-delta), Var[y] = sigma²/(1-delta²)
func TestGenAR1StationaryMoments(t *testing.T) {
	mu := 2.0
	delta := 0.5
	sigma := 1.0

	rng := rand.New(rand.NewSource(42))
	y := GenAR1(rng, 50000, mu, delta, sigma)

	wantMean := mu / (1 - delta)         // 4.0
	wantVar := sigma * sigma / (1 - delta*delta) // 4/3

	assert.InDelta(t, wantMean, stat.Mean(y, nil), 0.1)
	assert.InDelta(t, wantVar, stat.Variance(y, nil), 0.1)
}

func TestGenAR1Empty(t *testing.T) {
	y := GenAR1(rand.New(rand.NewSource(1)), 0, 0.0, 0.5, 1.0)
	require.Empty(t, y)
}

func TestGenAffineData(t *testing.T) {
	x, y := GenAffineData(100, 3.0, 7.0)

	r, c := x.Dims()
	require.Equal(t, 100, r)
	require.Equal(t, 1, c)

	alpha, beta := stat.LinearRegression(x.Col(0), y, nil, false)
	assert.InDelta(t, 3.0, alpha, 1e-9)
	assert.InDelta(t, 7.0, beta, 1e-9)
}

func TestGenAffineDataWithNoise(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	x, y := GenAffineDataWithNoise(rng, 2000, 3.0, 7.0)

	alpha, beta := stat.LinearRegression(x.Col(0), y, nil, false)
	assert.InDelta(t, 3.0, alpha, 0.2)
	assert.InDelta(t, 7.0, beta, 0.01)
}

func TestGenAR1Float32(t *testing.T) {
	y := GenAR1[float32](rand.New(rand.NewSource(5)), 50, 0.0, 0.9, 1.0)
	require.Len(t, y, 50)
}
