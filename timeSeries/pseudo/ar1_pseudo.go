package pseudo

import (
	"math/rand"

	"unitroot/numpy/npMat"
)

// GenAR1 生成 AR(1) 序列: y_t = mu + delta*y_{t-1} + sigma*ε_t, ε_t ~ N(0,1)
// delta = 1 即随机游走(单位根过程)
// 同一 seed 的 rng 产出逐位一致的序列
func GenAR1[F npMat.Float](rng *rand.Rand, size int, mu, delta, sigma F) []F {
	y := make([]F, size)
	if size == 0 {
		return y
	}
	y[0] = mu + sigma*F(rng.NormFloat64())
	for i := 1; i < size; i++ {
		y[i] = mu + delta*y[i-1] + sigma*F(rng.NormFloat64())
	}
	return y
}

// GenAffineData 生成 y = beta*x + mu, x = 0..size-1
// 返回 (单列 x 矩阵, y)
func GenAffineData[F npMat.Float](size int, mu, beta F) (*npMat.Dense[F], []F) {
	x := npMat.NewDense[F](size, 1, nil)
	y := make([]F, size)
	for i := 0; i < size; i++ {
		xi := F(i)
		x.Set(i, 0, xi)
		y[i] = beta*xi + mu
	}
	return x, y
}

// GenAffineDataWithNoise 同 GenAffineData, y 上叠加标准正态噪声
func GenAffineDataWithNoise[F npMat.Float](rng *rand.Rand, size int, mu, beta F) (*npMat.Dense[F], []F) {
	x, y := GenAffineData(size, mu, beta)
	for i := range y {
		y[i] += F(rng.NormFloat64())
	}
	return x, y
}
