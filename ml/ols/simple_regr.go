package ols

import "math"

// 一元线性回归模型参数
type LinearRegressionModel struct {
	Slope     float64
	Intercept float64
}

// SimpleRegression 返回闭式解的 ols 斜率项和截距项
// 含 NaN 的样本对会被剔除
func SimpleRegression(x, y []float64) LinearRegressionModel {
	maskX, maskY, ok := paramsValidate(x, y)
	if !ok {
		return LinearRegressionModel{Slope: math.NaN(), Intercept: math.NaN()}
	}

	n := float64(len(maskX))
	meanX := mean(maskX)
	meanY := mean(maskY)

	m := (dot(maskX, maskY) - n*meanX*meanY) / (dot(maskX, maskX) - n*meanX*meanX)
	b := meanY - m*meanX
	return LinearRegressionModel{Slope: m, Intercept: b}
}

func paramsValidate(x, y []float64) ([]float64, []float64, bool) {
	if len(x) != len(y) || len(x) == 0 {
		return nil, nil, false
	}
	maskX := make([]float64, 0, len(x))
	maskY := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		maskX = append(maskX, x[i])
		maskY = append(maskY, y[i])
	}
	if len(maskX) < 2 {
		return nil, nil, false
	}
	return maskX, maskY, true
}

func mean(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}
	return s / float64(len(x))
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
