package adfuller

import (
	"unitroot/ml/ols"
	"unitroot/numpy/npMat"
)

// 检验报告, 构造后不再修改
type Report[F npMat.Float] struct {
	TestStatistic F   // 水平项 y[t-1] 系数的 t 统计量
	Size          int // 差分与滞后截断后的有效样本量
}

// AdfTest ADF单位根检验
// H0: 存在单位根(非平稳); H1: 平稳
// 滞后阶数由调用方给定, 不做自动选阶
// ±Inf/NaN 的统计量是合法结果, 原样返回
func AdfTest[F npMat.Float](y []F, lag int, regr RegressionSpec) (Report[F], error) {
	dy, x, size, err := prepare(y, lag, regr)
	if err != nil {
		return Report[F]{}, err
	}

	_, tStats, err := ols.Regression(dy, x)
	if err != nil {
		return Report[F]{}, err
	}

	// 水平项恒为设计矩阵第 0 列, 与趋势类型和滞后阶数无关
	return Report[F]{TestStatistic: tStats[0], Size: size}, nil
}
