package adfuller

import "unitroot/numpy/npMat"

// DickeyFullerTest DF检验, 即滞后阶数为 0 的 ADF
// 对任意序列与趋势类型, 统计量与样本量均与 AdfTest(y, 0, regr) 一致
func DickeyFullerTest[F npMat.Float](y []F, regr RegressionSpec) (Report[F], error) {
	return AdfTest(y, 0, regr)
}
