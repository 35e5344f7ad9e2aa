package adfuller

import (
	"unitroot/infra/errorx"
	"unitroot/infra/errorx/errCode"
	"unitroot/numpy/npMat"
)

// Dickey-Fuller 分布近似临界值常数 (t, u, v, w):
// CV(n) = t + u/n + v/n² + w/n³
// 1%/5%/10% 为 MacKinnon (2010) 响应面系数;
// 2.5% 行用渐近临界值 + 1%/5% 行内插的有限样本项
// https://www.real-statistics.com/statistics-tables/augmented-dickey-fuller-table/
var dfCriticalConstants = map[RegressionSpec]map[AlphaLevel][4]float64{
	REGR_NO_CONST_NO_TREND: {
		ALPHA_1_PCT:   {-2.56574, -2.2358, -3.627, 0},
		ALPHA_2_5_PCT: {-2.23, -1.2522, -3.496, 15.6115},
		ALPHA_5_PCT:   {-1.94100, -0.2686, -3.365, 31.223},
		ALPHA_10_PCT:  {-1.61682, 0.2656, -2.714, 25.364},
	},
	REGR_CONST: {
		ALPHA_1_PCT:   {-3.43035, -6.5393, -16.786, -79.433},
		ALPHA_2_5_PCT: {-3.1175, -4.53235, -9.8824, -57.7669},
		ALPHA_5_PCT:   {-2.86154, -2.86154, -4.234, -40.04},
		ALPHA_10_PCT:  {-2.56677, -1.5384, -2.809, 0},
	},
	REGR_CONST_TREND: {
		ALPHA_1_PCT:   {-3.95877, -9.0531, -28.428, -134.155},
		ALPHA_2_5_PCT: {-3.66, -6.72175, -18.732, -89.7645},
		ALPHA_5_PCT:   {-3.41049, -4.3904, -9.036, -45.374},
		ALPHA_10_PCT:  {-3.12705, -2.5856, -3.925, -22.380},
	},
}

// GetCriticalValue 按 (趋势类型, 有效样本量, 显著性水平) 查近似临界值
func GetCriticalValue[F npMat.Float](regr RegressionSpec, size int, alpha AlphaLevel) (F, error) {
	byAlpha, ok := dfCriticalConstants[regr]
	if !ok {
		return 0, errorx.Newf(errCode.INVALID_VALUE, "unknown regression spec %q", regr)
	}
	c, ok := byAlpha[alpha]
	if !ok {
		return 0, errorx.Newf(errCode.INVALID_VALUE, "unknown alpha level %q", alpha)
	}

	n, err := npMat.FromInt[F](size)
	if err != nil {
		return 0, err
	}

	t, u, v, w := F(c[0]), F(c[1]), F(c[2]), F(c[3])
	return t + u/n + v/(n*n) + w/(n*n*n), nil
}
