package adfuller

import "unitroot/numpy/npMat"

// Evaluate 左尾判定: 统计量低于临界值则拒绝 H0, 判定序列平稳
// NaN 统计量与任何临界值比较均为 false, 即无法拒绝 H0
func Evaluate[F npMat.Float](report Report[F], regr RegressionSpec, alpha AlphaLevel) (stationary bool, criticalValue F, err error) {
	cv, err := GetCriticalValue[F](regr, report.Size, alpha)
	if err != nil {
		return false, 0, err
	}
	return report.TestStatistic < cv, cv, nil
}
