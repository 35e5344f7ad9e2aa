package adfuller

import (
	"unitroot/infra/errorx"
	"unitroot/infra/errorx/errCode"
	"unitroot/numpy/npMat"
)

// 构造 ADF 回归输入
// 返回 (截取后的 Δy, 设计矩阵 X, 有效样本量 n-lag-1)
// X 列序: y[t-1] | Δy 滞后 1..lag | 常数列 | 时间趋势列
// 对齐约定: 输出第 r 行对应原序列时刻 t = r + lag + 1,
// 即每行的响应 Δy_t 恰有 lag 个完整的历史差分可用
func prepare[F npMat.Float](y []F, lag int, regr RegressionSpec) ([]F, *npMat.Dense[F], int, error) {
	n := len(y)
	if n <= lag+1 {
		return nil, nil, 0, errorx.Newf(errCode.NOT_ENOUGH_SAMPLES,
			"series length %d must exceed lag+1=%d", n, lag+1)
	}

	// y[t-1]: 去掉末位; Δy = y[t] - y[t-1]: 各长 n-1
	yt1 := y[:n-1]
	deltaY := make([]F, n-1)
	for i := 1; i < n; i++ {
		deltaY[i-1] = y[i] - y[i-1]
	}

	rows := n - lag - 1

	// 响应: 去掉前 lag 个 Δy
	dy := make([]F, rows)
	copy(dy, deltaY[lag:])

	var nCol int
	switch regr {
	case REGR_NO_CONST_NO_TREND:
		nCol = lag + 1
	case REGR_CONST:
		nCol = lag + 2
	case REGR_CONST_TREND:
		nCol = lag + 3
	default:
		return nil, nil, 0, errorx.Newf(errCode.INVALID_VALUE, "unknown regression spec %q", regr)
	}

	x := npMat.NewDense[F](rows, nCol, nil)

	// 第 0 列: 水平项 y[t-1]
	x.SetCol(0, yt1[lag:])

	// 第 1..lag 列: Δy 的 j 阶滞后, 截到同一批日历行
	for j := 1; j <= lag; j++ {
		x.SetCol(j, deltaY[lag-j:n-1-j])
	}

	switch regr {
	case REGR_NO_CONST_NO_TREND:
		// 无确定性项
	case REGR_CONST:
		for i := 0; i < rows; i++ {
			x.Set(i, lag+1, 1)
		}
	case REGR_CONST_TREND:
		for i := 0; i < rows; i++ {
			x.Set(i, lag+1, 1)
			tv, err := npMat.FromInt[F](i + 1)
			if err != nil {
				return nil, nil, 0, err
			}
			x.Set(i, lag+2, tv)
		}
	}

	return dy, x, rows, nil
}
