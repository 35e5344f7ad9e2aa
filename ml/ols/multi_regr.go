package ols

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"unitroot/infra/errorx"
	"unitroot/infra/errorx/errCode"
	"unitroot/numpy/npMat"
)

type MultiLinearModel struct {
	Coeffs      []float64 // 回归系数
	SE          []float64 // 标准误
	TStats      []float64 // t统计量
	PValues     []float64 // p值（双尾）
	Resids      []float64 // 残差
	Sigma2      float64   // 残差方差
	RSquared    float64
	AdjRSquared float64
	AIC         float64
	BIC         float64
}

// Regression 计算 β = (X'X)^(-1) X'y 与各系数的 t 统计量
// 截距列由调用方自行加入 X
// 前置条件: len(y) == X 行数
// n == k 时自由度为 0, σ² 按 IEEE 754 产生 ±Inf/NaN 并原样返回, 不算错误
func Regression[F npMat.Float](y []F, x *npMat.Dense[F]) (coeffs, tStats []F, err error) {
	beta, _, tStats, _, _, err := fit(y, x)
	if err != nil {
		return nil, nil, err
	}
	return beta, tStats, nil
}

func fit[F npMat.Float](y []F, x *npMat.Dense[F]) (beta, se, tStats, resid []F, rss F, err error) {
	n, k := x.Dims()

	// (X'X)^(-1)
	xt := x.T()
	xtx := npMat.Mul(xt, x)
	invXTX, invErr := npMat.Inverse(xtx)
	if invErr != nil {
		return nil, nil, nil, nil, 0,
			errorx.Newf(errCode.FAILED_TO_INVERT_MATRIX, "OLS failed to invert X'X: %v", invErr)
	}

	// β = (X'X)^(-1) * (X'y)
	xty := npMat.MulVec(xt, y)
	beta = npMat.MulVec(invXTX, xty)

	// 预测值 & 残差
	yHat := npMat.MulVec(x, beta)
	resid = npMat.Sub(y, yHat)
	rss = npMat.Dot(resid, resid)

	// σ² = RSS / (n - k)
	sigma2 := rss / F(n-k)

	// SE = sqrt( diag(σ² * (X'X)^(-1)) ), t = β / SE
	se = make([]F, k)
	tStats = make([]F, k)
	for i := 0; i < k; i++ {
		se[i] = npMat.Sqrt(sigma2 * invXTX.At(i, i))
		tStats[i] = beta[i] / se[i]
	}

	return beta, se, tStats, resid, rss, nil
}

// Summarize 在 Regression 基础上补齐诊断量: p值/R²/AIC/BIC
// 要求 n > k, 否则 Student-t 自由度非法
func Summarize(y []float64, x *npMat.Dense[float64]) (MultiLinearModel, error) {
	n, k := x.Dims()

	df := float64(n - k)
	if df <= 0 {
		return MultiLinearModel{}, errorx.Newf(errCode.INVALID_VALUE,
			"degrees of freedom df=%v: need n > k", df)
	}

	beta, se, tStats, resid, rss, err := fit(y, x)
	if err != nil {
		return MultiLinearModel{}, err
	}

	// p值（双尾），使用 Student-t 分布
	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pValues := make([]float64, k)
	for i := 0; i < k; i++ {
		pValues[i] = 2 * tdist.Survival(math.Abs(tStats[i]))
	}

	// R² & 调整后R²
	var yMean float64
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)
	var tss float64
	for _, v := range y {
		d := v - yMean
		tss += d * d
	}
	rSq := 1 - rss/tss
	adjRSq := 1 - (1-rSq)*float64(n-1)/float64(n-k)

	// AIC / BIC
	logLik := -0.5 * float64(n) * (1 + math.Log(2*math.Pi*rss/float64(n)))
	aic := -2*logLik + 2*float64(k)
	bic := -2*logLik + float64(k)*math.Log(float64(n))

	return MultiLinearModel{
		Coeffs:      beta,
		SE:          se,
		TStats:      tStats,
		PValues:     pValues,
		Resids:      resid,
		Sigma2:      rss / df,
		RSquared:    rSq,
		AdjRSquared: adjRSq,
		AIC:         aic,
		BIC:         bic,
	}, nil
}

// AddConstantColumn 在矩阵末尾追加常数列 1
func AddConstantColumn[F npMat.Float](x *npMat.Dense[F]) *npMat.Dense[F] {
	n, k := x.Dims()
	out := npMat.NewDense[F](n, k+1, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			out.Set(i, j, x.At(i, j))
		}
		out.Set(i, k, 1)
	}
	return out
}
