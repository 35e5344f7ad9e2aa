package adfuller

// 趋势类型: 回归中包含哪些确定性项
type RegressionSpec int

const (
	REGR_NO_CONST_NO_TREND RegressionSpec = iota // "n"  Δy_t = β₁*y_{t-1} + ε_t
	REGR_CONST                                   // "c"  Δy_t = β₀ + β₁*y_{t-1} + ε_t
	REGR_CONST_TREND                             // "ct" Δy_t = β₀ + β₁*y_{t-1} + β₂*t + ε_t
	REGR_ERROR
)

func (s RegressionSpec) String() string {
	switch s {
	case REGR_NO_CONST_NO_TREND:
		return "n"
	case REGR_CONST:
		return "c"
	case REGR_CONST_TREND:
		return "ct"
	default:
		return "ERROR"
	}
}

func GetMyRegressionSpec(s string) RegressionSpec {
	switch s {
	case "n":
		return REGR_NO_CONST_NO_TREND
	case "c":
		return REGR_CONST
	case "ct":
		return REGR_CONST_TREND
	default:
		return REGR_ERROR
	}
}

// 显著性水平
type AlphaLevel int

const (
	ALPHA_1_PCT AlphaLevel = iota // "1%"
	ALPHA_2_5_PCT                 // "2.5%"
	ALPHA_5_PCT                   // "5%"
	ALPHA_10_PCT                  // "10%"
	ALPHA_ERROR
)

func (a AlphaLevel) String() string {
	switch a {
	case ALPHA_1_PCT:
		return "1%"
	case ALPHA_2_5_PCT:
		return "2.5%"
	case ALPHA_5_PCT:
		return "5%"
	case ALPHA_10_PCT:
		return "10%"
	default:
		return "ERROR"
	}
}

func GetMyAlphaLevel(s string) AlphaLevel {
	switch s {
	case "1%":
		return ALPHA_1_PCT
	case "2.5%":
		return ALPHA_2_5_PCT
	case "5%":
		return ALPHA_5_PCT
	case "10%":
		return ALPHA_10_PCT
	default:
		return ALPHA_ERROR
	}
}
