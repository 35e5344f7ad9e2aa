package adfuller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitroot/infra/errorx"
	"unitroot/infra/errorx/errCode"
)

// 对照 real-statistics 常数趋势表 (n=25/100/500)
func TestCriticalValueConstant25(t *testing.T) {
	cases := []struct {
		alpha AlphaLevel
		want  float64
	}{
		{ALPHA_1_PCT, -3.724},
		{ALPHA_2_5_PCT, -3.318},
		{ALPHA_5_PCT, -2.986},
		{ALPHA_10_PCT, -2.633},
	}
	for _, tc := range cases {
		got, err := GetCriticalValue[float64](REGR_CONST, 25, tc.alpha)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-3, "alpha=%s", tc.alpha)
	}
}

func TestCriticalValueConstant100(t *testing.T) {
	cases := []struct {
		alpha AlphaLevel
		want  float64
	}{
		{ALPHA_1_PCT, -3.498},
		{ALPHA_2_5_PCT, -3.164},
		{ALPHA_5_PCT, -2.891},
		{ALPHA_10_PCT, -2.582},
	}
	for _, tc := range cases {
		got, err := GetCriticalValue[float64](REGR_CONST, 100, tc.alpha)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-3, "alpha=%s", tc.alpha)
	}
}

func TestCriticalValueConstant500(t *testing.T) {
	cases := []struct {
		alpha AlphaLevel
		want  float64
	}{
		{ALPHA_1_PCT, -3.443},
		{ALPHA_2_5_PCT, -3.127},
		{ALPHA_5_PCT, -2.867},
		{ALPHA_10_PCT, -2.570},
	}
	for _, tc := range cases {
		got, err := GetCriticalValue[float64](REGR_CONST, 500, tc.alpha)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-3, "alpha=%s", tc.alpha)
	}
}

func TestCriticalValueFloat32(t *testing.T) {
	got, err := GetCriticalValue[float32](REGR_CONST, 25, ALPHA_1_PCT)
	require.NoError(t, err)
	assert.InDelta(t, -3.724, float64(got), 1e-3)
}

// 临界值随样本量增大单调趋近渐近值, 且显著性越严临界值越低
func TestCriticalValueOrdering(t *testing.T) {
	for _, regr := range []RegressionSpec{REGR_NO_CONST_NO_TREND, REGR_CONST, REGR_CONST_TREND} {
		cv1, err := GetCriticalValue[float64](regr, 100, ALPHA_1_PCT)
		require.NoError(t, err)
		cv25, err := GetCriticalValue[float64](regr, 100, ALPHA_2_5_PCT)
		require.NoError(t, err)
		cv5, err := GetCriticalValue[float64](regr, 100, ALPHA_5_PCT)
		require.NoError(t, err)
		cv10, err := GetCriticalValue[float64](regr, 100, ALPHA_10_PCT)
		require.NoError(t, err)

		assert.Less(t, cv1, cv25, "regr=%s", regr)
		assert.Less(t, cv25, cv5, "regr=%s", regr)
		assert.Less(t, cv5, cv10, "regr=%s", regr)
	}
}

func TestCriticalValueUnknownInputs(t *testing.T) {
	_, err := GetCriticalValue[float64](REGR_ERROR, 100, ALPHA_1_PCT)
	require.Error(t, err)
	require.True(t, errorx.IsCode(err, errCode.INVALID_VALUE))

	_, err = GetCriticalValue[float64](REGR_CONST, 100, ALPHA_ERROR)
	require.Error(t, err)
	require.True(t, errorx.IsCode(err, errCode.INVALID_VALUE))
}
