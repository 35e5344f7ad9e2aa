package npMat

import (
	"math"

	"unitroot/infra/errorx"
	"unitroot/infra/errorx/errCode"
)

// Inverse 求方阵逆
// 1~3 阶走伴随矩阵公式: 系数矩阵为整数时结果精确到舍入,
// 零残差回归才能得到严格为 0 的 RSS (进而 t 统计量为 ±Inf/NaN 而非大有限值)
// 4 阶以上走列主元 Gauss-Jordan
// 奇异矩阵返回 FAILED_TO_INVERT_MATRIX
func Inverse[F Float](a *Dense[F]) (*Dense[F], error) {
	n, c := a.Dims()
	if n != c {
		return nil, errorx.Newf(errCode.INVALID_VALUE, "matrix is %dx%d, not square", n, c)
	}

	switch n {
	case 1:
		v := a.At(0, 0)
		if v == 0 {
			return nil, errorx.New(errCode.FAILED_TO_INVERT_MATRIX, "1x1 matrix is singular")
		}
		return NewDense[F](1, 1, []F{1 / v}), nil
	case 2:
		return inverse2(a)
	case 3:
		return inverse3(a)
	default:
		return inverseGaussJordan(a)
	}
}

func inverse2[F Float](a *Dense[F]) (*Dense[F], error) {
	det := a.At(0, 0)*a.At(1, 1) - a.At(0, 1)*a.At(1, 0)
	if det == 0 {
		return nil, errorx.New(errCode.FAILED_TO_INVERT_MATRIX, "2x2 determinant is zero")
	}
	return NewDense[F](2, 2, []F{
		a.At(1, 1) / det, -a.At(0, 1) / det,
		-a.At(1, 0) / det, a.At(0, 0) / det,
	}), nil
}

func inverse3[F Float](a *Dense[F]) (*Dense[F], error) {
	a00, a01, a02 := a.At(0, 0), a.At(0, 1), a.At(0, 2)
	a10, a11, a12 := a.At(1, 0), a.At(1, 1), a.At(1, 2)
	a20, a21, a22 := a.At(2, 0), a.At(2, 1), a.At(2, 2)

	// 代数余子式
	c00 := a11*a22 - a12*a21
	c01 := a12*a20 - a10*a22
	c02 := a10*a21 - a11*a20

	det := a00*c00 + a01*c01 + a02*c02
	if det == 0 {
		return nil, errorx.New(errCode.FAILED_TO_INVERT_MATRIX, "3x3 determinant is zero")
	}

	return NewDense[F](3, 3, []F{
		c00 / det, (a02*a21 - a01*a22) / det, (a01*a12 - a02*a11) / det,
		c01 / det, (a00*a22 - a02*a20) / det, (a02*a10 - a00*a12) / det,
		c02 / det, (a01*a20 - a00*a21) / det, (a00*a11 - a01*a10) / det,
	}), nil
}

// 列主元 Gauss-Jordan 消元, 增广 [A|I]
func inverseGaussJordan[F Float](a *Dense[F]) (*Dense[F], error) {
	n, _ := a.Dims()

	aug := make([][]F, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]F, 2*n)
		for j := 0; j < n; j++ {
			aug[i][j] = a.At(i, j)
		}
		aug[i][n+i] = 1
	}

	for i := 0; i < n; i++ {
		// 选列主元
		maxRow := i
		for k := i + 1; k < n; k++ {
			if math.Abs(float64(aug[k][i])) > math.Abs(float64(aug[maxRow][i])) {
				maxRow = k
			}
		}
		aug[i], aug[maxRow] = aug[maxRow], aug[i]

		pivot := aug[i][i]
		if pivot == 0 {
			return nil, errorx.Newf(errCode.FAILED_TO_INVERT_MATRIX, "zero pivot at column %d", i)
		}

		for j := 0; j < 2*n; j++ {
			aug[i][j] /= pivot
		}

		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			factor := aug[k][i]
			if factor == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug[k][j] -= factor * aug[i][j]
			}
		}
	}

	out := NewDense[F](n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, aug[i][n+j])
		}
	}
	return out, nil
}

// FromInt 把整数下标安全转换为工作精度浮点
func FromInt[F Float](v int) (F, error) {
	f := F(v)
	if math.IsInf(float64(f), 0) {
		return 0, errorx.Newf(errCode.CONVERSION_FAILED, "cannot represent %d in working precision", v)
	}
	return f, nil
}
