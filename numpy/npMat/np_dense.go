package npMat

import "math"

// 泛型浮点约束: 同一套数值内核同时支持 float32 / float64
type Float interface {
	~float32 | ~float64
}

// 行主序稠密矩阵
type Dense[F Float] struct {
	rows int
	cols int
	data []F
}

func NewDense[F Float](rows, cols int, data []F) *Dense[F] {
	if rows <= 0 || cols <= 0 {
		panic("npMat: non-positive dimension")
	}
	if data == nil {
		data = make([]F, rows*cols)
	}
	if len(data) != rows*cols {
		panic("npMat: data length mismatch")
	}
	return &Dense[F]{rows: rows, cols: cols, data: data}
}

func (m *Dense[F]) Dims() (rows, cols int) {
	return m.rows, m.cols
}

func (m *Dense[F]) At(i, j int) F {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("npMat: index out of range")
	}
	return m.data[i*m.cols+j]
}

func (m *Dense[F]) Set(i, j int, v F) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("npMat: index out of range")
	}
	m.data[i*m.cols+j] = v
}

func (m *Dense[F]) SetCol(j int, col []F) {
	if len(col) != m.rows {
		panic("npMat: column length mismatch")
	}
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+j] = col[i]
	}
}

func (m *Dense[F]) Col(j int) []F {
	out := make([]F, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

// T 返回转置副本
func (m *Dense[F]) T() *Dense[F] {
	out := NewDense[F](m.cols, m.rows, nil)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// Mul 计算 a*b
func Mul[F Float](a, b *Dense[F]) *Dense[F] {
	if a.cols != b.rows {
		panic("npMat: dimension mismatch")
	}
	out := NewDense[F](a.rows, b.cols, nil)
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			aik := a.data[i*a.cols+k]
			for j := 0; j < b.cols; j++ {
				out.data[i*out.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}
	return out
}

// MulVec 计算 a*v
func MulVec[F Float](a *Dense[F], v []F) []F {
	if a.cols != len(v) {
		panic("npMat: dimension mismatch")
	}
	out := make([]F, a.rows)
	for i := 0; i < a.rows; i++ {
		var s F
		for j := 0; j < a.cols; j++ {
			s += a.data[i*a.cols+j] * v[j]
		}
		out[i] = s
	}
	return out
}

func Dot[F Float](a, b []F) F {
	if len(a) != len(b) {
		panic("npMat: length mismatch")
	}
	var s F
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func Sub[F Float](a, b []F) []F {
	if len(a) != len(b) {
		panic("npMat: length mismatch")
	}
	out := make([]F, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func Sqrt[F Float](v F) F {
	return F(math.Sqrt(float64(v)))
}
