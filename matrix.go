package qnoise

import (
	"math"
	"math/cmplx"
)

/*
Matrix is a dense, row-major, square complex matrix. Operators acting on
n qubits have dimension 2^n.
*/
type Matrix struct {
	dim  int
	data []complex128
}

// NewMatrix returns a zero matrix of the given dimension.
func NewMatrix(dim int) Matrix {
	return Matrix{
		dim:  dim,
		data: make([]complex128, dim*dim),
	}
}

// Identity returns the dim x dim identity.
func Identity(dim int) Matrix {
	m := NewMatrix(dim)
	for i := 0; i < dim; i++ {
		m.data[i*dim+i] = 1
	}
	return m
}

/*
MatrixFromRows builds a matrix from nested rows. Ragged, empty, or
non-square input is rejected.
*/
func MatrixFromRows(rows [][]complex128) (Matrix, error) {
	dim := len(rows)
	if dim == 0 {
		return Matrix{}, configErrorf("matrix has no rows")
	}

	m := NewMatrix(dim)
	for i, row := range rows {
		if len(row) != dim {
			return Matrix{}, configErrorf(
				"matrix is not square: row %d has %d columns, want %d", i, len(row), dim,
			)
		}
		copy(m.data[i*dim:(i+1)*dim], row)
	}
	return m, nil
}

// PauliX is the bit-flip operator.
func PauliX() Matrix {
	m, _ := MatrixFromRows([][]complex128{{0, 1}, {1, 0}})
	return m
}

// PauliY is the combined bit- and phase-flip operator.
func PauliY() Matrix {
	m, _ := MatrixFromRows([][]complex128{{0, -1i}, {1i, 0}})
	return m
}

// PauliZ is the phase-flip operator.
func PauliZ() Matrix {
	m, _ := MatrixFromRows([][]complex128{{1, 0}, {0, -1}})
	return m
}

func (m Matrix) Dim() int {
	return m.dim
}

func (m Matrix) At(i, j int) complex128 {
	return m.data[i*m.dim+j]
}

func (m Matrix) Set(i, j int, v complex128) {
	m.data[i*m.dim+j] = v
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := NewMatrix(m.dim)
	copy(out.data, m.data)
	return out
}

/*
Mul returns m * other. Both operands must have the same dimension.
*/
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.dim != other.dim {
		return Matrix{}, configErrorf("cannot multiply %dx%d by %dx%d", m.dim, m.dim, other.dim, other.dim)
	}

	n := m.dim
	out := NewMatrix(n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			a := m.data[i*n+k]
			if a == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out.data[i*n+j] += a * other.data[k*n+j]
			}
		}
	}
	return out, nil
}

// Adjoint returns the conjugate transpose.
func (m Matrix) Adjoint() Matrix {
	n := m.dim
	out := NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.data[j*n+i] = cmplx.Conj(m.data[i*n+j])
		}
	}
	return out
}

// Equal compares element-wise within an absolute tolerance.
func (m Matrix) Equal(other Matrix, tol float64) bool {
	if m.dim != other.dim {
		return false
	}
	for i := range m.data {
		if cmplx.Abs(m.data[i]-other.data[i]) > tol {
			return false
		}
	}
	return true
}

/*
IsUnitary reports whether M†M is the identity within tol.
*/
func (m Matrix) IsUnitary(tol float64) bool {
	if m.dim == 0 {
		return false
	}
	prod, err := m.Adjoint().Mul(m)
	if err != nil {
		return false
	}
	return prod.Equal(Identity(m.dim), tol)
}

func (m Matrix) isFinite() bool {
	for _, v := range m.data {
		if math.IsNaN(real(v)) || math.IsNaN(imag(v)) || math.IsInf(real(v), 0) || math.IsInf(imag(v), 0) {
			return false
		}
	}
	return true
}

/*
Kron returns the tensor product m ⊗ other.
*/
func (m Matrix) Kron(other Matrix) Matrix {
	n, k := m.dim, other.dim
	out := NewMatrix(n * k)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := m.data[i*n+j]
			for p := 0; p < k; p++ {
				for q := 0; q < k; q++ {
					out.data[(i*k+p)*n*k+j*k+q] = a * other.data[p*k+q]
				}
			}
		}
	}
	return out
}
