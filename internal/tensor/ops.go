package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Add returns d + other element-wise.
func (d *Dense) Add(other *Dense) *Dense {
	d.checkSameShape("add", other)
	out := Zeros(d.rows, d.cols)
	floats.AddTo(out.data, d.data, other.data)
	return out
}

// Sub returns d - other element-wise.
func (d *Dense) Sub(other *Dense) *Dense {
	d.checkSameShape("sub", other)
	out := Zeros(d.rows, d.cols)
	floats.SubTo(out.data, d.data, other.data)
	return out
}

// MulElem returns the element-wise (Hadamard) product d ⊙ other.
func (d *Dense) MulElem(other *Dense) *Dense {
	d.checkSameShape("mulelem", other)
	out := Zeros(d.rows, d.cols)
	floats.MulTo(out.data, d.data, other.data)
	return out
}

// Scale returns d with every element multiplied by s.
func (d *Dense) Scale(s float64) *Dense {
	out := d.Clone()
	floats.Scale(s, out.data)
	return out
}

// AddRowVector adds the 1×cols row vector to every row of d.
// This is the only broadcast the package supports; any other shape
// combination panics.
func (d *Dense) AddRowVector(row *Dense) *Dense {
	if row.rows != 1 || row.cols != d.cols {
		panic(fmt.Sprintf("addrowvector: row vector shape %s incompatible with %s (want [1 %d])",
			row.Shape(), d.Shape(), d.cols))
	}
	out := d.Clone()
	for i := 0; i < out.rows; i++ {
		floats.Add(out.data[i*out.cols:(i+1)*out.cols], row.data)
	}
	return out
}

// MatMul performs matrix multiplication: (m×k) · (k×n) → (m×n).
// The multiply itself is delegated to gonum, which wraps the backing
// slices without copying.
func (d *Dense) MatMul(other *Dense) *Dense {
	if d.cols != other.rows {
		panic(fmt.Sprintf("matmul: shape mismatch %s @ %s", d.Shape(), other.Shape()))
	}
	out := Zeros(d.rows, other.cols)
	a := mat.NewDense(d.rows, d.cols, d.data)
	b := mat.NewDense(other.rows, other.cols, other.data)
	c := mat.NewDense(out.rows, out.cols, out.data)
	c.Mul(a, b)
	return out
}

// T returns the transpose as a new tensor.
func (d *Dense) T() *Dense {
	out := Zeros(d.cols, d.rows)
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			out.data[j*out.cols+i] = d.data[i*d.cols+j]
		}
	}
	return out
}

// ColSums returns a 1×cols row vector holding the sum of each column.
func (d *Dense) ColSums() *Dense {
	out := Zeros(1, d.cols)
	for i := 0; i < d.rows; i++ {
		floats.Add(out.data, d.data[i*d.cols:(i+1)*d.cols])
	}
	return out
}

// Mean returns the mean of all elements.
func (d *Dense) Mean() float64 {
	return floats.Sum(d.data) / float64(len(d.data))
}

// Sigmoid returns 1/(1+e^-x) applied element-wise.
func (d *Dense) Sigmoid() *Dense {
	return d.Apply(func(x float64) float64 {
		return 1.0 / (1.0 + math.Exp(-x))
	})
}

// Softmax returns the row-wise softmax. The row maximum is subtracted
// before exponentiating so large logits cannot overflow; the result is
// unchanged because softmax is shift-invariant.
func (d *Dense) Softmax() *Dense {
	out := Zeros(d.rows, d.cols)
	for i := 0; i < d.rows; i++ {
		src := d.data[i*d.cols : (i+1)*d.cols]
		dst := out.data[i*out.cols : (i+1)*out.cols]

		maxVal := math.Inf(-1)
		for _, v := range src {
			if v > maxVal {
				maxVal = v
			}
		}

		var sum float64
		for j, v := range src {
			e := math.Exp(v - maxVal)
			dst[j] = e
			sum += e
		}
		for j := range dst {
			dst[j] /= sum
		}
	}
	return out
}

func (d *Dense) checkSameShape(op string, other *Dense) {
	if !d.Shape().Equal(other.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %s vs %s", op, d.Shape(), other.Shape()))
	}
}
