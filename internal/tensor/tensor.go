// Package tensor implements a dense 2-D float64 tensor with explicit shape
// tracking.
//
// All binary operations validate operand shapes up front and panic on a
// mismatch: a wrong shape is a programming error, and catching it at the
// operation boundary beats a silent mis-multiply deep inside training.
// The only sanctioned broadcast is AddRowVector, which adds a 1×cols row
// to every row of a matrix (the bias rule).
//
// Operations never mutate their operands; each returns a freshly allocated
// tensor.
package tensor

import (
	"fmt"

	"github.com/born-ml/simplenet/internal/parallel"
)

// Dense is a row-major dense 2-D tensor.
type Dense struct {
	rows, cols int
	data       []float64
}

// New creates a zero-filled Dense with the given dimensions.
func New(rows, cols int) (*Dense, error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// FromSlice creates a Dense backed by a copy of data, interpreted in
// row-major order. The slice length must equal rows*cols.
func FromSlice(data []float64, rows, cols int) (*Dense, error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("data length %d does not match shape %s (%d elements)",
			len(data), shape, shape.NumElements())
	}
	d := &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, len(data)),
	}
	copy(d.data, data)
	return d, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// Shape returns the tensor's shape.
func (d *Dense) Shape() Shape { return Shape{Rows: d.rows, Cols: d.cols} }

// At returns the element at row i, column j.
func (d *Dense) At(i, j int) float64 {
	d.checkIndex(i, j)
	return d.data[i*d.cols+j]
}

// Set assigns the element at row i, column j.
func (d *Dense) Set(i, j int, v float64) {
	d.checkIndex(i, j)
	d.data[i*d.cols+j] = v
}

// Data returns the backing slice in row-major order.
// WARNING: direct access to underlying memory. Use with caution.
func (d *Dense) Data() []float64 {
	return d.data
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	out := &Dense{
		rows: d.rows,
		cols: d.cols,
		data: make([]float64, len(d.data)),
	}
	copy(out.data, d.data)
	return out
}

// SliceRows returns a copy of rows [from, to).
func (d *Dense) SliceRows(from, to int) *Dense {
	if from < 0 || to > d.rows || from >= to {
		panic(fmt.Sprintf("slicerows: range [%d, %d) out of bounds for %d rows", from, to, d.rows))
	}
	out := &Dense{
		rows: to - from,
		cols: d.cols,
		data: make([]float64, (to-from)*d.cols),
	}
	copy(out.data, d.data[from*d.cols:to*d.cols])
	return out
}

// ArgMaxRow returns the column index of the largest element in row i.
// Ties resolve to the lowest index.
func (d *Dense) ArgMaxRow(i int) int {
	if i < 0 || i >= d.rows {
		panic(fmt.Sprintf("argmaxrow: row %d out of bounds for %d rows", i, d.rows))
	}
	row := d.data[i*d.cols : (i+1)*d.cols]
	best := 0
	for j := 1; j < len(row); j++ {
		if row[j] > row[best] {
			best = j
		}
	}
	return best
}

// EqualApprox reports whether both tensors have the same shape and all
// elements agree within tol.
func (d *Dense) EqualApprox(other *Dense, tol float64) bool {
	if !d.Shape().Equal(other.Shape()) {
		return false
	}
	for i, v := range d.data {
		diff := v - other.data[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > tol {
			return false
		}
	}
	return true
}

// Apply returns a new tensor with f applied to every element.
// Large tensors are processed with the package-level parallel config.
func (d *Dense) Apply(f func(float64) float64) *Dense {
	out := &Dense{
		rows: d.rows,
		cols: d.cols,
		data: make([]float64, len(d.data)),
	}
	parallel.For(len(d.data), func(i int) {
		out.data[i] = f(d.data[i])
	}, parallelCfg)
	return out
}

// parallelCfg is shared by all element-wise operations.
var parallelCfg = parallel.DefaultConfig()

func (d *Dense) checkIndex(i, j int) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(fmt.Sprintf("index (%d, %d) out of bounds for shape %s", i, j, d.Shape()))
	}
}
