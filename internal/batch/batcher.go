// Package batch sequences a dataset into mini-batches for training.
package batch

import (
	"fmt"

	"github.com/born-ml/simplenet/internal/tensor"
)

// Batcher yields consecutive (input, label) mini-batch pairs from a pair
// of dataset tensors. Batches are produced lazily as row-range copies;
// the final batch may hold fewer rows when the dataset size is not a
// multiple of the batch size. Reset restarts the sequence for the next
// epoch.
type Batcher struct {
	inputs *tensor.Dense
	labels *tensor.Dense
	size   int
	pos    int
}

// New creates a Batcher over inputs and labels with the given batch size.
// Inputs and labels must have the same number of rows.
func New(inputs, labels *tensor.Dense, size int) (*Batcher, error) {
	if inputs.Rows() != labels.Rows() {
		return nil, fmt.Errorf("input rows (%d) != label rows (%d)", inputs.Rows(), labels.Rows())
	}
	if size < 1 {
		return nil, fmt.Errorf("batch size must be >= 1, got %d", size)
	}
	return &Batcher{
		inputs: inputs,
		labels: labels,
		size:   size,
	}, nil
}

// Next returns the next (input, label) batch. ok is false once the
// dataset is exhausted; call Reset to start over.
func (b *Batcher) Next() (in, lab *tensor.Dense, ok bool) {
	if b.pos >= b.inputs.Rows() {
		return nil, nil, false
	}
	end := min(b.pos+b.size, b.inputs.Rows())
	in = b.inputs.SliceRows(b.pos, end)
	lab = b.labels.SliceRows(b.pos, end)
	b.pos = end
	return in, lab, true
}

// Reset rewinds the batcher to the start of the dataset.
func (b *Batcher) Reset() {
	b.pos = 0
}

// NumBatches returns how many batches one full pass yields.
func (b *Batcher) NumBatches() int {
	return (b.inputs.Rows() + b.size - 1) / b.size
}

// NumExamples returns the total number of examples in the dataset.
func (b *Batcher) NumExamples() int {
	return b.inputs.Rows()
}
