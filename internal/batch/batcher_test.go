package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/simplenet/internal/batch"
	"github.com/born-ml/simplenet/internal/tensor"
)

func dataset(t *testing.T, rows int) (inputs, labels *tensor.Dense) {
	t.Helper()
	inputs = tensor.Zeros(rows, 3)
	labels = tensor.Zeros(rows, 2)
	for i := 0; i < rows; i++ {
		inputs.Set(i, 0, float64(i))
		labels.Set(i, i%2, 1)
	}
	return inputs, labels
}

func TestBatcher_EvenSplit(t *testing.T) {
	inputs, labels := dataset(t, 6)
	b, err := batch.New(inputs, labels, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, b.NumBatches())
	assert.Equal(t, 6, b.NumExamples())

	seen := 0
	for {
		in, lab, ok := b.Next()
		if !ok {
			break
		}
		require.Equal(t, 2, in.Rows())
		require.Equal(t, 3, in.Cols())
		require.Equal(t, 2, lab.Rows())
		require.Equal(t, 2, lab.Cols())
		// Rows arrive in order.
		assert.InDelta(t, float64(seen), in.At(0, 0), 0)
		seen += in.Rows()
	}
	assert.Equal(t, 6, seen)
}

func TestBatcher_ShortFinalBatch(t *testing.T) {
	inputs, labels := dataset(t, 5)
	b, err := batch.New(inputs, labels, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, b.NumBatches())

	sizes := []int{}
	for {
		in, _, ok := b.Next()
		if !ok {
			break
		}
		sizes = append(sizes, in.Rows())
	}
	assert.Equal(t, []int{2, 2, 1}, sizes)
}

func TestBatcher_Reset(t *testing.T) {
	inputs, labels := dataset(t, 4)
	b, err := batch.New(inputs, labels, 4)
	require.NoError(t, err)

	_, _, ok := b.Next()
	require.True(t, ok)
	_, _, ok = b.Next()
	require.False(t, ok)

	b.Reset()
	in, _, ok := b.Next()
	require.True(t, ok)
	assert.Equal(t, 4, in.Rows())
}

func TestBatcher_BatchesAreCopies(t *testing.T) {
	inputs, labels := dataset(t, 2)
	b, err := batch.New(inputs, labels, 2)
	require.NoError(t, err)

	in, _, ok := b.Next()
	require.True(t, ok)
	in.Set(0, 0, 99)
	assert.InDelta(t, 0.0, inputs.At(0, 0), 0, "mutating a batch must not touch the dataset")
}

func TestBatcher_Validation(t *testing.T) {
	inputs, _ := dataset(t, 4)
	_, badLabels := dataset(t, 3)

	_, err := batch.New(inputs, badLabels, 2)
	assert.Error(t, err)

	_, labels := dataset(t, 4)
	_, err = batch.New(inputs, labels, 0)
	assert.Error(t, err)
}
