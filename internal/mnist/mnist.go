package mnist

import (
	"fmt"

	"github.com/born-ml/simplenet/internal/tensor"
)

// NumClasses is the number of digit classes.
const NumClasses = 10

// Load reads n examples from an IDX image/label file pair.
//
// Pixels are normalized from [0, 255] to [0, 1] and returned as an
// n×(rows·cols) tensor; labels are one-hot encoded into an n×10 tensor.
// n == 0 loads the whole file. Requesting more examples than the file
// holds is a configuration error and is rejected, not clamped.
func Load(imagesPath, labelsPath string, n int) (inputs, labels *tensor.Dense, err error) {
	imagesRaw, err := readIDXImages(imagesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load images: %w", err)
	}

	labelsRaw, err := readIDXLabels(labelsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load labels: %w", err)
	}

	if len(imagesRaw) != len(labelsRaw) {
		return nil, nil, fmt.Errorf("image count (%d) != label count (%d)", len(imagesRaw), len(labelsRaw))
	}
	if n < 0 || n > len(imagesRaw) {
		return nil, nil, fmt.Errorf("requested %d examples, dataset holds %d", n, len(imagesRaw))
	}
	if n == 0 {
		n = len(imagesRaw)
	}

	pixels := len(imagesRaw[0])
	inputs, err = tensor.New(n, pixels)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create input tensor: %w", err)
	}
	labels, err = tensor.New(n, NumClasses)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create label tensor: %w", err)
	}

	inputData := inputs.Data()
	for i := 0; i < n; i++ {
		for j, p := range imagesRaw[i] {
			inputData[i*pixels+j] = float64(p) / 255.0
		}

		digit := int(labelsRaw[i])
		if digit < 0 || digit >= NumClasses {
			return nil, nil, fmt.Errorf("label out of range [0, %d) at example %d: %d", NumClasses, i, digit)
		}
		labels.Set(i, digit, 1.0)
	}

	return inputs, labels, nil
}
