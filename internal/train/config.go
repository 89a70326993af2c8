// Package train wires the dataset, batcher, core network and optimizers
// into an epoch-driven training loop.
package train

import "fmt"

// MNIST dataset bounds.
const (
	maxTrainExamples = 60000
	maxTestExamples  = 10000
)

// Optimizer names accepted by Config.
const (
	OptimizerSGD     = "sgd"
	OptimizerRMSProp = "rmsprop"
)

// Config carries every knob of a training run as a flat set of named
// parameters. All configuration is validated once, before any training
// starts; nothing is silently corrected.
type Config struct {
	Epochs     int // Number of full passes over the training set.
	BatchSize  int // Examples per training step; must be even.
	InputSize  int // Input vector width (784 for MNIST).
	HiddenSize int // Hidden layer width.
	NumClasses int // Output classes (10 for MNIST).

	TrainExamples int // Training examples to use, 0 = all (max 60000).
	TestExamples  int // Test examples to use, 0 = all (max 10000).

	LearningRate float64 // Step size; 0 selects the optimizer default.
	Optimizer    string  // "sgd" or "rmsprop".
	Gamma        float64 // RMSProp decay; 0 selects the default (0.9).
	Eps          float64 // RMSProp stability constant; 0 selects 1e-8.

	Seed     int64 // Seed for weight initialization.
	LogEvery int   // Log batch loss every N examples; 0 selects 10000.
}

// Validate rejects configurations the training loop cannot honor.
func (c Config) Validate() error {
	if c.Epochs < 1 {
		return fmt.Errorf("epochs must be >= 1, got %d", c.Epochs)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch size must be >= 1, got %d", c.BatchSize)
	}
	if c.BatchSize%2 != 0 {
		return fmt.Errorf("batch size must be even, got %d", c.BatchSize)
	}
	if c.InputSize < 1 {
		return fmt.Errorf("input size must be >= 1, got %d", c.InputSize)
	}
	if c.HiddenSize < 1 {
		return fmt.Errorf("hidden size must be >= 1, got %d", c.HiddenSize)
	}
	if c.NumClasses < 2 {
		return fmt.Errorf("number of classes must be >= 2, got %d", c.NumClasses)
	}
	if c.TrainExamples < 0 || c.TrainExamples > maxTrainExamples {
		return fmt.Errorf("train examples must be in [0, %d], got %d", maxTrainExamples, c.TrainExamples)
	}
	if c.TestExamples < 0 || c.TestExamples > maxTestExamples {
		return fmt.Errorf("test examples must be in [0, %d], got %d", maxTestExamples, c.TestExamples)
	}
	if c.LearningRate < 0 {
		return fmt.Errorf("learning rate must be >= 0, got %g", c.LearningRate)
	}
	if c.Optimizer != OptimizerSGD && c.Optimizer != OptimizerRMSProp {
		return fmt.Errorf("unknown optimizer %q (want %q or %q)", c.Optimizer, OptimizerSGD, OptimizerRMSProp)
	}
	if c.LogEvery < 0 {
		return fmt.Errorf("log interval must be >= 0, got %d", c.LogEvery)
	}
	return nil
}
