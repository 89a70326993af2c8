package train

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/born-ml/simplenet/internal/batch"
	"github.com/born-ml/simplenet/internal/nn"
	"github.com/born-ml/simplenet/internal/optim"
	"github.com/born-ml/simplenet/internal/tensor"
)

// Trainer owns the four parameter tensors of the network and one
// optimizer per tensor, and drives the Forward → LogLoss → Backprop
// sequence over epochs and batches. Steps are strictly sequential: each
// step's gradients come from that step's own forward pass.
type Trainer struct {
	cfg    Config
	logger *log.Logger

	w1, b1, w2, b2 *tensor.Dense
	opts           nn.Optimizers

	step int // Examples processed so far, drives loss logging.
}

// New validates cfg and creates a Trainer with freshly initialized
// parameters. Weight matrices are drawn from the standard normal
// distribution scaled by the inverse square root of their fan-in to keep
// initial activation variance in check; biases are plain standard normal.
// Initialization is deterministic for a fixed cfg.Seed.
func New(cfg Config, logger *log.Logger) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	if cfg.LogEvery == 0 {
		cfg.LogEvery = 10000
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	t := &Trainer{
		cfg:    cfg,
		logger: logger,
		w1:     tensor.Randn(cfg.InputSize, cfg.HiddenSize, rng).Scale(1.0 / math.Sqrt(float64(cfg.InputSize))),
		b1:     tensor.Randn(1, cfg.HiddenSize, rng),
		w2:     tensor.Randn(cfg.HiddenSize, cfg.NumClasses, rng).Scale(1.0 / math.Sqrt(float64(cfg.HiddenSize))),
		b2:     tensor.Randn(1, cfg.NumClasses, rng),
	}

	t.opts = t.buildOptimizers()
	return t, nil
}

// buildOptimizers creates one optimizer instance per parameter tensor.
// Adaptive instances carry per-tensor running statistics and must never
// be shared across tensors.
func (t *Trainer) buildOptimizers() nn.Optimizers {
	switch t.cfg.Optimizer {
	case OptimizerRMSProp:
		cfg := optim.RMSPropConfig{Gamma: t.cfg.Gamma, Alpha: t.cfg.LearningRate, Eps: t.cfg.Eps}
		return nn.Optimizers{
			W2: optim.NewRMSProp(t.w2.Rows(), t.w2.Cols(), cfg),
			B2: optim.NewRMSProp(t.b2.Rows(), t.b2.Cols(), cfg),
			W1: optim.NewRMSProp(t.w1.Rows(), t.w1.Cols(), cfg),
			B1: optim.NewRMSProp(t.b1.Rows(), t.b1.Cols(), cfg),
		}
	default:
		cfg := optim.GradientDescentConfig{LR: t.cfg.LearningRate}
		return nn.Optimizers{
			W2: optim.NewGradientDescent(cfg),
			B2: optim.NewGradientDescent(cfg),
			W1: optim.NewGradientDescent(cfg),
			B1: optim.NewGradientDescent(cfg),
		}
	}
}

// Run trains for the configured number of epochs, evaluating test-set
// accuracy after each epoch. Both batchers are Reset before every pass,
// so they can be reused across epochs.
func (t *Trainer) Run(train, eval *batch.Batcher) {
	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		t.logger.Printf("######### starting epoch %d #########", epoch)
		t.runEpoch(train)

		acc := t.Evaluate(eval)
		t.logger.Printf("epoch %d: accuracy on the test set: %.3f", epoch, acc)
	}
}

// runEpoch performs one full pass over the training batcher.
func (t *Trainer) runEpoch(train *batch.Batcher) {
	train.Reset()
	for {
		in, lab, ok := train.Next()
		if !ok {
			return
		}

		preds, hidden := nn.Forward(in, t.w1, t.b1, t.w2, t.b2)
		loss := nn.LogLoss(lab, preds)
		t.w2, t.b2, t.w1, t.b1 = nn.Backprop(lab, preds, hidden, t.w2, t.w1, t.b2, t.b1, in, t.opts)

		if t.step%t.cfg.LogEvery == 0 {
			t.logger.Printf("iteration %d: batch cross-entropy loss: %.5f", t.step, loss)
		}
		t.step += in.Rows()
	}
}

// Evaluate runs a forward-only pass over the batcher and returns the
// fraction of correctly classified examples.
func (t *Trainer) Evaluate(eval *batch.Batcher) float64 {
	eval.Reset()
	correct := 0.0
	total := 0
	for {
		in, lab, ok := eval.Next()
		if !ok {
			break
		}
		preds, _ := nn.Forward(in, t.w1, t.b1, t.w2, t.b2)
		correct += nn.Accuracy(lab, preds) * float64(in.Rows())
		total += in.Rows()
	}
	if total == 0 {
		return 0
	}
	return correct / float64(total)
}

// Params returns the current parameter tensors (w1, b1, w2, b2).
func (t *Trainer) Params() (w1, b1, w2, b2 *tensor.Dense) {
	return t.w1, t.b1, t.w2, t.b2
}
