// Command simplenet trains a two-layer feed-forward classifier on MNIST
// and reports test-set accuracy after every epoch.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/born-ml/simplenet/internal/batch"
	"github.com/born-ml/simplenet/internal/mnist"
	"github.com/born-ml/simplenet/internal/train"
)

func main() {
	var (
		trainImages = flag.String("train-images", "data/train-images-idx3-ubyte", "path to the training image IDX file")
		trainLabels = flag.String("train-labels", "data/train-labels-idx1-ubyte", "path to the training label IDX file")
		testImages  = flag.String("test-images", "data/t10k-images-idx3-ubyte", "path to the test image IDX file")
		testLabels  = flag.String("test-labels", "data/t10k-labels-idx1-ubyte", "path to the test label IDX file")

		epochs        = flag.Int("epochs", 5, "number of training epochs")
		batchSize     = flag.Int("batch-size", 10, "examples per training step (must be even)")
		hiddenSize    = flag.Int("hidden-size", 100, "hidden layer width")
		trainExamples = flag.Int("train-examples", 0, "training examples to use (0 = all, max 60000)")
		testExamples  = flag.Int("test-examples", 0, "test examples to use (0 = all, max 10000)")

		learningRate = flag.Float64("learning-rate", 0.001, "optimizer step size")
		optimizer    = flag.String("optimizer", train.OptimizerSGD, `weight-update rule: "sgd" or "rmsprop"`)
		gamma        = flag.Float64("gamma", 0.9, "rmsprop squared-gradient decay")
		seed         = flag.Int64("seed", 1, "seed for weight initialization")
		logEvery     = flag.Int("log-every", 10000, "log batch loss every N examples")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg := train.Config{
		Epochs:        *epochs,
		BatchSize:     *batchSize,
		InputSize:     784,
		HiddenSize:    *hiddenSize,
		NumClasses:    mnist.NumClasses,
		TrainExamples: *trainExamples,
		TestExamples:  *testExamples,
		LearningRate:  *learningRate,
		Optimizer:     *optimizer,
		Gamma:         *gamma,
		Seed:          *seed,
		LogEvery:      *logEvery,
	}

	trainer, err := train.New(cfg, logger)
	if err != nil {
		logger.Fatalf("creating trainer: %v", err)
	}

	trainIn, trainLab, err := mnist.Load(*trainImages, *trainLabels, cfg.TrainExamples)
	if err != nil {
		logger.Fatalf("loading training data: %v", err)
	}
	testIn, testLab, err := mnist.Load(*testImages, *testLabels, cfg.TestExamples)
	if err != nil {
		logger.Fatalf("loading test data: %v", err)
	}

	trainBatcher, err := batch.New(trainIn, trainLab, cfg.BatchSize)
	if err != nil {
		logger.Fatalf("creating training batcher: %v", err)
	}
	evalBatcher, err := batch.New(testIn, testLab, 1)
	if err != nil {
		logger.Fatalf("creating eval batcher: %v", err)
	}

	trainer.Run(trainBatcher, evalBatcher)
}
