/*
 * vqc.go, part of qiskit-tutorials.
 *
 *
 * Copyright 2026 Raghav King <kingsraghav{at}gmailDOTcom>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package algo

import (
	"fmt"
	"math"
	"sort"
	"strings"

	quant "github.com/kingsraghav/qiskit-tutorials"
	"github.com/kingsraghav/qiskit-tutorials/optimizer"
	"github.com/kingsraghav/qiskit-tutorials/parallel"
)

// crossEntropyEps keeps log() away from exact zeros in the loss.
const crossEntropyEps = 1e-12

// RunWithData executes a classification configuration against class-keyed
// training and test sets, as produced by dataset.Prepare, and returns the
// result record with train and test accuracy filled in.
func RunWithData(cfg Config, train, test map[string][][]float64) (*Result, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errDecorate(err, "RunWithData")
	}
	if cfg.Problem.Name != "classification" {
		return nil, Error{fmt.Sprintf("problem %q takes no example data, call Run", cfg.Problem.Name), cfg.Problem.Name, []string{"RunWithData"}, true}
	}
	cls, err := newClassifier(cfg, train, test)
	if err != nil {
		return nil, errDecorate(err, "RunWithData")
	}
	return cls.run()
}

// classifier carries the trained-state of one variational classification
// run. Classes are handled in sorted label order so runs are reproducible
// regardless of map iteration.
type classifier struct {
	cfg     Config
	labels  []string
	train   map[string][][]float64
	test    map[string][][]float64
	dim     int
	fm      featureMap
	ansatz  *quant.Circuit
	nclass  int
	workers int
}

func newClassifier(cfg Config, train, test map[string][][]float64) (*classifier, error) {
	if len(train) == 0 {
		return nil, Error{"empty training set", cfg.Problem.Name, []string{"newClassifier"}, true}
	}
	labels := make([]string, 0, len(train))
	for l := range train {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	dim := -1
	for _, l := range labels {
		if _, ok := test[l]; !ok {
			return nil, Error{fmt.Sprintf("class %q present in training but not in test data", l), cfg.Problem.Name, []string{"newClassifier"}, true}
		}
		for _, set := range []map[string][][]float64{train, test} {
			for _, v := range set[l] {
				if dim < 0 {
					dim = len(v)
				}
				if len(v) != dim || dim == 0 {
					return nil, Error{fmt.Sprintf("class %q: feature vectors must share a nonzero length, got %d and %d", l, dim, len(v)), cfg.Problem.Name, []string{"newClassifier"}, true}
				}
			}
		}
	}
	fm, err := newFeatureMap(cfg.FeatureMap.Name, dim, cfg.FeatureMap.Depth)
	if err != nil {
		return nil, err
	}
	nq := fm.NQubits()
	if 1<<nq < len(labels) {
		return nil, Error{fmt.Sprintf("%d qubits cannot separate %d classes", nq, len(labels)), cfg.Problem.Name, []string{"newClassifier"}, true}
	}
	ansatz, err := newVarForm(cfg.VariationalForm.Name, nq, cfg.VariationalForm.Depth)
	if err != nil {
		return nil, err
	}
	workers := cfg.Backend.Workers
	if workers < 1 {
		workers = 1
	}
	return &classifier{cfg: cfg, labels: labels, train: train, test: test, dim: dim,
		fm: fm, ansatz: ansatz, nclass: len(labels), workers: workers}, nil
}

// classProbs encodes one feature vector, runs the bound ansatz and folds
// the computational-basis probabilities onto the classes by index modulo
// the class count.
func (c *classifier) classProbs(x, theta []float64) ([]float64, error) {
	S, err := c.fm.Encode(x)
	if err != nil {
		return nil, err
	}
	if err := c.ansatz.Run(S, theta); err != nil {
		return nil, err
	}
	probs := S.Probabilities()
	out := make([]float64, c.nclass)
	for i, p := range probs {
		out[i%c.nclass] += p
	}
	return out, nil
}

type sample struct {
	x     []float64
	class int
}

func flatten(set map[string][][]float64, labels []string) []sample {
	var out []sample
	for ci, l := range labels {
		for _, v := range set[l] {
			out = append(out, sample{v, ci})
		}
	}
	return out
}

// loss is the mean cross-entropy over the given samples, evaluated with
// the backend's worker limit.
func (c *classifier) loss(samples []sample, theta []float64) (float64, error) {
	partial := make([]float64, len(samples))
	err := parallel.ForEach(len(samples), c.workers, func(i int) error {
		p, err := c.classProbs(samples[i].x, theta)
		if err != nil {
			return err
		}
		partial[i] = -math.Log(p[samples[i].class] + crossEntropyEps)
		return nil
	})
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, v := range partial {
		total += v
	}
	return total / float64(len(samples)), nil
}

// accuracy is the fraction of samples whose argmax class probability
// matches their label.
func (c *classifier) accuracy(samples []sample, theta []float64) (float64, error) {
	hits := make([]float64, len(samples))
	err := parallel.ForEach(len(samples), c.workers, func(i int) error {
		p, err := c.classProbs(samples[i].x, theta)
		if err != nil {
			return err
		}
		best := 0
		for ci := 1; ci < c.nclass; ci++ {
			if p[ci] > p[best] {
				best = ci
			}
		}
		if best == samples[i].class {
			hits[i] = 1
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, v := range hits {
		total += v
	}
	return total / float64(len(samples)), nil
}

func (c *classifier) run() (*Result, error) {
	trainSamples := flatten(c.train, c.labels)
	testSamples := flatten(c.test, c.labels)
	if len(testSamples) == 0 {
		return nil, Error{"empty test set", c.cfg.Problem.Name, []string{"run"}, true}
	}
	objective := func(theta []float64) (float64, error) {
		return c.loss(trainSamples, theta)
	}
	method, err := optimizer.New(c.cfg.Optimizer.Name, c.cfg.Algorithm.MaxIter, c.cfg.Problem.RandomSeed)
	if err != nil {
		return nil, err
	}
	out, err := method.Minimize(objective, make([]float64, c.ansatz.NParams()))
	if err != nil {
		return nil, err
	}
	trainAcc, err := c.accuracy(trainSamples, out.X)
	if err != nil {
		return nil, err
	}
	testAcc, err := c.accuracy(testSamples, out.X)
	if err != nil {
		return nil, err
	}
	R := &Result{
		Problem:       c.cfg.Problem.Name,
		Algorithm:     c.cfg.Algorithm.Name,
		Loss:          out.F,
		TrainAccuracy: trainAcc,
		TestAccuracy:  testAcc,
		Iterations:    out.Iterations,
		History:       out.History,
	}
	R.Report = c.report(R)
	return R, nil
}

func (c *classifier) report(R *Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== CLASSIFICATION ===\n")
	fmt.Fprintf(&b, "Classes: %s, %d features, feature map: %s, variational form: %s\n",
		strings.Join(c.labels, " "), c.dim, c.cfg.FeatureMap.Name, c.cfg.VariationalForm.Name)
	fmt.Fprintf(&b, "Optimizer %s stopped after %d iterations, final loss %.6f\n",
		c.cfg.Optimizer.Name, R.Iterations, R.Loss)
	fmt.Fprintf(&b, "> Training accuracy: %.3f\n", R.TrainAccuracy)
	fmt.Fprintf(&b, "> Testing accuracy: %.3f\n", R.TestAccuracy)
	return b.String()
}
