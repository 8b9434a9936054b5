/*
 * featuremap.go, part of qiskit-tutorials.
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

	quant "github.com/kingsraghav/qiskit-tutorials"
)

// A featureMap turns a classical feature vector into a quantum state.
type featureMap interface {
	NQubits() int
	Encode(x []float64) (*quant.State, error)
}

// newFeatureMap resolves a feature-map name for vectors of the given
// dimensionality.
func newFeatureMap(name string, dim, depth int) (featureMap, error) {
	if dim < 1 {
		return nil, Error{fmt.Sprintf("can't encode %d-dimensional vectors", dim), "", []string{"newFeatureMap"}, true}
	}
	switch name {
	case "raw":
		n := 0
		for (1 << uint(n)) < dim {
			n++
		}
		if n == 0 {
			n = 1
		}
		return &rawEncoding{dim: dim, nqubits: n}, nil
	case "second_order":
		return &secondOrder{dim: dim, depth: depth}, nil
	default:
		return nil, Error{fmt.Sprintf("unknown feature map %q", name), "", []string{"newFeatureMap"}, true}
	}
}

// rawEncoding writes the (normalized) feature vector directly into the
// amplitudes of ceil(log2(dim)) qubits, zero-padding to the next power of
// two.
type rawEncoding struct {
	dim     int
	nqubits int
}

func (r *rawEncoding) NQubits() int { return r.nqubits }

func (r *rawEncoding) Encode(x []float64) (*quant.State, error) {
	if len(x) != r.dim {
		return nil, Error{fmt.Sprintf("vector of length %d, feature map wants %d", len(x), r.dim), "", []string{"rawEncoding.Encode"}, true}
	}
	amps := make([]complex128, 1<<uint(r.nqubits))
	for i, v := range x {
		amps[i] = complex(v, 0)
	}
	S, err := quant.StateFromAmps(amps)
	if err != nil {
		//the zero vector can't be encoded as amplitudes
		return nil, errDecorate(err, "rawEncoding.Encode")
	}
	return S, nil
}

// secondOrder is the kernel-expansion encoding: one qubit per feature,
// depth repetitions of a Hadamard layer, single-feature phases and
// pairwise-product phases between entanglers.
type secondOrder struct {
	dim   int
	depth int
}

func (s *secondOrder) NQubits() int { return s.dim }

func (s *secondOrder) Encode(x []float64) (*quant.State, error) {
	if len(x) != s.dim {
		return nil, Error{fmt.Sprintf("vector of length %d, feature map wants %d", len(x), s.dim), "", []string{"secondOrder.Encode"}, true}
	}
	S, err := quant.NewState(s.dim)
	if err != nil {
		return nil, errDecorate(err, "secondOrder.Encode")
	}
	for rep := 0; rep < s.depth; rep++ {
		for q := 0; q < s.dim; q++ {
			if err := S.H(q); err != nil {
				return nil, errDecorate(err, "secondOrder.Encode")
			}
			if err := S.RZ(q, 2*x[q]); err != nil {
				return nil, errDecorate(err, "secondOrder.Encode")
			}
		}
		for i := 0; i < s.dim; i++ {
			for j := i + 1; j < s.dim; j++ {
				if err := S.CNOT(i, j); err != nil {
					return nil, errDecorate(err, "secondOrder.Encode")
				}
				if err := S.RZ(j, 2*x[i]*x[j]); err != nil {
					return nil, errDecorate(err, "secondOrder.Encode")
				}
				if err := S.CNOT(i, j); err != nil {
					return nil, errDecorate(err, "secondOrder.Encode")
				}
			}
		}
	}
	return S, nil
}
