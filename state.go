/*
 * state.go, part of qiskit-tutorials.
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

package quant

import (
	"fmt"
	"math"
	"math/cmplx"
)

// NormTol is the tolerance used when checking that a statevector is
// normalized.
const NormTol = 1e-9

// State is the exact state of an n-qubit register, as kept by the
// statevector backend. Qubit 0 is the least significant bit of the
// basis-state index.
type State struct {
	nqubits int
	amps    []complex128
}

// NewState returns the n-qubit state |0...0>.
func NewState(nqubits int) (*State, error) {
	if nqubits < 1 || nqubits > 24 { //2^24 amplitudes is already 256 MB
		return nil, NewError(fmt.Sprintf("can't build a state of %d qubits", nqubits), "NewState")
	}
	S := new(State)
	S.nqubits = nqubits
	S.amps = make([]complex128, 1<<uint(nqubits))
	S.amps[0] = 1
	return S, nil
}

// BasisState returns the n-qubit computational basis state |index>.
func BasisState(nqubits, index int) (*State, error) {
	S, err := NewState(nqubits)
	if err != nil {
		return nil, errDecorate(err, "BasisState")
	}
	if index < 0 || index >= len(S.amps) {
		return nil, NewError(fmt.Sprintf("basis index %d out of range for %d qubits", index, nqubits), "BasisState")
	}
	S.amps[0] = 0
	S.amps[index] = 1
	return S, nil
}

// StateFromAmps builds a state from the given amplitudes, which must be
// 2^n of them for some n>=1, and normalizes it. The slice is copied.
func StateFromAmps(amps []complex128) (*State, error) {
	n := 0
	for l := len(amps); l > 1; l >>= 1 {
		if l&1 != 0 {
			return nil, NewError(fmt.Sprintf("%d amplitudes given, need a power of two", len(amps)), "StateFromAmps")
		}
		n++
	}
	if n == 0 {
		return nil, NewError(fmt.Sprintf("%d amplitudes given, need a power of two", len(amps)), "StateFromAmps")
	}
	S := new(State)
	S.nqubits = n
	S.amps = make([]complex128, len(amps))
	copy(S.amps, amps)
	if err := S.Normalize(); err != nil {
		return nil, errDecorate(err, "StateFromAmps")
	}
	return S, nil
}

// NQubits returns the number of qubits in the register.
func (S *State) NQubits() int { return S.nqubits }

// Len returns the number of amplitudes (2^NQubits).
func (S *State) Len() int { return len(S.amps) }

// Amps returns the internal amplitude slice. The caller must not resize it.
func (S *State) Amps() []complex128 { return S.amps }

// Clone returns an independent copy of the state.
func (S *State) Clone() *State {
	N := new(State)
	N.nqubits = S.nqubits
	N.amps = make([]complex128, len(S.amps))
	copy(N.amps, S.amps)
	return N
}

// Norm returns the 2-norm of the statevector.
func (S *State) Norm() float64 {
	var n float64
	for _, a := range S.amps {
		n += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(n)
}

// Normalize rescales the state to unit norm. A (numerically) zero vector is
// an error.
func (S *State) Normalize() error {
	n := S.Norm()
	if n < NormTol {
		return NewError("can't normalize a zero statevector", "Normalize")
	}
	for i := range S.amps {
		S.amps[i] /= complex(n, 0)
	}
	return nil
}

// Inner returns <S|T>.
func (S *State) Inner(T *State) (complex128, error) {
	if S.nqubits != T.nqubits {
		return 0, NewError(fmt.Sprintf("inner product between %d- and %d-qubit states", S.nqubits, T.nqubits), "Inner")
	}
	var acc complex128
	for i, a := range S.amps {
		acc += cmplx.Conj(a) * T.amps[i]
	}
	return acc, nil
}

// Probability returns |<index|S>|^2.
func (S *State) Probability(index int) float64 {
	a := S.amps[index]
	return real(a)*real(a) + imag(a)*imag(a)
}

// Probabilities returns the probability of each basis state.
func (S *State) Probabilities() []float64 {
	p := make([]float64, len(S.amps))
	for i, a := range S.amps {
		p[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return p
}
