/*
 * pauli.go, part of qiskit-tutorials.
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
	"sort"

	"gonum.org/v1/gonum/mat"
)

// HermTol is the tolerance under which imaginary parts are considered
// numerical noise when a real quantity is expected.
const HermTol = 1e-8

// A PauliSum is an operator written as a linear combination of Pauli strings
// on a fixed number of qubits. Strings are kept as "IXYZ" words with the
// character at position q giving the operator on qubit q.
type PauliSum struct {
	nqubits int
	terms   map[string]complex128
}

// NewPauliSum returns the zero operator on the given number of qubits.
func NewPauliSum(nqubits int) (*PauliSum, error) {
	if nqubits < 1 {
		return nil, NewError(fmt.Sprintf("can't build an operator on %d qubits", nqubits), "NewPauliSum")
	}
	return &PauliSum{nqubits: nqubits, terms: make(map[string]complex128)}, nil
}

// NQubits returns the number of qubits the operator acts on.
func (P *PauliSum) NQubits() int { return P.nqubits }

// NTerms returns the number of Pauli strings with nonzero coefficient.
func (P *PauliSum) NTerms() int { return len(P.terms) }

func (P *PauliSum) checkOps(ops, caller string) error {
	if len(ops) != P.nqubits {
		return NewError(fmt.Sprintf("Pauli string %q has %d letters, operator is on %d qubits", ops, len(ops), P.nqubits), caller)
	}
	for i := 0; i < len(ops); i++ {
		switch ops[i] {
		case 'I', 'X', 'Y', 'Z':
		default:
			return NewError(fmt.Sprintf("Pauli string %q has an invalid letter at position %d", ops, i), caller)
		}
	}
	return nil
}

// AddTerm adds coeff times the given Pauli string to the operator.
func (P *PauliSum) AddTerm(ops string, coeff complex128) error {
	if err := P.checkOps(ops, "AddTerm"); err != nil {
		return err
	}
	P.terms[ops] += coeff
	if P.terms[ops] == 0 {
		delete(P.terms, ops)
	}
	return nil
}

// Coeff returns the coefficient of the given Pauli string, zero if absent.
func (P *PauliSum) Coeff(ops string) complex128 {
	return P.terms[ops]
}

// Strings returns the Pauli strings of the operator in lexicographic order.
func (P *PauliSum) Strings() []string {
	s := make([]string, 0, len(P.terms))
	for k := range P.terms {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

// Add accumulates Q into P.
func (P *PauliSum) Add(Q *PauliSum) error {
	if P.nqubits != Q.nqubits {
		return NewError(fmt.Sprintf("can't add operators on %d and %d qubits", Q.nqubits, P.nqubits), "Add")
	}
	for k, v := range Q.terms {
		P.terms[k] += v
		if P.terms[k] == 0 {
			delete(P.terms, k)
		}
	}
	return nil
}

// Scale multiplies every coefficient by f.
func (P *PauliSum) Scale(f complex128) {
	if f == 0 {
		P.terms = make(map[string]complex128)
		return
	}
	for k := range P.terms {
		P.terms[k] *= f
	}
}

// Simplify drops every term with |coefficient| below tol.
func (P *PauliSum) Simplify(tol float64) {
	for k, v := range P.terms {
		if cmplx.Abs(v) < tol {
			delete(P.terms, k)
		}
	}
}

// mulPauli multiplies two single-qubit Pauli letters, returning the
// resulting letter and phase (sigma_x sigma_y = i sigma_z and cyclic).
func mulPauli(a, b byte) (byte, complex128) {
	if a == 'I' {
		return b, 1
	}
	if b == 'I' {
		return a, 1
	}
	if a == b {
		return 'I', 1
	}
	switch {
	case a == 'X' && b == 'Y':
		return 'Z', complex(0, 1)
	case a == 'Y' && b == 'X':
		return 'Z', complex(0, -1)
	case a == 'Y' && b == 'Z':
		return 'X', complex(0, 1)
	case a == 'Z' && b == 'Y':
		return 'X', complex(0, -1)
	case a == 'Z' && b == 'X':
		return 'Y', complex(0, 1)
	default: // a == 'X' && b == 'Z'
		return 'Y', complex(0, -1)
	}
}

func mulStrings(a, b string) (string, complex128) {
	out := make([]byte, len(a))
	phase := complex128(1)
	for i := 0; i < len(a); i++ {
		var p complex128
		out[i], p = mulPauli(a[i], b[i])
		phase *= p
	}
	return string(out), phase
}

// Mul returns the operator product P*Q as a new PauliSum.
func (P *PauliSum) Mul(Q *PauliSum) (*PauliSum, error) {
	if P.nqubits != Q.nqubits {
		return nil, NewError(fmt.Sprintf("can't multiply operators on %d and %d qubits", P.nqubits, Q.nqubits), "Mul")
	}
	R, _ := NewPauliSum(P.nqubits)
	for ka, va := range P.terms {
		for kb, vb := range Q.terms {
			ops, phase := mulStrings(ka, kb)
			R.terms[ops] += va * vb * phase
			if R.terms[ops] == 0 {
				delete(R.terms, ops)
			}
		}
	}
	return R, nil
}

// applyString computes |out> = P|in> for a single Pauli string, accumulating
// into out, scaled by coeff. out must be zeroed by the caller beforehand if
// accumulation is not wanted.
func applyString(ops string, coeff complex128, in, out []complex128) {
	n := len(ops)
	xmask := 0
	for q := 0; q < n; q++ {
		if ops[q] == 'X' || ops[q] == 'Y' {
			xmask |= 1 << uint(q)
		}
	}
	for i := range in {
		if in[i] == 0 {
			continue
		}
		phase := coeff
		for q := 0; q < n; q++ {
			b := (i >> uint(q)) & 1
			switch ops[q] {
			case 'Y':
				if b == 0 {
					phase *= complex(0, 1)
				} else {
					phase *= complex(0, -1)
				}
			case 'Z':
				if b == 1 {
					phase = -phase
				}
			}
		}
		out[i^xmask] += phase * in[i]
	}
}

// Apply returns the state P|S> (not normalized; a PauliSum is in general not
// unitary).
func (P *PauliSum) Apply(S *State) (*State, error) {
	if S.NQubits() != P.nqubits {
		return nil, NewError(fmt.Sprintf("operator on %d qubits applied to a %d-qubit state", P.nqubits, S.NQubits()), "Apply")
	}
	out := make([]complex128, S.Len())
	for k, v := range P.terms {
		applyString(k, v, S.Amps(), out)
	}
	R := new(State)
	R.nqubits = P.nqubits
	R.amps = out
	return R, nil
}

// Expectation returns <S|P|S>, which must be real within HermTol times the
// operator 1-norm (P is expected Hermitian).
func (P *PauliSum) Expectation(S *State) (float64, error) {
	PS, err := P.Apply(S)
	if err != nil {
		return 0, errDecorate(err, "Expectation")
	}
	v, err := S.Inner(PS)
	if err != nil {
		return 0, errDecorate(err, "Expectation")
	}
	scale := 1.0
	for _, c := range P.terms {
		scale += cmplx.Abs(c)
	}
	if math.Abs(imag(v)) > HermTol*scale {
		return 0, NewError(fmt.Sprintf("expectation value %v has a non-negligible imaginary part, operator not Hermitian?", v), "Expectation")
	}
	return real(v), nil
}

// MatrixSym returns the dense matrix of P in the computational basis as a
// real symmetric matrix. It fails if the matrix has entries with
// non-negligible imaginary part or is not symmetric; Hamiltonians obtained
// from real integrals via Jordan-Wigner always pass.
func (P *PauliSum) MatrixSym() (*mat.SymDense, error) {
	dim := 1 << uint(P.nqubits)
	re := mat.NewDense(dim, dim, nil)
	im := mat.NewDense(dim, dim, nil)
	in := make([]complex128, dim)
	out := make([]complex128, dim)
	for col := 0; col < dim; col++ {
		in[col] = 1
		for i := range out {
			out[i] = 0
		}
		for k, v := range P.terms {
			applyString(k, v, in, out)
		}
		for row := 0; row < dim; row++ {
			re.Set(row, col, real(out[row]))
			im.Set(row, col, imag(out[row]))
		}
		in[col] = 0
	}
	if mat.Norm(im, 1) > HermTol*float64(dim) {
		return nil, NewError("operator matrix has complex entries, can't take it as real symmetric", "MatrixSym")
	}
	sym := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			if math.Abs(re.At(i, j)-re.At(j, i)) > HermTol {
				return nil, NewError(fmt.Sprintf("operator matrix not symmetric at (%d,%d)", i, j), "MatrixSym")
			}
			sym.SetSym(i, j, re.At(i, j))
		}
	}
	return sym, nil
}

// LowestEigen diagonalizes P (via MatrixSym) and returns its lowest
// eigenvalue and the corresponding normalized eigenvector as a State.
func (P *PauliSum) LowestEigen() (float64, *State, error) {
	sym, err := P.MatrixSym()
	if err != nil {
		return 0, nil, errDecorate(err, "LowestEigen")
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return 0, nil, NewError("eigendecomposition failed to converge", "LowestEigen")
	}
	vals := es.Values(nil)
	lo := 0
	for i, v := range vals {
		if v < vals[lo] {
			lo = i
		}
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	dim := len(vals)
	amps := make([]complex128, dim)
	for i := 0; i < dim; i++ {
		amps[i] = complex(vecs.At(i, lo), 0)
	}
	ground, err := StateFromAmps(amps)
	if err != nil {
		return 0, nil, errDecorate(err, "LowestEigen")
	}
	return vals[lo], ground, nil
}
