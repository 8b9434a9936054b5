/*
 * pauli_test.go, part of qiskit-tutorials.
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
	"testing"
)

// TestPauliAlgebra checks the single-letter product table through Mul.
func TestPauliAlgebra(Te *testing.T) {
	X, _ := NewPauliSum(1)
	X.AddTerm("X", 1)
	Y, _ := NewPauliSum(1)
	Y.AddTerm("Y", 1)
	XY, err := X.Mul(Y)
	if err != nil {
		Te.Fatal(err)
	}
	if XY.Coeff("Z") != complex(0, 1) {
		Te.Errorf("X*Y = %v Z, want i Z", XY.Coeff("Z"))
	}
	YX, _ := Y.Mul(X)
	if YX.Coeff("Z") != complex(0, -1) {
		Te.Errorf("Y*X = %v Z, want -i Z", YX.Coeff("Z"))
	}
	XX, _ := X.Mul(X)
	if XX.Coeff("I") != 1 || XX.NTerms() != 1 {
		Te.Errorf("X*X is not the identity: %v", XX.Strings())
	}
}

// TestExpectation checks <0|Z|0>, <1|Z|1> and <+|X|+>.
func TestExpectation(Te *testing.T) {
	Z, _ := NewPauliSum(1)
	Z.AddTerm("Z", 1)
	zero, _ := NewState(1)
	v, err := Z.Expectation(zero)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(v-1) > 1e-12 {
		Te.Errorf("<0|Z|0> = %v", v)
	}
	one, _ := BasisState(1, 1)
	v, _ = Z.Expectation(one)
	if math.Abs(v+1) > 1e-12 {
		Te.Errorf("<1|Z|1> = %v", v)
	}
	X, _ := NewPauliSum(1)
	X.AddTerm("X", 1)
	plus, _ := NewState(1)
	plus.H(0)
	v, _ = X.Expectation(plus)
	if math.Abs(v-1) > 1e-12 {
		Te.Errorf("<+|X|+> = %v", v)
	}
}

// TestLetterPositions pins the convention that position q of a Pauli word is
// the operator on qubit q (qubit 0 = least significant bit).
func TestLetterPositions(Te *testing.T) {
	P, _ := NewPauliSum(2)
	P.AddTerm("ZI", 1) //Z on qubit 0
	//|01> has qubit 0 set, so Z on qubit 0 gives -1.
	S, _ := BasisState(2, 1)
	v, err := P.Expectation(S)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(v+1) > 1e-12 {
		Te.Errorf("Z on qubit 0 against index-1 basis state: %v", v)
	}
}

// TestLowestEigen diagonalizes H = Z + 0.5 X on one qubit; the exact lowest
// eigenvalue is -sqrt(1.25).
func TestLowestEigen(Te *testing.T) {
	H, _ := NewPauliSum(1)
	H.AddTerm("Z", 1)
	H.AddTerm("X", 0.5)
	val, ground, err := H.LowestEigen()
	if err != nil {
		Te.Fatal(err)
	}
	want := -math.Sqrt(1.25)
	if math.Abs(val-want) > 1e-10 {
		Te.Errorf("lowest eigenvalue %v, want %v", val, want)
	}
	ev, err := H.Expectation(ground)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(ev-val) > 1e-10 {
		Te.Errorf("eigenvector expectation %v does not match eigenvalue %v", ev, val)
	}
	fmt.Println("lowest eigenvalue", val)
}

// TestMatrixSymRejectsComplex checks that a single Y, whose matrix is
// imaginary, is refused by the real-symmetric path.
func TestMatrixSymRejectsComplex(Te *testing.T) {
	Y, _ := NewPauliSum(1)
	Y.AddTerm("Y", 1)
	if _, err := Y.MatrixSym(); err == nil {
		Te.Error("imaginary matrix accepted as real symmetric")
	}
}

func TestSumManipulation(Te *testing.T) {
	P, _ := NewPauliSum(2)
	P.AddTerm("XX", 0.25)
	P.AddTerm("YY", 0.25)
	Q, _ := NewPauliSum(2)
	Q.AddTerm("XX", -0.25)
	if err := P.Add(Q); err != nil {
		Te.Fatal(err)
	}
	if P.NTerms() != 1 || P.Coeff("YY") != 0.25 {
		Te.Errorf("Add with cancellation gave %v", P.Strings())
	}
	P.Scale(4)
	if P.Coeff("YY") != 1 {
		Te.Errorf("Scale gave %v", P.Coeff("YY"))
	}
	P.AddTerm("ZZ", 1e-14)
	P.Simplify(1e-12)
	if P.NTerms() != 1 {
		Te.Errorf("Simplify kept noise terms: %v", P.Strings())
	}
	if err := P.AddTerm("XQ", 1); err == nil {
		Te.Error("invalid Pauli letter accepted")
	}
	if err := P.AddTerm("XXX", 1); err == nil {
		Te.Error("wrong-length Pauli word accepted")
	}
}
