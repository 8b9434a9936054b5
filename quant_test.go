/*
 * quant_test.go, part of qiskit-tutorials.
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

// TestBell prepares a Bell pair and checks the amplitudes and the norm.
func TestBell(Te *testing.T) {
	S, err := NewState(2)
	if err != nil {
		Te.Fatal(err)
	}
	if err := S.H(0); err != nil {
		Te.Fatal(err)
	}
	if err := S.CNOT(0, 1); err != nil {
		Te.Fatal(err)
	}
	want := 1.0 / math.Sqrt(2)
	if math.Abs(real(S.Amps()[0])-want) > 1e-12 || math.Abs(real(S.Amps()[3])-want) > 1e-12 {
		Te.Errorf("Bell amplitudes wrong: %v", S.Amps())
	}
	if math.Abs(S.Probability(1)) > 1e-12 || math.Abs(S.Probability(2)) > 1e-12 {
		Te.Errorf("Bell state has weight on odd-parity states: %v", S.Probabilities())
	}
	if math.Abs(S.Norm()-1) > 1e-12 {
		Te.Errorf("Bell state not normalized: %v", S.Norm())
	}
	fmt.Println("Bell state", S.Amps())
}

// TestRotations checks RY against its closed form and that a longer gate
// sequence preserves the norm.
func TestRotations(Te *testing.T) {
	theta := 0.7
	S, err := NewState(1)
	if err != nil {
		Te.Fatal(err)
	}
	if err := S.RY(0, theta); err != nil {
		Te.Fatal(err)
	}
	if math.Abs(real(S.Amps()[0])-math.Cos(theta/2)) > 1e-12 {
		Te.Errorf("RY |0> amplitude: got %v want %v", S.Amps()[0], math.Cos(theta/2))
	}
	if math.Abs(real(S.Amps()[1])-math.Sin(theta/2)) > 1e-12 {
		Te.Errorf("RY |1> amplitude: got %v want %v", S.Amps()[1], math.Sin(theta/2))
	}
	T, _ := NewState(3)
	for q := 0; q < 3; q++ {
		T.H(q)
		T.RX(q, 0.3*float64(q+1))
		T.RZ(q, -1.1)
	}
	T.CNOT(0, 1)
	T.CZ(1, 2)
	T.RY(2, 2.2)
	if math.Abs(T.Norm()-1) > 1e-10 {
		Te.Errorf("gate sequence broke normalization: %v", T.Norm())
	}
}

func TestBasisState(Te *testing.T) {
	S, err := BasisState(4, 5)
	if err != nil {
		Te.Fatal(err)
	}
	if S.Probability(5) != 1 {
		Te.Errorf("basis state |5> has probability %v", S.Probability(5))
	}
	_, err = BasisState(2, 7)
	if err == nil {
		Te.Error("out-of-range basis index accepted")
	}
}

// TestCircuitRun checks parameter binding and that Append shifts parameter
// indices.
func TestCircuitRun(Te *testing.T) {
	C := NewCircuit(2)
	p0 := C.NewParam()
	C.PRY(0, p0).CNOT(0, 1)
	D := NewCircuit(2)
	p1 := D.NewParam()
	D.PRY(1, p1)
	if err := C.Append(D); err != nil {
		Te.Fatal(err)
	}
	if C.NParams() != 2 {
		Te.Fatalf("appended circuit has %d parameters", C.NParams())
	}
	S, _ := NewState(2)
	if err := C.Run(S, []float64{math.Pi, 0}); err != nil {
		Te.Fatal(err)
	}
	//RY(pi)|0> = |1>, then CNOT sets qubit 1: the state is |11>.
	if math.Abs(S.Probability(3)-1) > 1e-12 {
		Te.Errorf("parameterized run gave %v", S.Probabilities())
	}
	if err := C.Run(S, []float64{0.1}); err == nil {
		Te.Error("wrong parameter count accepted")
	}
}

func TestStateFromAmps(Te *testing.T) {
	S, err := StateFromAmps([]complex128{3, 0, 0, 4})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(S.Probability(0)-9.0/25.0) > 1e-12 || math.Abs(S.Probability(3)-16.0/25.0) > 1e-12 {
		Te.Errorf("normalization wrong: %v", S.Probabilities())
	}
	if _, err := StateFromAmps([]complex128{1, 2, 3}); err == nil {
		Te.Error("non-power-of-two amplitude count accepted")
	}
	if _, err := StateFromAmps([]complex128{0, 0}); err == nil {
		Te.Error("zero vector accepted")
	}
}
