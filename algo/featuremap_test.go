/*
 * featuremap_test.go, part of qiskit-tutorials.
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
	"math"
	"testing"
)

func TestRawEncoding(Te *testing.T) {
	// three features pad to four amplitudes on two qubits
	fm, err := newFeatureMap("raw", 3, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if fm.NQubits() != 2 {
		Te.Errorf("3 features on %d qubits, want 2", fm.NQubits())
	}
	S, err := fm.Encode([]float64{3, 4, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(S.Norm()-1) > 1e-12 {
		Te.Errorf("encoded state norm %.12f, want 1", S.Norm())
	}
	amps := S.Amps()
	if math.Abs(real(amps[0])-0.6) > 1e-12 || math.Abs(real(amps[1])-0.8) > 1e-12 {
		Te.Errorf("wrong normalized amplitudes: %v", amps)
	}
	if amps[2] != 0 || amps[3] != 0 {
		Te.Errorf("padding amplitudes not zero: %v", amps)
	}
	if _, err := fm.Encode([]float64{0, 0, 0}); err == nil {
		Te.Error("zero vector encoded")
	}
	if _, err := fm.Encode([]float64{1, 2}); err == nil {
		Te.Error("wrong feature count encoded")
	}
}

func TestSecondOrderEncoding(Te *testing.T) {
	fm, err := newFeatureMap("second_order", 2, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if fm.NQubits() != 2 {
		Te.Errorf("one qubit per feature expected, got %d", fm.NQubits())
	}
	S, err := fm.Encode([]float64{0.3, -0.7})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(S.Norm()-1) > 1e-12 {
		Te.Errorf("encoded state norm %.12f, want 1", S.Norm())
	}
	// the entangling phases must make the state depend on both features
	S2, err := fm.Encode([]float64{0.3, 0.7})
	if err != nil {
		Te.Fatal(err)
	}
	same := true
	for i, a := range S.Amps() {
		if a != S2.Amps()[i] {
			same = false
			break
		}
	}
	if same {
		Te.Error("encoding ignores the second feature")
	}
}

func TestVarForm(Te *testing.T) {
	C, err := newVarForm("ry", 4, 3)
	if err != nil {
		Te.Fatal(err)
	}
	// one rotation layer per depth step plus the final layer
	if C.NParams() != 4*(3+1) {
		Te.Errorf("16 parameters expected, got %d", C.NParams())
	}
	if _, err := newVarForm("uccsd", 4, 3); err == nil {
		Te.Error("unknown variational form accepted")
	}
	if _, err := newFeatureMap("zz", 2, 2); err == nil {
		Te.Error("unknown feature map accepted")
	}
}
