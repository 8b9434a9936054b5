/*
 * gates.go, part of qiskit-tutorials.
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
)

//The single-qubit gates are kept as 2x2 matrices in row-major order:
//{u00, u01, u10, u11}.

var sq2inv = complex(1.0/math.Sqrt(2), 0)

func hMatrix() [4]complex128 {
	return [4]complex128{sq2inv, sq2inv, sq2inv, -sq2inv}
}

func xMatrix() [4]complex128 {
	return [4]complex128{0, 1, 1, 0}
}

func rxMatrix(theta float64) [4]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return [4]complex128{c, s, s, c}
}

func ryMatrix(theta float64) [4]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return [4]complex128{c, -s, s, c}
}

func rzMatrix(theta float64) [4]complex128 {
	em := complex(math.Cos(theta/2), -math.Sin(theta/2))
	ep := complex(math.Cos(theta/2), math.Sin(theta/2))
	return [4]complex128{em, 0, 0, ep}
}

func (S *State) checkQubit(q int, caller string) error {
	if q < 0 || q >= S.nqubits {
		return NewError(fmt.Sprintf("qubit %d out of range for a %d-qubit state", q, S.nqubits), caller)
	}
	return nil
}

// apply1 applies the 2x2 matrix u to qubit q. The pair loop touches each
// amplitude exactly once.
func (S *State) apply1(q int, u [4]complex128) {
	mask := 1 << uint(q)
	for i := 0; i < len(S.amps); i++ {
		if i&mask != 0 {
			continue
		}
		j := i | mask
		a0 := S.amps[i]
		a1 := S.amps[j]
		S.amps[i] = u[0]*a0 + u[1]*a1
		S.amps[j] = u[2]*a0 + u[3]*a1
	}
}

// H applies a Hadamard gate to qubit q.
func (S *State) H(q int) error {
	if err := S.checkQubit(q, "H"); err != nil {
		return err
	}
	S.apply1(q, hMatrix())
	return nil
}

// X applies a Pauli-X (NOT) gate to qubit q.
func (S *State) X(q int) error {
	if err := S.checkQubit(q, "X"); err != nil {
		return err
	}
	S.apply1(q, xMatrix())
	return nil
}

// RX applies a rotation of theta radians around the X axis to qubit q.
func (S *State) RX(q int, theta float64) error {
	if err := S.checkQubit(q, "RX"); err != nil {
		return err
	}
	S.apply1(q, rxMatrix(theta))
	return nil
}

// RY applies a rotation of theta radians around the Y axis to qubit q.
func (S *State) RY(q int, theta float64) error {
	if err := S.checkQubit(q, "RY"); err != nil {
		return err
	}
	S.apply1(q, ryMatrix(theta))
	return nil
}

// RZ applies a rotation of theta radians around the Z axis to qubit q.
func (S *State) RZ(q int, theta float64) error {
	if err := S.checkQubit(q, "RZ"); err != nil {
		return err
	}
	S.apply1(q, rzMatrix(theta))
	return nil
}

// CNOT applies a controlled-NOT with the given control and target qubits.
func (S *State) CNOT(control, target int) error {
	if err := S.checkQubit(control, "CNOT"); err != nil {
		return err
	}
	if err := S.checkQubit(target, "CNOT"); err != nil {
		return err
	}
	if control == target {
		return NewError("CNOT control and target can't be the same qubit", "CNOT")
	}
	cmask := 1 << uint(control)
	tmask := 1 << uint(target)
	for i := 0; i < len(S.amps); i++ {
		if i&cmask == 0 || i&tmask != 0 {
			continue
		}
		j := i | tmask
		S.amps[i], S.amps[j] = S.amps[j], S.amps[i]
	}
	return nil
}

// CZ applies a controlled-Z between qubits a and b. The gate is symmetric
// in its arguments.
func (S *State) CZ(a, b int) error {
	if err := S.checkQubit(a, "CZ"); err != nil {
		return err
	}
	if err := S.checkQubit(b, "CZ"); err != nil {
		return err
	}
	if a == b {
		return NewError("CZ needs two distinct qubits", "CZ")
	}
	amask := 1 << uint(a)
	bmask := 1 << uint(b)
	for i := 0; i < len(S.amps); i++ {
		if i&amask != 0 && i&bmask != 0 {
			S.amps[i] = -S.amps[i]
		}
	}
	return nil
}
