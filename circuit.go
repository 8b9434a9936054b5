/*
 * circuit.go, part of qiskit-tutorials.
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

import "fmt"

// A Gate is one operation in a Circuit. Fixed-angle gates keep their angle
// in Angle and have Param<0. Parameterized rotations take their angle from
// the parameter vector given to Run, at index Param.
type Gate struct {
	Name    string //"h", "x", "rx", "ry", "rz", "cnot", "cz"
	Target  int
	Control int //second qubit for cnot/cz, -1 otherwise
	Angle   float64
	Param   int
}

// A Circuit is an ordered list of gates on a fixed number of qubits, some of
// which may be free parameters to be bound at run time.
type Circuit struct {
	nqubits int
	gates   []Gate
	nparams int
}

// NewCircuit returns an empty circuit on the given number of qubits.
func NewCircuit(nqubits int) *Circuit {
	return &Circuit{nqubits: nqubits, gates: make([]Gate, 0, 16)}
}

// NQubits returns the number of qubits the circuit acts on.
func (C *Circuit) NQubits() int { return C.nqubits }

// NGates returns the number of gates in the circuit.
func (C *Circuit) NGates() int { return len(C.gates) }

// NParams returns the number of free parameters the circuit expects.
func (C *Circuit) NParams() int { return C.nparams }

func (C *Circuit) add(g Gate) *Circuit {
	C.gates = append(C.gates, g)
	return C
}

// H appends a Hadamard on qubit q.
func (C *Circuit) H(q int) *Circuit {
	return C.add(Gate{Name: "h", Target: q, Control: -1, Param: -1})
}

// X appends a Pauli-X on qubit q.
func (C *Circuit) X(q int) *Circuit {
	return C.add(Gate{Name: "x", Target: q, Control: -1, Param: -1})
}

// RX appends a fixed-angle X rotation on qubit q.
func (C *Circuit) RX(q int, theta float64) *Circuit {
	return C.add(Gate{Name: "rx", Target: q, Control: -1, Angle: theta, Param: -1})
}

// RY appends a fixed-angle Y rotation on qubit q.
func (C *Circuit) RY(q int, theta float64) *Circuit {
	return C.add(Gate{Name: "ry", Target: q, Control: -1, Angle: theta, Param: -1})
}

// RZ appends a fixed-angle Z rotation on qubit q.
func (C *Circuit) RZ(q int, theta float64) *Circuit {
	return C.add(Gate{Name: "rz", Target: q, Control: -1, Angle: theta, Param: -1})
}

// CNOT appends a controlled-NOT.
func (C *Circuit) CNOT(control, target int) *Circuit {
	return C.add(Gate{Name: "cnot", Target: target, Control: control, Param: -1})
}

// CZ appends a controlled-Z.
func (C *Circuit) CZ(a, b int) *Circuit {
	return C.add(Gate{Name: "cz", Target: b, Control: a, Param: -1})
}

// NewParam reserves a new free parameter and returns its index.
func (C *Circuit) NewParam() int {
	C.nparams++
	return C.nparams - 1
}

// PRX appends an X rotation on qubit q taking its angle from parameter p.
func (C *Circuit) PRX(q, p int) *Circuit {
	return C.add(Gate{Name: "rx", Target: q, Control: -1, Param: p})
}

// PRY appends a Y rotation on qubit q taking its angle from parameter p.
func (C *Circuit) PRY(q, p int) *Circuit {
	return C.add(Gate{Name: "ry", Target: q, Control: -1, Param: p})
}

// PRZ appends a Z rotation on qubit q taking its angle from parameter p.
func (C *Circuit) PRZ(q, p int) *Circuit {
	return C.add(Gate{Name: "rz", Target: q, Control: -1, Param: p})
}

// Append concatenates the gates of D after those of C. Both circuits must
// act on the same number of qubits. Parameter indices of D are shifted past
// the parameters of C, so the bound vector for the result is params(C)
// followed by params(D).
func (C *Circuit) Append(D *Circuit) error {
	if C.nqubits != D.nqubits {
		return NewError(fmt.Sprintf("can't append a %d-qubit circuit to a %d-qubit one", D.nqubits, C.nqubits), "Append")
	}
	off := C.nparams
	for _, g := range D.gates {
		if g.Param >= 0 {
			g.Param += off
		}
		C.gates = append(C.gates, g)
	}
	C.nparams += D.nparams
	return nil
}

// Run applies the circuit to the state S in place, binding the free
// parameters to params.
func (C *Circuit) Run(S *State, params []float64) error {
	if S.NQubits() != C.nqubits {
		return NewError(fmt.Sprintf("circuit on %d qubits given a %d-qubit state", C.nqubits, S.NQubits()), "Run")
	}
	if len(params) != C.nparams {
		return NewError(fmt.Sprintf("circuit expects %d parameters, %d given", C.nparams, len(params)), "Run")
	}
	for _, g := range C.gates {
		angle := g.Angle
		if g.Param >= 0 {
			angle = params[g.Param]
		}
		var err error
		switch g.Name {
		case "h":
			err = S.H(g.Target)
		case "x":
			err = S.X(g.Target)
		case "rx":
			err = S.RX(g.Target, angle)
		case "ry":
			err = S.RY(g.Target, angle)
		case "rz":
			err = S.RZ(g.Target, angle)
		case "cnot":
			err = S.CNOT(g.Control, g.Target)
		case "cz":
			err = S.CZ(g.Control, g.Target)
		default:
			err = NewError(fmt.Sprintf("unknown gate %q", g.Name), "Run")
		}
		if err != nil {
			return errDecorate(err, "Run")
		}
	}
	return nil
}
