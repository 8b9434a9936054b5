/*
 * varform.go, part of qiskit-tutorials.
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

// newVarForm builds the named ansatz on nqubits qubits. The "ry" form is
// depth repetitions of a parameterized RY layer followed by a CZ entangler
// chain, closed by one final RY layer; with all parameters at zero it is
// the identity up to phases, so the optimizer starts exactly from the
// initial reference state.
func newVarForm(name string, nqubits, depth int) (*quant.Circuit, error) {
	if nqubits < 1 {
		return nil, Error{fmt.Sprintf("ansatz on %d qubits", nqubits), "", []string{"newVarForm"}, true}
	}
	switch name {
	case "ry":
		C := quant.NewCircuit(nqubits)
		for rep := 0; rep < depth; rep++ {
			for q := 0; q < nqubits; q++ {
				C.PRY(q, C.NewParam())
			}
			for q := 0; q+1 < nqubits; q++ {
				C.CZ(q, q+1)
			}
		}
		for q := 0; q < nqubits; q++ {
			C.PRY(q, C.NewParam())
		}
		return C, nil
	default:
		return nil, Error{fmt.Sprintf("unknown variational form %q", name), "", []string{"newVarForm"}, true}
	}
}
