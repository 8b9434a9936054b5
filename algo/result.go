/*
 * result.go, part of qiskit-tutorials.
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
	"encoding/json"
	"io"
)

// Result is the record returned by a run. Which fields are meaningful
// depends on the problem: a classification run fills the accuracies and
// the loss, a ground-state run fills the energies, measurements and the
// dipole. Report always holds the printable summary. Results are read-only
// once returned.
type Result struct {
	Problem          string    `json:"problem"`
	Algorithm        string    `json:"algorithm"`
	Energy           float64   `json:"energy,omitempty"` //total ground-state energy, Hartree
	Electronic       float64   `json:"electronic_energy,omitempty"`
	NuclearRepulsion float64   `json:"nuclear_repulsion,omitempty"`
	Particles        float64   `json:"particles,omitempty"`
	SpinS            float64   `json:"spin_s,omitempty"`
	SpinM            float64   `json:"spin_m,omitempty"`
	DipoleZ          float64   `json:"dipole_z,omitempty"`
	TestAccuracy     float64   `json:"test_accuracy,omitempty"`
	TrainAccuracy    float64   `json:"train_accuracy,omitempty"`
	Loss             float64   `json:"loss,omitempty"`
	Iterations       int       `json:"iterations"`
	History          []float64 `json:"history,omitempty"` //objective per iteration
	Report           string    `json:"report"`
}

// Map returns the result as a flat mapping, for callers that prefer a
// dictionary view over the typed record.
func (R *Result) Map() map[string]interface{} {
	return map[string]interface{}{
		"problem":           R.Problem,
		"algorithm":         R.Algorithm,
		"energy":            R.Energy,
		"electronic_energy": R.Electronic,
		"nuclear_repulsion": R.NuclearRepulsion,
		"particles":         R.Particles,
		"spin_s":            R.SpinS,
		"spin_m":            R.SpinM,
		"dipole_z":          R.DipoleZ,
		"test_accuracy":     R.TestAccuracy,
		"train_accuracy":    R.TrainAccuracy,
		"loss":              R.Loss,
		"iterations":        R.Iterations,
		"report":            R.Report,
	}
}

// Send serializes the result as JSON and writes it to out.
func (R *Result) Send(out io.Writer) error {
	if err := json.NewEncoder(out).Encode(R); err != nil {
		return Error{"can't serialize result: " + err.Error(), R.Problem, []string{"Send"}, true}
	}
	return nil
}
