/*
 * config.go, part of qiskit-tutorials.
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
	"runtime"
)

//The configuration record is fully declarative: every section selects a
//named piece from a fixed vocabulary, plus a few numeric knobs. Unset
//names take the documented
//defaults for the problem being run. Run and RunWithData receive the
//record by value and never mutate the caller's copy.

// Problem names the task and carries the run-wide random seed (there is no
// process-wide seed anywhere in this library).
type Problem struct {
	Name       string //"classification" or "ground_state"
	RandomSeed int64
}

// Algorithm selects the solver and bounds the optimizer.
type Algorithm struct {
	Name    string //"vqc", "vqe" or "exact"
	MaxIter int
}

// Backend selects the execution backend. Only the local deterministic
// statevector simulator exists; Workers bounds concurrent circuit
// evaluations during classifier training.
type Backend struct {
	Name    string //"statevector"
	Workers int
}

// Optimizer names the classical minimizer.
type Optimizer struct {
	Name string //"spsa" or "nelder_mead"
}

// VariationalForm names the parameterized ansatz circuit family.
type VariationalForm struct {
	Name  string //"ry"
	Depth int
}

// FeatureMap names the classical-to-quantum data encoding.
type FeatureMap struct {
	Name  string //"raw" or "second_order"
	Depth int    //repetitions of the second_order expansion
}

// Driver names the source of the molecular integrals.
type Driver struct {
	Name string //"h2" (builtin) or "file"
	Path string //integral file for the "file" driver
}

// Operator names the problem-to-qubit-operator mapping.
type Operator struct {
	Mapping string //"jordan_wigner" ("parity" is recognized, unsupported)
}

// InitialState names the reference state the ansatz starts from.
type InitialState struct {
	Name string //"hartree_fock" or "zero"
}

// Config is the full nested configuration record.
type Config struct {
	Problem         Problem
	Algorithm       Algorithm
	Backend         Backend
	Optimizer       Optimizer
	VariationalForm VariationalForm
	FeatureMap      FeatureMap
	Driver          Driver
	Operator        Operator
	InitialState    InitialState
}

// SetDefaults fills every unset field with the default documented for the
// configured problem. It is called on the run layer's private copy, but is
// exported so callers can inspect the effective configuration.
func (C *Config) SetDefaults() {
	classification := C.Problem.Name == "classification"
	if C.Algorithm.Name == "" {
		if classification {
			C.Algorithm.Name = "vqc"
		} else {
			C.Algorithm.Name = "vqe"
		}
	}
	if C.Algorithm.MaxIter == 0 {
		if classification {
			C.Algorithm.MaxIter = 100
		} else {
			C.Algorithm.MaxIter = 300
		}
	}
	if C.Backend.Name == "" {
		C.Backend.Name = "statevector"
	}
	if C.Backend.Workers == 0 {
		C.Backend.Workers = runtime.NumCPU()
	}
	if C.Optimizer.Name == "" {
		if classification {
			C.Optimizer.Name = "spsa"
		} else {
			C.Optimizer.Name = "nelder_mead"
		}
	}
	if C.VariationalForm.Name == "" {
		C.VariationalForm.Name = "ry"
	}
	if C.VariationalForm.Depth == 0 {
		C.VariationalForm.Depth = 3
	}
	if C.FeatureMap.Name == "" {
		C.FeatureMap.Name = "raw"
	}
	if C.FeatureMap.Depth == 0 {
		C.FeatureMap.Depth = 2
	}
	if C.Driver.Name == "" {
		C.Driver.Name = "h2"
	}
	if C.Operator.Mapping == "" {
		C.Operator.Mapping = "jordan_wigner"
	}
	if C.InitialState.Name == "" {
		if classification {
			C.InitialState.Name = "zero"
		} else {
			C.InitialState.Name = "hartree_fock"
		}
	}
}

func isIn(container []string, test string) bool {
	for _, s := range container {
		if s == test {
			return true
		}
	}
	return false
}

// Validate rejects any name outside the recognized vocabulary. Defaults
// must already be applied.
func (C *Config) Validate() error {
	p := C.Problem.Name
	if !isIn([]string{"classification", "ground_state"}, p) {
		return Error{fmt.Sprintf("unknown problem %q", p), p, []string{"Validate"}, true}
	}
	if C.Backend.Name != "statevector" {
		return Error{fmt.Sprintf("unknown backend %q", C.Backend.Name), p, []string{"Validate"}, true}
	}
	if !isIn([]string{"spsa", "nelder_mead"}, C.Optimizer.Name) {
		return Error{fmt.Sprintf("unknown optimizer %q", C.Optimizer.Name), p, []string{"Validate"}, true}
	}
	if C.VariationalForm.Name != "ry" {
		return Error{fmt.Sprintf("unknown variational form %q", C.VariationalForm.Name), p, []string{"Validate"}, true}
	}
	if C.VariationalForm.Depth < 1 {
		return Error{fmt.Sprintf("variational form depth %d", C.VariationalForm.Depth), p, []string{"Validate"}, true}
	}
	if C.Algorithm.MaxIter < 1 {
		return Error{fmt.Sprintf("iteration limit %d", C.Algorithm.MaxIter), p, []string{"Validate"}, true}
	}
	switch p {
	case "classification":
		if C.Algorithm.Name != "vqc" {
			return Error{fmt.Sprintf("algorithm %q can't run a classification problem", C.Algorithm.Name), p, []string{"Validate"}, true}
		}
		if !isIn([]string{"raw", "second_order"}, C.FeatureMap.Name) {
			return Error{fmt.Sprintf("unknown feature map %q", C.FeatureMap.Name), p, []string{"Validate"}, true}
		}
		if C.FeatureMap.Depth < 1 {
			return Error{fmt.Sprintf("feature map depth %d", C.FeatureMap.Depth), p, []string{"Validate"}, true}
		}
	case "ground_state":
		if !isIn([]string{"vqe", "exact"}, C.Algorithm.Name) {
			return Error{fmt.Sprintf("algorithm %q can't run a ground-state problem", C.Algorithm.Name), p, []string{"Validate"}, true}
		}
		if !isIn([]string{"h2", "file"}, C.Driver.Name) {
			return Error{fmt.Sprintf("unknown driver %q", C.Driver.Name), p, []string{"Validate"}, true}
		}
		if C.Driver.Name == "file" && C.Driver.Path == "" {
			return Error{"the file driver needs a path", p, []string{"Validate"}, true}
		}
		if !isIn([]string{"hartree_fock", "zero"}, C.InitialState.Name) {
			return Error{fmt.Sprintf("unknown initial state %q", C.InitialState.Name), p, []string{"Validate"}, true}
		}
		//the mapping vocabulary is checked again at mapping time; catch
		//plainly unknown names early
		if !isIn([]string{"jordan_wigner", "parity"}, C.Operator.Mapping) {
			return Error{fmt.Sprintf("unknown qubit mapping %q", C.Operator.Mapping), p, []string{"Validate"}, true}
		}
	}
	return nil
}
