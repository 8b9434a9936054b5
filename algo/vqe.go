/*
 * vqe.go, part of qiskit-tutorials.
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
	"math"
	"strings"

	quant "github.com/kingsraghav/qiskit-tutorials"
	"github.com/kingsraghav/qiskit-tutorials/moldata"
	"github.com/kingsraghav/qiskit-tutorials/operator"
	"github.com/kingsraghav/qiskit-tutorials/optimizer"
)

// auToDebye converts a dipole moment from atomic units to debye.
const auToDebye = 2.541746

// Run executes a ground-state configuration and returns its result record.
// It is the single synchronous entry point of the chemistry example; any
// failure from the driver, the mapping or the solver propagates unchanged.
func Run(cfg Config) (*Result, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errDecorate(err, "Run")
	}
	if cfg.Problem.Name != "ground_state" {
		return nil, Error{fmt.Sprintf("problem %q needs example data, call RunWithData", cfg.Problem.Name), cfg.Problem.Name, []string{"Run"}, true}
	}
	return runGroundState(cfg)
}

func resolveDriver(cfg Config) (*moldata.MolData, error) {
	switch cfg.Driver.Name {
	case "h2":
		return moldata.H2(), nil
	case "file":
		return moldata.Read(cfg.Driver.Path)
	default:
		return nil, Error{fmt.Sprintf("unknown driver %q", cfg.Driver.Name), cfg.Problem.Name, []string{"resolveDriver"}, true}
	}
}

func runGroundState(cfg Config) (*Result, error) {
	M, err := resolveDriver(cfg)
	if err != nil {
		return nil, errDecorate(err, "runGroundState")
	}
	H, err := operator.Map(cfg.Operator.Mapping, M)
	if err != nil {
		return nil, errDecorate(err, "runGroundState")
	}
	nq := H.NQubits()

	var electronic float64
	var ground *quant.State
	var iterations int
	var history []float64
	switch cfg.Algorithm.Name {
	case "exact":
		electronic, ground, err = H.LowestEigen()
		if err != nil {
			return nil, errDecorate(err, "runGroundState")
		}
	case "vqe":
		electronic, ground, iterations, history, err = runVQE(cfg, H, M, nq)
		if err != nil {
			return nil, errDecorate(err, "runGroundState")
		}
	}

	R := &Result{
		Problem:          cfg.Problem.Name,
		Algorithm:        cfg.Algorithm.Name,
		Electronic:       electronic,
		NuclearRepulsion: M.ENuc,
		Energy:           electronic + M.ENuc,
		Iterations:       iterations,
		History:          history,
	}
	if err := measure(R, M, ground); err != nil {
		return nil, errDecorate(err, "runGroundState")
	}
	R.Report = groundStateReport(R, M, cfg)
	return R, nil
}

// runVQE minimizes <psi(theta)|H|psi(theta)> over the ansatz parameters,
// starting from the configured reference state.
func runVQE(cfg Config, H *quant.PauliSum, M *moldata.MolData, nq int) (float64, *quant.State, int, []float64, error) {
	var ref *quant.State
	var err error
	switch cfg.InitialState.Name {
	case "hartree_fock":
		ref, err = operator.HartreeFock(M.NSpatial, M.NElec)
	case "zero":
		ref, err = quant.NewState(nq)
	}
	if err != nil {
		return 0, nil, 0, nil, err
	}
	ansatz, err := newVarForm(cfg.VariationalForm.Name, nq, cfg.VariationalForm.Depth)
	if err != nil {
		return 0, nil, 0, nil, err
	}
	prepare := func(theta []float64) (*quant.State, error) {
		S := ref.Clone()
		if err := ansatz.Run(S, theta); err != nil {
			return nil, err
		}
		return S, nil
	}
	objective := func(theta []float64) (float64, error) {
		S, err := prepare(theta)
		if err != nil {
			return 0, err
		}
		return H.Expectation(S)
	}
	method, err := optimizer.New(cfg.Optimizer.Name, cfg.Algorithm.MaxIter, cfg.Problem.RandomSeed)
	if err != nil {
		return 0, nil, 0, nil, err
	}
	out, err := method.Minimize(objective, make([]float64, ansatz.NParams()))
	if err != nil {
		return 0, nil, 0, nil, err
	}
	ground, err := prepare(out.X)
	if err != nil {
		return 0, nil, 0, nil, err
	}
	return out.F, ground, out.Iterations, out.History, nil
}

// measure fills the particle, spin and dipole fields from the ground
// state.
func measure(R *Result, M *moldata.MolData, ground *quant.State) error {
	N, err := operator.Number(2 * M.NSpatial)
	if err != nil {
		return err
	}
	if R.Particles, err = N.Expectation(ground); err != nil {
		return err
	}
	Sz, err := operator.SpinZ(M.NSpatial)
	if err != nil {
		return err
	}
	if R.SpinM, err = Sz.Expectation(ground); err != nil {
		return err
	}
	S2, err := operator.SpinSquared(M.NSpatial)
	if err != nil {
		return err
	}
	s2, err := S2.Expectation(ground)
	if err != nil {
		return err
	}
	//S from S^2 = S(S+1); clamp the tiny negative values optimization noise
	//can leave behind
	if s2 < 0 {
		s2 = 0
	}
	R.SpinS = (math.Sqrt(1+4*s2) - 1) / 2
	if M.DipZ != nil {
		D, err := operator.DipoleZ(M)
		if err != nil {
			return err
		}
		if R.DipoleZ, err = D.Expectation(ground); err != nil {
			return err
		}
	}
	return nil
}

// groundStateReport formats the multi-line summary the chemistry example
// prints.
func groundStateReport(R *Result, M *moldata.MolData, cfg Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== GROUND STATE ENERGY ===\n")
	fmt.Fprintf(&b, "Molecule: %s (%s), %d electrons in %d spatial orbitals\n", M.Name, M.Basis, M.NElec, M.NSpatial)
	fmt.Fprintf(&b, "Algorithm: %s, mapping: %s, backend: %s\n", cfg.Algorithm.Name, cfg.Operator.Mapping, cfg.Backend.Name)
	fmt.Fprintf(&b, "* Electronic ground state energy (Hartree): %.6f\n", R.Electronic)
	fmt.Fprintf(&b, "~ Nuclear repulsion energy (Hartree): %.6f\n", R.NuclearRepulsion)
	fmt.Fprintf(&b, "> Total ground state energy (Hartree): %.6f\n", R.Energy)
	fmt.Fprintf(&b, "Measured: # Particles: %.3f S: %.3f M: %.3f\n", R.Particles, R.SpinS, R.SpinM)
	if M.DipZ != nil {
		fmt.Fprintf(&b, "=== DIPOLE MOMENT ===\n")
		fmt.Fprintf(&b, "* Dipole moment along z (a.u.): %.8f  (debye): %.8f\n", R.DipoleZ, R.DipoleZ*auToDebye)
	}
	if R.Iterations > 0 {
		fmt.Fprintf(&b, "Optimizer %s stopped after %d iterations\n", cfg.Optimizer.Name, R.Iterations)
	}
	return b.String()
}
