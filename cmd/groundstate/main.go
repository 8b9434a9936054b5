// groundstate runs the chemistry example: it loads molecular integrals,
// maps the electronic Hamiltonian to qubits and solves for the ground
// state, printing the total energy and the measured observables. With no
// file argument it uses the built-in H2/STO-3G integrals, for which the
// total ground state energy is -1.137 Hartree.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kingsraghav/qiskit-tutorials/algo"
	"github.com/kingsraghav/qiskit-tutorials/plots"
)

func main() {
	file := flag.String("file", "", "serialized integrals (.qmd); empty for the built-in H2 molecule")
	algorithm := flag.String("algorithm", "vqe", "solver: vqe or exact")
	optimizer := flag.String("optimizer", "nelder_mead", "optimizer for the variational solver")
	maxiter := flag.Int("maxiter", 300, "optimizer iterations")
	seed := flag.Int64("seed", 50, "random seed for the optimizer")
	plotname := flag.String("plot", "", "if given, name for the convergence plot")
	flag.Parse()

	cfg := algo.Config{}
	cfg.Problem.Name = "ground_state"
	cfg.Problem.RandomSeed = *seed
	cfg.Algorithm.Name = *algorithm
	cfg.Algorithm.MaxIter = *maxiter
	cfg.Optimizer.Name = *optimizer
	if *file != "" {
		cfg.Driver.Name = "file"
		cfg.Driver.Path = *file
	}
	cfg.SetDefaults()

	R, err := algo.Run(cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(R.Report)
	fmt.Printf("Ground state energy: %.6f Hartree\n", R.Energy)
	if *plotname != "" && len(R.History) > 0 {
		if err := plots.Convergence(R.History, "VQE convergence", *plotname); err != nil {
			log.Fatal(err)
		}
	}
}
