// classify runs the variational classification example: it prepares a
// named dataset (seeded split, train-only standardization, PCA to the
// requested dimensionality, min-max scaling to [-1,1]) and trains a
// variational classifier once with the raw amplitude encoding and once
// with the second-order expansion, reporting the test accuracy of each.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kingsraghav/qiskit-tutorials/algo"
	"github.com/kingsraghav/qiskit-tutorials/dataset"
	"github.com/kingsraghav/qiskit-tutorials/plots"
)

func main() {
	name := flag.String("dataset", "gauss3", "dataset to prepare (gauss3 or adhoc)")
	train := flag.Int("train", 20, "training samples per class")
	test := flag.Int("test", 10, "testing samples per class")
	dim := flag.Int("dim", 2, "feature dimensionality after PCA")
	seed := flag.Int64("seed", 10598, "random seed for the split and the optimizer")
	maxiter := flag.Int("maxiter", 100, "optimizer iterations")
	plotname := flag.String("plot", "", "if given, prefix for the dataset and convergence plots")
	flag.Parse()

	B, err := dataset.Load(*name)
	if err != nil {
		log.Fatal(err)
	}
	tr, te, err := dataset.Prepare(B, dataset.Options{Train: *train, Test: *test, Dim: *dim, Seed: *seed})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Prepared %s: %d classes, %d features, %d training and %d testing samples per class\n",
		B.Name, len(B.Classes), *dim, *train, *test)
	if *plotname != "" && *dim >= 2 {
		if err := plots.Partition(tr, fmt.Sprintf("%s training set", B.Name), *plotname+"_train"); err != nil {
			log.Fatal(err)
		}
	}

	for _, fm := range []string{"raw", "second_order"} {
		cfg := algo.Config{}
		cfg.Problem.Name = "classification"
		cfg.Problem.RandomSeed = *seed
		cfg.FeatureMap.Name = fm
		cfg.Algorithm.MaxIter = *maxiter
		cfg.SetDefaults()
		R, err := algo.RunWithData(cfg, tr, te)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(R.Report)
		fmt.Printf("Feature map %s: testing success ratio %.3f\n\n", fm, R.TestAccuracy)
		if *plotname != "" {
			if err := plots.Convergence(R.History, "Training loss: "+fm, *plotname+"_"+fm); err != nil {
				log.Fatal(err)
			}
		}
	}
}
