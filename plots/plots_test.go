package plots

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConvergence(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "conv")
	history := []float64{-1.0, -1.05, -1.1, -1.12, -1.13}
	if err := Convergence(history, "VQE convergence", name); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(name + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("empty plot file written")
	}
	if err := Convergence(nil, "empty", name); err == nil {
		Te.Error("empty history plotted")
	}
}

func TestPartition(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "classes")
	data := map[string][][]float64{
		"A": {{0.1, 0.2, 0.5}, {0.2, 0.3, 0.1}},
		"B": {{-0.4, -0.1, 0.0}, {-0.5, -0.2, 0.3}},
	}
	if err := Partition(data, "prepared dataset", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Fatal(err)
	}
	bad := map[string][][]float64{"A": {{0.1}}}
	if err := Partition(bad, "bad", name); err == nil {
		Te.Error("1-feature vectors plotted")
	}
	if err := Partition(nil, "empty", name); err == nil {
		Te.Error("empty data plotted")
	}
}
