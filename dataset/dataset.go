//Package dataset provides the named base datasets used by the
//classification example, and the standardize/reduce/rescale pipeline that
//turns one of them into class-keyed training and testing partitions.
package dataset

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

//The base sets are generated rather than shipped: a constant internal seed
//makes each named dataset a fixed table, independent of the split seed the
//caller provides later.

const (
	gauss3Seed uint64 = 1913
	adhocSeed  uint64 = 407
)

// Base is a fixed labeled tabular dataset accessed by name.
type Base struct {
	Name    string
	Classes []string //distinct labels, fixed order
	Labels  []string //per row
	X       [][]float64
}

// NFeatures returns the number of columns of the table.
func (B *Base) NFeatures() int {
	if len(B.X) == 0 {
		return 0
	}
	return len(B.X[0])
}

// PerClass returns the number of rows carrying each class label.
func (B *Base) PerClass() map[string]int {
	c := make(map[string]int)
	for _, l := range B.Labels {
		c[l]++
	}
	return c
}

// Load returns the named base dataset. Known names are "gauss3" (three
// classes, 13 features, 59/71/48 rows) and "adhoc" (two classes, 5
// features, 50 rows each).
func Load(name string) (*Base, error) {
	switch name {
	case "gauss3":
		return gaussianBase(name, gauss3Seed, 13, []string{"A", "B", "C"}, []int{59, 71, 48}, 3.0), nil
	case "adhoc":
		return gaussianBase(name, adhocSeed, 5, []string{"A", "B"}, []int{50, 50}, 2.0), nil
	default:
		return nil, Error{fmt.Sprintf("unknown dataset %q", name), name, []string{"Load"}, true}
	}
}

// gaussianBase builds a class-grouped table of Gaussian blobs: one center
// per class drawn uniformly in [-spread, spread] per feature, unit variance
// around it.
func gaussianBase(name string, seed uint64, nfeat int, classes []string, sizes []int, spread float64) *Base {
	src := rand.NewSource(seed)
	uni := distuv.Uniform{Min: -spread, Max: spread, Src: src}
	centers := make([][]float64, len(classes))
	for c := range classes {
		centers[c] = make([]float64, nfeat)
		for j := range centers[c] {
			centers[c][j] = uni.Rand()
		}
	}
	B := &Base{Name: name, Classes: classes}
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for c, class := range classes {
		for i := 0; i < sizes[c]; i++ {
			row := make([]float64, nfeat)
			for j := range row {
				row[j] = centers[c][j] + norm.Rand()
			}
			B.X = append(B.X, row)
			B.Labels = append(B.Labels, class)
		}
	}
	return B
}

//Errors

// Error is the error type for dataset loading and preparation.
type Error struct {
	message  string
	dataset  string //the dataset involved, or empty
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.dataset == "" {
		return fmt.Sprintf("dataset error: %s", err.message)
	}
	return fmt.Sprintf("dataset %s error: %s", err.dataset, err.message)
}

// Decorate adds new information to the error and returns the decoration
// slice.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }
