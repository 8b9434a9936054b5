package dataset

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Standardizer is a per-feature zero-mean/unit-variance transform. It is
// fit on the training subset only; applying it elsewhere reuses the fitted
// moments, so no test statistics ever leak into the transform.
type Standardizer struct {
	mean []float64
	std  []float64
}

// Fit estimates the per-feature moments from X.
func (s *Standardizer) Fit(X [][]float64) error {
	if len(X) < 2 {
		return Error{fmt.Sprintf("can't standardize %d samples", len(X)), "", []string{"Standardizer.Fit"}, true}
	}
	nfeat := len(X[0])
	s.mean = make([]float64, nfeat)
	s.std = make([]float64, nfeat)
	col := make([]float64, len(X))
	for j := 0; j < nfeat; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		s.mean[j] = stat.Mean(col, nil)
		s.std[j] = stat.StdDev(col, nil)
		if s.std[j] == 0 {
			s.std[j] = 1 //constant feature, leave it centered only
		}
	}
	return nil
}

// Transform returns a standardized copy of X using the fitted moments.
func (s *Standardizer) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = (v - s.mean[j]) / s.std[j]
		}
	}
	return out
}

// PCA is a linear dimensionality reduction to k components, fit on the
// (standardized) training subset.
type PCA struct {
	proj *mat.Dense //nfeat x k projection
	k    int
}

// Fit computes the principal components of X and keeps the first k.
func (p *PCA) Fit(X [][]float64, k int) error {
	if len(X) == 0 {
		return Error{"can't fit a projection on no samples", "", []string{"PCA.Fit"}, true}
	}
	nfeat := len(X[0])
	if k < 1 || k > nfeat {
		return Error{fmt.Sprintf("can't project %d features to %d", nfeat, k), "", []string{"PCA.Fit"}, true}
	}
	if len(X) < nfeat {
		return Error{fmt.Sprintf("%d samples are too few for %d features", len(X), nfeat), "", []string{"PCA.Fit"}, true}
	}
	M := mat.NewDense(len(X), nfeat, nil)
	for i, row := range X {
		M.SetRow(i, row)
	}
	var pc stat.PC
	if ok := pc.PrincipalComponents(M, nil); !ok {
		return Error{"principal component decomposition failed", "", []string{"PCA.Fit"}, true}
	}
	var vec mat.Dense
	pc.VectorsTo(&vec)
	p.proj = mat.DenseCopyOf(vec.Slice(0, nfeat, 0, k))
	p.k = k
	return nil
}

// Transform projects X onto the fitted components.
func (p *PCA) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	nfeat, _ := p.proj.Dims()
	row := mat.NewDense(1, nfeat, nil)
	var res mat.Dense
	for i := range X {
		row.SetRow(0, X[i])
		res.Mul(row, p.proj)
		out[i] = make([]float64, p.k)
		for j := 0; j < p.k; j++ {
			out[i][j] = res.At(0, j)
		}
	}
	return out
}

// MinMax rescales each feature linearly into [Lo, Hi]. Per the preparation
// contract it is fit on the union of the transformed train and test rows.
type MinMax struct {
	Lo, Hi   float64
	min, max []float64
}

// Fit records the per-feature extrema over all given row sets.
func (m *MinMax) Fit(sets ...[][]float64) error {
	var nfeat int
	seen := false
	for _, X := range sets {
		for _, row := range X {
			if !seen {
				nfeat = len(row)
				m.min = make([]float64, nfeat)
				m.max = make([]float64, nfeat)
				for j := range m.min {
					m.min[j] = math.Inf(1)
					m.max[j] = math.Inf(-1)
				}
				seen = true
			}
			for j, v := range row {
				if v < m.min[j] {
					m.min[j] = v
				}
				if v > m.max[j] {
					m.max[j] = v
				}
			}
		}
	}
	if !seen {
		return Error{"can't fit a rescaling on no samples", "", []string{"MinMax.Fit"}, true}
	}
	return nil
}

// Transform returns a rescaled copy of X. Constant features map to the
// middle of the range.
func (m *MinMax) Transform(X [][]float64) [][]float64 {
	mid := (m.Lo + m.Hi) / 2
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			if m.max[j] == m.min[j] {
				out[i][j] = mid
				continue
			}
			out[i][j] = m.Lo + (v-m.min[j])*(m.Hi-m.Lo)/(m.max[j]-m.min[j])
		}
	}
	return out
}

// Options configure Prepare. Train and Test are per-class example counts in
// the final partitions, Dim the target dimensionality. TrainFrac is the
// fraction of each class that goes to the training split (0 means 0.7).
// Seed drives the split; the same seed and options always give the same
// partitions.
type Options struct {
	Train     int
	Test      int
	Dim       int
	TrainFrac float64
	Seed      int64
}

// Prepare runs the full preparation pipeline on a base dataset: seeded
// per-class train/test split, standardization fit on the training split,
// dimensionality reduction fit on the standardized training split, min-max
// rescaling to [-1, 1] fit on the union, and finally per-class slicing to
// the requested counts. A class with fewer examples than requested is an
// error, not a silent truncation.
func Prepare(B *Base, o Options) (train, test map[string][][]float64, err error) {
	if o.TrainFrac == 0 {
		o.TrainFrac = 0.7
	}
	if o.TrainFrac <= 0 || o.TrainFrac >= 1 {
		return nil, nil, Error{fmt.Sprintf("training fraction %v out of (0,1)", o.TrainFrac), B.Name, []string{"Prepare"}, true}
	}
	if o.Train < 1 || o.Test < 1 {
		return nil, nil, Error{fmt.Sprintf("asked for %d training and %d testing examples per class", o.Train, o.Test), B.Name, []string{"Prepare"}, true}
	}
	trainRows, testRows, trainLab, testLab := split(B, o.TrainFrac, o.Seed)

	var std Standardizer
	if err := std.Fit(trainRows); err != nil {
		return nil, nil, errDecorate(err, "Prepare")
	}
	strain := std.Transform(trainRows)
	stest := std.Transform(testRows)

	var pca PCA
	if err := pca.Fit(strain, o.Dim); err != nil {
		return nil, nil, errDecorate(err, "Prepare")
	}
	rtrain := pca.Transform(strain)
	rtest := pca.Transform(stest)

	mm := MinMax{Lo: -1, Hi: 1}
	if err := mm.Fit(rtrain, rtest); err != nil {
		return nil, nil, errDecorate(err, "Prepare")
	}
	rtrain = mm.Transform(rtrain)
	rtest = mm.Transform(rtest)

	train, err = partition(B, rtrain, trainLab, o.Train, "training")
	if err != nil {
		return nil, nil, errDecorate(err, "Prepare")
	}
	test, err = partition(B, rtest, testLab, o.Test, "testing")
	if err != nil {
		return nil, nil, errDecorate(err, "Prepare")
	}
	return train, test, nil
}

// split shuffles each class independently with the given seed and cuts it
// at the training fraction. Rows keep class-grouped order.
func split(B *Base, frac float64, seed int64) (trainRows, testRows [][]float64, trainLab, testLab []string) {
	rnd := rand.New(rand.NewSource(uint64(seed)))
	for _, class := range B.Classes {
		var idx []int
		for i, l := range B.Labels {
			if l == class {
				idx = append(idx, i)
			}
		}
		rnd.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		ntrain := int(frac * float64(len(idx)))
		for k, i := range idx {
			if k < ntrain {
				trainRows = append(trainRows, B.X[i])
				trainLab = append(trainLab, class)
			} else {
				testRows = append(testRows, B.X[i])
				testLab = append(testLab, class)
			}
		}
	}
	return trainRows, testRows, trainLab, testLab
}

func partition(B *Base, rows [][]float64, labels []string, count int, which string) (map[string][][]float64, error) {
	out := make(map[string][][]float64)
	for _, class := range B.Classes {
		var c [][]float64
		for i, l := range labels {
			if l == class {
				c = append(c, rows[i])
			}
		}
		if len(c) < count {
			return nil, Error{fmt.Sprintf("class %s has %d %s examples after the split, %d requested", class, len(c), which, count), B.Name, []string{"partition"}, true}
		}
		out[class] = c[:count:count]
	}
	return out, nil
}

// errDecorate adds the caller's name to an Error before passing it up.
func errDecorate(err error, caller string) error {
	err2, ok := err.(interface{ Decorate(string) []string })
	if ok {
		err2.Decorate(caller)
		return err
	}
	return Error{err.Error(), "", []string{caller}, true}
}
