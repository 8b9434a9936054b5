//Package optimizer provides the classical minimizers driven by the
//variational algorithms: SPSA and a Nelder-Mead adapter over
//gonum/optimize. Methods are resolved by the external vocabulary names
//"spsa" and "nelder_mead".
package optimizer

import (
	"fmt"
	"math"
	"math/rand"

	gopt "gonum.org/v1/gonum/optimize"
)

// Objective is the scalar function being minimized.
type Objective func(x []float64) (float64, error)

// Outcome is the result of a minimization: the best point and value seen,
// and the objective value recorded at each iteration.
type Outcome struct {
	X          []float64
	F          float64
	Iterations int
	History    []float64
}

// Method is a classical minimizer.
type Method interface {
	Minimize(f Objective, x0 []float64) (*Outcome, error)
}

// New resolves an optimizer name. MaxIter bounds the iteration count and
// seed drives any stochastic steps.
func New(name string, maxiter int, seed int64) (Method, error) {
	if maxiter < 1 {
		return nil, Error{fmt.Sprintf("%d iterations requested", maxiter), name, []string{"New"}, true}
	}
	switch name {
	case "spsa":
		return &SPSA{MaxIter: maxiter, Seed: seed}, nil
	case "nelder_mead":
		return &NelderMead{MaxIter: maxiter}, nil
	default:
		return nil, Error{fmt.Sprintf("unknown optimizer %q", name), name, []string{"New"}, true}
	}
}

// SPSA is simultaneous-perturbation stochastic approximation with the
// standard power-law gain sequences. Two objective evaluations per
// iteration regardless of dimension. The returned point is the best one
// evaluated, not the last iterate.
type SPSA struct {
	MaxIter int
	Seed    int64
	//gain-sequence constants; zero values take the usual defaults
	A     float64 //a_k = A / (k+1+Stab)^Alpha
	C     float64 //c_k = C / (k+1)^Gamma
	Stab  float64
	Alpha float64
	Gamma float64
}

func (o *SPSA) defaults() (a, c, stab, alpha, gamma float64) {
	a, c, stab, alpha, gamma = o.A, o.C, o.Stab, o.Alpha, o.Gamma
	if a == 0 {
		a = 0.3
	}
	if c == 0 {
		c = 0.1
	}
	if stab == 0 {
		stab = 10
	}
	if alpha == 0 {
		alpha = 0.602
	}
	if gamma == 0 {
		gamma = 0.101
	}
	return a, c, stab, alpha, gamma
}

// Minimize runs SPSA from x0.
func (o *SPSA) Minimize(f Objective, x0 []float64) (*Outcome, error) {
	if len(x0) == 0 {
		return nil, Error{"empty starting point", "spsa", []string{"Minimize"}, true}
	}
	a, c, stab, alpha, gamma := o.defaults()
	rnd := rand.New(rand.NewSource(o.Seed))
	x := make([]float64, len(x0))
	copy(x, x0)
	best := &Outcome{X: append([]float64(nil), x0...), F: math.Inf(1)}
	delta := make([]float64, len(x))
	xp := make([]float64, len(x))
	xm := make([]float64, len(x))
	for k := 0; k < o.MaxIter; k++ {
		ak := a / math.Pow(float64(k+1)+stab, alpha)
		ck := c / math.Pow(float64(k+1), gamma)
		for i := range delta {
			if rnd.Intn(2) == 0 {
				delta[i] = 1
			} else {
				delta[i] = -1
			}
			xp[i] = x[i] + ck*delta[i]
			xm[i] = x[i] - ck*delta[i]
		}
		fp, err := f(xp)
		if err != nil {
			return nil, errDecorate(err, "SPSA.Minimize")
		}
		fm, err := f(xm)
		if err != nil {
			return nil, errDecorate(err, "SPSA.Minimize")
		}
		for i := range x {
			x[i] -= ak * (fp - fm) / (2 * ck * delta[i])
		}
		fx := math.Min(fp, fm) //cheapest available proxy for f(x) this iteration
		if fp < best.F {
			best.F = fp
			copy(best.X, xp)
		}
		if fm < best.F {
			best.F = fm
			copy(best.X, xm)
		}
		best.History = append(best.History, fx)
		best.Iterations = k + 1
	}
	//one final evaluation at the last iterate, which the loop never sees
	fx, err := f(x)
	if err != nil {
		return nil, errDecorate(err, "SPSA.Minimize")
	}
	if fx < best.F {
		best.F = fx
		copy(best.X, x)
	}
	return best, nil
}

// NelderMead wraps the gonum/optimize simplex method.
type NelderMead struct {
	MaxIter int
}

// Minimize runs the simplex method from x0. Objective errors abort the run
// by reporting +Inf to the simplex and are returned afterwards.
func (o *NelderMead) Minimize(f Objective, x0 []float64) (*Outcome, error) {
	if len(x0) == 0 {
		return nil, Error{"empty starting point", "nelder_mead", []string{"Minimize"}, true}
	}
	var ferr error
	var history []float64
	p := gopt.Problem{
		Func: func(x []float64) float64 {
			v, err := f(x)
			if err != nil {
				if ferr == nil {
					ferr = err
				}
				return math.Inf(1)
			}
			history = append(history, v)
			return v
		},
	}
	settings := &gopt.Settings{
		FuncEvaluations: o.MaxIter,
		Converger: &gopt.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 50,
		},
	}
	res, err := gopt.Minimize(p, x0, settings, &gopt.NelderMead{})
	if ferr != nil {
		return nil, errDecorate(ferr, "NelderMead.Minimize")
	}
	if err != nil && (res == nil || len(res.X) == 0) {
		return nil, Error{err.Error(), "nelder_mead", []string{"Minimize"}, true}
	}
	return &Outcome{
		X:          res.X,
		F:          res.F,
		Iterations: res.MajorIterations,
		History:    history,
	}, nil
}

//Errors

func errDecorate(err error, caller string) error {
	err2, ok := err.(interface{ Decorate(string) []string })
	if ok {
		err2.Decorate(caller)
		return err
	}
	return Error{err.Error(), "", []string{caller}, true}
}

// Error is the error type for the optimizers.
type Error struct {
	message string
	method  string //the optimizer involved, or empty
	deco    []string
	critic  bool
}

func (err Error) Error() string {
	if err.method == "" {
		return fmt.Sprintf("optimizer error: %s", err.message)
	}
	return fmt.Sprintf("optimizer %s error: %s", err.method, err.message)
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
func (err Error) Critical() bool { return err.critic }
