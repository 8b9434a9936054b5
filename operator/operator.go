//Package operator builds qubit operators from molecular integral sets. Spin
//orbitals are in block order (all alpha, then all beta) and spin orbital p
//is carried by qubit p of the register.
package operator

import (
	"fmt"

	quant "github.com/kingsraghav/qiskit-tutorials"
	"github.com/kingsraghav/qiskit-tutorials/moldata"
)

// CoeffTol is the magnitude under which Pauli terms are dropped after the
// mapping.
const CoeffTol = 1e-12

// lower returns the Jordan-Wigner image of the annihilation operator on
// spin orbital p: Z...Z (X + iY)/2.
func lower(nq, p int) *quant.PauliSum {
	return ladder(nq, p, complex(0, 0.5))
}

// raise returns the Jordan-Wigner image of the creation operator on spin
// orbital p: Z...Z (X - iY)/2.
func raise(nq, p int) *quant.PauliSum {
	return ladder(nq, p, complex(0, -0.5))
}

func ladder(nq, p int, ycoeff complex128) *quant.PauliSum {
	P, _ := quant.NewPauliSum(nq)
	x := make([]byte, nq)
	y := make([]byte, nq)
	for q := 0; q < nq; q++ {
		switch {
		case q < p:
			x[q], y[q] = 'Z', 'Z'
		case q == p:
			x[q], y[q] = 'X', 'Y'
		default:
			x[q], y[q] = 'I', 'I'
		}
	}
	P.AddTerm(string(x), 0.5)
	P.AddTerm(string(y), ycoeff)
	return P
}

// prodTerm accumulates coeff times the product of the given ladder
// operators into acc.
func prodTerm(acc *quant.PauliSum, coeff float64, ops ...*quant.PauliSum) error {
	if len(ops) == 0 {
		return nil
	}
	prod := ops[0]
	var err error
	for _, o := range ops[1:] {
		prod, err = prod.Mul(o)
		if err != nil {
			return err
		}
	}
	prod.Scale(complex(coeff, 0))
	return acc.Add(prod)
}

// Hamiltonian maps the electronic Hamiltonian of the integral set to a
// qubit operator via the Jordan-Wigner transformation. The nuclear
// repulsion energy is NOT included; it is a classical shift handled by the
// caller.
func Hamiltonian(M *moldata.MolData) (*quant.PauliSum, error) {
	if err := M.Check(); err != nil {
		return nil, Error{err.Error(), M.Name, []string{"Hamiltonian"}, true}
	}
	n := M.NSpatial
	nq := 2 * n
	H, err := quant.NewPauliSum(nq)
	if err != nil {
		return nil, Error{err.Error(), M.Name, []string{"Hamiltonian"}, true}
	}
	//one-body part, both spin channels
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			h := M.OneBody[M.Idx1(p, q)]
			if h == 0 {
				continue
			}
			for s := 0; s < 2; s++ {
				if err := prodTerm(H, h, raise(nq, p+s*n), lower(nq, q+s*n)); err != nil {
					return nil, Error{err.Error(), M.Name, []string{"Hamiltonian"}, true}
				}
			}
		}
	}
	//two-body part: 1/2 sum (pq|rs) a+_ps a+_rt a_st a_qs over spins s,t
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			for r := 0; r < n; r++ {
				for s := 0; s < n; s++ {
					g := M.TwoBody[M.Idx2(p, q, r, s)]
					if g == 0 {
						continue
					}
					for sa := 0; sa < 2; sa++ {
						for sb := 0; sb < 2; sb++ {
							err := prodTerm(H, 0.5*g,
								raise(nq, p+sa*n), raise(nq, r+sb*n),
								lower(nq, s+sb*n), lower(nq, q+sa*n))
							if err != nil {
								return nil, Error{err.Error(), M.Name, []string{"Hamiltonian"}, true}
							}
						}
					}
				}
			}
		}
	}
	H.Simplify(CoeffTol)
	return H, nil
}

// Map resolves a mapping name from the configuration vocabulary and applies
// it. Only "jordan_wigner" is implemented; "parity" is recognized but
// reported as unsupported.
func Map(name string, M *moldata.MolData) (*quant.PauliSum, error) {
	switch name {
	case "jordan_wigner":
		return Hamiltonian(M)
	case "parity":
		return nil, Error{"the parity mapping is not supported, use jordan_wigner", M.Name, []string{"Map"}, true}
	default:
		return nil, Error{fmt.Sprintf("unknown qubit mapping %q", name), M.Name, []string{"Map"}, true}
	}
}

// Number returns the particle-number operator on nq spin orbitals.
func Number(nq int) (*quant.PauliSum, error) {
	N, err := quant.NewPauliSum(nq)
	if err != nil {
		return nil, Error{err.Error(), "", []string{"Number"}, true}
	}
	for p := 0; p < nq; p++ {
		if err := prodTerm(N, 1, raise(nq, p), lower(nq, p)); err != nil {
			return nil, Error{err.Error(), "", []string{"Number"}, true}
		}
	}
	N.Simplify(CoeffTol)
	return N, nil
}

// SpinZ returns the z-projection spin operator (in units of hbar) for n
// spatial orbitals.
func SpinZ(n int) (*quant.PauliSum, error) {
	nq := 2 * n
	S, err := quant.NewPauliSum(nq)
	if err != nil {
		return nil, Error{err.Error(), "", []string{"SpinZ"}, true}
	}
	for i := 0; i < n; i++ {
		if err := prodTerm(S, 0.5, raise(nq, i), lower(nq, i)); err != nil {
			return nil, Error{err.Error(), "", []string{"SpinZ"}, true}
		}
		if err := prodTerm(S, -0.5, raise(nq, i+n), lower(nq, i+n)); err != nil {
			return nil, Error{err.Error(), "", []string{"SpinZ"}, true}
		}
	}
	S.Simplify(CoeffTol)
	return S, nil
}

// SpinSquared returns the total-spin operator S^2 for n spatial orbitals,
// built as S-S+ + Sz + Sz^2.
func SpinSquared(n int) (*quant.PauliSum, error) {
	nq := 2 * n
	splus, _ := quant.NewPauliSum(nq)
	sminus, _ := quant.NewPauliSum(nq)
	for i := 0; i < n; i++ {
		if err := prodTerm(splus, 1, raise(nq, i), lower(nq, i+n)); err != nil {
			return nil, Error{err.Error(), "", []string{"SpinSquared"}, true}
		}
		if err := prodTerm(sminus, 1, raise(nq, i+n), lower(nq, i)); err != nil {
			return nil, Error{err.Error(), "", []string{"SpinSquared"}, true}
		}
	}
	S2, err := sminus.Mul(splus)
	if err != nil {
		return nil, Error{err.Error(), "", []string{"SpinSquared"}, true}
	}
	sz, err := SpinZ(n)
	if err != nil {
		return nil, errDecorate(err, "SpinSquared")
	}
	sz2, err := sz.Mul(sz)
	if err != nil {
		return nil, Error{err.Error(), "", []string{"SpinSquared"}, true}
	}
	if err := S2.Add(sz); err != nil {
		return nil, Error{err.Error(), "", []string{"SpinSquared"}, true}
	}
	if err := S2.Add(sz2); err != nil {
		return nil, Error{err.Error(), "", []string{"SpinSquared"}, true}
	}
	S2.Simplify(CoeffTol)
	return S2, nil
}

// DipoleZ returns the z-component dipole-moment operator for the integral
// set, electronic part plus the nuclear constant, in atomic units. Sets
// without dipole integrals yield an error.
func DipoleZ(M *moldata.MolData) (*quant.PauliSum, error) {
	if M.DipZ == nil {
		return nil, Error{"integral set carries no dipole integrals", M.Name, []string{"DipoleZ"}, true}
	}
	if err := M.Check(); err != nil {
		return nil, Error{err.Error(), M.Name, []string{"DipoleZ"}, true}
	}
	n := M.NSpatial
	nq := 2 * n
	D, err := quant.NewPauliSum(nq)
	if err != nil {
		return nil, Error{err.Error(), M.Name, []string{"DipoleZ"}, true}
	}
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			d := M.DipZ[M.Idx1(p, q)]
			if d == 0 {
				continue
			}
			//electrons carry charge -1
			for s := 0; s < 2; s++ {
				if err := prodTerm(D, -d, raise(nq, p+s*n), lower(nq, q+s*n)); err != nil {
					return nil, Error{err.Error(), M.Name, []string{"DipoleZ"}, true}
				}
			}
		}
	}
	identity := make([]byte, nq)
	for i := range identity {
		identity[i] = 'I'
	}
	D.AddTerm(string(identity), complex(M.NucDipZ, 0))
	D.Simplify(CoeffTol)
	return D, nil
}

// HartreeFock returns the reference state that occupies the nelec lowest
// spin orbitals, pairing electrons in spatial orbitals (closed shell first,
// one unpaired alpha electron if nelec is odd).
func HartreeFock(n, nelec int) (*quant.State, error) {
	nq := 2 * n
	if nelec < 1 || nelec > nq {
		return nil, Error{fmt.Sprintf("%d electrons don't fit in %d spin orbitals", nelec, nq), "", []string{"HartreeFock"}, true}
	}
	index := 0
	for i := 0; i < nelec/2; i++ {
		index |= 1 << uint(i)   //alpha
		index |= 1 << uint(i+n) //beta
	}
	if nelec%2 == 1 {
		index |= 1 << uint(nelec/2)
	}
	S, err := quant.BasisState(nq, index)
	if err != nil {
		return nil, Error{err.Error(), "", []string{"HartreeFock"}, true}
	}
	return S, nil
}

//Errors

func errDecorate(err error, caller string) error {
	err2, ok := err.(quant.Error)
	if ok {
		err2.Decorate(caller)
		return err
	}
	return Error{err.Error(), "", []string{caller}, true}
}

// Error is the error type for operator construction.
type Error struct {
	message  string
	molecule string //the molecule being mapped, or empty
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.molecule == "" {
		return fmt.Sprintf("operator error: %s", err.message)
	}
	return fmt.Sprintf("operator error for %s: %s", err.molecule, err.message)
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
