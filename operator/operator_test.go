package operator

import (
	"fmt"
	"math"
	"testing"

	"github.com/kingsraghav/qiskit-tutorials/moldata"
)

// TestLadderAlgebra checks the anticommutator {a_p, a+_p} = 1 and the
// number operator on occupied/empty orbitals.
func TestLadderAlgebra(Te *testing.T) {
	nq := 2
	a := lower(nq, 0)
	ad := raise(nq, 0)
	aad, err := a.Mul(ad)
	if err != nil {
		Te.Fatal(err)
	}
	ada, err := ad.Mul(a)
	if err != nil {
		Te.Fatal(err)
	}
	if err := aad.Add(ada); err != nil {
		Te.Fatal(err)
	}
	aad.Simplify(1e-12)
	if aad.NTerms() != 1 || aad.Coeff("II") != 1 {
		Te.Errorf("{a, a+} is not the identity: %v", aad.Strings())
	}
}

func TestNumberOperator(Te *testing.T) {
	N, err := Number(4)
	if err != nil {
		Te.Fatal(err)
	}
	hf, err := HartreeFock(2, 2)
	if err != nil {
		Te.Fatal(err)
	}
	v, err := N.Expectation(hf)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(v-2) > 1e-10 {
		Te.Errorf("particle number on the HF state: %v, want 2", v)
	}
}

// TestH2Hamiltonian maps the builtin H2 integrals and checks the
// Hartree-Fock expectation value and the exact (full CI) ground state
// against the values the integrals imply.
func TestH2Hamiltonian(Te *testing.T) {
	M := moldata.H2()
	H, err := Hamiltonian(M)
	if err != nil {
		Te.Fatal(err)
	}
	if H.NQubits() != 4 {
		Te.Fatalf("H2 Hamiltonian on %d qubits, want 4", H.NQubits())
	}
	hf, err := HartreeFock(M.NSpatial, M.NElec)
	if err != nil {
		Te.Fatal(err)
	}
	ehf, err := H.Expectation(hf)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(ehf-(-1.830461)) > 1e-5 {
		Te.Errorf("HF electronic energy %v, want about -1.830461", ehf)
	}
	eg, ground, err := H.LowestEigen()
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(eg-(-1.851046)) > 1e-4 {
		Te.Errorf("FCI electronic energy %v, want about -1.851046", eg)
	}
	total := eg + M.ENuc
	if math.Abs(total-M.Reference) > 1e-4 {
		Te.Errorf("total energy %v, reference %v", total, M.Reference)
	}
	if math.Abs(total-(-1.136)) > 2e-3 {
		Te.Errorf("total energy %v too far from the documented -1.136", total)
	}
	fmt.Println("H2 ground state energy", total)

	//ground-state observables: N=2, Sz=0, S^2=0, dipole 0 by symmetry
	N, _ := Number(4)
	if v, _ := N.Expectation(ground); math.Abs(v-2) > 1e-8 {
		Te.Errorf("ground state particle number %v", v)
	}
	Sz, err := SpinZ(2)
	if err != nil {
		Te.Fatal(err)
	}
	if v, _ := Sz.Expectation(ground); math.Abs(v) > 1e-8 {
		Te.Errorf("ground state Sz %v", v)
	}
	S2, err := SpinSquared(2)
	if err != nil {
		Te.Fatal(err)
	}
	if v, _ := S2.Expectation(ground); math.Abs(v) > 1e-8 {
		Te.Errorf("ground state S^2 %v", v)
	}
	D, err := DipoleZ(M)
	if err != nil {
		Te.Fatal(err)
	}
	if v, _ := D.Expectation(ground); math.Abs(v) > 1e-8 {
		Te.Errorf("ground state dipole %v, want 0 by symmetry", v)
	}
}

func TestMapVocabulary(Te *testing.T) {
	M := moldata.H2()
	if _, err := Map("jordan_wigner", M); err != nil {
		Te.Error(err)
	}
	if _, err := Map("parity", M); err == nil {
		Te.Error("parity mapping should be reported unsupported")
	}
	if _, err := Map("bravyi_kitaev", M); err == nil {
		Te.Error("unknown mapping accepted")
	}
}

func TestHartreeFockOccupation(Te *testing.T) {
	//2 electrons in 2 spatial orbitals: qubits 0 (1-alpha) and 2 (1-beta).
	hf, err := HartreeFock(2, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if hf.Probability(5) != 1 {
		Te.Errorf("closed-shell HF state is not |0101>: %v", hf.Probabilities())
	}
	//3 electrons: add the 2-alpha orbital, qubit 1.
	hf, err = HartreeFock(2, 3)
	if err != nil {
		Te.Fatal(err)
	}
	if hf.Probability(7) != 1 {
		Te.Errorf("odd-electron HF state wrong: %v", hf.Probabilities())
	}
	if _, err := HartreeFock(2, 5); err == nil {
		Te.Error("overfull occupation accepted")
	}
}
