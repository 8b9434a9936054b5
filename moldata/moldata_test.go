package moldata

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

// TestRoundtrip writes the builtin set to a file and reads it back.
func TestRoundtrip(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "h2_sto3g.qmd")
	M := H2()
	if err := Write(name, M); err != nil {
		Te.Fatal(err)
	}
	N, err := Read(name)
	if err != nil {
		Te.Fatal(err)
	}
	if N.Name != M.Name || N.Basis != M.Basis || N.NSpatial != M.NSpatial || N.NElec != M.NElec {
		Te.Errorf("metadata changed in the roundtrip: %+v", N)
	}
	if math.Abs(N.ENuc-M.ENuc) > 1e-15 {
		Te.Errorf("nuclear repulsion changed: %v vs %v", N.ENuc, M.ENuc)
	}
	for i := range M.TwoBody {
		if N.TwoBody[i] != M.TwoBody[i] {
			Te.Errorf("two-body element %d changed: %v vs %v", i, N.TwoBody[i], M.TwoBody[i])
		}
	}
}

func TestReadMissing(Te *testing.T) {
	_, err := Read(filepath.Join(Te.TempDir(), "nope.qmd"))
	if err == nil {
		Te.Fatal("reading a missing file did not fail")
	}
	if e, ok := err.(Error); !ok || e.FileName() == "" {
		Te.Errorf("error does not carry the filename: %v", err)
	}
}

func TestReadCorrupt(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "garbage.qmd")
	if err := os.WriteFile(name, []byte("not a zstd stream at all"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := Read(name); err == nil {
		Te.Error("corrupt file accepted")
	}
}

func TestCheck(Te *testing.T) {
	M := H2()
	M.OneBody = M.OneBody[:2] //truncate
	if err := M.Check(); err == nil {
		Te.Error("inconsistent tensor sizes accepted")
	}
	M = H2()
	M.NElec = 9
	if err := M.Check(); err == nil {
		Te.Error("too many electrons accepted")
	}
	name := filepath.Join(Te.TempDir(), "bad.qmd")
	if err := Write(name, M); err == nil {
		Te.Error("Write accepted an inconsistent set")
	}
}

// TestH2Consistency checks the symmetry of the builtin integrals and the
// Hartree-Fock energy they imply (2 h11 + (11|11) + Enuc = -1.116685).
func TestH2Consistency(Te *testing.T) {
	M := H2()
	if err := M.Check(); err != nil {
		Te.Fatal(err)
	}
	n := M.NSpatial
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if M.OneBody[M.Idx1(p, q)] != M.OneBody[M.Idx1(q, p)] {
				Te.Errorf("one-body not symmetric at (%d,%d)", p, q)
			}
		}
	}
	ehf := 2*M.OneBody[M.Idx1(0, 0)] + M.TwoBody[M.Idx2(0, 0, 0, 0)] + M.ENuc
	if math.Abs(ehf-(-1.116685)) > 1e-5 {
		Te.Errorf("implied Hartree-Fock energy %v, want about -1.116685", ehf)
	}
}
