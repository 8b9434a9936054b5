//Package moldata reads and writes serialized molecular integral sets, the
//precomputed data the ground-state example consumes. Files are gob payloads
//behind a zstd compressor, conventionally with the .qmd extension.
package moldata

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
)

// MolData holds the molecular integrals for one molecule in one basis set,
// in the molecular-orbital basis. Two-body integrals are in chemist (pq|rs)
// order, flattened with Idx2. All energies are in Hartree, dipoles in atomic
// units.
type MolData struct {
	Name      string
	Basis     string
	ENuc      float64 //nuclear repulsion energy
	NSpatial  int     //number of spatial orbitals
	NElec     int     //number of electrons
	OneBody   []float64
	TwoBody   []float64
	DipZ      []float64 //z-component one-body dipole integrals, NSpatial x NSpatial
	NucDipZ   float64   //z-component of the nuclear dipole
	BondR     float64   //internuclear distance, bohr (0 if not meaningful)
	Reference float64   //reference total ground-state energy, 0 if unknown
}

// Idx1 returns the flat index of the one-body element (p,q).
func (M *MolData) Idx1(p, q int) int {
	return p*M.NSpatial + q
}

// Idx2 returns the flat index of the chemist-order two-body element (pq|rs).
func (M *MolData) Idx2(p, q, r, s int) int {
	n := M.NSpatial
	return ((p*n+q)*n+r)*n + s
}

// Check verifies that the tensor sizes are consistent with NSpatial and that
// the electron count fits in the orbitals.
func (M *MolData) Check() error {
	n := M.NSpatial
	if n < 1 {
		return Error{fmt.Sprintf("integral set %q has %d spatial orbitals", M.Name, n), "", []string{"Check"}, true}
	}
	if M.NElec < 1 || M.NElec > 2*n {
		return Error{fmt.Sprintf("integral set %q has %d electrons for %d spin orbitals", M.Name, M.NElec, 2*n), "", []string{"Check"}, true}
	}
	if len(M.OneBody) != n*n {
		return Error{fmt.Sprintf("one-body tensor has %d elements, want %d", len(M.OneBody), n*n), "", []string{"Check"}, true}
	}
	if len(M.TwoBody) != n*n*n*n {
		return Error{fmt.Sprintf("two-body tensor has %d elements, want %d", len(M.TwoBody), n*n*n*n), "", []string{"Check"}, true}
	}
	if M.DipZ != nil && len(M.DipZ) != n*n {
		return Error{fmt.Sprintf("dipole tensor has %d elements, want %d", len(M.DipZ), n*n), "", []string{"Check"}, true}
	}
	return nil
}

// Write serializes M to the named file.
func Write(name string, M *MolData) error {
	if err := M.Check(); err != nil {
		return errDecorate(err, "Write")
	}
	f, err := os.Create(name)
	if err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	defer f.Close()
	z, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	if err := gob.NewEncoder(z).Encode(M); err != nil {
		z.Close()
		return Error{"can't encode integrals: " + err.Error(), name, []string{"Write"}, true}
	}
	if err := z.Close(); err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	return nil
}

// Read deserializes an integral set from the named file and checks it.
func Read(name string) (*MolData, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"Read"}, true}
	}
	defer f.Close()
	z, err := zstd.NewReader(f)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"Read"}, true}
	}
	defer z.Close()
	M := new(MolData)
	if err := gob.NewDecoder(z.IOReadCloser()).Decode(M); err != nil {
		return nil, Error{"can't decode integrals: " + err.Error(), name, []string{"Read"}, true}
	}
	if err := M.Check(); err != nil {
		return nil, errDecorate(err, "Read")
	}
	return M, nil
}

//Errors

// errDecorate adds the caller's name to an Error before passing it up.
func errDecorate(err error, caller string) error {
	err2, ok := err.(interface{ Decorate(string) []string })
	if ok {
		err2.Decorate(caller)
		return err
	}
	return Error{err.Error(), "", []string{caller}, true}
}

// Error is the error type for integral files.
type Error struct {
	message  string
	filename string //the offending file, or empty
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("moldata error: %s", err.message)
	}
	return fmt.Sprintf("moldata file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error and returns the decoration
// slice.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }
