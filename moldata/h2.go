package moldata

// Integrals for H2/STO-3G at the equilibrium distance of 1.401 bohr, in the
// restricted Hartree-Fock molecular-orbital basis. Orbital 0 is the bonding
// (gerade) combination, orbital 1 the antibonding (ungerade) one; every
// integral mixing the two parities once vanishes.
const (
	h2H11   = -1.252477
	h2H22   = -0.475934
	h2J11   = 0.674493 //(11|11)
	h2J22   = 0.697397 //(22|22)
	h2J12   = 0.663472 //(11|22)
	h2K12   = 0.181287 //(12|12)
	h2ENuc  = 0.713776
	h2DipGU = 0.9324 //<g|z|u>; <g|z|g> and <u|z|u> are zero by symmetry
)

// H2 returns the built-in hydrogen-molecule integral set. The full-CI total
// energy implied by these integrals is -1.137270 Ha.
func H2() *MolData {
	M := &MolData{
		Name:      "H2",
		Basis:     "sto-3g",
		ENuc:      h2ENuc,
		NSpatial:  2,
		NElec:     2,
		BondR:     1.401,
		Reference: -1.137270,
	}
	M.OneBody = []float64{
		h2H11, 0,
		0, h2H22,
	}
	M.TwoBody = make([]float64, 16)
	M.TwoBody[M.Idx2(0, 0, 0, 0)] = h2J11
	M.TwoBody[M.Idx2(1, 1, 1, 1)] = h2J22
	M.TwoBody[M.Idx2(0, 0, 1, 1)] = h2J12
	M.TwoBody[M.Idx2(1, 1, 0, 0)] = h2J12
	M.TwoBody[M.Idx2(0, 1, 0, 1)] = h2K12
	M.TwoBody[M.Idx2(0, 1, 1, 0)] = h2K12
	M.TwoBody[M.Idx2(1, 0, 0, 1)] = h2K12
	M.TwoBody[M.Idx2(1, 0, 1, 0)] = h2K12
	M.DipZ = []float64{
		0, h2DipGU,
		h2DipGU, 0,
	}
	return M
}
