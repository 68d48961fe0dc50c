package engine

import "github.com/nicoberrocal/expedicalc/distribution"

// SectorDamagePMF builds one sector position's team-damage PMF.
type SectorDamagePMF func(index int) distribution.PMF

// damageDistribution is DamageDistributionEngine (spec.md §4.5/§4.6 component
// C6): the convolution pipeline shared by FightDamageEngine and
// EventDamageEngine. It builds each sector's PMF once via pmfFor, then
// convolves two variants across the whole sector list:
//
//   - normal: every sector contributes its real PMF.
//   - worst:  sectors named in excluded contribute a single degenerate
//     PMF at 0, implementing DamageComparator's mutual-exclusion rule so a
//     sector's fight and event damage are never both counted in the same
//     worst-case distribution.
func damageDistribution(n int, pmfFor SectorDamagePMF, excluded map[int]bool) (normal, worst distribution.PMF) {
	normalPMFs := make([]distribution.PMF, n)
	worstPMFs := make([]distribution.PMF, n)
	for i := 0; i < n; i++ {
		p := pmfFor(i)
		normalPMFs[i] = p
		if excluded[i] {
			worstPMFs[i] = distribution.Single(0)
		} else {
			worstPMFs[i] = p
		}
	}
	return distribution.ConvolveAll(normalPMFs), distribution.ConvolveAll(worstPMFs)
}
