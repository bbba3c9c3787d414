package selection

import (
	"math"
	"sort"

	"github.com/UIBK-DPS-DC/pulse/internal/moea"
	"github.com/UIBK-DPS-DC/pulse/internal/utils"
)

// PreferenceSelector sorts a population by objective 0 ascending and
// picks the element at a fractional position, preference in [0, 1]:
// 0 picks the best-objective-0 extreme, 1 the worst, 0.5 the median.
// Grounded on local/selection/PreferenceSelector.java.
type PreferenceSelector struct {
	preference float64
}

// NewPreferenceSelector builds a selector for the given preference.
func NewPreferenceSelector(preference float64) *PreferenceSelector {
	return &PreferenceSelector{preference: preference}
}

func (s *PreferenceSelector) Select(population []*moea.Solution) (*moea.Solution, bool) {
	pop := feasible(population)
	if len(pop) == 0 {
		return nil, false
	}
	if len(pop) == 1 {
		return pop[0], true
	}

	sorter := &utils.Sorter[moea.Solution]{
		Objects: pop,
		By:      func(sol *moea.Solution) float64 { return sol.ObjectiveValue(0) },
	}
	sort.Stable(sorter)

	idx := int(math.Round(s.preference * float64(len(pop)-1)))
	return pop[idx], true
}
