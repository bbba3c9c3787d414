package selection

import (
	"math"

	"github.com/UIBK-DPS-DC/pulse/internal/moea"
)

// Kneeness is the perpendicular distance from a solution's objective
// pair to the line connecting two reference solutions' objective
// pairs — the further a point bows from the extremes' chord, the more
// of a "knee" it is. Grounded on utils/common/Kneeness.java.
func Kneeness(p0, p1, p *moea.Solution) float64 {
	x1, y1 := p0.ObjectiveValue(0), p0.ObjectiveValue(1)
	x2, y2 := p1.ObjectiveValue(0), p1.ObjectiveValue(1)

	vx, vy := x2-x1, y2-y1
	lineLength := math.Sqrt(vx*vx + vy*vy)
	if lineLength < 1e-12 {
		return 0.0
	}

	ux, uy := vx/lineLength, vy/lineLength

	px, py := p.ObjectiveValue(0), p.ObjectiveValue(1)
	wx, wy := px-x1, py-y1

	projLen := wx*ux + wy*uy

	perpX := wx - projLen*ux
	perpY := wy - projLen*uy

	return math.Sqrt(perpX*perpX + perpY*perpY)
}

// KneenessSelector picks the most knee-like interior point of a
// non-dominated population sorted by objective 0: the population's own
// ordering supplies the two reference extremes.
type KneenessSelector struct{}

func NewKneenessSelector() *KneenessSelector { return &KneenessSelector{} }

func (s *KneenessSelector) Select(population []*moea.Solution) (*moea.Solution, bool) {
	pop := feasible(population)
	if len(pop) == 0 {
		return nil, false
	}
	if len(pop) < 3 {
		return pop[0], true
	}

	first, last := pop[0], pop[len(pop)-1]

	best := pop[1]
	bestScore := Kneeness(first, last, best)
	for i := 2; i < len(pop)-1; i++ {
		score := Kneeness(first, last, pop[i])
		if score > bestScore {
			bestScore = score
			best = pop[i]
		}
	}
	return best, true
}
