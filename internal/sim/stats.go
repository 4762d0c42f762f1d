package sim

import "fmt"

// Stats is a snapshot of the overlay counters.
type Stats struct {
	TimeStep          int
	Infected          int
	DefendedHealthy   int
	HealthyUndefended int // total - infected - DefendedHealthy, so the three counts partition Total
	Total             int
	Strains           int
}

func (e *Engine) Stats() Stats {
	defendedInfected := 0
	for id := range e.defense {
		if e.infected[id] {
			defendedInfected++
		}
	}
	distinct := make(map[int]struct{})
	for id := range e.infected {
		if s, ok := e.strains[id]; ok {
			distinct[s] = struct{}{}
		}
	}
	total := e.g.Len()
	return Stats{
		TimeStep:          e.step,
		Infected:          len(e.infected),
		DefendedHealthy:   len(e.defense) - defendedInfected,
		HealthyUndefended: total - len(e.infected) - (len(e.defense) - defendedInfected),
		Total:             total,
		Strains:           len(distinct),
	}
}

// Lines renders the overlay text, one string per row.
func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("Time Step: %d", s.TimeStep),
		fmt.Sprintf("Infected (Red): %d", s.Infected),
		fmt.Sprintf("Defended (Blue) (healthy): %d", s.DefendedHealthy),
		fmt.Sprintf("Healthy (Green) (undefended): %d", s.HealthyUndefended),
		fmt.Sprintf("Total Nodes: %d", s.Total),
		fmt.Sprintf("Total Strains: %d", s.Strains),
	}
}
