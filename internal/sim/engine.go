package sim

import "sort"

// State is the infection state of a single node.
type State int

const (
	Healthy State = iota
	Infected
	Recovered // declared for completeness; no transition reaches it
)

func (s State) String() string {
	switch s {
	case Healthy:
		return "healthy"
	case Infected:
		return "infected"
	case Recovered:
		return "recovered"
	}
	return "unknown"
}

// Params holds the propagation tunables.
type Params struct {
	DefenseNodes    []int
	DefenseStrength float64 // probability that a defended node resists one exposure
	MutationChance  float64
	MaxStrainID     int
	InitialInfected []int
}

// Mutate returns the strain a mutated child of parent carries. Strain ids
// cycle through 0..maxStrain.
func Mutate(parent, maxStrain int) int {
	return (parent + 1) % (maxStrain + 1)
}

// StepResult summarizes one propagation step.
type StepResult struct {
	Step      int   // step counter after the step
	Infected  []int // newly infected ids, ascending
	Mutations int
	Blocked   int // exposures resisted by defended nodes
}

// Engine advances the epidemic one discrete step at a time.
//
// Frontier members are visited in ascending id order and neighbor lists are
// ascending, so a node exposed by several parents in the same step inherits
// from the lowest parent id.
type Engine struct {
	g       *Graph
	params  Params
	rng     *Rand
	bus     *EventBus
	defense map[int]bool

	infected map[int]bool
	frontier []int
	strains  map[int]int
	step     int
}

func NewEngine(g *Graph, p Params, rng *Rand) *Engine {
	e := &Engine{
		g:        g,
		params:   p,
		rng:      rng,
		defense:  make(map[int]bool, len(p.DefenseNodes)),
		infected: make(map[int]bool),
		strains:  make(map[int]int),
	}
	for _, id := range p.DefenseNodes {
		if id >= 0 && id < g.Len() {
			e.defense[id] = true
		}
	}
	initial := p.InitialInfected
	if len(initial) == 0 {
		initial = []int{0}
	}
	for _, id := range initial {
		if id < 0 || id >= g.Len() || e.infected[id] {
			continue
		}
		e.infected[id] = true
		e.strains[id] = 0
		e.frontier = append(e.frontier, id)
	}
	sort.Ints(e.frontier)
	return e
}

// SetEventBus attaches a bus that receives step and mutation events.
func (e *Engine) SetEventBus(bus *EventBus) { e.bus = bus }

// Step runs one round of frontier propagation. With an empty frontier it only
// advances the step counter.
func (e *Engine) Step() StepResult {
	var res StepResult
	next := make([]int, 0)
	for _, node := range e.frontier {
		parent := e.strains[node]
		for _, nb := range e.g.Neighbors(node) {
			if e.infected[nb] {
				continue
			}
			if e.defense[nb] && e.rng.Float64() <= e.params.DefenseStrength {
				res.Blocked++
				continue
			}
			strain := parent
			if e.rng.Float64() < e.params.MutationChance {
				strain = Mutate(parent, e.params.MaxStrainID)
				res.Mutations++
				e.bus.Emit(Event{Type: EventMutation, Step: e.step + 1, Node: nb, Strain: strain})
			}
			e.infected[nb] = true
			e.strains[nb] = strain
			next = append(next, nb)
		}
	}
	sort.Ints(next)
	e.frontier = next
	e.step++

	res.Step = e.step
	res.Infected = append([]int(nil), next...)
	if len(next) > 0 {
		e.bus.Emit(Event{Type: EventStep, Step: e.step, Node: -1, Strain: e.strains[next[0]], Count: len(next)})
	} else {
		e.bus.Emit(Event{Type: EventOutbreakOver, Step: e.step, Node: -1, Count: len(e.infected)})
	}
	return res
}

// State reports a node's infection state.
func (e *Engine) State(id int) State {
	if e.infected[id] {
		return Infected
	}
	return Healthy
}

// Strain reports the strain of an infected node.
func (e *Engine) Strain(id int) (int, bool) {
	s, ok := e.strains[id]
	return s, ok
}

func (e *Engine) IsInfected(id int) bool { return e.infected[id] }
func (e *Engine) IsDefended(id int) bool { return e.defense[id] }

// Done reports whether propagation has run out of frontier.
func (e *Engine) Done() bool { return len(e.frontier) == 0 }

func (e *Engine) TimeStep() int { return e.step }

// Frontier returns a sorted copy of the current frontier.
func (e *Engine) Frontier() []int {
	return append([]int(nil), e.frontier...)
}

// InfectedIDs returns the infected set in ascending order.
func (e *Engine) InfectedIDs() []int {
	out := make([]int, 0, len(e.infected))
	for id := range e.infected {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// DefenseIDs returns the defense set in ascending order.
func (e *Engine) DefenseIDs() []int {
	out := make([]int, 0, len(e.defense))
	for id := range e.defense {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
