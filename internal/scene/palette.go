package scene

import "virussim/internal/sim"

// RGB is a linear float colour.
type RGB struct {
	R, G, B float32
}

var Palette = struct {
	Background RGB
	Edge       RGB
	Healthy    RGB
	Defended   RGB
	Fallback   RGB
	Text       RGB
}{
	Background: RGB{R: 0.05, G: 0.05, B: 0.05},
	Edge:       RGB{R: 0.5, G: 0.5, B: 0.5},
	Healthy:    RGB{R: 0.0, G: 1.0, B: 0.0},
	Defended:   RGB{R: 0.0, G: 0.0, B: 1.0},
	Fallback:   RGB{R: 1.0, G: 0.0, B: 0.0},
	Text:       RGB{R: 1.0, G: 1.0, B: 1.0},
}

// StrainColors maps strain ids to node colours.
var StrainColors = map[int]RGB{
	0: {R: 1.0, G: 0.0, B: 0.0}, // red
	1: {R: 1.0, G: 0.5, B: 0.0}, // orange
	2: {R: 0.5, G: 0.0, B: 0.5}, // purple
	3: {R: 1.0, G: 1.0, B: 0.0}, // yellow
	4: {R: 0.0, G: 1.0, B: 1.0}, // cyan
}

// NodeColor picks a node's colour: strain colour when infected, blue when
// defended, green otherwise.
func NodeColor(state sim.State, strain int, hasStrain bool, defended bool) RGB {
	switch state {
	case sim.Infected:
		if !hasStrain {
			strain = 0
		}
		if c, ok := StrainColors[strain]; ok {
			return c
		}
		return Palette.Fallback
	}
	if defended {
		return Palette.Defended
	}
	return Palette.Healthy
}
