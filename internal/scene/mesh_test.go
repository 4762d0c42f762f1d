package scene

import (
	"testing"

	"virussim/internal/sim"
)

func TestCubeVertices(t *testing.T) {
	v := CubeVertices(NodeSize)
	if len(v) != CubeVertCount*3 {
		t.Fatalf("got %d floats, want %d", len(v), CubeVertCount*3)
	}
	for i, f := range v {
		if f != NodeSize/2 && f != -NodeSize/2 {
			t.Fatalf("component %d = %f, want ±%f", i, f, NodeSize/2)
		}
	}
}

func TestEdgeVerticesOnePerEdge(t *testing.T) {
	g := sim.NewGraph(3, [][2]int{{0, 1}, {1, 2}})
	pos := []sim.Vec3{{X: 1}, {Y: 2}, {Z: 3}}
	v := EdgeVertices(g, pos, Palette.Edge)
	if len(v) != 2*2*LineStride {
		t.Fatalf("got %d floats, want %d", len(v), 2*2*LineStride)
	}
	// Second segment starts at node 1.
	if v[2*LineStride+1] != 2 {
		t.Fatalf("segment 2 start y = %f, want 2", v[2*LineStride+1])
	}
	if v[3] != Palette.Edge.R {
		t.Fatalf("edge colour not applied")
	}
}

func TestNodeInstancesColors(t *testing.T) {
	g := sim.NewGraph(3, [][2]int{{0, 1}})
	e := sim.NewEngine(g, sim.Params{DefenseNodes: []int{2}, DefenseStrength: 1, MaxStrainID: 4}, sim.NewRand(1))
	pos := []sim.Vec3{{}, {X: 1}, {X: 2}}

	buf := NodeInstances(e, pos, nil)
	if len(buf) != 3*InstanceStride {
		t.Fatalf("got %d floats", len(buf))
	}
	colorAt := func(i int) RGB {
		o := i*InstanceStride + 3
		return RGB{R: buf[o], G: buf[o+1], B: buf[o+2]}
	}
	if colorAt(0) != StrainColors[0] || colorAt(1) != Palette.Healthy || colorAt(2) != Palette.Defended {
		t.Fatalf("unexpected colours %+v %+v %+v", colorAt(0), colorAt(1), colorAt(2))
	}

	e.Step()
	buf = NodeInstances(e, pos, buf)
	if colorAt(1) != StrainColors[0] {
		t.Fatalf("node 1 should turn red after infection, got %+v", colorAt(1))
	}
}
