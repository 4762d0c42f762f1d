package scene

import "virussim/internal/sim"

// Vertex layouts shared with the GL renderer.
const (
	LineStride     = 6 // x, y, z, r, g, b
	InstanceStride = 6 // offset x, y, z, r, g, b
	CubeVertCount  = 36
	NodeSize       = 0.3
)

// CubeVertices returns a cube of edge length size centred on the origin as
// 12 triangles (xyz per vertex).
func CubeVertices(size float32) []float32 {
	h := size / 2
	// Corners indexed by bits: x=1, y=2, z=4.
	c := func(i int) [3]float32 {
		p := [3]float32{-h, -h, -h}
		if i&1 != 0 {
			p[0] = h
		}
		if i&2 != 0 {
			p[1] = h
		}
		if i&4 != 0 {
			p[2] = h
		}
		return p
	}
	// Each face wound counter-clockwise seen from outside.
	faces := [6][4]int{
		{4, 5, 7, 6}, // +z
		{1, 0, 2, 3}, // -z
		{0, 4, 6, 2}, // -x
		{5, 1, 3, 7}, // +x
		{6, 7, 3, 2}, // +y
		{0, 1, 5, 4}, // -y
	}
	out := make([]float32, 0, CubeVertCount*3)
	for _, f := range faces {
		for _, idx := range [6]int{f[0], f[1], f[2], f[0], f[2], f[3]} {
			p := c(idx)
			out = append(out, p[0], p[1], p[2])
		}
	}
	return out
}

// EdgeVertices builds a GL_LINES buffer with one segment per unordered edge.
func EdgeVertices(g *sim.Graph, pos []sim.Vec3, col RGB) []float32 {
	edges := g.Edges()
	out := make([]float32, 0, len(edges)*2*LineStride)
	for _, e := range edges {
		a, b := pos[e[0]], pos[e[1]]
		out = append(out,
			float32(a.X), float32(a.Y), float32(a.Z), col.R, col.G, col.B,
			float32(b.X), float32(b.Y), float32(b.Z), col.R, col.G, col.B,
		)
	}
	return out
}

// NodeInstances fills buf with one instance per node (offset + colour) and
// returns it. buf is reused when large enough.
func NodeInstances(e *sim.Engine, pos []sim.Vec3, buf []float32) []float32 {
	buf = buf[:0]
	for id, p := range pos {
		strain, ok := e.Strain(id)
		col := NodeColor(e.State(id), strain, ok, e.IsDefended(id))
		buf = append(buf, float32(p.X), float32(p.Y), float32(p.Z), col.R, col.G, col.B)
	}
	return buf
}
