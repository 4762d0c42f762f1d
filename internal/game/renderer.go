package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"virussim/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Edge program: static GL_LINES buffer.
	lineProg  uint32
	lineVAO   uint32
	lineVBO   uint32
	lineVerts int32
	lineUProj int32
	lineUView int32

	// Node program: unit cube + per-instance offset/colour.
	nodeProg  uint32
	nodeVAO   uint32
	cubeVBO   uint32
	instVBO   uint32
	instances int32
	instCap   int
	nodeUProj int32
	nodeUView int32

	// Text overlay.
	textProg   uint32
	textVAO    uint32
	textVBO    uint32
	textUOrtho int32
	textUTex   int32
	textUColor int32
	texts      *scene.TextCache[uint32]

	fbW, fbH int
}

func NewRenderer(textCacheSize int) (*Renderer, error) {
	lineProg, err := linkProgram(lineVertSrc, flatFragSrc)
	if err != nil {
		return nil, fmt.Errorf("line program: %w", err)
	}
	nodeProg, err := linkProgram(nodeVertSrc, flatFragSrc)
	if err != nil {
		gl.DeleteProgram(lineProg)
		return nil, fmt.Errorf("node program: %w", err)
	}
	textProg, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		gl.DeleteProgram(lineProg)
		gl.DeleteProgram(nodeProg)
		return nil, fmt.Errorf("text program: %w", err)
	}

	r := &Renderer{
		lineProg: lineProg,
		nodeProg: nodeProg,
		textProg: textProg,
	}

	// Edge VAO: pos(3) + colour(3).
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	stride := int32(scene.LineStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))

	gl.UseProgram(lineProg)
	r.lineUProj = gl.GetUniformLocation(lineProg, gl.Str("uProjection\x00"))
	r.lineUView = gl.GetUniformLocation(lineProg, gl.Str("uView\x00"))

	// Node VAO: cube corners from cubeVBO, instances from instVBO.
	gl.GenVertexArrays(1, &r.nodeVAO)
	gl.GenBuffers(1, &r.cubeVBO)
	gl.GenBuffers(1, &r.instVBO)
	gl.BindVertexArray(r.nodeVAO)

	cube := scene.CubeVertices(scene.NodeSize)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cube)*4, gl.Ptr(cube), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.instVBO)
	istride := int32(scene.InstanceStride * 4)
	gl.EnableVertexAttribArray(1) // aOffset
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, istride, glOffset(0))
	gl.VertexAttribDivisor(1, 1)
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, istride, glOffset(3*4))
	gl.VertexAttribDivisor(2, 1)

	gl.UseProgram(nodeProg)
	r.nodeUProj = gl.GetUniformLocation(nodeProg, gl.Str("uProjection\x00"))
	r.nodeUView = gl.GetUniformLocation(nodeProg, gl.Str("uView\x00"))

	gl.BindVertexArray(0)

	if err := r.initText(textCacheSize); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.texts != nil {
		r.texts.Purge()
	}
	for _, id := range []uint32{r.lineVBO, r.cubeVBO, r.instVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.lineVAO, r.nodeVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.lineProg, r.nodeProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// UploadEdges replaces the edge buffer. The topology never changes, so this
// runs once at startup.
func (r *Renderer) UploadEdges(verts []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	if len(verts) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	}
	r.lineVerts = int32(len(verts) / scene.LineStride)
}

// UploadNodes replaces the per-node instance data (offset + colour).
func (r *Renderer) UploadNodes(inst []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instVBO)
	r.instances = int32(len(inst) / scene.InstanceStride)
	if len(inst) == 0 {
		return
	}
	if len(inst) > r.instCap {
		gl.BufferData(gl.ARRAY_BUFFER, len(inst)*4, gl.Ptr(inst), gl.DYNAMIC_DRAW)
		r.instCap = len(inst)
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(inst)*4, gl.Ptr(inst))
}

// BeginFrame clears the framebuffer and loads the camera into both scene
// programs.
func (r *Renderer) BeginFrame(cam *scene.OrbitCamera, fbW, fbH int) {
	r.fbW, r.fbH = fbW, fbH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bg := scene.Palette.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	proj := scene.Projection(fbW, fbH)
	view := cam.View()
	r.setMatrices(r.lineProg, r.lineUProj, r.lineUView, proj, view)
	r.setMatrices(r.nodeProg, r.nodeUProj, r.nodeUView, proj, view)
}

func (r *Renderer) setMatrices(prog uint32, uProj, uView int32, proj, view mgl32.Mat4) {
	gl.UseProgram(prog)
	gl.UniformMatrix4fv(uProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(uView, 1, false, &view[0])
}

func (r *Renderer) DrawEdges() {
	if r.lineVerts == 0 {
		return
	}
	gl.UseProgram(r.lineProg)
	gl.BindVertexArray(r.lineVAO)
	gl.DrawArrays(gl.LINES, 0, r.lineVerts)
}

func (r *Renderer) DrawNodes() {
	if r.instances == 0 {
		return
	}
	gl.UseProgram(r.nodeProg)
	gl.BindVertexArray(r.nodeVAO)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, scene.CubeVertCount, r.instances)
}

// EndFrame unbinds state left behind by the draw calls.
func (r *Renderer) EndFrame() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}
