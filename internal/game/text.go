package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"virussim/internal/scene"
)

// initText sets up the overlay quad buffer and the string texture cache.
func (r *Renderer) initText(cacheSize int) error {
	gl.UseProgram(r.textProg)
	r.textUOrtho = gl.GetUniformLocation(r.textProg, gl.Str("uOrtho\x00"))
	r.textUTex = gl.GetUniformLocation(r.textProg, gl.Str("uTex\x00"))
	r.textUColor = gl.GetUniformLocation(r.textProg, gl.Str("uColor\x00"))
	gl.Uniform1i(r.textUTex, 0)

	// One quad: pos(2) + uv(2), 6 vertices.
	gl.GenVertexArrays(1, &r.textVAO)
	gl.GenBuffers(1, &r.textVBO)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	stride := int32(4 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.BindVertexArray(0)

	texts, err := scene.NewTextCache[uint32](cacheSize, uploadText, func(e scene.TextEntry[uint32]) {
		gl.DeleteTextures(1, &e.Handle)
	})
	if err != nil {
		return err
	}
	r.texts = texts
	return nil
}

// uploadText rasterizes s and uploads it as an RGBA texture.
func uploadText(s string) (scene.TextEntry[uint32], error) {
	img := scene.RasterizeText(s)
	b := img.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	if tex == 0 {
		return scene.TextEntry[uint32]{}, fmt.Errorf("glGenTextures returned 0")
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return scene.TextEntry[uint32]{Handle: tex, Width: b.Dx(), Height: b.Dy()}, nil
}

// DrawText draws s with its bottom-left corner at (x, y) in framebuffer
// pixels (origin bottom-left). The pass uses its own orthographic matrix and
// restores depth testing, so the 3D camera state is left alone.
func (r *Renderer) DrawText(s string, x, y int, scale int, col scene.RGB) error {
	e, err := r.texts.Get(s)
	if err != nil {
		return err
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.textProg)
	ortho := scene.Overlay(r.fbW, r.fbH)
	gl.UniformMatrix4fv(r.textUOrtho, 1, false, &ortho[0])
	gl.Uniform4f(r.textUColor, col.R, col.G, col.B, 1)

	x0, y0 := float32(x), float32(y)
	x1 := x0 + float32(e.Width*scale)
	y1 := y0 + float32(e.Height*scale)
	// Texture row 0 is the top of the glyphs.
	quad := [24]float32{
		x0, y0, 0, 1,
		x1, y0, 1, 1,
		x1, y1, 1, 0,
		x0, y0, 0, 1,
		x1, y1, 1, 0,
		x0, y1, 0, 0,
	}
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*4, gl.Ptr(&quad[0]))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, e.Handle)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

// DrawLines draws the overlay rows upwards from (x, y).
func (r *Renderer) DrawLines(lines []string, x, y, spacing, scale int) error {
	for i, line := range lines {
		if err := r.DrawText(line, x, y+i*spacing, scale, scene.Palette.Text); err != nil {
			return err
		}
	}
	return nil
}
