package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"virussim/internal/scene"
)

// Input turns glfw pointer state into orbit camera moves. Scroll offsets only
// arrive through a callback, so they are accumulated until the next Apply.
type Input struct {
	anchored     bool
	lastX, lastY float64
	scroll       float64
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{}
	window.SetMouseButtonCallback(func(w *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch btn {
		case glfw.MouseButtonLeft, glfw.MouseButtonMiddle, glfw.MouseButtonRight:
			in.lastX, in.lastY = w.GetCursorPos()
			in.anchored = true
		}
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		in.scroll += yoff
	})
	return in
}

// Apply forwards this frame's drag and scroll to the camera.
func (in *Input) Apply(window *glfw.Window, cam *scene.OrbitCamera) {
	if in.scroll != 0 {
		cam.Scroll(in.scroll)
		in.scroll = 0
	}
	if !in.anchored || window.GetMouseButton(glfw.MouseButtonLeft) != glfw.Press {
		return
	}
	x, y := window.GetCursorPos()
	dx, dy := x-in.lastX, y-in.lastY
	if dx != 0 || dy != 0 {
		cam.Drag(dx, dy)
	}
	in.lastX, in.lastY = x, y
}
