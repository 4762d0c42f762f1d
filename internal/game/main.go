package game

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"virussim/internal/config"
	"virussim/internal/scene"
	"virussim/internal/sim"
	"virussim/internal/timing"
)

// Run opens the window and drives the simulation until it is closed.
// Everything, including the simulation step, runs on the calling goroutine.
func Run(cfg config.Config) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	var audio *AudioSystem
	if cfg.Audio {
		audio, err = InitAudio()
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
			audio = nil
		}
	}
	defer audio.Close()

	// GL state.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE)

	// Simulation.
	rng := sim.NewRand(cfg.Seed)
	graph := sim.GenerateGraph(cfg.NodeCount, cfg.EdgeProbability, rng)
	positions := sim.RandomLayout(graph.Len(), cfg.LayoutExtent, rng)
	engine := sim.NewEngine(graph, cfg.Sim, rng)
	bus := sim.NewEventBus()
	engine.SetEventBus(bus)
	audio.Attach(bus)
	log.Printf("seed %d: %d nodes, %d edges, %d defended", cfg.Seed, graph.Len(), graph.EdgeCount(), len(engine.DefenseIDs()))

	// Renderer.
	rend, err := NewRenderer(cfg.TextCacheSize)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	rend.UploadEdges(scene.EdgeVertices(graph, positions, scene.Palette.Edge))
	instBuf := scene.NodeInstances(engine, positions, nil)
	rend.UploadNodes(instBuf)

	cam := scene.NewOrbitCamera(cfg.CameraDistance)
	cam.Sensitivity = cfg.CameraSensitivity
	cam.ZoomSpeed = cfg.ZoomSpeed
	input := NewInput(window)

	gate := timing.NewStepGate(cfg.StepInterval, glfwNow())
	limiter := timing.NewFrameLimiter(cfg.TargetFPS)

	for !window.ShouldClose() {
		glfw.PollEvents()
		input.Apply(window, cam)

		if res, ok := sim.Advance(gate, engine, glfwNow()); ok {
			log.Printf("step %d: +%d infected, %d mutations, %d blocked", res.Step, len(res.Infected), res.Mutations, res.Blocked)
			instBuf = scene.NodeInstances(engine, positions, instBuf)
			rend.UploadNodes(instBuf)
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			// Minimized: keep stepping but skip drawing.
			limiter.Wait()
			continue
		}

		rend.BeginFrame(cam, fbW, fbH)
		rend.DrawEdges()
		rend.DrawNodes()
		if err := rend.DrawLines(engine.Stats().Lines(), cfg.TextX, cfg.TextY, cfg.LineSpacing, cfg.TextScale); err != nil {
			return fmt.Errorf("overlay: %w", err)
		}
		rend.EndFrame()
		window.SwapBuffers()

		audio.Reap()
		limiter.Wait()
	}
	return nil
}

func glfwNow() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}
