package field

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Run opens the window and drives the animation until close/Escape.
// Space pauses the sweep, R reseeds the field, M toggles the drone.
func Run() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	} else {
		go func() {
			time.Sleep(100 * time.Millisecond) // let audio context initialize
			StartAmbient()
		}()
	}
	defer StopAudio()

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("LINEFIELD_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	bgR, bgG, bgB := Palette.Background.F()
	gl.ClearColor(bgR, bgG, bgB, 1.0)

	f := NewField(DefaultParticleCount, seed)

	rend, err := NewRenderer(len(f.Particles))
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	input := NewInput()
	ticker := &Ticker{}

	lineR, lineG, lineB := Palette.Line.F()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDt {
			dt = MaxFrameDt
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeySpace) {
			ticker.Paused = !ticker.Paused
		}
		if input.JustPressed(window, glfw.KeyR) {
			seed = splitmix64(seed)
			f.Reset(seed)
		}
		if input.JustPressed(window, glfw.KeyM) {
			ToggleAmbient()
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		// Fixed-step ticking keeps the sweep rate independent of the
		// display refresh rate.
		ticker.Advance(f, dt)

		rend.BeginFrame(fbW, fbH)
		pulse := float32(PulseFloor + PulseSwing*0.5*(1+math.Sin(now*PulseRate)))
		rend.SetLineColor(lineR, lineG, lineB, pulse)
		rend.DrawSegments(f.SegmentData())

		window.SwapBuffers()
	}
}
