package field

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float samples (oto.FormatFloat32LE)
)

const ambientVolume = 0.18

// AudioSystem owns the audio context and the single looping drone player.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	player oto.Player
	muted  bool
}

var globalAudio *AudioSystem

// InitAudio initializes the audio system. Failure leaves the program
// silent but otherwise functional.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// StartAmbient begins the endless background drone. No-op when audio is
// unavailable, not yet ready, or already running.
func StartAmbient() {
	a := globalAudio
	if a == nil || a.player != nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	p := a.ctx.NewPlayer(newDroneReader())
	p.SetVolume(ambientVolume)
	p.Play()
	a.player = p
}

// ToggleAmbient mutes or unmutes the drone without stopping playback,
// so unmuting resumes mid-phrase instead of restarting.
func ToggleAmbient() {
	a := globalAudio
	if a == nil || a.player == nil {
		return
	}
	a.muted = !a.muted
	if a.muted {
		a.player.SetVolume(0)
	} else {
		a.player.SetVolume(ambientVolume)
	}
}

// StopAudio closes the drone player. Safe to call when audio never started.
func StopAudio() {
	a := globalAudio
	if a == nil || a.player == nil {
		return
	}
	a.player.Close()
	a.player = nil
}

// Drone synthesis parameters: a low root, a detuned fifth above it and
// a sub octave, all breathing on a very slow LFO.
const (
	droneBaseHz = 55.0
	droneLfoHz  = 0.07
)

// droneReader is an endless stream of soft layered sines, consumed from
// oto's mixer goroutine. All state is private to the reader, so there is
// no sharing with the frame loop.
type droneReader struct {
	n uint64 // samples emitted so far
}

func newDroneReader() *droneReader { return &droneReader{} }

// Read fills p with as many whole stereo frames as fit. oto always
// hands the reader frame-aligned buffers of at least one frame; a
// shorter buffer yields (0, nil) rather than a torn frame.
func (d *droneReader) Read(p []byte) (int, error) {
	const frameBytes = 4 * ChannelCount
	total := len(p) / frameBytes * frameBytes
	for i := 0; i < total; i += frameBytes {
		t := float64(d.n) / SampleRate
		lfo := 0.6 + 0.4*math.Sin(2*math.Pi*droneLfoHz*t)
		s := math.Sin(2*math.Pi*droneBaseHz*t) * 0.5
		s += math.Sin(2*math.Pi*droneBaseHz*1.498*t) * 0.3
		s += math.Sin(2*math.Pi*droneBaseHz*0.5*t) * 0.2
		s *= lfo

		// Slight channel imbalance gives the drone some width.
		binary.LittleEndian.PutUint32(p[i:], math.Float32bits(float32(s)))
		binary.LittleEndian.PutUint32(p[i+4:], math.Float32bits(float32(s*0.9)))
		d.n++
	}
	return total, nil
}
