package field

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDroneReaderFillsWholeFrames(t *testing.T) {
	d := newDroneReader()

	// Deliberately not a multiple of the frame size.
	buf := make([]byte, 4096+3)
	n, err := d.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 4096, n)
	assert.Zero(t, n%(4*ChannelCount))

	// Shorter than one frame: no torn frame, no error, no panic.
	n, err = d.Read(make([]byte, 4*ChannelCount-1))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDroneReaderSampleBounds(t *testing.T) {
	d := newDroneReader()
	buf := make([]byte, SampleRate*4*ChannelCount) // one second
	n, err := d.Read(buf)
	require.NoError(t, err)

	for i := 0; i < n; i += 4 {
		s := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
		assert.GreaterOrEqual(t, s, float32(-1))
		assert.LessOrEqual(t, s, float32(1))
	}
}

func TestDroneReaderAdvancesPhase(t *testing.T) {
	d := newDroneReader()
	buf := make([]byte, 1024)

	n, err := d.Read(buf)
	require.NoError(t, err)
	frames := uint64(n / (4 * ChannelCount))
	assert.Equal(t, frames, d.n)

	_, err = d.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 2*frames, d.n)
}

func TestStartAmbientWaitsForContext(t *testing.T) {
	// An initialized but not-yet-ready context must not be played into.
	globalAudio = &AudioSystem{ready: make(chan struct{})}
	defer func() { globalAudio = nil }()

	StartAmbient()
	assert.Nil(t, globalAudio.player)
}

func TestAudioControlsWithoutDevice(t *testing.T) {
	// None of the control surface may panic when audio never initialized.
	globalAudio = nil
	StartAmbient()
	ToggleAmbient()
	StopAudio()
}
