package field

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Particle is one rotating line-segment generator anchored to a grid
// point. The anchor never moves; only Rotation changes over time.
type Particle struct {
	Anchor   mgl32.Vec2
	Rotation float32 // radians, grows without wraparound
	Speed    float32 // radians per tick, fixed at creation
	Radius   float32 // half-length of the segment, fixed at creation
}

// Field owns a fixed set of particles and the flat vertex buffer their
// segments are written into. The buffer is rewritten in full every frame
// and handed to the renderer as-is; nothing else touches it.
type Field struct {
	Particles []Particle
	buf       []float32 // 6 floats per particle: two xyz endpoints
}

func NewField(count int, seed uint64) *Field {
	if count <= 0 {
		count = DefaultParticleCount
	}
	f := &Field{
		Particles: make([]Particle, count),
		buf:       make([]float32, 0, count*6),
	}
	f.Reset(seed)
	return f
}

// Reset re-seats every particle on the grid and re-rolls its rotation,
// speed and radius. Count never changes across resets.
func (f *Field) Reset(seed uint64) {
	rng := NewRand(seed)
	cols, rows := gridDims(len(f.Particles))
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Anchor = gridAnchor(i, cols, rows)
		p.Rotation = float32(rng.RangeF(0, 2*math.Pi))
		p.Speed = float32(rng.RangeF(SpeedMin, SpeedMax))
		p.Radius = float32(rng.RangeF(RadiusMin, RadiusMax))
	}
}

// Tick advances every particle's phase by its per-tick speed. No
// wraparound: cos/sin are periodic, and float32 holds hours of sweep
// before precision matters for a decorative effect.
func (f *Field) Tick() {
	for i := range f.Particles {
		f.Particles[i].Rotation += f.Particles[i].Speed
	}
}

// SegmentData rewrites the whole vertex buffer and returns it: for each
// particle, the two endpoints anchor ± radius*(cos, sin) with z = 0.
// The returned slice aliases the field's internal buffer and is valid
// until the next call.
func (f *Field) SegmentData() []float32 {
	out := f.buf[:0]
	for i := range f.Particles {
		p := &f.Particles[i]
		c := float32(math.Cos(float64(p.Rotation))) * p.Radius
		s := float32(math.Sin(float64(p.Rotation))) * p.Radius
		x := p.Anchor.X()
		y := p.Anchor.Y()
		out = append(out, x-c, y-s, 0, x+c, y+s, 0)
	}
	f.buf = out
	return out
}

// Ticker converts variable frame times into fixed-step field ticks.
// While paused the accumulator is drained, so resuming never replays
// the paused time as a burst of catch-up ticks.
type Ticker struct {
	Paused bool
	acc    float64
}

// Advance consumes dt seconds and ticks the field once per
// TickInterval. Returns the number of ticks applied.
func (tk *Ticker) Advance(f *Field, dt float64) int {
	if tk.Paused {
		tk.acc = 0
		return 0
	}
	tk.acc += dt
	n := 0
	for tk.acc >= TickInterval {
		f.Tick()
		tk.acc -= TickInterval
		n++
	}
	return n
}

// gridDims picks a near-square grid for count particles: enough columns
// to cover count, rows to match.
func gridDims(count int) (cols, rows int) {
	cols = int(math.Ceil(math.Sqrt(float64(count))))
	if cols < 1 {
		cols = 1
	}
	rows = (count + cols - 1) / cols
	return cols, rows
}

// gridAnchor places particle i on the grid, spanning
// [-FieldSpan, FieldSpan] on both axes. A single row or column sits on
// the centre line.
func gridAnchor(i, cols, rows int) mgl32.Vec2 {
	col := i % cols
	row := i / cols
	x := float32(0)
	if cols > 1 {
		x = -FieldSpan + 2*FieldSpan*float32(col)/float32(cols-1)
	}
	y := float32(0)
	if rows > 1 {
		y = -FieldSpan + 2*FieldSpan*float32(row)/float32(rows-1)
	}
	return mgl32.Vec2{x, y}
}
