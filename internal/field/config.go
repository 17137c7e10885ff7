package field

// Field geometry. Anchors live in a normalized square centred on the
// origin; the projection letterboxes it into whatever framebuffer the
// window currently has.
const (
	FieldSpan            = 0.9
	DefaultParticleCount = 100
)

// Per-particle parameter ranges, sampled once at creation.
const (
	SpeedMin  = 0.01 // radians per tick
	SpeedMax  = 0.03
	RadiusMin = 0.05
	RadiusMax = 0.15
)

// Ticking. The sweep is defined in radians per tick at 60 ticks/s, so a
// fixed-step accumulator keeps it identical on 144 Hz displays.
const (
	TickRate     = 60.0
	TickInterval = 1.0 / TickRate
	MaxFrameDt   = 0.1
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Whole-field brightness pulse.
const (
	PulseRate  = 0.45 // rad/s
	PulseFloor = 0.72
	PulseSwing = 0.28
)
