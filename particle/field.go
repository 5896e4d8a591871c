// Package particle animates the ambient ember field drawn behind every screen
package particle

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/path-of-all-things/constants"
)

// Config tunes the field, speeds are per second and distances in cells
type Config struct {
	Count   int
	Palette []RGB

	SizeMin, SizeMax             float64
	SpeedMin, SpeedMax           float64
	DriftSpeedMin, DriftSpeedMax float64
	DriftAmpMin, DriftAmpMax     float64
	AlphaMin, AlphaMax           float64
	FadeInMin, FadeInMax         float64

	// FadeInBand is the fraction of height above the bottom edge where a particle fades in
	FadeInBand float64
	// FadeOutStart is the fraction of height climbed after which a particle fades out
	FadeOutStart float64
	// SpawnDepth bounds how far below the bottom edge a recycled particle respawns
	SpawnDepth float64
	// RecycleMargin is how far above the top edge a particle travels before recycling
	RecycleMargin float64
}

// DefaultConfig returns the standard ember field
func DefaultConfig() Config {
	return Config{
		Count:         constants.ParticleCount,
		Palette:       DefaultPalette,
		SizeMin:       constants.ParticleSizeMin,
		SizeMax:       constants.ParticleSizeMax,
		SpeedMin:      constants.ParticleSpeedMin,
		SpeedMax:      constants.ParticleSpeedMax,
		DriftSpeedMin: constants.ParticleDriftSpeedMin,
		DriftSpeedMax: constants.ParticleDriftSpeedMax,
		DriftAmpMin:   constants.ParticleDriftAmpMin,
		DriftAmpMax:   constants.ParticleDriftAmpMax,
		AlphaMin:      constants.ParticleAlphaMin,
		AlphaMax:      constants.ParticleAlphaMax,
		FadeInMin:     constants.ParticleFadeInMin,
		FadeInMax:     constants.ParticleFadeInMax,
		FadeInBand:    constants.ParticleFadeInBand,
		FadeOutStart:  constants.ParticleFadeOutStart,
		SpawnDepth:    constants.ParticleSpawnDepth,
		RecycleMargin: constants.ParticleRecycleMargin,
	}
}

// Particle is one ember
type Particle struct {
	BaseX, Y   float64
	Size       float64
	Speed      float64
	Drift      float64
	DriftSpeed float64
	DriftAmp   float64
	Alpha      float64
	MaxAlpha   float64
	FadeIn     float64
	Color      RGB
	Life       float64
}

// X returns the horizontal position including sway
func (p *Particle) X() float64 {
	return p.BaseX + math.Sin(p.Drift)*p.DriftAmp
}

// Field owns a fixed population of particles inside a w*h area
// Not safe for concurrent use, the frame loop owns it
type Field struct {
	cfg       Config
	rng       *rand.Rand
	w, h      float64
	particles []Particle
	running   bool
}

// New creates a stopped field, particles are spawned on the first Resize
func New(cfg Config, rng *rand.Rand) *Field {
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette
	}
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	return &Field{cfg: cfg, rng: rng}
}

// Resize sets the field bounds, the first call populates it across the full height
func (f *Field) Resize(w, h int) {
	first := f.w == 0 && f.h == 0
	f.w, f.h = float64(w), float64(h)
	if w <= 0 || h <= 0 {
		return
	}

	if first || len(f.particles) == 0 {
		f.particles = make([]Particle, f.cfg.Count)
		for i := range f.particles {
			f.spawn(&f.particles[i], true)
		}
		return
	}

	for i := range f.particles {
		p := &f.particles[i]
		if p.BaseX >= f.w {
			p.BaseX = f.rng.Float64() * f.w
		}
		if p.Y > f.h+f.cfg.SpawnDepth {
			f.spawn(p, false)
		}
	}
}

// Start resumes animation
func (f *Field) Start() { f.running = true }

// Stop freezes animation, particles keep their state
func (f *Field) Stop() { f.running = false }

// Running reports whether Update advances the field
func (f *Field) Running() bool { return f.running }

// Update advances every particle by dt seconds
func (f *Field) Update(dt float64) {
	if !f.running || dt <= 0 || f.h <= 0 {
		return
	}

	for i := range f.particles {
		p := &f.particles[i]
		p.Life += dt
		p.Y -= p.Speed * dt
		p.Drift += p.DriftSpeed * dt

		climbed := 1 - p.Y/f.h
		switch {
		case climbed < f.cfg.FadeInBand:
			ceiling := p.MaxAlpha * max(0, climbed) / f.cfg.FadeInBand
			p.Alpha = min(p.Alpha+p.FadeIn*dt, ceiling)
		case climbed > f.cfg.FadeOutStart:
			p.Alpha = p.MaxAlpha * (1 - (climbed-f.cfg.FadeOutStart)/(1-f.cfg.FadeOutStart))
		default:
			p.Alpha = min(p.Alpha+p.FadeIn*dt, p.MaxAlpha)
		}
		p.Alpha = max(0, p.Alpha)

		if p.Y < -f.cfg.RecycleMargin {
			f.spawn(p, false)
		}
	}
}

// Particles returns a snapshot of the field
func (f *Field) Particles() []Particle {
	return slices.Clone(f.particles)
}

// spawn resets p, anywhere in the field when scatter is set or just below the bottom edge otherwise
func (f *Field) spawn(p *Particle, scatter bool) {
	c := f.cfg
	*p = Particle{
		BaseX:      f.rng.Float64() * f.w,
		Size:       between(f.rng, c.SizeMin, c.SizeMax),
		Speed:      between(f.rng, c.SpeedMin, c.SpeedMax),
		Drift:      f.rng.Float64() * 2 * math.Pi,
		DriftSpeed: between(f.rng, c.DriftSpeedMin, c.DriftSpeedMax),
		DriftAmp:   between(f.rng, c.DriftAmpMin, c.DriftAmpMax),
		MaxAlpha:   between(f.rng, c.AlphaMin, c.AlphaMax),
		FadeIn:     between(f.rng, c.FadeInMin, c.FadeInMax),
		Color:      c.Palette[f.rng.IntN(len(c.Palette))],
	}
	if scatter {
		p.Y = f.rng.Float64() * f.h
	} else {
		p.Y = f.h + f.rng.Float64()*c.SpawnDepth
	}
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
