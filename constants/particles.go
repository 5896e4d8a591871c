package constants

// Ambient Particle Defaults
// Speeds are in cells per second, drift speeds in radians per second
const (
	ParticleCount = 40

	ParticleSizeMin = 1.0
	ParticleSizeMax = 3.0

	ParticleSpeedMin = 0.5
	ParticleSpeedMax = 2.0

	ParticleDriftSpeedMin = 0.12
	ParticleDriftSpeedMax = 0.36

	ParticleDriftAmpMin = 1.0
	ParticleDriftAmpMax = 3.0

	ParticleAlphaMin = 0.15
	ParticleAlphaMax = 0.45

	ParticleFadeInMin = 0.12
	ParticleFadeInMax = 0.30

	// ParticleFadeInBand is the fraction of height above the bottom edge where particles fade in
	ParticleFadeInBand = 0.10

	// ParticleFadeOutStart is the fraction of height climbed after which particles fade out
	ParticleFadeOutStart = 0.85

	// ParticleSpawnDepth is how far below the bottom edge particles respawn
	ParticleSpawnDepth = 3.0

	// ParticleRecycleMargin is how far above the top edge particles are recycled
	ParticleRecycleMargin = 2.0
)
