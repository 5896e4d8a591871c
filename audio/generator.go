package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

// partial is one sine component of a synthesized tone
type partial struct {
	freq  float64
	gain  float64
	decay float64 // exponential decay rate per second
}

// toneGenerator sums decaying sine partials with a short attack
type toneGenerator struct {
	sr       beep.SampleRate
	partials []partial
	attack   float64
	noise    float64
	rng      *rand.Rand
	pos      int
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		for _, p := range g.partials {
			sample += p.gain * math.Exp(-t*p.decay) * math.Sin(2*math.Pi*p.freq*t)
		}
		if g.noise > 0 {
			sample += g.noise * math.Exp(-t*30) * (g.rng.Float64()*2 - 1)
		}
		if g.attack > 0 && t < g.attack {
			sample *= t / g.attack
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

// droneGenerator is a slow breathing pad used as fallback music
type droneGenerator struct {
	sr  beep.SampleRate
	pos int
}

func (g *droneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		swell := 0.5 + 0.5*math.Sin(2*math.Pi*t/8)
		l := 0.25*math.Sin(2*math.Pi*110*t) + 0.15*math.Sin(2*math.Pi*164.81*t)
		r := 0.25*math.Sin(2*math.Pi*110.4*t) + 0.15*math.Sin(2*math.Pi*220*t)

		samples[i][0] = l * (0.4 + 0.6*swell)
		samples[i][1] = r * (0.4 + 0.6*swell)
		g.pos++
	}
	return len(samples), true
}

func (g *droneGenerator) Err() error {
	return nil
}

// synthPatch describes the fallback for one sound
type synthPatch struct {
	length   time.Duration
	attack   float64
	noise    float64
	partials []partial
}

var synthPatches = [soundCount]synthPatch{
	CardMove: {
		length: 120 * time.Millisecond, attack: 0.002, noise: 0.3,
		partials: []partial{{freq: 320, gain: 0.2, decay: 40}},
	},
	Incorrect: {
		length: 350 * time.Millisecond, attack: 0.002, noise: 0.4,
		partials: []partial{{freq: 140, gain: 0.5, decay: 14}, {freq: 233, gain: 0.2, decay: 20}},
	},
	Correct: {
		length: 1500 * time.Millisecond, attack: 0.005,
		partials: []partial{{freq: 659.25, gain: 0.4, decay: 2.5}, {freq: 987.77, gain: 0.25, decay: 3}, {freq: 1318.51, gain: 0.1, decay: 4}},
	},
	ModalOpen: {
		length: 400 * time.Millisecond, attack: 0.01,
		partials: []partial{{freq: 880, gain: 0.25, decay: 8}, {freq: 1760, gain: 0.08, decay: 10}},
	},
	NextLevel: {
		length: 2 * time.Second, attack: 0.005,
		partials: []partial{{freq: 523.25, gain: 0.3, decay: 2}, {freq: 784, gain: 0.25, decay: 2.2}, {freq: 1046.5, gain: 0.15, decay: 2.6}},
	},
	FinishGame: {
		length: 5 * time.Second, attack: 0.02,
		partials: []partial{{freq: 196, gain: 0.45, decay: 0.6}, {freq: 392.5, gain: 0.2, decay: 0.8}, {freq: 588, gain: 0.1, decay: 1.1}},
	},
	GameStart: {
		length: 4 * time.Second, attack: 0.05,
		partials: []partial{{freq: 261.63, gain: 0.4, decay: 0.7}, {freq: 523.25, gain: 0.2, decay: 0.9}, {freq: 784.8, gain: 0.08, decay: 1.3}},
	},
	Music: {length: 16 * time.Second},
}

// synthesize renders the fallback for s into a buffer at sr
func synthesize(s Sound, sr beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	patch := synthPatches[s]

	var gen beep.Streamer
	if s == Music {
		gen = &droneGenerator{sr: sr}
	} else {
		gen = &toneGenerator{
			sr:       sr,
			partials: patch.partials,
			attack:   patch.attack,
			noise:    patch.noise,
			rng:      rand.New(rand.NewPCG(uint64(s), 0x9e3779b97f4a7c15)),
		}
	}
	buf.Append(beep.Take(sr.N(patch.length), gen))
	return buf
}
