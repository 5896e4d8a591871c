package audio

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/path-of-all-things/constants"
)

// Clock supplies the time used to schedule fades
type Clock interface {
	Now() time.Time
}

// voice is one playing sound on the mixer
type voice struct {
	ctrl  *beep.Ctrl
	vol   *effects.Volume
	level float64

	fader  *Fader
	stop   bool // stop the voice when the fader finishes
	onDone func()
}

// SoundManager plays sound effects and looping music through a single mixer
// Without an audio device it runs silent: playback calls do nothing, music state is still tracked
type SoundManager struct {
	mu    sync.Mutex
	cfg   Config
	clock Clock
	sr    beep.SampleRate

	mixer   *beep.Mixer
	buffers map[Sound]*beep.Buffer
	voices  map[Sound]*voice

	initialized  bool
	silent       bool
	musicPlaying bool
}

// NewSoundManager creates an uninitialized, silent sound manager
func NewSoundManager(cfg Config, clock Clock) *SoundManager {
	cfg = cfg.normalized()
	return &SoundManager{
		cfg:    cfg,
		clock:  clock,
		sr:     beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		voices: make(map[Sound]*voice),
		silent: true,
	}
}

// Init opens the speaker and decodes every sound
// On failure the manager stays silent and the error is returned for logging
func (sm *SoundManager) Init() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		slog.Debug("audio disabled by configuration")
		return nil
	}

	if err := speaker.Init(sm.sr, sm.sr.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.attach(loadSounds(sm.cfg.AssetDir, sm.sr))
	speaker.Play(sm.mixer)
	slog.Debug("audio initialized", "sample_rate", int(sm.sr), "dir", sm.cfg.AssetDir)
	return nil
}

// attach installs decoded buffers and leaves silent mode, caller holds sm.mu
func (sm *SoundManager) attach(buffers map[Sound]*beep.Buffer) {
	sm.buffers = buffers
	sm.initialized = true
	sm.silent = false
}

// Silent reports whether playback is disabled
func (sm *SoundManager) Silent() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.silent
}

// Play restarts s from the beginning at effect volume
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.silent {
		return
	}
	sm.start(s, sm.cfg.SFXVolume, false)
}

// PlayWithFadeOut plays s and fades it to silence over its last fade, then calls onDone
// In silent mode onDone runs immediately
func (sm *SoundManager) PlayWithFadeOut(s Sound, fade time.Duration, onDone func()) {
	sm.mu.Lock()
	if sm.silent {
		sm.mu.Unlock()
		if onDone != nil {
			onDone()
		}
		return
	}

	v := sm.start(s, sm.cfg.SFXVolume, false)
	length := sm.sr.D(sm.buffers[s].Len())
	fade = min(fade, length)
	f := NewFader(v.level, 0, constants.FadeOutSteps, fade, sm.clock.Now().Add(length-fade))
	v.fader = &f
	v.stop = true
	v.onDone = onDone
	sm.mu.Unlock()
}

// FadeInMusic starts the music loop from silence up to music volume over d
func (sm *SoundManager) FadeInMusic(d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicPlaying = true
	if sm.silent {
		return
	}

	v := sm.voices[Music]
	if v == nil {
		v = sm.start(Music, 0, true)
	}
	sm.setLevel(v, 0)
	speaker.Lock()
	v.ctrl.Paused = false
	speaker.Unlock()

	f := NewFader(0, sm.cfg.MusicVolume, constants.MusicFadeInSteps, d, sm.clock.Now())
	v.fader = &f
	v.stop = false
	v.onDone = nil
}

// ToggleMusic pauses or resumes the music and returns whether it is now playing
func (sm *SoundManager) ToggleMusic() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicPlaying = !sm.musicPlaying
	if sm.silent {
		return sm.musicPlaying
	}

	v := sm.voices[Music]
	if v == nil {
		if !sm.musicPlaying {
			return false
		}
		v = sm.start(Music, sm.cfg.MusicVolume, true)
	}
	v.fader = nil

	speaker.Lock()
	v.ctrl.Paused = !sm.musicPlaying
	speaker.Unlock()
	if sm.musicPlaying {
		sm.setLevel(v, sm.cfg.MusicVolume)
	}
	return sm.musicPlaying
}

// MusicPlaying reports whether music is on
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicPlaying
}

// Update advances faders to now and runs completion callbacks of finished fades
func (sm *SoundManager) Update(now time.Time) {
	var done []func()

	sm.mu.Lock()
	for s, v := range sm.voices {
		if v.fader == nil {
			continue
		}
		level, finished := v.fader.Level(now)
		sm.setLevel(v, level)
		if !finished {
			continue
		}

		v.fader = nil
		if v.stop {
			sm.halt(v)
			delete(sm.voices, s)
		}
		if v.onDone != nil {
			done = append(done, v.onDone)
			v.onDone = nil
		}
	}
	sm.mu.Unlock()

	for _, fn := range done {
		fn()
	}
}

// Close stops every sound and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	for s, v := range sm.voices {
		sm.halt(v)
		delete(sm.voices, s)
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
	sm.silent = true
}

// start replaces any playing instance of s with a fresh voice, caller holds sm.mu
func (sm *SoundManager) start(s Sound, level float64, loop bool) *voice {
	if old := sm.voices[s]; old != nil {
		sm.halt(old)
	}

	buf := sm.buffers[s]
	var stream beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		stream = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}

	vol := &effects.Volume{Streamer: stream, Base: 2}
	v := &voice{
		ctrl: &beep.Ctrl{Streamer: vol},
		vol:  vol,
	}
	sm.setLevel(v, level)
	sm.voices[s] = v

	speaker.Lock()
	sm.mixer.Add(v.ctrl)
	speaker.Unlock()
	return v
}

// halt detaches a voice, the mixer drops it on its next pass
func (sm *SoundManager) halt(v *voice) {
	speaker.Lock()
	v.ctrl.Streamer = nil
	speaker.Unlock()
}

// setLevel applies a linear level scaled by master volume
func (sm *SoundManager) setLevel(v *voice, level float64) {
	v.level = level
	gain := level * sm.cfg.MasterVolume

	speaker.Lock()
	defer speaker.Unlock()
	if gain <= 0 {
		v.vol.Silent = true
		return
	}
	v.vol.Silent = false
	v.vol.Volume = math.Log2(gain)
}
