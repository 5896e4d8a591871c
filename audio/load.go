package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/path-of-all-things/constants"
)

var errUnsupportedFormat = errors.New("unsupported audio format")

// decodeFile decodes a wav or mp3 file fully into memory, resampled to sr
func decodeFile(path string, sr beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%w: %s", errUnsupportedFormat, path)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != sr {
		s = beep.Resample(constants.ResampleQuality, format.SampleRate, sr, stream)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}

// loadSounds decodes every sound from dir, substituting synthesized tones for missing
// or broken assets
func loadSounds(dir string, sr beep.SampleRate) map[Sound]*beep.Buffer {
	buffers := make(map[Sound]*beep.Buffer, soundCount)
	for _, s := range Sounds() {
		if dir != "" {
			buf, err := decodeFile(filepath.Join(dir, s.FileName()), sr)
			if err == nil {
				buffers[s] = buf
				continue
			}
			slog.Debug("sound asset unavailable, using fallback", "sound", s, "err", err)
		}
		buffers[s] = synthesize(s, sr)
	}
	return buffers
}
