package content

import (
	"strings"

	"github.com/lixenwraith/path-of-all-things/constants"
)

// Event is a single moment on the timeline
// Year is signed: negative values are in the past, magnitudes may exceed int64
type Event struct {
	ID          int     `yaml:"id" json:"id" toml:"id"`
	Title       string  `yaml:"title" json:"title" toml:"title"`
	Description string  `yaml:"description" json:"description" toml:"description"`
	Year        float64 `yaml:"year" json:"year" toml:"year"`
	Info        string  `yaml:"info,omitempty" json:"info,omitempty" toml:"info,omitempty"`
}

// Paragraphs splits the long-form info text on blank lines
func (e Event) Paragraphs() []string {
	return Paragraphs(e.Info)
}

// Level is a named pool of events
type Level struct {
	Name     string  `yaml:"name" json:"name" toml:"name"`
	Subtitle string  `yaml:"subtitle" json:"subtitle" toml:"subtitle"`
	Events   []Event `yaml:"events" json:"events" toml:"events"`
}

// Catalog is the static, ordered list of levels, read-only after load
type Catalog struct {
	Levels []Level `yaml:"levels" json:"levels" toml:"levels"`
}

// Level returns the level at index, false when out of range
func (c *Catalog) Level(index int) (Level, bool) {
	if index < 0 || index >= len(c.Levels) {
		return Level{}, false
	}
	return c.Levels[index], true
}

// EventCount returns the total number of events across all levels
func (c *Catalog) EventCount() int {
	n := 0
	for _, l := range c.Levels {
		n += len(l.Events)
	}
	return n
}

// Paragraphs splits text on blank lines, trimming each paragraph
// Empty text yields the standard placeholder paragraph
func Paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{constants.NoInfoAvailable}
	}
	return out
}
