package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/path-of-all-things/constants"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	require.Len(t, cat.Levels, 10)
	assert.Equal(t, "The Cosmic Dawn", cat.Levels[0].Name)
	assert.Equal(t, "The Far Future", cat.Levels[9].Name)
	for _, l := range cat.Levels {
		assert.GreaterOrEqual(t, len(l.Events), constants.CardsPerRound, "level %q", l.Name)
	}

	last := cat.Levels[9].Events[len(cat.Levels[9].Events)-1]
	assert.Equal(t, 1e100, last.Year)
	assert.Len(t, last.Paragraphs(), 2)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	assert.Len(t, cat.Levels, 10)
}

func TestParseJSON(t *testing.T) {
	doc := `{"levels":[{"name":"A","subtitle":"s","events":[
		{"id":1,"title":"One","description":"d","year":-1e21},
		{"id":2,"title":"Two","description":"d","year":1969,"info":"x\n\ny"}]}]}`

	cat, err := Parse([]byte(doc), FormatJSON)
	require.NoError(t, err)
	require.Len(t, cat.Levels[0].Events, 2)
	assert.Equal(t, -1e21, cat.Levels[0].Events[0].Year)
	assert.Equal(t, []string{"x", "y"}, cat.Levels[0].Events[1].Paragraphs())
}

func TestParseJSONRejectsUnknownFields(t *testing.T) {
	doc := `{"levels":[{"name":"A","events":[{"id":1,"title":"One","year":1,"colour":"red"}]}]}`
	_, err := Parse([]byte(doc), FormatJSON)
	assert.Error(t, err)
}

func TestParseTOML(t *testing.T) {
	doc := `
[[levels]]
name = "Deep Time"
subtitle = "sub"

[[levels.events]]
id = 7
title = "Seven"
description = "d"
year = -4.5e9

[[levels.events]]
id = 8
title = "Eight"
description = "d"
year = 2.5e6
`
	cat, err := Parse([]byte(doc), FormatTOML)
	require.NoError(t, err)
	require.Len(t, cat.Levels, 1)
	assert.Equal(t, -4.5e9, cat.Levels[0].Events[0].Year)
	assert.Equal(t, 2.5e6, cat.Levels[0].Events[1].Year)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yml")
	doc := "levels:\n  - name: L\n    subtitle: S\n    events:\n      - id: 1\n        title: T\n        description: D\n        year: -500\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, -500.0, cat.Levels[0].Events[0].Year)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "levels.txt"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cat  Catalog
	}{
		{"no levels", Catalog{}},
		{"unnamed level", Catalog{Levels: []Level{{Events: []Event{{ID: 1, Title: "a"}}}}}},
		{"empty level", Catalog{Levels: []Level{{Name: "L"}}}},
		{"untitled event", Catalog{Levels: []Level{{Name: "L", Events: []Event{{ID: 1}}}}}},
		{"duplicate id", Catalog{Levels: []Level{
			{Name: "L1", Events: []Event{{ID: 1, Title: "a"}}},
			{Name: "L2", Events: []Event{{ID: 1, Title: "b"}}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cat.Validate(), ErrInvalidCatalog)
		})
	}
}

func TestImageRef(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Event{ID: 1, Title: "The Big Bang"}, "images/1_The_Big_Bang.webp"},
		{Event{ID: 504, Title: "Alexander's Conquests"}, "images/504_Alexanders_Conquests.webp"},
		{Event{ID: 9, Title: "AC/DC Current"}, "images/9_AC-DC_Current.webp"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ImageRef(tt.event))
	}
}

func TestResolverExists(t *testing.T) {
	dir := t.TempDir()
	e := Event{ID: 3, Title: "Milky Way"}
	r := NewResolver(dir)

	assert.False(t, r.Exists(e))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ImageDir), 0755))
	require.NoError(t, os.WriteFile(r.Path(e), []byte("webp"), 0644))
	assert.True(t, r.Exists(e))

	var nilResolver *Resolver
	assert.False(t, nilResolver.Exists(e))
}

func TestParagraphsPlaceholder(t *testing.T) {
	assert.Equal(t, []string{constants.NoInfoAvailable}, Paragraphs(""))
	assert.Equal(t, []string{constants.NoInfoAvailable}, Paragraphs(" \n\n "))
}

func TestCatalogLevel(t *testing.T) {
	cat := Catalog{Levels: []Level{{Name: "only"}}}
	l, ok := cat.Level(0)
	assert.True(t, ok)
	assert.Equal(t, "only", l.Name)
	_, ok = cat.Level(1)
	assert.False(t, ok)
	_, ok = cat.Level(-1)
	assert.False(t, ok)
}
