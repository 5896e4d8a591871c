package content

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ImageDir is the directory under the asset base holding event artwork
const ImageDir = "images"

var titleSanitizer = strings.NewReplacer(" ", "_", "/", "-", "'", "")

// ImageRef derives the artwork path of an event relative to the asset base
func ImageRef(e Event) string {
	return ImageDir + "/" + strconv.Itoa(e.ID) + "_" + titleSanitizer.Replace(e.Title) + ".webp"
}

// Resolver maps image references onto an asset directory
type Resolver struct {
	base string
}

// NewResolver creates a resolver rooted at base
func NewResolver(base string) *Resolver {
	return &Resolver{base: base}
}

// Path returns the filesystem path of an event's artwork
func (r *Resolver) Path(e Event) string {
	return filepath.Join(r.base, filepath.FromSlash(ImageRef(e)))
}

// Exists reports whether the artwork file is present, any stat failure counts as missing
func (r *Resolver) Exists(e Event) bool {
	if r == nil {
		return false
	}
	info, err := os.Stat(r.Path(e))
	return err == nil && !info.IsDir()
}
