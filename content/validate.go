package content

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCatalog wraps every validation failure
var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks structural rules: at least one level, named non-empty levels,
// unique event IDs, titled events and finite years
func (c *Catalog) Validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidCatalog)
	}

	seen := make(map[int]string)
	for li, level := range c.Levels {
		if level.Name == "" {
			return fmt.Errorf("%w: level %d has no name", ErrInvalidCatalog, li)
		}
		if len(level.Events) == 0 {
			return fmt.Errorf("%w: level %q has no events", ErrInvalidCatalog, level.Name)
		}
		for _, e := range level.Events {
			if e.Title == "" {
				return fmt.Errorf("%w: event %d in level %q has no title", ErrInvalidCatalog, e.ID, level.Name)
			}
			if math.IsNaN(e.Year) || math.IsInf(e.Year, 0) {
				return fmt.Errorf("%w: event %d has a non-finite year", ErrInvalidCatalog, e.ID)
			}
			if prev, dup := seen[e.ID]; dup {
				return fmt.Errorf("%w: event id %d used by %q and %q", ErrInvalidCatalog, e.ID, prev, e.Title)
			}
			seen[e.ID] = e.Title
		}
	}
	return nil
}
