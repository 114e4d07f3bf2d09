package game

import (
	"time"

	"github.com/samdwyer/hexcrawl/internal/config"
	"github.com/samdwyer/hexcrawl/internal/geomorph"
)

// searchRadius bounds the search for a free cell to put the player on.
const searchRadius = 2 * geomorph.Width

// resolveSeed returns the configured world seed, or a time-based one when
// the configuration leaves it at zero.
func resolveSeed(cfg *config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}
