package memory

import (
	"sync"

	"github.com/fchl/rinkbot/internal/matcher"
	"github.com/fchl/rinkbot/internal/models"
)

// Repository owns the session's mutable state: the roster, the player
// lookup, and the current-points baseline. Edits are serialized against
// projection passes here; the pipeline itself takes read-only snapshots
// and holds no locks. Nothing is persisted across restarts.
type Repository struct {
	mu sync.RWMutex

	roster []models.RosterPlayer
	lookup matcher.Lookup
	points map[string]int

	originalRoster []models.RosterPlayer
	originalLookup matcher.Lookup
}

func NewRepository(roster []models.RosterPlayer, lookup matcher.Lookup, points map[string]int) *Repository {
	return &Repository{
		roster:         append([]models.RosterPlayer(nil), roster...),
		lookup:         copyLookup(lookup),
		points:         copyPoints(points),
		originalRoster: append([]models.RosterPlayer(nil), roster...),
		originalLookup: copyLookup(lookup),
	}
}

// Snapshot returns copies of the roster, lookup, and baseline for one
// projection pass.
func (r *Repository) Snapshot() ([]models.RosterPlayer, matcher.Lookup, map[string]int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.RosterPlayer(nil), r.roster...), copyLookup(r.lookup), copyPoints(r.points)
}

// AddPlayer appends a player whose name was taken directly from a stats
// collection, so the lookup gains a single exact entry instead of being
// rebuilt.
func (r *Repository) AddPlayer(player models.RosterPlayer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roster = append(r.roster, player)
	r.lookup.Add(player.Name)
}

// RemovePlayer drops the first roster entry with the given name on the
// given FCHL team. It reports whether anything was removed.
func (r *Repository) RemovePlayer(name, fchlTeam string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, player := range r.roster {
		if player.Name == name && player.FCHLTeam == fchlTeam {
			r.roster = append(r.roster[:i], r.roster[i+1:]...)
			return true
		}
	}
	return false
}

// MovePlayer reassigns the first roster entry with the given name to
// another FCHL team. It reports whether the player was found.
func (r *Repository) MovePlayer(name, toTeam string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, player := range r.roster {
		if player.Name == name {
			r.roster[i].FCHLTeam = toTeam
			return true
		}
	}
	return false
}

// SetPoints updates one team's current-points baseline.
func (r *Repository) SetPoints(fchlTeam string, points int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.points[fchlTeam] = points
}

// Reset restores the originally loaded roster and lookup. The points
// baseline is left alone.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roster = append([]models.RosterPlayer(nil), r.originalRoster...)
	r.lookup = copyLookup(r.originalLookup)
}

func copyLookup(lookup matcher.Lookup) matcher.Lookup {
	out := make(matcher.Lookup, len(lookup))
	for name, key := range lookup {
		out[name] = key
	}
	return out
}

func copyPoints(points map[string]int) map[string]int {
	out := make(map[string]int, len(points))
	for team, pts := range points {
		out[team] = pts
	}
	return out
}
