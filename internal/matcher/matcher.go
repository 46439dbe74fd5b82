package matcher

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/fchl/rinkbot/internal/models"
)

// DefaultCutoff is the minimum similarity (0-100) a fuzzy candidate needs
// to be accepted. Lower values admit false positives, higher values leave
// real players unmatched.
const DefaultCutoff = 80

// Lookup maps each distinct roster name to its key in the matching stats
// collection. An entry is present for every roster name; the empty string
// marks a name with no acceptable match.
type Lookup map[string]string

// Resolve returns the stats key for a roster name. ok is false when the
// name was never matched or has no acceptable match.
func (l Lookup) Resolve(name string) (string, bool) {
	key, present := l[name]
	if !present || key == "" {
		return "", false
	}
	return key, true
}

// Add records an exact entry for a player drawn directly from a stats
// collection, so the lookup never has to be rebuilt for roster additions.
func (l Lookup) Add(name string) {
	l[name] = name
}

// Build resolves every roster player against the appropriate stats
// collection: goalies against the goalie table, everyone else against the
// skater table. Exact key hits win outright; otherwise the best fuzzy
// candidate at or above cutoff is taken. Each distinct name is resolved
// once no matter how often it appears.
func Build(
	players []models.RosterPlayer,
	skaters map[string]models.SkaterRecord,
	goalies map[string]models.GoalieRecord,
	cutoff int,
) Lookup {
	skaterNames := make([]string, 0, len(skaters))
	for name := range skaters {
		skaterNames = append(skaterNames, name)
	}
	goalieNames := make([]string, 0, len(goalies))
	for name := range goalies {
		goalieNames = append(goalieNames, name)
	}
	// Deterministic candidate order so score ties always resolve the same way.
	sort.Strings(skaterNames)
	sort.Strings(goalieNames)

	lookup := make(Lookup, len(players))
	for _, player := range players {
		if _, done := lookup[player.Name]; done {
			continue
		}

		var exact bool
		var candidates []string
		if player.Position == models.PositionGoalie {
			_, exact = goalies[player.Name]
			candidates = goalieNames
		} else {
			_, exact = skaters[player.Name]
			candidates = skaterNames
		}

		if exact {
			lookup[player.Name] = player.Name
			continue
		}
		match, _ := BestMatch(player.Name, candidates, cutoff)
		lookup[player.Name] = match
	}

	return lookup
}

// BestMatch returns the candidate most similar to query, provided its
// token-sort similarity reaches cutoff. ok is false when no candidate
// qualifies.
func BestMatch(query string, candidates []string, cutoff int) (match string, ok bool) {
	best := -1
	for _, candidate := range candidates {
		score := Similarity(query, candidate)
		if score > best {
			best = score
			match = candidate
		}
	}
	if best < cutoff {
		return "", false
	}
	return match, true
}

// Similarity scores two names on a 0-100 scale, insensitive to case and
// token order, so "McDavid Connor" and "Connor McDavid" compare equal.
func Similarity(a, b string) int {
	na := normalize(a)
	nb := normalize(b)
	if na == nb {
		return 100
	}

	maxLen := len(na)
	if len(nb) > maxLen {
		maxLen = len(nb)
	}
	if maxLen == 0 {
		return 100
	}

	distance := fuzzy.LevenshteinDistance(na, nb)
	return int((1 - float64(distance)/float64(maxLen)) * 100)
}

func normalize(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
