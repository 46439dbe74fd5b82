package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchl/rinkbot/internal/matcher"
	"github.com/fchl/rinkbot/internal/models"
)

func skaterTable(names ...string) map[string]models.SkaterRecord {
	skaters := make(map[string]models.SkaterRecord, len(names))
	for _, name := range names {
		skaters[name] = models.SkaterRecord{Name: name}
	}
	return skaters
}

func goalieTable(names ...string) map[string]models.GoalieRecord {
	goalies := make(map[string]models.GoalieRecord, len(names))
	for _, name := range names {
		goalies[name] = models.GoalieRecord{Name: name}
	}
	return goalies
}

func TestSimilarity_TokenOrderInsensitive(t *testing.T) {
	assert.Equal(t, 100, matcher.Similarity("Connor McDavid", "McDavid Connor"))
	assert.Equal(t, 100, matcher.Similarity("connor mcdavid", "CONNOR MCDAVID"))
}

func TestSimilarity_NearMiss(t *testing.T) {
	score := matcher.Similarity("Conor McDavid", "Connor McDavid")
	assert.GreaterOrEqual(t, score, matcher.DefaultCutoff, "one-letter typo should clear the default cutoff")
	assert.Less(t, score, 100)
}

func TestBestMatch_RespectsCutoff(t *testing.T) {
	candidates := []string{"Connor McDavid", "Leon Draisaitl"}

	match, ok := matcher.BestMatch("Conor McDavid", candidates, matcher.DefaultCutoff)
	require.True(t, ok)
	assert.Equal(t, "Connor McDavid", match)

	_, ok = matcher.BestMatch("Wayne Gretzky", candidates, matcher.DefaultCutoff)
	assert.False(t, ok, "nothing close enough should be rejected")
}

func TestBestMatch_NoCandidates(t *testing.T) {
	_, ok := matcher.BestMatch("anyone", nil, matcher.DefaultCutoff)
	assert.False(t, ok)
}

func TestBuild_ExactMatchShortCircuits(t *testing.T) {
	players := []models.RosterPlayer{
		{Name: "Connor McDavid", Position: models.PositionForward},
	}
	lookup := matcher.Build(players, skaterTable("Connor McDavid"), nil, matcher.DefaultCutoff)

	key, ok := lookup.Resolve("Connor McDavid")
	require.True(t, ok)
	assert.Equal(t, "Connor McDavid", key, "an exact key always maps to itself")
}

func TestBuild_FuzzyFallback(t *testing.T) {
	players := []models.RosterPlayer{
		{Name: "Conor McDavid", Position: models.PositionForward},
		{Name: "Some Nobody", Position: models.PositionDefense},
	}
	lookup := matcher.Build(players, skaterTable("Connor McDavid", "Cale Makar"), nil, matcher.DefaultCutoff)

	key, ok := lookup.Resolve("Conor McDavid")
	require.True(t, ok)
	assert.Equal(t, "Connor McDavid", key)

	_, ok = lookup.Resolve("Some Nobody")
	assert.False(t, ok)
	_, present := lookup["Some Nobody"]
	assert.True(t, present, "unmatched names still get an explicit entry")
}

func TestBuild_GoaliesUseGoalieTable(t *testing.T) {
	players := []models.RosterPlayer{
		{Name: "Igor Shesterkin", Position: models.PositionGoalie},
	}
	// The same name in the skater table must not satisfy a goalie.
	lookup := matcher.Build(players, skaterTable("Igor Shesterkin"), goalieTable("Jordan Binnington"), matcher.DefaultCutoff)

	_, ok := lookup.Resolve("Igor Shesterkin")
	assert.False(t, ok, "goalies resolve against the goalie table only")
}

func TestBuild_DeduplicatesRosterNames(t *testing.T) {
	players := []models.RosterPlayer{
		{Name: "Connor McDavid", Position: models.PositionForward, FCHLTeam: "MAC"},
		{Name: "Connor McDavid", Position: models.PositionForward, FCHLTeam: "ZSK"},
	}
	lookup := matcher.Build(players, skaterTable("Connor McDavid"), nil, matcher.DefaultCutoff)
	assert.Len(t, lookup, 1)
}

func TestLookup_Add(t *testing.T) {
	lookup := matcher.Lookup{}
	lookup.Add("Cale Makar")

	key, ok := lookup.Resolve("Cale Makar")
	require.True(t, ok)
	assert.Equal(t, "Cale Makar", key)
}

func TestLookup_ResolveUnknownName(t *testing.T) {
	lookup := matcher.Lookup{}
	_, ok := lookup.Resolve("never seen")
	assert.False(t, ok)
}
