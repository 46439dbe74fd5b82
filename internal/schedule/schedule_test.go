package schedule_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchl/rinkbot/internal/models"
	"github.com/fchl/rinkbot/internal/schedule"
)

func completedGame(visitor, vScore, home, hScore, vGoalie, hGoalie string) models.ScheduleGame {
	return models.ScheduleGame{
		Visitor:       visitor,
		VisitorScore:  vScore,
		Home:          home,
		HomeScore:     hScore,
		Status:        "Final",
		VisitorGoalie: vGoalie,
		HomeGoalie:    hGoalie,
	}
}

func TestDerive_CompletedAndRemainingCounts(t *testing.T) {
	games := []models.ScheduleGame{
		completedGame("Edmonton Oilers", "4", "Calgary Flames", "2", "Stuart Skinner", "Dustin Wolf"),
		completedGame("Calgary Flames", "1", "Edmonton Oilers", "5", "Dustin Wolf", "Stuart Skinner"),
		{Visitor: "Edmonton Oilers", Home: "Vancouver Canucks", Status: "Scheduled"},
	}

	stats := schedule.Derive(games)

	assert.Equal(t, 2, stats.TeamCompleted["EDM"])
	assert.Equal(t, 2, stats.TeamCompleted["CGY"])
	assert.Equal(t, 1, stats.TeamRemaining["EDM"])
	assert.Equal(t, 1, stats.TeamRemaining["VAN"])
	assert.Zero(t, stats.TeamRemaining["CGY"])

	// Each completed game counts once for each side.
	totalCompleted := 0
	for _, n := range stats.TeamCompleted {
		totalCompleted += n
	}
	assert.Equal(t, 2*2, totalCompleted)

	totalRemaining := 0
	for _, n := range stats.TeamRemaining {
		totalRemaining += n
	}
	assert.Equal(t, 2*1, totalRemaining)
}

func TestDerive_GoalieTallies(t *testing.T) {
	games := []models.ScheduleGame{
		completedGame("Edmonton Oilers", "4", "Calgary Flames", "2", "Stuart Skinner", "Dustin Wolf"),
		completedGame("Calgary Flames", "0", "Edmonton Oilers", "3", "Dustin Wolf", "Stuart Skinner"),
		completedGame("Vancouver Canucks", "2", "Edmonton Oilers", "1", "Kevin Lankinen", "Stuart Skinner"),
	}

	stats := schedule.Derive(games)

	skinner := stats.GoalieTallies["Stuart Skinner"]
	assert.Equal(t, 3, skinner.Starts)
	assert.Equal(t, 2, skinner.Wins)
	assert.Equal(t, 1, skinner.Shutouts, "shutout when the opposing side scored zero")

	wolf := stats.GoalieTallies["Dustin Wolf"]
	assert.Equal(t, 2, wolf.Starts)
	assert.Zero(t, wolf.Wins)
	assert.Zero(t, wolf.Shutouts)

	for name, tally := range stats.GoalieTallies {
		assert.LessOrEqual(t, tally.Wins, tally.Starts, "wins cannot exceed starts for %s", name)
	}
}

func TestDerive_UnparseableScoresKeepGameCounts(t *testing.T) {
	games := []models.ScheduleGame{
		completedGame("Edmonton Oilers", "", "Calgary Flames", "", "Stuart Skinner", "Dustin Wolf"),
	}

	stats := schedule.Derive(games)

	assert.Equal(t, 1, stats.TeamCompleted["EDM"], "completed count survives a bad score")
	assert.Equal(t, 1, stats.TeamCompleted["CGY"])
	assert.Empty(t, stats.GoalieTallies, "no goalie tallies without parseable scores")
}

func TestDerive_UnrecognizedTeamsSkipped(t *testing.T) {
	games := []models.ScheduleGame{
		completedGame("Hartford Whalers", "3", "Edmonton Oilers", "2", "Mike Liut", "Stuart Skinner"),
		{Visitor: "Hartford Whalers", Home: "Quebec Nordiques", Status: "Scheduled"},
	}

	stats := schedule.Derive(games)

	assert.Equal(t, 1, stats.TeamCompleted["EDM"])
	assert.NotContains(t, stats.TeamCompleted, "Hartford Whalers")
	assert.Empty(t, stats.TeamRemaining)

	// Goalie tallies do not depend on team recognition.
	assert.Equal(t, 1, stats.GoalieTallies["Mike Liut"].Wins)
}

func TestDerive_MissingGoalieNames(t *testing.T) {
	games := []models.ScheduleGame{
		completedGame("Edmonton Oilers", "4", "Calgary Flames", "0", "Stuart Skinner", ""),
	}

	stats := schedule.Derive(games)

	skinner := stats.GoalieTallies["Stuart Skinner"]
	assert.Equal(t, 1, skinner.Starts)
	assert.Zero(t, skinner.Wins, "a win needs both starting goalies on record")
	assert.Equal(t, 1, skinner.Shutouts, "a shutout only needs the credited goalie")
	assert.NotContains(t, stats.GoalieTallies, "")
}

func TestDerive_AnyNonScheduledStatusIsCompleted(t *testing.T) {
	games := []models.ScheduleGame{
		{Visitor: "Edmonton Oilers", VisitorScore: "2", Home: "Calgary Flames", HomeScore: "3", Status: "Final OT"},
	}

	stats := schedule.Derive(games)
	assert.Equal(t, 1, stats.TeamCompleted["EDM"])
	assert.Equal(t, 1, stats.TeamCompleted["CGY"])
}

func TestLoad_PositionalColumns(t *testing.T) {
	// The real file has two columns both named "Score", so positions matter.
	csv := `Date,Start Time (Sask),Start Time (ET),Visitor,Score,Home,Score,Status,Visitor Goalie,Home Goalie
2026-01-03,18:00,19:00,Edmonton Oilers,4,Calgary Flames,2,Final,Stuart Skinner,Dustin Wolf
2026-04-10,18:00,19:00,Edmonton Oilers,,Vancouver Canucks,,Scheduled,,
short,row
`
	games, err := schedule.Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, games, 2, "rows with fewer than eight fields are dropped")

	assert.Equal(t, "Edmonton Oilers", games[0].Visitor)
	assert.Equal(t, "4", games[0].VisitorScore)
	assert.Equal(t, "Calgary Flames", games[0].Home)
	assert.Equal(t, "2", games[0].HomeScore)
	assert.Equal(t, "Final", games[0].Status)
	assert.Equal(t, "Stuart Skinner", games[0].VisitorGoalie)
	assert.Equal(t, "Dustin Wolf", games[0].HomeGoalie)

	assert.Equal(t, "Scheduled", games[1].Status)
	assert.Empty(t, games[1].VisitorGoalie)
}

func TestLoad_RowsWithoutGoalieColumns(t *testing.T) {
	csv := `Date,Start Time (Sask),Start Time (ET),Visitor,Score,Home,Score,Status
2026-01-03,18:00,19:00,Edmonton Oilers,4,Calgary Flames,2,Final
`
	games, err := schedule.Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Empty(t, games[0].VisitorGoalie)
	assert.Empty(t, games[0].HomeGoalie)
}

func TestTeamAbbreviations_Complete(t *testing.T) {
	require.Len(t, schedule.TeamAbbreviations, 32)
	assert.Equal(t, "UTA", schedule.TeamAbbreviations["Utah Mammoth"])
	assert.Equal(t, "STL", schedule.TeamAbbreviations["St. Louis Blues"])
}
