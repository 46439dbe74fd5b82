package projection

import (
	"sort"

	"github.com/fchl/rinkbot/internal/matcher"
	"github.com/fchl/rinkbot/internal/models"
)

// FCHL scoring weights.
const (
	GoalPoints    = 1
	AssistPoints  = 1
	WinPoints     = 2
	ShutoutPoints = 3
)

// ProjectAll projects every rostered player, skaters and goalies alike,
// in roster order. It is a pure function of its inputs: the same roster,
// lookup, stats, and schedule always produce the same projections.
func ProjectAll(
	players []models.RosterPlayer,
	lookup matcher.Lookup,
	skaters map[string]models.SkaterRecord,
	goalies map[string]models.GoalieRecord,
	sched models.ScheduleStats,
) []models.PlayerProjection {
	projections := make([]models.PlayerProjection, len(players))
	for i, player := range players {
		key, _ := lookup.Resolve(player.Name)
		if player.Position == models.PositionGoalie {
			projections[i] = ProjectGoalie(player, key, goalies, sched)
		} else {
			projections[i] = ProjectSkater(player, key, skaters, sched.TeamRemaining)
		}
	}
	return projections
}

// ProjectSkater projects a skater's remaining goals and assists from their
// per-game rates and their NHL team's remaining schedule. statsKey is the
// matched key into skaters; empty means unmatched and yields a zero
// projection. A matched skater with no games played is still marked found.
func ProjectSkater(
	player models.RosterPlayer,
	statsKey string,
	skaters map[string]models.SkaterRecord,
	teamRemaining map[string]int,
) models.PlayerProjection {
	proj := models.PlayerProjection{
		Name:     player.Name,
		Position: player.Position,
		FCHLTeam: player.FCHLTeam,
	}

	record, ok := skaters[statsKey]
	if statsKey == "" || !ok {
		return proj
	}

	proj.NHLTeam = record.NHLTeam
	proj.FoundInStats = true
	if record.GamesPlayed <= 0 {
		return proj
	}

	remaining := float64(teamRemaining[record.NHLTeam])
	goalsPerGame := record.Goals / record.GamesPlayed
	assistsPerGame := (record.PrimaryAssists + record.SecondaryAssists) / record.GamesPlayed

	proj.ProjGoals = goalsPerGame * remaining
	proj.ProjAssists = assistsPerGame * remaining
	proj.ProjPoints = proj.ProjGoals*GoalPoints + proj.ProjAssists*AssistPoints
	return proj
}

// ProjectGoalie projects a goalie's remaining wins and shutouts. Their
// share of the team's completed games is assumed to hold over the
// remaining schedule. Schedule tallies are keyed by the schedule file's
// goalie spelling, which can differ from the stats file's: the matched
// stats key is tried first, the raw roster name second.
func ProjectGoalie(
	player models.RosterPlayer,
	statsKey string,
	goalies map[string]models.GoalieRecord,
	sched models.ScheduleStats,
) models.PlayerProjection {
	proj := models.PlayerProjection{
		Name:     player.Name,
		Position: player.Position,
		FCHLTeam: player.FCHLTeam,
	}

	record, ok := goalies[statsKey]
	if statsKey == "" || !ok {
		return proj
	}

	proj.NHLTeam = record.NHLTeam
	proj.FoundInStats = true

	tally, ok := sched.GoalieTallies[statsKey]
	if !ok {
		tally = sched.GoalieTallies[player.Name]
	}

	completed := sched.TeamCompleted[record.NHLTeam]
	if tally.Starts == 0 || completed == 0 {
		return proj
	}

	starts := float64(tally.Starts)
	winRate := float64(tally.Wins) / starts
	shutoutRate := float64(tally.Shutouts) / starts
	remainingStarts := starts / float64(completed) * float64(sched.TeamRemaining[record.NHLTeam])

	proj.ProjWins = winRate * remainingStarts
	proj.ProjShutouts = shutoutRate * remainingStarts
	proj.ProjPoints = proj.ProjWins*WinPoints + proj.ProjShutouts*ShutoutPoints
	return proj
}

// Standings sums projected points per FCHL team and adds the current
// baseline. Teams known only from the baseline still appear. The result
// is ordered by projected total, highest first; equal totals keep their
// relative order, which is incidental rather than contractual.
func Standings(projections []models.PlayerProjection, currentPoints map[string]int) []models.TeamStanding {
	teamProj := make(map[string]float64)
	for _, proj := range projections {
		teamProj[proj.FCHLTeam] += proj.ProjPoints
	}

	seen := make(map[string]bool, len(teamProj)+len(currentPoints))
	teams := make([]string, 0, len(teamProj)+len(currentPoints))
	for team := range teamProj {
		seen[team] = true
		teams = append(teams, team)
	}
	for team := range currentPoints {
		if !seen[team] {
			teams = append(teams, team)
		}
	}
	// Alphabetical before the stable sort so tied totals order the same on
	// every pass.
	sort.Strings(teams)

	standings := make([]models.TeamStanding, 0, len(teams))
	for _, team := range teams {
		current := currentPoints[team]
		remaining := teamProj[team]
		standings = append(standings, models.TeamStanding{
			FCHLTeam:      team,
			CurrentPoints: current,
			ProjRemaining: remaining,
			ProjTotal:     float64(current) + remaining,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].ProjTotal > standings[j].ProjTotal
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings
}
