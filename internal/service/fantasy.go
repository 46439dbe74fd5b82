package service

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/fchl/rinkbot/internal/matcher"
	"github.com/fchl/rinkbot/internal/models"
	"github.com/fchl/rinkbot/internal/projection"
	"github.com/fchl/rinkbot/internal/repository/memory"
)

// Teams is the fixed set of FCHL teams.
var Teams = []string{"BOT", "GVR", "LPT", "MAC", "SRL", "ZSK"}

var defaultPoints = map[string]int{
	"BOT": 828,
	"GVR": 878,
	"LPT": 907,
	"MAC": 819,
	"SRL": 829,
	"ZSK": 858,
}

// DefaultCurrentPoints returns the league's current-points baseline used
// to seed a fresh session. Callers may edit their copy freely.
func DefaultCurrentPoints() map[string]int {
	points := make(map[string]int, len(defaultPoints))
	for team, pts := range defaultPoints {
		points[team] = pts
	}
	return points
}

func isTeam(team string) bool {
	for _, t := range Teams {
		if t == team {
			return true
		}
	}
	return false
}

// FantasyService runs projection passes over the session store and
// formats the results as Markdown reports.
type FantasyService struct {
	repo        *memory.Repository
	skaters     map[string]models.SkaterRecord
	goalies     map[string]models.GoalieRecord
	sched       models.ScheduleStats
	matchCutoff int
}

func NewFantasyService(
	repo *memory.Repository,
	skaters map[string]models.SkaterRecord,
	goalies map[string]models.GoalieRecord,
	sched models.ScheduleStats,
	matchCutoff int,
) *FantasyService {
	return &FantasyService{
		repo:        repo,
		skaters:     skaters,
		goalies:     goalies,
		sched:       sched,
		matchCutoff: matchCutoff,
	}
}

// projectionPass snapshots the session and projects every rostered player.
func (s *FantasyService) projectionPass() ([]models.PlayerProjection, map[string]int) {
	roster, lookup, points := s.repo.Snapshot()
	return projection.ProjectAll(roster, lookup, s.skaters, s.goalies, s.sched), points
}

func (s *FantasyService) GetStandings() string {
	projections, points := s.projectionPass()
	standings := projection.Standings(projections, points)

	var sb strings.Builder
	sb.WriteString("🏆 *Projected Final Standings*\n\n")
	for _, team := range standings {
		sb.WriteString(fmt.Sprintf("%d. *%s*\n", team.Rank, team.FCHLTeam))
		sb.WriteString(fmt.Sprintf("   Current: %d\n", team.CurrentPoints))
		sb.WriteString(fmt.Sprintf("   Proj Remaining: %.1f\n", team.ProjRemaining))
		sb.WriteString(fmt.Sprintf("   Proj Total: %.1f\n\n", team.ProjTotal))
	}

	return sb.String()
}

// GetProjections lists every player's projection, optionally filtered by
// FCHL team and/or position code, highest projected points first.
func (s *FantasyService) GetProjections(teamFilter, posFilter string) string {
	projections, _ := s.projectionPass()

	var filtered []models.PlayerProjection
	for _, proj := range projections {
		if teamFilter != "" && proj.FCHLTeam != teamFilter {
			continue
		}
		if posFilter != "" && proj.Position != posFilter {
			continue
		}
		filtered = append(filtered, proj)
	}

	var sb strings.Builder
	sb.WriteString("📈 *Player Projections*")
	if teamFilter != "" {
		sb.WriteString(fmt.Sprintf(" - %s", teamFilter))
	}
	if posFilter != "" {
		sb.WriteString(fmt.Sprintf(" - %s", posFilter))
	}
	sb.WriteString("\n\n")

	if len(filtered) == 0 {
		sb.WriteString("No players match that filter.")
		return sb.String()
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ProjPoints > filtered[j].ProjPoints
	})

	for _, proj := range filtered {
		sb.WriteString(formatProjectionLine(proj))
	}

	return sb.String()
}

func formatProjectionLine(proj models.PlayerProjection) string {
	if !proj.FoundInStats {
		return fmt.Sprintf("▫️ %s %s (%s) - not in stats, 0.0 pts\n", proj.Position, proj.Name, proj.FCHLTeam)
	}
	if proj.Position == models.PositionGoalie {
		return fmt.Sprintf("▫️ %s %s (%s, %s) - %.1f W, %.1f SO, %.1f pts\n",
			proj.Position, proj.Name, proj.NHLTeam, proj.FCHLTeam,
			proj.ProjWins, proj.ProjShutouts, proj.ProjPoints)
	}
	return fmt.Sprintf("▫️ %s %s (%s, %s) - %.1f G, %.1f A, %.1f pts\n",
		proj.Position, proj.Name, proj.NHLTeam, proj.FCHLTeam,
		proj.ProjGoals, proj.ProjAssists, proj.ProjPoints)
}

// GetTeamBreakdown reports one FCHL team's skaters and goalies separately,
// each sorted by projected points.
func (s *FantasyService) GetTeamBreakdown(team string) (string, error) {
	team = strings.ToUpper(strings.TrimSpace(team))
	if !isTeam(team) {
		return "", fmt.Errorf("unknown FCHL team: %s", team)
	}

	projections, _ := s.projectionPass()

	var skaters, goalies []models.PlayerProjection
	var total float64
	for _, proj := range projections {
		if proj.FCHLTeam != team {
			continue
		}
		total += proj.ProjPoints
		if proj.Position == models.PositionGoalie {
			goalies = append(goalies, proj)
		} else {
			skaters = append(skaters, proj)
		}
	}

	byPoints := func(projs []models.PlayerProjection) {
		sort.SliceStable(projs, func(i, j int) bool {
			return projs[i].ProjPoints > projs[j].ProjPoints
		})
	}
	byPoints(skaters)
	byPoints(goalies)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s - Projected %.1f Remaining Pts*\n\n", team, total))

	sb.WriteString("*Skaters:*\n")
	for _, proj := range skaters {
		sb.WriteString(formatProjectionLine(proj))
	}
	if len(skaters) == 0 {
		sb.WriteString("none\n")
	}

	sb.WriteString("\n*Goalies:*\n")
	for _, proj := range goalies {
		sb.WriteString(formatProjectionLine(proj))
	}
	if len(goalies) == 0 {
		sb.WriteString("none\n")
	}

	return sb.String(), nil
}

// WhoHas fuzzy-finds a rostered player and reports who owns them along
// with their projection.
func (s *FantasyService) WhoHas(playerName string) string {
	projections, _ := s.projectionPass()

	names := make([]string, len(projections))
	for i, proj := range projections {
		names[i] = proj.Name
	}

	match, ok := matcher.BestMatch(playerName, names, s.matchCutoff)
	if !ok {
		return fmt.Sprintf("🔍 No rostered player found matching '%s'.", playerName)
	}

	for _, proj := range projections {
		if proj.Name != match {
			continue
		}
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("*%s* (%s)\n", proj.Name, proj.Position))
		sb.WriteString(fmt.Sprintf("Rostered by *%s*\n", proj.FCHLTeam))
		sb.WriteString(formatProjectionLine(proj))
		return sb.String()
	}
	return fmt.Sprintf("🔍 No rostered player found matching '%s'.", playerName)
}

// GetUnmatched lists roster players with no statistical match. They
// project zero points until their spelling is fixed or they are re-added
// from a stats table.
func (s *FantasyService) GetUnmatched() string {
	projections, _ := s.projectionPass()

	var unmatched []models.PlayerProjection
	for _, proj := range projections {
		if !proj.FoundInStats {
			unmatched = append(unmatched, proj)
		}
	}

	if len(unmatched) == 0 {
		return "✅ Every rostered player matched a stats record."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⚠️ *%d player(s) not found in stats (projecting 0 pts):*\n\n", len(unmatched)))
	for _, proj := range unmatched {
		sb.WriteString(fmt.Sprintf("▫️ %s %s (%s)\n", proj.Position, proj.Name, proj.FCHLTeam))
	}

	return sb.String()
}

// GetRemainingGames reports scheduled games per NHL team, most first.
func (s *FantasyService) GetRemainingGames() string {
	type teamGames struct {
		team  string
		games int
	}

	remaining := make([]teamGames, 0, len(s.sched.TeamRemaining))
	total := 0
	for team, games := range s.sched.TeamRemaining {
		remaining = append(remaining, teamGames{team, games})
		total += games
	}
	sort.Slice(remaining, func(i, j int) bool {
		if remaining[i].games != remaining[j].games {
			return remaining[i].games > remaining[j].games
		}
		return remaining[i].team < remaining[j].team
	})

	var sb strings.Builder
	// Each game counts once for each side.
	sb.WriteString(fmt.Sprintf("🗓 *Remaining NHL Games: %d*\n\n", total/2))
	for _, tg := range remaining {
		sb.WriteString(fmt.Sprintf("%s: %d\n", tg.team, tg.games))
	}

	return sb.String()
}

// AddPlayer puts a player from a stats table onto an FCHL roster. The
// name must be an exact stats key, which keeps the lookup append-only.
func (s *FantasyService) AddPlayer(position, team, name string) (string, error) {
	position = strings.ToUpper(strings.TrimSpace(position))
	team = strings.ToUpper(strings.TrimSpace(team))
	name = strings.TrimSpace(name)

	switch position {
	case models.PositionForward, models.PositionDefense, models.PositionGoalie:
	default:
		return "", fmt.Errorf("unknown position %q (use F, D, or G)", position)
	}
	if !isTeam(team) {
		return "", fmt.Errorf("unknown FCHL team: %s", team)
	}

	if position == models.PositionGoalie {
		if _, ok := s.goalies[name]; !ok {
			return "", fmt.Errorf("no goalie named %q in the stats table", name)
		}
	} else {
		if _, ok := s.skaters[name]; !ok {
			return "", fmt.Errorf("no skater named %q in the stats table", name)
		}
	}

	s.repo.AddPlayer(models.RosterPlayer{
		Raw:      fmt.Sprintf("%s %s (added)", position, name),
		Name:     name,
		Position: position,
		FCHLTeam: team,
	})
	slog.Info("Player added", "name", name, "position", position, "team", team)

	return fmt.Sprintf("➕ Added %s %s to *%s*.", position, name, team), nil
}

// RemovePlayer drops a player from an FCHL roster.
func (s *FantasyService) RemovePlayer(team, name string) (string, error) {
	team = strings.ToUpper(strings.TrimSpace(team))
	name = strings.TrimSpace(name)

	if !s.repo.RemovePlayer(name, team) {
		return "", fmt.Errorf("no player named %q on %s", name, team)
	}
	slog.Info("Player removed", "name", name, "team", team)

	return fmt.Sprintf("➖ Removed %s from *%s*.", name, team), nil
}

// MovePlayer reassigns a rostered player to another FCHL team.
func (s *FantasyService) MovePlayer(toTeam, name string) (string, error) {
	toTeam = strings.ToUpper(strings.TrimSpace(toTeam))
	name = strings.TrimSpace(name)

	if !isTeam(toTeam) {
		return "", fmt.Errorf("unknown FCHL team: %s", toTeam)
	}
	if !s.repo.MovePlayer(name, toTeam) {
		return "", fmt.Errorf("no rostered player named %q", name)
	}
	slog.Info("Player moved", "name", name, "to", toTeam)

	return fmt.Sprintf("🔀 Moved %s to *%s*.", name, toTeam), nil
}

// SetPoints edits a team's current-points baseline for this session.
func (s *FantasyService) SetPoints(team string, points int) (string, error) {
	team = strings.ToUpper(strings.TrimSpace(team))
	if !isTeam(team) {
		return "", fmt.Errorf("unknown FCHL team: %s", team)
	}
	if points < 0 {
		return "", fmt.Errorf("points must be non-negative, got %d", points)
	}

	s.repo.SetPoints(team, points)
	return fmt.Sprintf("✏️ Set *%s* current points to %d.", team, points), nil
}

// ResetRosters restores the originally loaded rosters and lookup.
func (s *FantasyService) ResetRosters() string {
	s.repo.Reset()
	slog.Info("Rosters reset to original")
	return "🔄 All rosters reset to the originally loaded state."
}
