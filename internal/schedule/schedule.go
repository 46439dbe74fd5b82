package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fchl/rinkbot/internal/models"
)

// StatusScheduled marks a game that has not been played yet. Every other
// status string is treated as a completed game.
const StatusScheduled = "Scheduled"

// TeamAbbreviations maps official NHL team names to their abbreviations.
// Schedule rows naming a team outside this table contribute to no counts.
var TeamAbbreviations = map[string]string{
	"Anaheim Ducks":         "ANA",
	"Boston Bruins":         "BOS",
	"Buffalo Sabres":        "BUF",
	"Calgary Flames":        "CGY",
	"Carolina Hurricanes":   "CAR",
	"Chicago Blackhawks":    "CHI",
	"Colorado Avalanche":    "COL",
	"Columbus Blue Jackets": "CBJ",
	"Dallas Stars":          "DAL",
	"Detroit Red Wings":     "DET",
	"Edmonton Oilers":       "EDM",
	"Florida Panthers":      "FLA",
	"Los Angeles Kings":     "LAK",
	"Minnesota Wild":        "MIN",
	"Montreal Canadiens":    "MTL",
	"Nashville Predators":   "NSH",
	"New Jersey Devils":     "NJD",
	"New York Islanders":    "NYI",
	"New York Rangers":      "NYR",
	"Ottawa Senators":       "OTT",
	"Philadelphia Flyers":   "PHI",
	"Pittsburgh Penguins":   "PIT",
	"San Jose Sharks":       "SJS",
	"Seattle Kraken":        "SEA",
	"St. Louis Blues":       "STL",
	"Tampa Bay Lightning":   "TBL",
	"Toronto Maple Leafs":   "TOR",
	"Utah Mammoth":          "UTA",
	"Vancouver Canucks":     "VAN",
	"Vegas Golden Knights":  "VGK",
	"Washington Capitals":   "WSH",
	"Winnipeg Jets":         "WPG",
}

// Derive scans the schedule once and produces per-team completed/remaining
// game counts and per-goalie start/win/shutout tallies. It never fails:
// unrecognized teams are skipped and rows with unparseable scores keep
// their game counts but record no goalie tallies.
func Derive(games []models.ScheduleGame) models.ScheduleStats {
	stats := models.ScheduleStats{
		TeamCompleted: make(map[string]int),
		TeamRemaining: make(map[string]int),
		GoalieTallies: make(map[string]models.GoalieGameTally),
	}

	for _, game := range games {
		visitor := TeamAbbreviations[strings.TrimSpace(game.Visitor)]
		home := TeamAbbreviations[strings.TrimSpace(game.Home)]

		if strings.TrimSpace(game.Status) == StatusScheduled {
			if visitor != "" {
				stats.TeamRemaining[visitor]++
			}
			if home != "" {
				stats.TeamRemaining[home]++
			}
			continue
		}

		if visitor != "" {
			stats.TeamCompleted[visitor]++
		}
		if home != "" {
			stats.TeamCompleted[home]++
		}

		visitorScore, err := strconv.Atoi(strings.TrimSpace(game.VisitorScore))
		if err != nil {
			continue
		}
		homeScore, err := strconv.Atoi(strings.TrimSpace(game.HomeScore))
		if err != nil {
			continue
		}

		visitorGoalie := strings.TrimSpace(game.VisitorGoalie)
		homeGoalie := strings.TrimSpace(game.HomeGoalie)

		if visitorGoalie != "" {
			tally := stats.GoalieTallies[visitorGoalie]
			tally.Starts++
			stats.GoalieTallies[visitorGoalie] = tally
		}
		if homeGoalie != "" {
			tally := stats.GoalieTallies[homeGoalie]
			tally.Starts++
			stats.GoalieTallies[homeGoalie] = tally
		}

		// NHL games cannot end tied, so the higher score is the winner.
		if visitorGoalie != "" && homeGoalie != "" {
			winner := homeGoalie
			if visitorScore > homeScore {
				winner = visitorGoalie
			}
			tally := stats.GoalieTallies[winner]
			tally.Wins++
			stats.GoalieTallies[winner] = tally
		}

		if homeGoalie != "" && visitorScore == 0 {
			tally := stats.GoalieTallies[homeGoalie]
			tally.Shutouts++
			stats.GoalieTallies[homeGoalie] = tally
		}
		if visitorGoalie != "" && homeScore == 0 {
			tally := stats.GoalieTallies[visitorGoalie]
			tally.Shutouts++
			stats.GoalieTallies[visitorGoalie] = tally
		}
	}

	return stats
}

// Schedule CSV column positions. The file has two columns both named
// "Score", so rows are read positionally rather than by header.
const (
	colDate          = 0
	colVisitor       = 3
	colVisitorScore  = 4
	colHome          = 5
	colHomeScore     = 6
	colStatus        = 7
	colVisitorGoalie = 8
	colHomeGoalie    = 9
)

// Load reads the as-played schedule CSV. Rows with fewer than eight
// fields are dropped; goalie columns are optional.
func Load(r io.Reader) ([]models.ScheduleGame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading schedule header: %w", err)
	}

	var games []models.ScheduleGame
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading schedule row: %w", err)
		}
		if len(row) <= colStatus {
			continue
		}

		game := models.ScheduleGame{
			Date:         strings.TrimSpace(row[colDate]),
			Visitor:      strings.TrimSpace(row[colVisitor]),
			VisitorScore: strings.TrimSpace(row[colVisitorScore]),
			Home:         strings.TrimSpace(row[colHome]),
			HomeScore:    strings.TrimSpace(row[colHomeScore]),
			Status:       strings.TrimSpace(row[colStatus]),
		}
		if len(row) > colVisitorGoalie {
			game.VisitorGoalie = strings.TrimSpace(row[colVisitorGoalie])
		}
		if len(row) > colHomeGoalie {
			game.HomeGoalie = strings.TrimSpace(row[colHomeGoalie])
		}

		games = append(games, game)
	}

	return games, nil
}
