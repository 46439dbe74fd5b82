package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fchl/rinkbot/internal/models"
)

// Situation is the game-state split kept from the stats files. Everything
// else (power play, penalty kill, 5on5, ...) is filtered out.
const Situation = "all"

// LoadSkaters reads the skater stats CSV and returns all-situations
// records keyed by player name.
func LoadSkaters(r io.Reader) (map[string]models.SkaterRecord, error) {
	rows, cols, err := readTable(r, "skaters")
	if err != nil {
		return nil, err
	}

	skaters := make(map[string]models.SkaterRecord, len(rows))
	for _, row := range rows {
		name := cols.str(row, "name")
		if name == "" {
			continue
		}
		skaters[name] = models.SkaterRecord{
			Name:             name,
			NHLTeam:          cols.str(row, "team"),
			GamesPlayed:      cols.num(row, "games_played"),
			Goals:            cols.num(row, "I_F_goals"),
			PrimaryAssists:   cols.num(row, "I_F_primaryAssists"),
			SecondaryAssists: cols.num(row, "I_F_secondaryAssists"),
		}
	}
	return skaters, nil
}

// LoadGoalies reads the goalie stats CSV and returns all-situations
// records keyed by player name. Wins and shutouts are not in this file;
// they are derived from the schedule.
func LoadGoalies(r io.Reader) (map[string]models.GoalieRecord, error) {
	rows, cols, err := readTable(r, "goalies")
	if err != nil {
		return nil, err
	}

	goalies := make(map[string]models.GoalieRecord, len(rows))
	for _, row := range rows {
		name := cols.str(row, "name")
		if name == "" {
			continue
		}
		goalies[name] = models.GoalieRecord{
			Name:        name,
			NHLTeam:     cols.str(row, "team"),
			GamesPlayed: cols.num(row, "games_played"),
		}
	}
	return goalies, nil
}

type columns map[string]int

func (c columns) str(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (c columns) num(row []string, name string) float64 {
	v, err := strconv.ParseFloat(c.str(row, name), 64)
	if err != nil {
		return 0
	}
	return v
}

// readTable reads a headered stats CSV and returns the rows passing the
// situation filter along with the header index.
func readTable(r io.Reader, label string) ([][]string, columns, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s header: %w", label, err)
	}

	cols := make(columns, len(header))
	for i, col := range header {
		cols[strings.TrimSpace(col)] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, nil, fmt.Errorf("%s CSV missing name column: %v", label, header)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s row: %w", label, err)
		}
		if cols.str(row, "situation") != Situation {
			continue
		}
		rows = append(rows, row)
	}

	return rows, cols, nil
}
