package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/fchl/rinkbot/internal/models"
)

// ParsePlayerLine splits a raw roster line like "F Artemi Panarin 3" into
// its position code and player name. The first token is always the
// position. The last token is dropped when it is a draft-round number or a
// single uppercase disambiguator letter, but only if a name token remains
// after dropping it. Lines with fewer than two tokens have no position and
// are treated as a bare name.
func ParsePlayerLine(raw string) (position, name string) {
	parts := strings.Fields(strings.TrimSpace(raw))
	if len(parts) < 2 {
		return "", raw
	}

	position = parts[0]
	nameParts := parts[1:]
	if len(parts) > 2 && isSuffix(parts[len(parts)-1]) {
		nameParts = parts[1 : len(parts)-1]
	}
	return position, strings.Join(nameParts, " ")
}

func isSuffix(token string) bool {
	if isDigits(token) {
		return true
	}
	runes := []rune(token)
	return len(runes) == 1 && unicode.IsLetter(runes[0]) && unicode.IsUpper(runes[0])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Load reads the FCHL roster CSV. The file carries a header row with
// PLAYER (raw roster line) and TEAM (FCHL team code) columns.
func Load(r io.Reader) ([]models.RosterPlayer, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading roster header: %w", err)
	}

	playerCol, teamCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "PLAYER":
			playerCol = i
		case "TEAM":
			teamCol = i
		}
	}
	if playerCol == -1 || teamCol == -1 {
		return nil, fmt.Errorf("roster CSV missing PLAYER or TEAM column: %v", header)
	}

	var players []models.RosterPlayer
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading roster row: %w", err)
		}
		if len(row) <= playerCol || len(row) <= teamCol {
			continue
		}

		raw := strings.TrimSpace(row[playerCol])
		team := strings.TrimSpace(row[teamCol])
		if raw == "" {
			continue
		}

		position, name := ParsePlayerLine(raw)
		players = append(players, models.RosterPlayer{
			Raw:      raw,
			Name:     name,
			Position: position,
			FCHLTeam: team,
		})
	}

	return players, nil
}
