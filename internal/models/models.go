package models

// Position codes as they appear on roster lines.
const (
	PositionForward = "F"
	PositionDefense = "D"
	PositionGoalie  = "G"
)

// RosterPlayer is one player on an FCHL team's roster.
type RosterPlayer struct {
	Raw      string
	Name     string
	Position string
	FCHLTeam string
}

// SkaterRecord holds a skater's season-to-date totals.
type SkaterRecord struct {
	Name             string
	NHLTeam          string
	GamesPlayed      float64
	Goals            float64
	PrimaryAssists   float64
	SecondaryAssists float64
}

// GoalieRecord identifies a goalie and their NHL team. Wins and shutouts
// come from the schedule, not the stats file.
type GoalieRecord struct {
	Name        string
	NHLTeam     string
	GamesPlayed float64
}

// GoalieGameTally counts a goalie's starts, wins, and shutouts as derived
// from the as-played schedule.
type GoalieGameTally struct {
	Starts   int
	Wins     int
	Shutouts int
}

// ScheduleGame is one row of the as-played schedule. Scores stay raw
// strings: a completed row with unparseable scores still counts toward
// both teams' game totals.
type ScheduleGame struct {
	Date          string
	Visitor       string
	VisitorScore  string
	Home          string
	HomeScore     string
	Status        string
	VisitorGoalie string
	HomeGoalie    string
}

// ScheduleStats is everything derived from a full schedule scan.
type ScheduleStats struct {
	TeamCompleted map[string]int
	TeamRemaining map[string]int
	GoalieTallies map[string]GoalieGameTally
}

// PlayerProjection is the projected remaining-season output for one
// rostered player. All projected quantities are expected values, not
// simulated outcomes.
type PlayerProjection struct {
	Name         string
	Position     string
	FCHLTeam     string
	NHLTeam      string
	ProjGoals    float64
	ProjAssists  float64
	ProjWins     float64
	ProjShutouts float64
	ProjPoints   float64
	FoundInStats bool
}

// TeamStanding is one FCHL team's projected final result.
type TeamStanding struct {
	Rank          int
	FCHLTeam      string
	CurrentPoints int
	ProjRemaining float64
	ProjTotal     float64
}
