package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	TelegramBot TelegramBot
	Data        Data
	Matcher     Matcher
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

type Data struct {
	RosterCSV   string `envconfig:"ROSTER_CSV" default:"data/fchl_players.csv"`
	ScheduleCSV string `envconfig:"SCHEDULE_CSV" default:"data/nhl-202526-asplayed.csv"`
	SkatersCSV  string `envconfig:"SKATERS_CSV" default:"data/skaters.csv"`
	GoaliesCSV  string `envconfig:"GOALIES_CSV" default:"data/goalies.csv"`
}

type Matcher struct {
	// Minimum 0-100 similarity for a fuzzy name match to be accepted.
	Cutoff int `envconfig:"MATCH_CUTOFF" default:"80"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
