package application

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParserConfig tunes the sheet locator. The RestoTrack export layout
// drifts between releases, so the search window is configurable
// without a rebuild.
type ParserConfig struct {
	DateSearchRows int `yaml:"date_search_rows"`
	DateSearchCols int `yaml:"date_search_cols"`
}

// LoadParserConfig loads parser tuning from an optional YAML file
// (HIVE_PARSER_CONFIG) with env-var fallbacks.
func LoadParserConfig() (ParserConfig, error) {
	cfg := ParserConfig{
		DateSearchRows: getenvIntDefault("HIVE_DATE_SEARCH_ROWS", 10),
		DateSearchCols: getenvIntDefault("HIVE_DATE_SEARCH_COLS", 8),
	}

	if path := os.Getenv("HIVE_PARSER_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.DateSearchRows <= 0 {
		cfg.DateSearchRows = 10
	}
	if cfg.DateSearchCols <= 0 {
		cfg.DateSearchCols = 8
	}
	return cfg, nil
}

func getenvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
