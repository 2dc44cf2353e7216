package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Scan struct {
		IntervalSeconds int      `yaml:"interval_seconds"`
		Locations       []string `yaml:"locations"`
		Categories      []string `yaml:"categories"`
	} `yaml:"scan"`

	Filters struct {
		MinRating float64 `yaml:"min_rating"`
	} `yaml:"filters"`

	Provider struct {
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"provider"`

	Enrich struct {
		CacheSize      int  `yaml:"cache_size"`
		DeepScan       bool `yaml:"deep_scan"`
		PageFetchLimit int  `yaml:"page_fetch_limit"`
	} `yaml:"enrich"`

	Audit struct {
		Model string `yaml:"model"`
	} `yaml:"audit"`

	Telegram struct {
		ChatID int64 `yaml:"chat_id"`
	} `yaml:"telegram"`

	Output struct {
		LeadsCSV string `yaml:"leads_csv"`
	} `yaml:"output"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
