package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything wrong or
// suspicious about it. The rotation requires both sequences non-empty and
// duplicate-free; normalization enforces the latter silently.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Scan.Locations = trimList(out.Scan.Locations)
	out.Scan.Categories = trimList(out.Scan.Categories)

	if len(out.Scan.Locations) == 0 {
		res.addErr("scan.locations must not be empty")
	}
	if len(out.Scan.Categories) == 0 {
		res.addErr("scan.categories must not be empty")
	}

	if out.Scan.IntervalSeconds <= 0 {
		res.addErr("scan.interval_seconds must be > 0")
	} else if out.Scan.IntervalSeconds < 60 {
		res.addWarn("scan.interval_seconds is very low (%d); each cycle spends provider quota.", out.Scan.IntervalSeconds)
	}

	if out.Filters.MinRating < 0 || out.Filters.MinRating > 5 {
		res.addErr("filters.min_rating must be between 0 and 5")
	}

	if out.Provider.RequestsPerSecond <= 0 {
		out.Provider.RequestsPerSecond = 0.5
	}
	if out.Provider.Burst <= 0 {
		out.Provider.Burst = 1
	}

	if out.Enrich.CacheSize < 0 {
		res.addErr("enrich.cache_size cannot be negative")
	}
	if out.Enrich.DeepScan && out.Enrich.PageFetchLimit <= 0 {
		res.addWarn("enrich.deep_scan is on with page_fetch_limit unset; defaulting to 2.")
	}

	if out.Telegram.ChatID == 0 {
		res.addErr("telegram.chat_id is required")
	}

	if strings.TrimSpace(out.Output.LeadsCSV) == "" {
		res.addErr("output.leads_csv must not be empty")
	}

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be a valid TCP port")
	}

	return out, res
}
