package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/bdm-lab/mediascope/pkg/service/worktime"
)

// Workweek holds working-week configuration. The working-time metrics skip
// two designated weekend days; the default matches the source locale
// (Friday and Saturday), a YAML file can designate different days.
type Workweek struct {
	ConfigPath string
}

// workweekFile is the YAML shape of the workweek configuration file
type workweekFile struct {
	Weekend []string `yaml:"weekend"`
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Flags returns CLI flags for Workweek configuration
func (w *Workweek) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "workweek-config",
			Usage:       "Path to YAML file designating the weekend days (default: Friday and Saturday)",
			Category:    "Workweek",
			Sources:     cli.EnvVars("MEDIASCOPE_WORKWEEK_CONFIG"),
			Destination: &w.ConfigPath,
		},
	}
}

// Configure builds the working-time calculator from the configuration
func (w *Workweek) Configure() (*worktime.Calculator, error) {
	if w.ConfigPath == "" {
		return worktime.New(), nil
	}

	data, err := os.ReadFile(w.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "workweek configuration file not found",
				goerr.V("path", w.ConfigPath))
		}
		return nil, goerr.Wrap(err, "failed to read workweek configuration",
			goerr.V("path", w.ConfigPath))
	}

	var file workweekFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse workweek YAML",
			goerr.V("path", w.ConfigPath))
	}

	if len(file.Weekend) != 2 {
		return nil, goerr.New("workweek configuration must designate exactly two weekend days",
			goerr.V("path", w.ConfigPath),
			goerr.V("weekend", file.Weekend))
	}

	days := make([]time.Weekday, 0, len(file.Weekend))
	for _, name := range file.Weekend {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, goerr.New("unknown weekday in workweek configuration",
				goerr.V("day", name))
		}
		days = append(days, day)
	}

	return worktime.New(days...), nil
}

// LogValue returns structured log value
func (w Workweek) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("configPath", w.ConfigPath),
	)
}
