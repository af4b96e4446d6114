package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Clock holds the reference time used for issue ages
type Clock struct {
	Now string
}

// Flags returns CLI flags for Clock configuration
func (c *Clock) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "now",
			Usage:       "Reference time for issue ages in RFC3339 (default: current time)",
			Sources:     cli.EnvVars("ISSUEBOARD_NOW"),
			Destination: &c.Now,
		},
	}
}

// Configure returns the clock function. An empty value means time.Now.
func (c *Clock) Configure() (func() time.Time, error) {
	if c.Now == "" {
		return time.Now, nil
	}

	now, err := time.Parse(time.RFC3339, c.Now)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid reference time", goerr.V("now", c.Now))
	}
	return func() time.Time { return now }, nil
}

// LogValue returns structured log value
func (c Clock) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("now", c.Now),
	)
}
