package cli

import (
	"context"
	"log/slog"
	"slices"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueboard/pkg/cli/config"
	"github.com/secmon-lab/issueboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdImport() *cli.Command {
	var (
		filePath     string
		firestoreCfg config.Firestore
	)

	flags := slices.Concat(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "YAML file with issues",
				Required:    true,
				Destination: &filePath,
			},
		},
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:  "import",
		Usage: "Import issues from a YAML file into the repository",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			issues, err := config.LoadIssuesFromFile(filePath)
			if err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			n, err := usecase.NewIssue(repo).Import(ctx, issues)
			if err != nil {
				return goerr.Wrap(err, "import stopped",
					goerr.V("file", filePath),
					goerr.V("imported", n))
			}

			logger.Info("Issues imported",
				slog.String("file", filePath),
				slog.Int("count", n),
				slog.Any("firestore", firestoreCfg),
			)
			return nil
		},
	}
}
