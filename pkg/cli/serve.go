package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueboard/pkg/cli/config"
	controller "github.com/secmon-lab/issueboard/pkg/controller/http"
	"github.com/secmon-lab/issueboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		slackCfg     config.Slack
		firestoreCfg config.Firestore
		clockCfg     config.Clock
	)

	flags := slices.Concat(
		serverCfg.Flags(),
		slackCfg.Flags(),
		firestoreCfg.Flags(),
		clockCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting issueboard server",
				slog.Any("server", serverCfg),
				slog.Any("slack", slackCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("clock", clockCfg),
			)

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			clock, err := clockCfg.Configure()
			if err != nil {
				return err
			}

			issueUC := usecase.NewIssue(repo)
			dashboardUC := usecase.NewDashboard(repo, slackCfg.Configure(ctx), usecase.WithClock(clock))
			if dashboardUC.SlackEnabled() {
				if err := dashboardUC.VerifySlack(ctx); err != nil {
					return err
				}
			} else if slackCfg.Channel != "" {
				logger.Warn("Slack channel is set without a token, publishing is disabled",
					slog.String("channel", slackCfg.Channel))
			}

			server := controller.NewServer(ctx, serverCfg.Addr, issueUC, dashboardUC, slackCfg.ChannelID())

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
