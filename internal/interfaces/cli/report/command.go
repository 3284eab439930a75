package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/application/client/usecases"
	"gymdesk/internal/interfaces/cli/bootstrap"
)

var outPath string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print membership reports",
		Long:  `Write the client list CSV, the management summary CSV or the expiry notification feed.`,
	}

	cmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "Write to this file instead of stdout")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "clients",
			Short: "Client list as CSV",
			RunE:  withOutput(runClients),
		},
		&cobra.Command{
			Use:   "summary",
			Short: "Gym management report as CSV",
			RunE:  withOutput(runSummary),
		},
		&cobra.Command{
			Use:   "notifications",
			Short: "Expiring and expired memberships",
			RunE:  withOutput(runNotifications),
		},
	)

	return cmd
}

type reportFunc func(ctx context.Context, env *bootstrap.Env, w io.Writer) error

// withOutput opens the environment and the destination, then runs fn.
func withOutput(fn reportFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		env, err := bootstrap.Open()
		if err != nil {
			return err
		}
		defer env.Close()

		w := cmd.OutOrStdout()
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outPath, err)
			}
			defer f.Close()
			w = f
		}

		return fn(cmd.Context(), env, w)
	}
}

func runClients(ctx context.Context, env *bootstrap.Env, w io.Writer) error {
	uc := usecases.NewExportClientsCSVUseCase(env.ClientRepo, env.Clock, env.Logger)
	return uc.Execute(ctx, w)
}

func runSummary(ctx context.Context, env *bootstrap.Env, w io.Writer) error {
	m := env.Config.Membership
	uc := usecases.NewExportReportCSVUseCase(env.ClientRepo, m.SeriesMonths, m.CurrencySymbol, env.Clock, env.Logger)
	return uc.Execute(ctx, w)
}

func runNotifications(ctx context.Context, env *bootstrap.Env, w io.Writer) error {
	uc := usecases.NewGetNotificationsUseCase(env.ClientRepo, env.Config.Membership.ExpiringWindowDays, env.Clock, env.Logger)
	feed, err := uc.Execute(ctx)
	if err != nil {
		return err
	}
	return writeFeed(w, feed)
}

func writeFeed(w io.Writer, feed *dto.NotificationFeedDTO) error {
	if len(feed.Notifications) == 0 {
		_, err := fmt.Fprintln(w, "No memberships expiring or expired.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tCLIENT\tEND DATE\tDAYS\tMESSAGE")
	for _, n := range feed.Notifications {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", n.Type, n.ClientName, n.Date, n.DaysRemaining, n.Message)
	}
	return tw.Flush()
}
