// Command recap runs the recap and roast pipelines once and prints the result.
//
// Usage:
//
//	recap season
//	recap season --weeks 1-8
//	recap roast --week 5
//	recap espn --week 15
//	recap team "Stairway to Evans"
//	recap players refresh
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/omarshaarawi/roastbot/internal/app"
	"github.com/omarshaarawi/roastbot/internal/config"
	"github.com/omarshaarawi/roastbot/internal/service"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	json    bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "recap",
		Short:         "Fantasy football recaps and roasts",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Print JSON instead of Markdown")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log prompts and debug output")

	root.AddCommand(seasonCmd(opts))
	root.AddCommand(roastCmd(opts))
	root.AddCommand(espnCmd(opts))
	root.AddCommand(teamCmd(opts))
	root.AddCommand(playersCmd())
	return root
}

// withService loads config and wires the pipeline for a single command run.
func withService(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, s *service.RecapService) error) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, cfg, a.Service)
}

func seasonCmd(opts *options) *cobra.Command {
	var weeks string
	cmd := &cobra.Command{
		Use:   "season",
		Short: "Generate a season recap for every team",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, cfg *config.Config, s *service.RecapService) error {
				selected := cfg.Season.Weeks()
				if weeks != "" {
					parsed, err := parseWeeks(weeks)
					if err != nil {
						return err
					}
					selected = parsed
				}

				report, err := s.Recaps(ctx, selected)
				if err != nil {
					return err
				}
				if len(report.FailedWeeks) > 0 {
					slog.Warn("Some weeks could not be fetched", "weeks", report.FailedWeeks)
				}
				return output(cmd.OutOrStdout(), opts, report, service.FormatSeasonReport(report))
			})
		},
	}
	cmd.Flags().StringVar(&weeks, "weeks", "", "Weeks to aggregate, e.g. 1-17 or 1,3,5 (default FIRST_WEEK-LAST_WEEK)")
	return cmd
}

func roastCmd(opts *options) *cobra.Command {
	var week int
	cmd := &cobra.Command{
		Use:   "roast",
		Short: "Roast every Sleeper matchup for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, cfg *config.Config, s *service.RecapService) error {
				if week == 0 {
					current, err := s.GetCurrentWeek(ctx)
					if err != nil {
						return fmt.Errorf("error fetching current week: %w", err)
					}
					week = current
				}

				roasts, err := s.WeeklyRoasts(ctx, week)
				if err != nil {
					return err
				}
				return output(cmd.OutOrStdout(), opts, roasts, service.FormatRoasts(week, roasts))
			})
		},
	}
	cmd.Flags().IntVar(&week, "week", 0, "Week number (default current week)")
	return cmd
}

func espnCmd(opts *options) *cobra.Command {
	var week int
	cmd := &cobra.Command{
		Use:   "espn",
		Short: "Roast every ESPN matchup for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, cfg *config.Config, s *service.RecapService) error {
				if !s.ESPNEnabled() {
					return fmt.Errorf("ESPN_LEAGUE_ID and ESPN_YEAR are required")
				}
				if week == 0 {
					current, err := s.GetESPNCurrentWeek(ctx)
					if err != nil {
						return fmt.Errorf("error fetching current week: %w", err)
					}
					week = current
				}

				roasts, err := s.ESPNRoasts(ctx, week)
				if err != nil {
					return err
				}
				return output(cmd.OutOrStdout(), opts, roasts, service.FormatESPNRoasts(service.ESPNWeekLabel(week), roasts))
			})
		},
	}
	cmd.Flags().IntVar(&week, "week", 0, "Week number; playoff rounds use 15 and 17 (default current week)")
	return cmd
}

func teamCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "team <name>",
		Short: "Show a team's season-to-date points and top players",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, cfg *config.Config, s *service.RecapService) error {
				report, err := s.TeamReport(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				return output(cmd.OutOrStdout(), opts, report, service.FormatTeam(report))
			})
		},
	}
}

func playersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Manage the player data cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Re-fetch player data and overwrite the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, cfg *config.Config, s *service.RecapService) error {
				players, err := s.RefreshPlayers(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "cached %d players\n", len(players))
				return nil
			})
		},
	})
	return cmd
}

func output(w io.Writer, opts *options, v any, markdown string) error {
	if opts.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, markdown)
	return err
}

// parseWeeks accepts "5", "1-8" and "1,3,5-7".
func parseWeeks(s string) ([]int, error) {
	var weeks []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		from, to, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil || start < 1 {
			return nil, fmt.Errorf("invalid week %q", part)
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(to))
			if err != nil || end < start {
				return nil, fmt.Errorf("invalid week range %q", part)
			}
		}
		for w := start; w <= end; w++ {
			weeks = append(weeks, w)
		}
	}
	if len(weeks) == 0 {
		return nil, fmt.Errorf("no weeks in %q", s)
	}
	return weeks, nil
}
