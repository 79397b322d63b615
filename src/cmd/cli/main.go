// Package main provides the CLI for the nightwatch nightly build dashboard.
// The CLI serves as the application orchestrator using the Cobra framework.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"nightwatch/src/cache"
	"nightwatch/src/config"
	"nightwatch/src/githubactions"
	"nightwatch/src/logger"
	"nightwatch/src/pipeline"
	"nightwatch/src/schedule"
	"nightwatch/src/tui"
)

var (
	// Application configuration
	appConfig *config.Config
	// Persistent snapshot store, selected in PersistentPreRun
	snapshotStore cache.Store
	// Refresh cadence shared by every command
	refreshSchedule schedule.Schedule
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nightwatch",
	Short: "Nightwatch - a dashboard for the nightly build",
	Long: `Nightwatch tracks one repository's "Nightly Build" workflow and shows
days without incident, the current success streak, the success rate and the
recent runs.

Remote fetches are limited to a fixed daily schedule; between refresh hours
the dashboard serves a cached snapshot. The snapshot store is auto-detected:
Postgres when NIGHTWATCH_CACHE_DSN is set, a local cache file otherwise.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		appConfig = config.LoadFromEnv()
		refreshSchedule = schedule.New(config.RefreshHours...)

		var err error
		if appConfig.CacheDSN != "" {
			snapshotStore, err = cache.NewPostgresStore(appConfig.CacheDSN)
		} else {
			snapshotStore, err = cache.NewFileStore(appConfig.CacheDir)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Store error: %v\n", err)
			os.Exit(1)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if snapshotStore != nil {
			snapshotStore.Close()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		// TUI mode needs a quiet logger to keep the display clean
		loader := newLoader(logger.NewSilentLogger())
		if err := tui.Start(loader, refreshSchedule); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
	},
}

// statsCmd prints a one-shot snapshot without launching the TUI
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the current nightly build statistics and exit",
	Long: `Loads the statistics snapshot (cached if still valid, freshly fetched
otherwise) and prints it to stdout.

Example:
  nightwatch stats
  nightwatch stats --json`,
	Run: func(cmd *cobra.Command, args []string) {
		loader := newLoader(logger.NewConsoleLogger())
		now := time.Now()

		snap, fromCache := loader.Load(context.Background(), now)

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
			return
		}

		printSnapshot(snap, fromCache, now)
	},
}

// refreshCmd forces a fetch regardless of cache validity
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch and recompute now, ignoring the cached snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		loader := newLoader(logger.NewConsoleLogger())
		now := time.Now()

		snap := loader.ForceRefresh(context.Background(), now)
		printSnapshot(snap, false, now)
	},
}

// newLoader wires the provider, the cache policy and the calculator.
func newLoader(log logger.Logger) *pipeline.Loader {
	policy := cache.NewPolicy(snapshotStore, refreshSchedule, log)
	runProvider := githubactions.NewProvider(config.RepoOwner, config.RepoName, config.WorkflowName)
	return pipeline.NewLoader(runProvider, policy, log)
}

func printSnapshot(snap *cache.Snapshot, fromCache bool, now time.Time) {
	st := snap.Statistics

	source := "fetched"
	if fromCache {
		source = "cached"
	}

	fmt.Printf("%s/%s · %s (%s at %s)\n",
		config.RepoOwner, config.RepoName, config.WorkflowName,
		source, snap.FetchedAt.Format("Jan 02 15:04"))
	fmt.Println()
	fmt.Printf("  Days without incident: %d\n", st.DaysWithoutIncident)
	fmt.Printf("  Current streak:        %d\n", st.CurrentStreak)
	fmt.Printf("  Success rate:          %.1f%%\n", st.SuccessRate)
	fmt.Printf("  Total builds:          %d\n", st.TotalBuilds)
	if st.LastIncident != nil {
		fmt.Printf("  Last incident:         %s\n", st.LastIncident.Format("Jan 02 2006 15:04"))
	} else {
		fmt.Printf("  Last incident:         none in the observed window\n")
	}
	fmt.Println()
	fmt.Printf("  Next refresh in %s\n", schedule.FormatCountdown(refreshSchedule.Until(now)))
}

func init() {
	statsCmd.Flags().Bool("json", false, "print the snapshot as JSON")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(refreshCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
