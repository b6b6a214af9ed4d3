// Command wireroute runs the smart routing engine against a YAML scenario
// file and prints the computed routes.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wireroute/config"
	"wireroute/routing"
)

var (
	scenarioPath string
	jsonOutput   bool
	verbose      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wireroute",
		Short: "Smart conductor routing engine",
		Long: "wireroute computes physical conductor routes between endpoints on a floor plan,\n" +
			"avoiding obstacles and optimizing for length, cost, turns, or conduit reuse.",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newRouteCmd())
	return root
}

func newRouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Run every route request in a scenario file",
		RunE:  runRoute,
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "path to scenario YAML file (required)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit results as JSON")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func runRoute(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	scenario, err := config.Load(scenarioPath)
	if err != nil {
		return err
	}

	opts := append(scenario.EngineOptions(), routing.WithLogger(logger))
	engine := routing.NewEngine(opts...)
	scenario.Apply(engine)

	results, err := scenario.Run(engine)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		printResult(cmd, r)
	}
	if verbose {
		logger.Debug("cache summary", "stats", engine.CacheStats().String())
	}
	return nil
}

func printResult(cmd *cobra.Command, r routing.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s -> %s  [%s, %s]\n", r.FromID, r.ToID, r.Wire, r.ModeName)
	fmt.Fprintf(out, "  length: %.1f ft   cost: %.2f   turns: %d   confidence: %.2f\n",
		r.LengthFt, r.TotalCost, r.TurnCount, r.Confidence)
	fmt.Fprintf(out, "  voltage drop: %.2f V   compliant: %v\n", r.VoltageDropV, r.Compliant)
	if len(r.UsableConduits) > 0 {
		fmt.Fprintf(out, "  usable conduits: %s\n", strings.Join(r.UsableConduits, ", "))
	}
	if len(r.NearObstacles) > 0 {
		fmt.Fprintf(out, "  near obstacles: %s\n", strings.Join(r.NearObstacles, ", "))
	}
	for _, note := range r.Notes {
		fmt.Fprintf(out, "  note: %s\n", note)
	}
	waypoints := make([]string, len(r.Waypoints))
	for i, p := range r.Waypoints {
		waypoints[i] = fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
	}
	fmt.Fprintf(out, "  path: %s\n", strings.Join(waypoints, " -> "))
}
