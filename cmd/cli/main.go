package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"govariate/adapters/export"
	"govariate/adapters/report"
	"govariate/app"
	"govariate/domain/run"
	"govariate/domain/variate"
	"govariate/internal/diagnostics"
	"govariate/internal/testkit"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "govariate",
		Short: "govariate CLI for seeded variate draws and normal quantiles",
	}

	rootCmd.AddCommand(
		newDrawCmd(),
		newQuantileCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDrawCmd() *cobra.Command {
	var (
		seed       int64
		count      int
		low        float64
		high       float64
		mean       float64
		stdev      float64
		data       string
		outPath    string
		reportPath string
		fit        bool
	)

	cmd := &cobra.Command{
		Use:   "draw [kind]",
		Short: "Draw seeded variates and record the run manifest",
		Long: `Draw a batch of pseudo-random variates from one generator kind.

Kinds: uniform | uniform_int | normal | bootstrap

Bounds and moments are optional; omitted flags fall back to each kind's
default construction (uniform on [0,1), uniform_int on {0,1}, standard
normal). Bootstrap draws resample --data, a comma-separated value list.

Example: govariate draw normal --mean 5 --stdev 2 --seed 12345 --count 10000 --fit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.DrawRequest{
				Kind:  args[0],
				Seed:  &seed,
				Count: count,
			}

			// Only forward bounds the caller actually set, so each kind
			// keeps its default construction otherwise.
			if cmd.Flags().Changed("low") {
				req.Low = &low
			}
			if cmd.Flags().Changed("high") {
				req.High = &high
			}
			if cmd.Flags().Changed("mean") {
				req.Mean = &mean
			}
			if cmd.Flags().Changed("stdev") {
				req.Stdev = &stdev
			}
			if data != "" {
				values, err := parseFloats(data)
				if err != nil {
					return fmt.Errorf("invalid --data list: %w", err)
				}
				req.Data = values
			}

			return runDraw(cmd.Context(), req, outPath, reportPath, fit)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic draws")
	cmd.Flags().IntVar(&count, "count", 1000, "Number of variates to draw")
	cmd.Flags().Float64Var(&low, "low", 0, "Lower bound (uniform, uniform_int)")
	cmd.Flags().Float64Var(&high, "high", 1, "Upper bound (uniform, uniform_int)")
	cmd.Flags().Float64Var(&mean, "mean", 0, "Mean (normal)")
	cmd.Flags().Float64Var(&stdev, "stdev", 1, "Standard deviation (normal)")
	cmd.Flags().StringVar(&data, "data", "", "Comma-separated dataset to resample (bootstrap)")
	cmd.Flags().StringVar(&outPath, "out", "", "Export drawn values to a .csv or .xlsx file")
	cmd.Flags().StringVar(&reportPath, "report", "", "Save a markdown run report to this file")
	cmd.Flags().BoolVar(&fit, "fit", false, "Run a chi-square goodness-of-fit check on the sample")

	return cmd
}

func newQuantileCmd() *cobra.Command {
	var mean, stdev float64

	cmd := &cobra.Command{
		Use:   "quantile [probability...]",
		Short: "Invert the normal CDF at one or more probabilities",
		Long: `Evaluate the inverse normal CDF at each probability.

Probabilities must lie in [0, 1]; the endpoints map to -Inf and +Inf.

Example: govariate quantile 0.025 0.5 0.975 --mean 100 --stdev 15`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			probs := make([]float64, len(args))
			for i, arg := range args {
				p, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid probability %q: %w", arg, err)
				}
				probs[i] = p
			}

			return runQuantile(probs, mean, stdev)
		},
	}

	cmd.Flags().Float64Var(&mean, "mean", 0, "Mean of the normal distribution")
	cmd.Flags().Float64Var(&stdev, "stdev", 1, "Standard deviation of the normal distribution")

	return cmd
}

func runDraw(ctx context.Context, req app.DrawRequest, outPath, reportPath string, fit bool) error {
	fmt.Printf("🎲 Drawing %d %s variates (seed %d)...\n", req.Count, req.Kind, *req.Seed)

	kit, err := testkit.NewTestKit()
	if err != nil {
		return fmt.Errorf("failed to initialize test kit: %w", err)
	}

	result, err := kit.DrawService().RunDraw(ctx, req)
	if err != nil {
		return fmt.Errorf("draw failed: %w", err)
	}
	manifest := result.Manifest

	// Display results
	fmt.Printf("\n=== RUN MANIFEST ===\n")
	fmt.Printf("Run ID: %s\n", manifest.RunID)
	fmt.Printf("Kind: %s\n", manifest.Kind)
	fmt.Printf("Seed: %d\n", manifest.Seed)
	fmt.Printf("Count: %d\n", manifest.Count)
	fmt.Printf("Fingerprint: %s\n", manifest.Fingerprint)
	fmt.Printf("Runtime: %d ms\n", result.RuntimeMs)

	if len(manifest.Params) > 0 {
		fmt.Printf("\n=== RESOLVED PARAMETERS ===\n")
		keys := make([]string, 0, len(manifest.Params))
		for k := range manifest.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %v\n", k, manifest.Params[k])
		}
	}

	if len(manifest.Summary) > 0 {
		fmt.Printf("\n=== SAMPLE SUMMARY ===\n")
		keys := make([]string, 0, len(manifest.Summary))
		for k := range manifest.Summary {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %.6g\n", k, manifest.Summary[k])
		}
	}

	preview := min(10, len(result.Values))
	fmt.Printf("\n=== VALUES (first %d) ===\n", preview)
	for i := 0; i < preview; i++ {
		fmt.Printf("%d. %g\n", i+1, result.Values[i])
	}
	if len(result.Values) > preview {
		fmt.Printf("   ... and %d more\n", len(result.Values)-preview)
	}

	if fit {
		if err := runFitCheck(req.Kind, result); err != nil {
			return err
		}
	}

	if outPath != "" {
		if err := export.WriteFile(outPath, export.BuildSheet(result.Values)); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Printf("\n💾 Values exported to: %s\n", outPath)
	}

	if reportPath != "" {
		md := report.RenderMarkdown(manifest)
		if err := os.WriteFile(reportPath, []byte(md), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("💾 Report saved to: %s\n", reportPath)
	}

	return nil
}

// runFitCheck compares the drawn sample against its own model with a
// chi-square test, reading the resolved bounds back off the manifest.
func runFitCheck(kind string, result *app.DrawResult) error {
	const bins = 10

	var (
		res diagnostics.FitResult
		err error
	)
	switch kind {
	case run.KindUniform:
		low, _ := result.Manifest.Params["low"].(float64)
		high, _ := result.Manifest.Params["high"].(float64)
		res, err = diagnostics.UniformFit(result.Values, low, high, bins)
	case run.KindNormal:
		mean, _ := result.Manifest.Params["mean"].(float64)
		stdev, _ := result.Manifest.Params["stdev"].(float64)
		res, err = diagnostics.NormalFit(result.Values, mean, stdev, bins)
	default:
		return fmt.Errorf("--fit supports uniform and normal draws, not %s", kind)
	}
	if err != nil {
		return fmt.Errorf("fit check failed: %w", err)
	}

	fmt.Printf("\n=== CHI-SQUARE FIT ===\n")
	fmt.Printf("Statistic: %.4f (df %d)\n", res.Statistic, res.DF)
	fmt.Printf("P-Value: %.4f\n", res.PValue)
	if res.Fits {
		fmt.Printf("✅ Sample is consistent with the %s model\n", kind)
	} else {
		fmt.Printf("❌ Sample rejects the %s model\n", kind)
	}

	return nil
}

func runQuantile(probs []float64, mean, stdev float64) error {
	gen := variate.NewNormalMeanStdev(mean, stdev)

	fmt.Printf("Normal quantiles (mean %g, stdev %g)\n\n", gen.Mean(), gen.Stdev())
	for _, p := range probs {
		fmt.Printf("  Q(%g) = %g\n", p, gen.Quantile(p))
	}

	return nil
}

// parseFloats parses a comma-separated list of numbers
func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", trimmed, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// min returns the minimum of two integers
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
