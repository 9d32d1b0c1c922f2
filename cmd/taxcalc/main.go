// Command taxcalc compares take-home salary under the old and new Indian
// income tax regimes for FY 2025-26.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taxcalc/internal/fiscal"
	"taxcalc/internal/report"
	"taxcalc/internal/tax"
)

const version = "1.0.0"

// logger is rebuilt per execution in PersistentPreRunE; the Nop default
// keeps direct handler calls in tests quiet.
var logger = zap.NewNop()

type options struct {
	salary  float64
	metro   bool
	noMetro bool
	pf      bool
	noPF    bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "taxcalc",
		Short: "Compare take-home salary under the old and new tax regimes",
		Long: `taxcalc computes in-hand salary under both Indian income tax regimes
for FY 2025-26 from a gross annual salary (CTC) and prints a side-by-side
comparison naming the regime with the higher take-home pay.

The computation is a single pass: no files, no network, no state between
invocations. Diagnostic logging goes to stderr so the report stream on
stdout stays clean.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.OutputPaths = []string{"stderr"}
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64VarP(&opts.salary, "salary", "s", 0, "gross annual salary (CTC)")
	flags.BoolVar(&opts.metro, "metro", false, "resident of a metro city (e.g. Delhi, Mumbai)")
	flags.BoolVar(&opts.noMetro, "no-metro", false, "not a resident of a metro city")
	flags.BoolVar(&opts.pf, "pf", false, "provident fund is part of the CTC")
	flags.BoolVar(&opts.noPF, "no-pf", false, "provident fund is not part of the CTC")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	_ = cmd.MarkFlagRequired("salary")
	cmd.MarkFlagsMutuallyExclusive("metro", "no-metro")
	cmd.MarkFlagsMutuallyExclusive("pf", "no-pf")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runCompare(cmd *cobra.Command, opts *options) error {
	card, err := fiscal.Load()
	if err != nil {
		return err
	}

	in := tax.Input{Gross: opts.salary, Metro: opts.metro, IncludePF: opts.pf}
	ctx, err := tax.NewSalaryContext(card, in)
	if err != nil {
		return err
	}
	logger.Debug("derived salary components",
		zap.Float64("basic", ctx.Basic),
		zap.Float64("hra", ctx.HRA),
		zap.Float64("employee_pf", ctx.EmployeePF),
		zap.Float64("employer_pf", ctx.EmployerPF))

	old := tax.ComputeOldRegime(card, ctx)
	latest := tax.ComputeNewRegime(card, ctx)
	logger.Debug("computed regime taxes",
		zap.Float64("old_total_tax", old.TotalTax),
		zap.Float64("new_total_tax", latest.TotalTax))

	fmt.Fprint(cmd.OutOrStdout(), report.Render(card.FiscalYear, old, latest))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the taxcalc version and rate card fiscal year",
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := fiscal.Load()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "taxcalc %s (FY %s rate card)\n", version, card.FiscalYear)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
