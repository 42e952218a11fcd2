// Package main provides the CLI entry point for lrisplit.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/JF-WK/wk-compta/internal/config"
	"github.com/JF-WK/wk-compta/internal/logging"
	"github.com/JF-WK/wk-compta/pkg/lrisplit"
	"github.com/spf13/cobra"
)

var (
	configPath string
	outputPath string
	logLevel   string
	logFormat  string
	dryRun     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lrisplit [workbook.xlsx]",
		Short: "Split a reservation workbook into monthly sheets",
		Long: `lrisplit rewrites the master reservation workbook as a "Global" sheet
followed by one sheet per arrival month, each topped by a totals row.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: rewrite the input in place)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "", "Log format: text, json")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the planned sheets without writing")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if outputPath != "" {
		cfg.Output = outputPath
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts := cfg.Options()
	opts.Logger = logging.New(cfg.Logging, cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Lecture du fichier LRI master : %s\n", cfg.Input)

	// Validate input file exists
	if _, err := os.Stat(cfg.Input); os.IsNotExist(err) {
		return fmt.Errorf("fichier introuvable : %s", cfg.Input)
	}

	var res *lrisplit.Result
	if dryRun {
		res, err = lrisplit.Plan(cfg.Input, opts)
	} else {
		res, err = lrisplit.Run(cfg.Input, opts)
	}
	if err != nil {
		return err
	}

	printMonths(out, res)

	if dryRun {
		fmt.Fprintln(out, "Onglets prévus :")
		for _, sheet := range res.Workbook.Sheets {
			fmt.Fprintf(out, "  %-16s %d\n", sheet.Name, sheet.DataRows)
		}
		return nil
	}

	fmt.Fprintf(out, "Terminé : %s = %s + %d onglets mensuels.\n",
		res.Output, opts.GlobalSheet, len(res.Months))
	return nil
}

func printMonths(w io.Writer, res *lrisplit.Result) {
	fmt.Fprintln(w, "Répartition par mois/année :")
	if len(res.Months) == 0 {
		fmt.Fprintln(w, "(aucune date valide)")
		return
	}
	for _, m := range res.Months {
		fmt.Fprintf(w, "%s    %d\n", m.Key, m.Count)
	}
}
