// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/siemens/subdig/dig"
	"github.com/siemens/subdig/dnsworker"
	"github.com/siemens/subdig/output"
	"github.com/siemens/subdig/pipeline"
	"github.com/siemens/subdig/progress"

	"github.com/spf13/cobra"
	"github.com/thediveo/lxkns/log"
)

var (
	inputFiles  *[]string
	scopeFile   *string
	threads     *int
	outputFile  *string
	inScopeFile *string
	batchSize   *int
	reportEvery *int
	plain       *bool
	configFile  *string
	debug       *bool
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:   "subdig [flags] [input-file...]",
		Short: "subdig resolves subdomains into their IP addresses and checks them against a scope",
		Long: `subdig resolves the subdomains listed in one or more input files (one
subdomain per line) into their IP addresses, appending the results to a CSV
file. When given a scope file (one IP address per line), the subdomains
resolving to any of the in-scope IP addresses are additionally appended to a
separate in-scope CSV file.`,
		Version: "0.9",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if *batchSize < 1 {
				return fmt.Errorf("--batch-size must be at least 1")
			}
			if *reportEvery < 1 {
				return fmt.Errorf("--report-every must be at least 1")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			if *debug {
				log.SetLevel(log.DebugLevel)
				log.Debugf("debug logging enabled")
			}
			cfg, err := configure(cmd, args)
			if err != nil {
				return err
			}
			// From here on, errors are no usage errors anymore.
			cmd.SilenceUsage = true
			return DigAndReport(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
	// Sets up the flags.
	inputFiles = rootCmd.Flags().StringArrayP(
		"input", "i", nil, "input file with one subdomain per line (repeatable)")
	scopeFile = rootCmd.Flags().StringP(
		"scope", "s", "", "scope file with one in-scope IP address per line")
	threads = rootCmd.Flags().IntP(
		"threads", "t", dnsworker.MaxWorkers,
		fmt.Sprintf("number of concurrent DNS lookups, clamped to [%d..%d]",
			dnsworker.MinWorkers, dnsworker.MaxWorkers))
	outputFile = rootCmd.Flags().StringP(
		"output", "o", output.DefaultPath, "CSV file to append the results to")
	inScopeFile = rootCmd.Flags().String(
		"in-scope-output", "", "CSV file to append the in-scope results to (default derived from --output)")
	batchSize = rootCmd.Flags().IntP(
		"batch-size", "b", dig.DefaultBatchSize, "number of subdomains per batch")
	reportEvery = rootCmd.Flags().Int(
		"report-every", progress.DefaultInterval, "number of resolved subdomains between progress updates")
	plain = rootCmd.Flags().Bool(
		"plain", false, "omit the registrable domain column")
	configFile = rootCmd.Flags().String(
		"config", "", "YAML configuration file with defaults for the flags")
	debug = rootCmd.PersistentFlags().Bool(
		"debug", false, "enable debugging output")
	return
}

// configure returns the pipeline configuration: first from the optional
// configuration file, then overridden by any flags explicitly set, as well
// as by input files given as arguments.
func configure(cmd *cobra.Command, args []string) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	if *configFile != "" {
		if err := pipeline.LoadConfig(*configFile, &cfg); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if inputs := append(append([]string{}, *inputFiles...), args...); len(inputs) > 0 {
		cfg.Inputs = inputs
	}
	if flags.Changed("scope") {
		cfg.Scope = *scopeFile
	}
	if flags.Changed("threads") {
		cfg.Workers = *threads
	}
	if flags.Changed("output") {
		cfg.Output = *outputFile
	}
	if flags.Changed("in-scope-output") {
		cfg.InScopeOutput = *inScopeFile
	}
	if flags.Changed("batch-size") {
		cfg.BatchSize = *batchSize
	}
	if flags.Changed("report-every") {
		cfg.ReportEvery = *reportEvery
	}
	if flags.Changed("plain") {
		cfg.Plain = *plain
	}
	if clamped := dnsworker.ClampSize(cfg.Workers); clamped != cfg.Workers {
		log.Debugf("clamping %d threads to %d", cfg.Workers, clamped)
		cfg.Workers = clamped
	}
	return cfg, nil
}
