// Command turboprofile prints the error profile of the fastmath
// approximations against float64 references.
//
// Usage:
//
//	turboprofile [flags] [function-name[:min:max] ...]
//
// Without arguments it runs the sweeps of the config file, or the embedded
// defaults when no file is given.
//
// Examples:
//
//	turboprofile
//	turboprofile -samples 10001 atan asin
//	turboprofile asin:0.99:1
//	turboprofile -config sweeps.yaml -csv > profile.csv
//	turboprofile -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-turbomath/internal/profile"
)

func main() {
	configPath := flag.String("config", "", "sweep config YAML file (empty = embedded defaults)")
	samples := flag.Int("samples", 0, "samples per sweep (0 = config value)")
	asCSV := flag.Bool("csv", false, "write CSV instead of a table")
	list := flag.Bool("list", false, "list available function names")
	writeConfig := flag.String("write-config", "", "write the effective config to this YAML file and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: turboprofile [flags] [function-name[:min:max] ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the error profile of the fastmath approximations.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, runs the sweeps of -config or the embedded defaults.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  turboprofile atan asin\n")
		fmt.Fprintf(os.Stderr, "  turboprofile asin:0.99:1\n")
		fmt.Fprintf(os.Stderr, "  turboprofile -samples 10001 -csv alt\n")
		fmt.Fprintf(os.Stderr, "  turboprofile -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	cfg, err := profile.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *samples > 0 {
		cfg.Samples = *samples
	}
	if names := flag.Args(); len(names) > 0 {
		cfg.Sweeps = parseSweeps(names, cfg.Samples, os.Stderr)
		if len(cfg.Sweeps) == 0 {
			fmt.Fprintf(os.Stderr, "error: no matching functions\n")
			os.Exit(1)
		}
	}

	if *writeConfig != "" {
		if err := cfg.WriteYAML(*writeConfig); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	reports, err := profile.RunAll(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *asCSV {
		if err := profile.WriteCSV(os.Stdout, reports); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	printReports(reports)
}

func printList() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, f := range profile.Functions() {
		_, _ = fmt.Fprintf(tw, "%s\t[%g, %g]\t%s\n", f.Name, f.Min, f.Max, f.Description)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printReports(reports []profile.Report) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tRange\tSamples\tMax |err|\tWorst at\tMean err\tStd dev\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "--------\t-----\t-------\t---------\t--------\t--------\t-------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, r := range reports {
		label := r.Function
		if r.Relative {
			label += " (rel)"
		}
		if _, err := fmt.Fprintf(tw, "%s\t[%g, %g]\t%d\t%.3e\t%g\t%.3e\t%.3e\n",
			label,
			r.Min, r.Max,
			r.Samples,
			r.MaxAbsErr,
			r.WorstAt,
			r.MeanErr,
			r.StdDevErr,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
