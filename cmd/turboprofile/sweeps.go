package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-turbomath/internal/profile"
)

// parseSweeps turns positional arguments into sweeps. An argument is either
// a function name or name:min:max to override the sampled domain. Names are
// matched case-insensitively. Arguments that cannot be resolved are reported
// to warn and skipped.
func parseSweeps(args []string, samples int, warn io.Writer) []profile.Sweep {
	var result []profile.Sweep
	for _, arg := range args {
		opts := []profile.Option{profile.WithSamples(samples)}

		fields := strings.Split(strings.ToLower(strings.TrimSpace(arg)), ":")
		name := fields[0]
		switch len(fields) {
		case 1:
		case 3:
			lo, errLo := strconv.ParseFloat(fields[1], 64)
			hi, errHi := strconv.ParseFloat(fields[2], 64)
			if errLo != nil || errHi != nil {
				_, _ = fmt.Fprintf(warn, "warning: bad range in %q, want name:min:max\n", arg)
				continue
			}
			opts = append(opts, profile.WithRange(lo, hi))
		default:
			_, _ = fmt.Fprintf(warn, "warning: bad sweep %q, want name or name:min:max\n", arg)
			continue
		}

		s, err := profile.NewSweep(name, opts...)
		if err != nil {
			_, _ = fmt.Fprintf(warn, "warning: %v (use -list to see available)\n", err)
			continue
		}
		result = append(result, s)
	}
	return result
}
