package cli

import (
	"errors"
	"flag"
	"github.com/thelolagemann/gridstim/internal/stimulus"
	"github.com/thelolagemann/gridstim/pkg/log"
	"io"
)

// Run parses args, generates the batch and returns the process
// exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, false)

	inv, err := ParseInvocation(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		logger.Errorf("%v", err)
		return ExitInvalidInvocation
	}

	if inv.Verbose {
		logger = log.New(stderr, true)
	}

	g := stimulus.New(
		stimulus.WithLogger(logger),
		stimulus.WithOutputDir(inv.OutputDir),
		stimulus.WithRenderer(inv.Renderer),
	)

	if err := g.GenerateBatch(inv.Count, inv.Width, inv.Height, inv.Colours); err != nil {
		logger.Errorf("%v", err)
		var invalid *stimulus.InvalidParameterError
		if errors.As(err, &invalid) {
			return ExitInvalidInvocation
		}
		return ExitFailure
	}

	log.New(stdout, false).Infof("wrote %d stimuli to %s", inv.Count, inv.OutputDir)
	return ExitSuccess
}
