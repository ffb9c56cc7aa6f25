// Package packapp builds a joined index from FASTA input.
package packapp

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"refinspect/internal/cmdutil"
	"refinspect/internal/fasta"
	"refinspect/internal/joined"
	"refinspect/internal/version"
)

// RunContext builds the index described by c and returns the exit code.
func RunContext(ctx context.Context, c Config, stdout, stderr io.Writer) int {
	if c.Version {
		_, _ = fmt.Fprintf(stdout, "refpack version %s\n", version.Version)
		return cmdutil.ExitOK
	}
	if err := c.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}
	logger := cmdutil.NewLogger(stderr, c.Verbose, c.Quiet)

	ix, stats, err := Build(ctx, c.Input, c.Align, logger)
	if err != nil {
		logger.WithError(err).Error("cannot read sequences")
		return cmdutil.ExitLoad
	}
	path, err := ix.Save(c.Output)
	if err != nil {
		logger.WithError(err).Error("cannot write index")
		return cmdutil.ExitOutput
	}
	logger.WithFields(log.Fields{
		"path":       path,
		"id":         ix.ID(),
		"references": stats.Refs,
		"bases":      stats.Bases,
		"elided":     stats.Elided,
		"padding":    stats.Padding,
		"joined_len": stats.JoinedLen,
	}).Info("index written")
	_, _ = fmt.Fprintln(stdout, path)
	return cmdutil.ExitOK
}

// Build reads every record from input into a new index.
func Build(ctx context.Context, input string, align int, logger log.FieldLogger) (*joined.Index, joined.Stats, error) {
	b := joined.NewBuilder(align)
	seen := map[string]bool{}
	err := fasta.StreamPath(ctx, input, func(r fasta.Record) error {
		if seen[r.ID] {
			logger.Warnf("duplicate reference name %q", r.ID)
		}
		seen[r.ID] = true
		b.Add(r.ID, r.Seq)
		logger.WithFields(log.Fields{"name": r.ID, "len": len(r.Seq)}).Debug("reference added")
		return nil
	})
	if err != nil {
		return nil, joined.Stats{}, err
	}
	stats := b.Stats()
	if stats.Refs == 0 {
		logger.Warn("no FASTA records in input")
	}
	return b.Finish(), stats, nil
}
