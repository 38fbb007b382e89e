/*
Package historycleanup orchestrates the cleanup pipeline: parse the history
file, classify each record, deduplicate by command text, sort, and write the
result back atomically.
*/
package historycleanup

import (
	"errors"
	"fmt"
	"io"

	"github.com/shellkit/histclean/internal/core/ports"
)

// ErrNoValidCommands is returned when no record survives parsing and
// classification. The history file is left untouched in that case: an
// all-dropped run must never truncate the user's history to nothing.
var ErrNoValidCommands = errors.New("no valid commands")

type service struct {
	repo        ports.HistoryRepository
	parser      ports.HistoryParser
	classifier  ports.RecordClassifier
	serializer  ports.HistorySerializer
	diagnostics io.Writer
}

// NewService creates a new history cleanup service.
// It panics if repo, parser, classifier, or serializer are nil.
// diagnostics receives one line per malformed history unit; nil discards them.
func NewService(
	repo ports.HistoryRepository,
	parser ports.HistoryParser,
	classifier ports.RecordClassifier,
	serializer ports.HistorySerializer,
	diagnostics io.Writer,
) ports.HistoryCleanupService {
	if repo == nil {
		panic("repo cannot be nil")
	}
	if parser == nil {
		panic("parser cannot be nil")
	}
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if serializer == nil {
		panic("serializer cannot be nil")
	}
	if diagnostics == nil {
		diagnostics = io.Discard
	}
	return &service{
		repo:        repo,
		parser:      parser,
		classifier:  classifier,
		serializer:  serializer,
		diagnostics: diagnostics,
	}
}

// Clean implements the ports.HistoryCleanupService interface. Per-unit parse
// errors are reported to the diagnostics writer and the unit is dropped; the
// run itself fails only on I/O errors or when nothing at all survives.
func (s *service) Clean(path string, opts ports.CleanOptions) (ports.CleanReport, error) {
	report := ports.CleanReport{Path: path, DryRun: opts.DryRun}

	input, err := s.repo.Load(path)
	if err != nil {
		return report, fmt.Errorf("loading history file: %w", err)
	}

	agg := newAggregator()
	for rec, err := range s.parser.Records(input) {
		if err != nil {
			report.ParseErrors++
			fmt.Fprintln(s.diagnostics, err)
			continue
		}
		report.ParsedUnits++
		if !s.classifier.Retain(rec.Command) {
			report.Ignored++
			continue
		}
		report.Retained++
		agg.fold(rec)
	}

	records := agg.records()
	report.Unique = len(records)
	if report.Unique == 0 {
		return report, ErrNoValidCommands
	}

	if opts.DryRun {
		return report, nil
	}

	if err := s.repo.Replace(path, s.serializer.Render(records)); err != nil {
		return report, fmt.Errorf("replacing history file: %w", err)
	}
	return report, nil
}
