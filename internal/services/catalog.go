package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/logging"
	"github.com/hypr-showkey/showkey/internal/ports"
)

// CatalogService builds the binding store from Hyprland config files
type CatalogService struct {
	newParser ports.BindingParserFactory
	reader    ports.SourceReader
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(reader ports.SourceReader, newParser ports.BindingParserFactory) *CatalogService {
	return &CatalogService{
		newParser: newParser,
		reader:    reader,
	}
}

// Load reads the given files, ingests them and applies the category rules.
// It fails only when no file could be read at all.
func (s *CatalogService) Load(ctx context.Context, paths []string, rules []domain.CategoryRule) (*domain.BindingStore, domain.IngestReport, error) {
	sources, err := s.reader.ReadSources(ctx, paths)
	if err != nil {
		if errors.Is(err, domain.ErrNoConfigFiles) {
			_, report := s.Ingest(ctx, sources)
			return domain.NewBindingStore(nil), report, fmt.Errorf("%w (tried %s)", err, strings.Join(paths, ", "))
		}
		return nil, domain.IngestReport{}, fmt.Errorf("failed to read hyprland configs: %w", err)
	}

	store, report := s.Ingest(ctx, sources)
	categorized := store.Categorized(rules)

	logging.Logger.Info("Keybindings loaded",
		"bindings", categorized.Len(),
		"categories", len(categorized.Categories()),
		"rules", len(rules))
	return categorized, report, nil
}

// Ingest parses sources in order into a store.
// Unreadable sources and malformed lines are recorded in the report and skipped.
func (s *CatalogService) Ingest(ctx context.Context, sources []domain.ConfigSource) (*domain.BindingStore, domain.IngestReport) {
	var report domain.IngestReport
	var bindings []domain.Keybinding

	// One parser for all sources so variables carry across files
	parser := s.newParser()

	for _, src := range sources {
		if ctx.Err() != nil {
			report.SkippedFiles = append(report.SkippedFiles, domain.SkippedFile{
				Path:   src.Path,
				Reason: ctx.Err().Error(),
			})
			continue
		}

		if src.Err != nil {
			logging.Logger.Warn("Skipping unreadable config file", "path", src.Path, "error", src.Err)
			report.SkippedFiles = append(report.SkippedFiles, domain.SkippedFile{
				Path:   src.Path,
				Reason: src.Err.Error(),
			})
			continue
		}

		report.FilesRead++
		bindings = s.ingestSource(parser, src, bindings, &report)
	}

	report.Retained = len(bindings)

	if report.HasProblems() {
		logging.Logger.Warn("Ingest finished with problems",
			"retained", report.Retained,
			"malformed", len(report.MalformedLines),
			"filtered", report.FilteredLines,
			"skippedFiles", len(report.SkippedFiles))
	} else {
		logging.Logger.Debug("Ingest finished",
			"retained", report.Retained,
			"filtered", report.FilteredLines,
			"files", report.FilesRead)
	}

	return domain.NewBindingStore(bindings), report
}

func (s *CatalogService) ingestSource(parser ports.BindingParser, src domain.ConfigSource, bindings []domain.Keybinding, report *domain.IngestReport) []domain.Keybinding {
	scanner := bufio.NewScanner(strings.NewReader(src.Content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		ref := domain.SourceRef{File: src.Path, Line: lineNo}

		binding, err := parser.Parse(text, ref)
		switch {
		case errors.Is(err, domain.ErrUnboundLine):
			report.BindLines++
			report.FilteredLines++
			logging.Logger.Debug("Filtered unbound line", "source", ref.String())
		case errors.Is(err, domain.ErrMalformedLine):
			report.BindLines++
			report.MalformedLines = append(report.MalformedLines, domain.LineIssue{
				Err:    err,
				Source: ref,
				Text:   strings.TrimSpace(text),
			})
			logging.Logger.Debug("Skipped malformed line", "source", ref.String(), "error", err)
		case err != nil:
			logging.Logger.Warn("Unexpected parse error", "source", ref.String(), "error", err)
		case binding != nil:
			report.BindLines++
			bindings = append(bindings, *binding)
		}
	}

	if err := scanner.Err(); err != nil {
		logging.Logger.Warn("Stopped reading config file early", "path", src.Path, "line", lineNo, "error", err)
		report.SkippedFiles = append(report.SkippedFiles, domain.SkippedFile{
			Path:   src.Path,
			Reason: fmt.Sprintf("line %d: %v", lineNo+1, err),
		})
	}

	return bindings
}
