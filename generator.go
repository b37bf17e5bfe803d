package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/natefinch/atomic"
)

// RunOptions holds the per-run choices from the command line
type RunOptions struct {
	AnimalName    string
	SkinType      *string // nil means ask
	ListSkinTypes bool
}

// GenerateResult describes a finished page
type GenerateResult struct {
	OutputPath   string
	MarkdownPath string
	Records      int
	Bytes        int
}

// PageGenerator runs fetch, filter, render and write in sequence
type PageGenerator struct {
	config   *Config
	fetcher  *AnimalFetcher
	renderer *Renderer
	exporter *MarkdownExporter
	input    InputProvider
	out      io.Writer
	progress bool
}

// NewPageGenerator creates a generator for cfg. Prompts go through input,
// listings are written to out.
func NewPageGenerator(cfg *Config, input InputProvider, out io.Writer) *PageGenerator {
	renderer := NewRenderer(cfg.Placeholder)
	renderer.EmptyMessage = cfg.EmptyMessage

	g := &PageGenerator{
		config:   cfg,
		fetcher:  NewAnimalFetcher(cfg.APIURL, cfg.DataPath, cfg.RequestTimeout),
		renderer: renderer,
		input:    input,
		out:      out,
		progress: isatty.IsTerminal(os.Stderr.Fd()),
	}
	if cfg.Markdown {
		g.exporter = NewMarkdownExporter()
	}
	return g
}

// Generate produces the page. It returns a nil result when only listing skin types.
func (g *PageGenerator) Generate(opts RunOptions) (*GenerateResult, error) {
	name, err := g.resolveAnimalName(opts.AnimalName)
	if err != nil {
		return nil, err
	}

	records, err := g.fetch(name)
	if err != nil {
		return nil, err
	}
	logger.Info("Fetched animals", "count", len(records), "source", g.source())

	if opts.ListSkinTypes {
		printOptions(g.out, DistinctValues(records, SkinTypeAttribute))
		return nil, nil
	}

	skinType, err := g.resolveSkinType(records, opts.SkinType)
	if err != nil {
		return nil, err
	}

	animals := Filter(records, SkinTypeCriterion(skinType))
	debugLog("filtered animals", "skin_type", skinType, "matched", len(animals))

	tmpl, err := g.config.LoadTemplate()
	if err != nil {
		return nil, err
	}

	renderer := *g.renderer
	queried := name
	if g.config.UseLocalFile {
		queried = ""
	}
	renderer.EmptyMessage = emptyMessage(g.renderer.EmptyMessage, queried, skinType)
	page, err := renderer.Render(animals, tmpl)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		OutputPath: g.config.OutputPath,
		Records:    len(animals),
		Bytes:      len(page),
	}

	// Convert and check the companion path before writing anything so a
	// failure leaves no output behind
	var markdown string
	if g.exporter != nil {
		if markdown, err = g.exporter.Convert(page); err != nil {
			return nil, err
		}
		result.MarkdownPath = markdownPath(g.config.OutputPath)
		if err := checkWritable(result.MarkdownPath); err != nil {
			return nil, err
		}
	}

	if err := writeOutput(g.config.OutputPath, page); err != nil {
		return nil, err
	}
	if g.exporter != nil {
		if err := writeOutput(result.MarkdownPath, markdown); err != nil {
			if rmErr := os.Remove(g.config.OutputPath); rmErr != nil {
				logger.Warn("Could not remove page after failed Markdown write", "path", g.config.OutputPath, "err", rmErr)
			}
			return nil, err
		}
	}

	logger.Info("Page written", "path", result.OutputPath, "animals", result.Records,
		"size", humanize.Bytes(uint64(result.Bytes)))
	return result, nil
}

func (g *PageGenerator) resolveAnimalName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name != "" || g.config.UseLocalFile {
		return name, nil
	}
	return g.input.AnimalName()
}

func (g *PageGenerator) resolveSkinType(records []AnimalRecord, flag *string) (string, error) {
	if flag != nil {
		return firstNonEmpty(strings.TrimSpace(*flag), AllValues), nil
	}

	options := DistinctValues(records, SkinTypeAttribute)
	if len(options) == 0 {
		return AllValues, nil
	}
	return g.input.SkinType(options)
}

func (g *PageGenerator) fetch(name string) ([]AnimalRecord, error) {
	if g.progress && !g.config.UseLocalFile {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = fmt.Sprintf(" Fetching %q...", name)
		s.Start()
		defer s.Stop()
	}
	return g.fetcher.Fetch(name, g.config.Credential, g.config.UseLocalFile)
}

func (g *PageGenerator) source() string {
	if g.config.UseLocalFile {
		return g.config.DataPath
	}
	return g.config.APIURL
}

// emptyMessage tailors the no-results text to what was asked for
func emptyMessage(base, name, skinType string) string {
	switch {
	case skinType != "" && skinType != AllValues:
		return fmt.Sprintf("No animals found for skin type '%s'.", skinType)
	case name != "":
		return fmt.Sprintf("No animals found for '%s'.", name)
	}
	return base
}

// checkWritable rejects output paths that are occupied by a directory
func checkWritable(path string) error {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return newError("write output", KindFile, path, fmt.Errorf("path is a directory"))
	}
	return nil
}

func writeOutput(path, content string) error {
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return newError("write output", KindFile, path, err)
	}
	return nil
}
