package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilewfc/pattern"
)

// Option customizes Build.
type Option func(*config)

type config struct {
	logger *slog.Logger
	strict bool
}

func newConfig(opts ...Option) config {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger used to report the validation outcome.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("loader: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithStrict makes Build fail with ErrInconsistentRules when the rules are
// not symmetric. The default only logs and reports.
func WithStrict(on bool) Option {
	return func(c *config) { c.strict = on }
}

var validate = newValidator()

// newValidator reports field paths with their document (yaml) names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode reads one document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Decode: empty input: %w", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("Decode: %w", err)
	}
	for i := range doc.Patterns {
		g := &doc.Patterns[i]
		if len(g.Variants) == 0 {
			g.Variants = g.Legacy
		}
		g.Legacy = nil
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("Decode: %w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// Parse decodes a document held in memory.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// ReadFile decodes the document stored at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}
	return doc, nil
}

// Build creates, registers and wires every declared group, then checks rule
// symmetry. The report is returned alongside the repository; with
// WithStrict(true) a failing report also yields ErrInconsistentRules and a
// nil repository.
//
// Errors name the offending group id and wrap the pattern sentinels
// (ErrDuplicateUID, ErrUnknownUID, ErrUnknownTag, ErrInvalidWeight, ...).
func (d *Document) Build(opts ...Option) (*pattern.Repository, pattern.ValidationReport, error) {
	cfg := newConfig(opts...)

	groups := make([]*pattern.Group, 0, len(d.Patterns))
	for _, gs := range d.Patterns {
		variants := make([]pattern.Pattern, 0, len(gs.Variants))
		for _, vs := range gs.Variants {
			v, err := pattern.NewPattern(d.imagePath(vs.ImagePath), vs.Weight)
			if err != nil {
				return nil, pattern.ValidationReport{}, fmt.Errorf("Build: group %d: %w", gs.ID, err)
			}
			variants = append(variants, v)
		}
		g, err := pattern.NewGroup(gs.ID, gs.Name, gs.Weight, gs.Tags, variants)
		if err != nil {
			return nil, pattern.ValidationReport{}, fmt.Errorf("Build: group %d: %w", gs.ID, err)
		}
		groups = append(groups, g)
	}

	repo := pattern.NewRepository()
	if err := repo.Register(groups); err != nil {
		return nil, pattern.ValidationReport{}, fmt.Errorf("Build: %w", err)
	}
	// Rules may reference any group, so they are resolved only now.
	for _, gs := range d.Patterns {
		if err := repo.AttachRules(gs.ID, gs.Rules.Spec()); err != nil {
			return nil, pattern.ValidationReport{}, fmt.Errorf("Build: group %d: %w", gs.ID, err)
		}
	}

	report := repo.Validate()
	if report.OK() {
		cfg.logger.Info("pattern validation succeeded", slog.Int("groups", repo.Len()))
		return repo, report, nil
	}
	cfg.logger.Warn("pattern validation failed",
		slog.Int("groups", repo.Len()),
		slog.Int("violations", len(report.Violations)))
	if cfg.strict {
		return nil, report, fmt.Errorf("Build: %d violations: %w", len(report.Violations), ErrInconsistentRules)
	}
	return repo, report, nil
}

func (d *Document) imagePath(p string) string {
	if d.ImagesFolder == "" {
		return p
	}
	return filepath.Join(d.ImagesFolder, p)
}

// Load reads the document at path and builds its repository.
func Load(path string, opts ...Option) (*pattern.Repository, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	repo, _, err := doc.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}
	return repo, nil
}
