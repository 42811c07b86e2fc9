// Package scanner runs rule checks over Java source trees
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/viant/aemrules/check"
	"github.com/viant/aemrules/inspector"
	"github.com/viant/aemrules/tree"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"golang.org/x/sync/errgroup"
)

// Failure records a file that could not be scanned
type Failure struct {
	Path string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%v: %v", f.Path, f.Err)
}

// Result holds the outcome of a scan
type Result struct {
	Files    int
	Issues   []check.Issue
	Failures []Failure
}

// Scanner runs enabled checks over source files
type Scanner struct {
	registry    *check.Registry
	inspectors  *inspector.Factory
	fs          afs.Service
	logger      *slog.Logger
	concurrency int
	disabled    map[string]bool
	params      map[string]map[string]string
	exclusions  []string
	enabled     []check.Factory
}

// New creates a scanner; rule parameters are validated up front
func New(registry *check.Registry, options ...Option) (*Scanner, error) {
	s := &Scanner{
		registry:    registry,
		concurrency: 4,
		disabled:    map[string]bool{},
		params:      map[string]map[string]string{},
		exclusions:  []string{"target", "build", "out"},
	}
	for _, option := range options {
		option(s)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.concurrency < 1 {
		s.concurrency = 1
	}
	s.inspectors = inspector.NewFactory(s.fs)
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scanner) init() error {
	known := map[string]bool{}
	for _, key := range s.registry.Keys() {
		normalized := normalizeKey(key)
		known[normalized] = true
		if s.disabled[normalized] {
			s.logger.Debug("rule disabled", "rule", key)
			continue
		}
		factory, _ := s.registry.Factory(key)
		if _, err := s.configure(factory); err != nil {
			return err
		}
		s.enabled = append(s.enabled, factory)
	}
	for key := range s.params {
		if !known[key] {
			return fmt.Errorf("params of unknown rule %v", key)
		}
	}
	for key := range s.disabled {
		if !known[key] {
			s.logger.Warn("unknown disabled rule", "rule", key)
		}
	}
	return nil
}

// configure creates a check with configured params
func (s *Scanner) configure(factory check.Factory) (check.Check, error) {
	instance := factory()
	params, ok := s.params[normalizeKey(instance.Key())]
	if !ok {
		return instance, nil
	}
	configurable, ok := instance.(check.Configurable)
	if !ok {
		return nil, fmt.Errorf("rule %v does not take params", instance.Key())
	}
	if err := configurable.Configure(params); err != nil {
		return nil, fmt.Errorf("invalid params of rule %v: %w", instance.Key(), err)
	}
	return instance, nil
}

// Rules returns keys of enabled rules
func (s *Scanner) Rules() []string {
	var result []string
	for _, factory := range s.enabled {
		result = append(result, factory().Key())
	}
	sort.Strings(result)
	return result
}

// ScanSource scans one in memory source file. When a check fails, issues of the other
// checks are returned along with the error, which is also recorded as a failure.
func (s *Scanner) ScanSource(ctx context.Context, path string, src []byte) (*Result, error) {
	collector := check.NewCollector()
	err := s.scanSource(ctx, path, src, collector)
	result := &Result{Files: 1, Issues: collector.Issues()}
	if err != nil {
		result.Failures = []Failure{{Path: path, Err: err}}
	}
	return result, err
}

func (s *Scanner) scanSource(ctx context.Context, path string, src []byte, reporter check.Reporter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file, err := s.inspectors.InspectSource(path, src)
	if err != nil {
		return err
	}
	var errs []error
	checkCtx := check.NewContext(path, reporter)
	for _, factory := range s.enabled {
		if err = s.runCheck(factory, checkCtx, file); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Scanner) runCheck(factory check.Factory, ctx *check.Context, file *tree.Node) (err error) {
	instance, err := s.configure(factory)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rule %v failed: %v", instance.Key(), r)
		}
	}()
	instance.Scan(ctx, file)
	return nil
}

// Scan discovers source files under URLs and scans them concurrently.
// A file that cannot be read, parsed or checked is recorded as a failure, the others are still scanned.
func (s *Scanner) Scan(ctx context.Context, URLs ...string) (*Result, error) {
	files, err := s.discover(ctx, URLs)
	if err != nil {
		return nil, err
	}
	collector := check.NewCollector()
	result := &Result{Files: len(files)}
	var mux sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)
	for _, URL := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			if err := s.scanURL(groupCtx, URL, collector); err != nil {
				s.logger.Error("failed to scan file", "path", URL, "error", err)
				mux.Lock()
				result.Failures = append(result.Failures, Failure{Path: URL, Err: err})
				mux.Unlock()
			}
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].Path < result.Failures[j].Path
	})
	result.Issues = collector.Issues()
	s.logger.Info("scan complete", "files", result.Files, "issues", len(result.Issues), "failures", len(result.Failures))
	return result, nil
}

func (s *Scanner) scanURL(ctx context.Context, URL string, reporter check.Reporter) error {
	src, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	return s.scanSource(ctx, URL, src, reporter)
}

// discover expands directories into supported source files
func (s *Scanner) discover(ctx context.Context, URLs []string) ([]string, error) {
	var result []string
	seen := map[string]bool{}
	add := func(URL string) {
		if !seen[URL] {
			seen[URL] = true
			result = append(result, URL)
		}
	}
	for _, URL := range URLs {
		object, err := s.fs.Object(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to locate %v: %w", URL, err)
		}
		if !object.IsDir() {
			if s.inspectors.Supports(URL) {
				add(URL)
			}
			continue
		}
		var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
			if !s.sourceFiles(info) {
				return false, nil
			}
			if !info.IsDir() {
				add(url.Join(url.Join(baseURL, parent), info.Name()))
			}
			return true, nil
		}
		if err = s.fs.Walk(ctx, URL, visitor); err != nil {
			return nil, fmt.Errorf("failed to walk %v: %w", URL, err)
		}
	}
	sort.Strings(result)
	return result, nil
}
