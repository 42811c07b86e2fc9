package rules

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/viant/afs"
)

//go:embed resources/rules/*.md
var resources embed.FS

// DescriptionSource resolves rule description resources such as "rules/AEM-12.md"
type DescriptionSource interface {
	Lookup(ctx context.Context, location string) (string, error)
}

// DescriptionPath returns the resource location of a rule description
func DescriptionPath(ruleKey string) string {
	return "rules/" + ruleKey + ".md"
}

// EmbeddedSource reads descriptions from a file system rooted at the resource directory
type EmbeddedSource struct {
	fs fs.FS
}

// NewEmbeddedSource returns a source over descriptions shipped with the binary
func NewEmbeddedSource() *EmbeddedSource {
	sub, _ := fs.Sub(resources, "resources")
	return &EmbeddedSource{fs: sub}
}

// NewFSSource returns a source over an arbitrary file system
func NewFSSource(fileSystem fs.FS) *EmbeddedSource {
	return &EmbeddedSource{fs: fileSystem}
}

// Lookup reads location from the file system
func (s *EmbeddedSource) Lookup(ctx context.Context, location string) (string, error) {
	data, err := fs.ReadFile(s.fs, strings.TrimPrefix(location, "/"))
	if err != nil {
		return "", fmt.Errorf("failed to read description %v: %w", location, err)
	}
	return string(data), nil
}

// URLSource reads descriptions below a base URL using afs (file://, mem://, s3:// ...)
type URLSource struct {
	baseURL string
	fs      afs.Service
}

// NewURLSource creates a source for baseURL
func NewURLSource(baseURL string, service afs.Service) *URLSource {
	if service == nil {
		service = afs.New()
	}
	return &URLSource{baseURL: strings.TrimRight(baseURL, "/"), fs: service}
}

// Lookup downloads baseURL/location
func (s *URLSource) Lookup(ctx context.Context, location string) (string, error) {
	URL := s.baseURL + "/" + strings.TrimPrefix(location, "/")
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", fmt.Errorf("failed to download description %v: %w", URL, err)
	}
	return string(data), nil
}

// ChainSource tries sources in order, the first successful lookup wins
type ChainSource []DescriptionSource

// Lookup returns the first found description
func (c ChainSource) Lookup(ctx context.Context, location string) (string, error) {
	var errs []error
	for _, source := range c {
		if source == nil {
			continue
		}
		description, err := source.Lookup(ctx, location)
		if err == nil {
			return description, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", fmt.Errorf("no description source for %v", location)
	}
	return "", errors.Join(errs...)
}
