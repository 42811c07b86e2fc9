package inspector

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/viant/aemrules/inspector/java"
	"github.com/viant/aemrules/tree"
	"github.com/viant/afs"
)

// ErrUnsupported is returned for files no front end can parse
var ErrUnsupported = errors.New("unsupported file type")

// Inspector provides an interface for parsing source code into a syntax tree
type Inspector interface {
	// InspectSource parses source code from a byte slice
	InspectSource(path string, src []byte) (*tree.Node, error)

	// InspectURL downloads and parses a source file
	InspectURL(ctx context.Context, URL string) (*tree.Node, error)
}

// Factory creates appropriate inspectors based on file extension
type Factory struct {
	java *java.Inspector
}

// NewFactory creates a new inspector factory; a nil service defaults to afs.New()
func NewFactory(fs afs.Service) *Factory {
	if fs == nil {
		fs = afs.New()
	}
	return &Factory{java: java.NewInspector(fs)}
}

// Supports returns true if filename has a supported extension
func (f *Factory) Supports(filename string) bool {
	_, err := f.GetInspector(filename)
	return err == nil
}

// GetInspector returns an appropriate inspector based on file extension
func (f *Factory) GetInspector(filename string) (Inspector, error) {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".java":
		return f.java, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// InspectSource is a convenience method that gets the appropriate inspector and parses src
func (f *Factory) InspectSource(filename string, src []byte) (*tree.Node, error) {
	inspector, err := f.GetInspector(filename)
	if err != nil {
		return nil, err
	}
	return inspector.InspectSource(filename, src)
}

// InspectURL is a convenience method that gets the appropriate inspector and parses URL
func (f *Factory) InspectURL(ctx context.Context, URL string) (*tree.Node, error) {
	inspector, err := f.GetInspector(URL)
	if err != nil {
		return nil, err
	}
	return inspector.InspectURL(ctx, URL)
}
