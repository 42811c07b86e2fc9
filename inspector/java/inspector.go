package java

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/viant/aemrules/tree"
	"github.com/viant/afs"
)

// Inspector parses Java sources into syntax trees with resolved annotations and symbols.
// It keeps no per-file state and can be shared across goroutines.
type Inspector struct {
	fs afs.Service
}

// NewInspector creates a Java Inspector; a nil service defaults to afs.New()
func NewInspector(fs afs.Service) *Inspector {
	if fs == nil {
		fs = afs.New()
	}
	return &Inspector{fs: fs}
}

// InspectSource parses Java source code from a byte slice
func (i *Inspector) InspectSource(path string, src []byte) (*tree.Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	parsed, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source %s: %w", path, err)
	}
	rootNode := parsed.RootNode()
	if rootNode == nil {
		return nil, fmt.Errorf("failed to parse source %s: empty tree", path)
	}
	return newBuilder(src).parseCompilationUnit(rootNode, path), nil
}

// InspectURL downloads a Java source file with afs and parses it
func (i *Inspector) InspectURL(ctx context.Context, URL string) (*tree.Node, error) {
	src, err := i.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", URL, err)
	}
	return i.InspectSource(URL, src)
}
