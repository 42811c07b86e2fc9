// Package check defines the contract between rule implementations and the scanner:
// a check walks one file's syntax tree and reports issues through a Context.
package check

import (
	"github.com/viant/aemrules/tree"
)

// Check inspects one file's syntax tree.
// Instances keep per-file state and must not be shared across files.
type Check interface {
	// Key returns the rule key reported issues are attributed to
	Key() string

	// Scan walks file and reports issues to ctx
	Scan(ctx *Context, file *tree.Node)
}

// Configurable is implemented by checks accepting rule parameter values
type Configurable interface {
	Configure(params map[string]string) error
}

// Factory creates a fresh check instance
type Factory func() Check

// Context carries per-file reporting state
type Context struct {
	Path     string
	Reporter Reporter
}

// NewContext creates a context for path
func NewContext(path string, reporter Reporter) *Context {
	return &Context{Path: path, Reporter: reporter}
}

// Report reports an issue located at node
func (c *Context) Report(check Check, node *tree.Node, message string) {
	if node == nil || c.Reporter == nil {
		return
	}
	issue := Issue{
		RuleKey: check.Key(),
		Path:    c.Path,
		Line:    node.Position.Line,
		Column:  node.Position.Column,
		Offset:  node.Position.Offset,
		End:     node.Position.End,
		Message: message,
	}
	issue.ID = issue.Fingerprint()
	c.Reporter.Report(issue)
}
