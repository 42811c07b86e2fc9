package jcrproperty

import (
	"github.com/viant/aemrules/check"
	"github.com/viant/aemrules/tree"
)

// detector reports usages of annotated fields in one constructor body
type detector struct {
	ctx    *check.Context
	check  check.Check
	fields map[string]bool
	params map[string]bool
	walker *tree.Walker
}

func newDetector(ctx *check.Context, owner check.Check, fields map[string]bool, constructor *tree.Node) *detector {
	d := &detector{ctx: ctx, check: owner, fields: fields, params: map[string]bool{}}
	for _, parameter := range constructor.Parameters() {
		d.params[parameter.Name] = true
	}
	d.walker = tree.NewWalker().
		On(tree.KindMemberAccess, d.onMemberAccess).
		On(tree.KindIdentifier, d.onIdentifier)
	return d
}

func (d *detector) detect(body *tree.Node) {
	d.walker.Walk(body)
}

// onMemberAccess reports x.f for any receiver x
func (d *detector) onMemberAccess(node *tree.Node, descend func()) {
	if d.fields[node.Name] {
		d.ctx.Report(d.check, node, Message)
	}
	descend()
}

// onIdentifier reports bare variable references not shadowed by a constructor parameter
func (d *detector) onIdentifier(node *tree.Node, descend func()) {
	if !node.Symbol.IsVariable() {
		return
	}
	if d.params[node.Name] || !d.fields[node.Name] {
		return
	}
	d.ctx.Report(d.check, node, Message)
}
