package java

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/aemrules/tree"
)

// skipped node types never produce tree nodes: types, comments and declaration-only syntax
var skipped = map[string]bool{
	"type_identifier":        true,
	"scoped_type_identifier": true,
	"generic_type":           true,
	"integral_type":          true,
	"floating_point_type":    true,
	"boolean_type":           true,
	"void_type":              true,
	"array_type":             true,
	"type_arguments":         true,
	"type_parameters":        true,
	"dimensions":             true,
	"modifiers":              true,
	"marker_annotation":      true,
	"annotation":             true,
	"line_comment":           true,
	"block_comment":          true,
	"comment":                true,
	"scoped_identifier":      true,
	"break_statement":        true,
	"continue_statement":     true,
}

// parseBlock converts a block or constructor body in its own scope
func (b *builder) parseBlock(node *sitter.Node) *tree.Node {
	block := &tree.Node{Kind: tree.KindBlock, Position: position(node)}
	b.withScope(func() {
		b.visitChildren(block, node)
	})
	return block
}

func (b *builder) withScope(fn func()) {
	outer := b.scope
	owner := b.method
	if owner == "" {
		owner = b.class
	}
	b.scope = newScope(outer, scopeBlock, owner)
	defer func() { b.scope = outer }()
	fn()
}

func (b *builder) visitChildren(parent *tree.Node, node *sitter.Node) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		b.visit(parent, node.NamedChild(i))
	}
}

// visit converts node and appends the result to parent
func (b *builder) visit(parent *tree.Node, node *sitter.Node) {
	if node == nil || skipped[node.Type()] {
		return
	}
	switch node.Type() {
	case "block", "constructor_body":
		parent.Add(b.parseBlock(node))
	case "local_variable_declaration":
		for _, declarator := range declarators(node) {
			parent.Add(b.parseVariable(node, declarator, tree.RoleLocal))
		}
	case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration", "annotation_type_declaration":
		parent.Add(b.parseTypeDeclaration(node))
	case "identifier":
		parent.Add(b.parseIdentifier(node))
	case "field_access":
		parent.Add(b.parseFieldAccess(node))
	case "method_invocation":
		parent.Add(b.parseMethodInvocation(node))
	case "assignment_expression":
		assignment := &tree.Node{Kind: tree.KindAssignment, Position: position(node)}
		b.visit(assignment, node.ChildByFieldName("left"))
		b.visit(assignment, node.ChildByFieldName("right"))
		parent.Add(assignment)
	case "return_statement":
		statement := &tree.Node{Kind: tree.KindReturn, Position: position(node)}
		b.visitChildren(statement, node)
		parent.Add(statement)
	case "try_statement", "try_with_resources_statement":
		parent.Add(b.parseTry(node))
	case "catch_clause":
		parent.Add(b.parseCatch(node))
	case "finally_clause":
		finally := &tree.Node{Kind: tree.KindFinally, Position: position(node)}
		b.visitChildren(finally, node)
		parent.Add(finally)
	case "lambda_expression":
		parent.Add(b.parseLambda(node))
	case "enhanced_for_statement":
		parent.Add(b.parseEnhancedFor(node))
	case "for_statement":
		statement := &tree.Node{Kind: tree.KindOther, Name: node.Type(), Position: position(node)}
		b.withScope(func() {
			b.visitChildren(statement, node)
		})
		parent.Add(statement)
	case "object_creation_expression":
		parent.Add(b.parseObjectCreation(node))
	case "labeled_statement":
		statement := &tree.Node{Kind: tree.KindOther, Name: node.Type(), Position: position(node)}
		for i := 0; i < int(node.NamedChildCount()); i++ {
			if child := node.NamedChild(i); child.Type() != "identifier" {
				b.visit(statement, child)
			}
		}
		parent.Add(statement)
	case "method_reference":
		reference := &tree.Node{Kind: tree.KindOther, Name: node.Type(), Position: position(node)}
		if node.NamedChildCount() > 0 {
			b.visit(reference, node.NamedChild(0))
		}
		parent.Add(reference)
	case "if_statement", "while_statement", "do_statement", "expression_statement":
		statement := &tree.Node{Kind: tree.KindOther, Name: node.Type(), Position: position(node)}
		b.withScope(func() {
			b.visitChildren(statement, node)
		})
		parent.Add(statement)
	case "instanceof_expression":
		parent.Add(b.parseInstanceOf(node))
	default:
		other := &tree.Node{Kind: tree.KindOther, Name: node.Type(), Position: position(node)}
		b.visitChildren(other, node)
		parent.Add(other)
	}
}

// parseIdentifier resolves an identifier in expression position
func (b *builder) parseIdentifier(node *sitter.Node) *tree.Node {
	name := node.Content(b.source)
	return &tree.Node{Kind: tree.KindIdentifier, Name: name, Symbol: b.resolve(name), Position: position(node)}
}

func (b *builder) resolve(name string) *tree.Symbol {
	if symbol := b.scope.lookup(name); symbol != nil {
		return symbol
	}
	if b.imports.isType(name) {
		return &tree.Symbol{Name: name, Kind: tree.SymbolType, Owner: b.imports.resolve(name)}
	}
	return &tree.Symbol{Name: name, Kind: tree.SymbolUnresolved}
}

// parseFieldAccess converts object.field; the selected name is kept on the node, not as a child identifier
func (b *builder) parseFieldAccess(node *sitter.Node) *tree.Node {
	access := &tree.Node{Kind: tree.KindMemberAccess, Position: position(node)}
	object := node.ChildByFieldName("object")
	if field := node.ChildByFieldName("field"); field != nil {
		access.Name = field.Content(b.source)
	}
	access.Symbol = &tree.Symbol{Name: access.Name, Kind: tree.SymbolMember}
	if object != nil && object.Type() == "this" {
		if symbol := b.scope.field(access.Name); symbol != nil {
			access.Symbol = symbol
		}
	}
	b.visit(access, object)
	return access
}

func (b *builder) parseMethodInvocation(node *sitter.Node) *tree.Node {
	invocation := &tree.Node{Kind: tree.KindMethodInvocation, Position: position(node)}
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		invocation.Name = nameNode.Content(b.source)
	}
	invocation.Symbol = &tree.Symbol{Name: invocation.Name, Kind: tree.SymbolMethod, Owner: b.class}
	if object := node.ChildByFieldName("object"); object != nil {
		invocation.Receiver = true
		b.visit(invocation, object)
	}
	if arguments := node.ChildByFieldName("arguments"); arguments != nil {
		b.visitChildren(invocation, arguments)
	}
	return invocation
}

func (b *builder) parseTry(node *sitter.Node) *tree.Node {
	try := &tree.Node{Kind: tree.KindTry, Position: position(node)}
	b.withScope(func() {
		if resources := node.ChildByFieldName("resources"); resources != nil {
			for i := 0; i < int(resources.NamedChildCount()); i++ {
				b.parseResource(try, resources.NamedChild(i))
			}
		}
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() == "resource_specification" {
				continue
			}
			b.visit(try, child)
		}
	})
	return try
}

func (b *builder) parseResource(try *tree.Node, node *sitter.Node) {
	if node.Type() != "resource" {
		return
	}
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		b.visitChildren(try, node)
		return
	}
	name := nameNode.Content(b.source)
	resource := &tree.Node{Kind: tree.KindVariable, Name: name, Role: tree.RoleResource, Position: position(node)}
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		resource.Type = typeNode.Content(b.source)
	}
	b.parseModifiers(resource, node)
	resource.Symbol = b.scope.declare(name, tree.RoleResource)
	resource.Symbol.Type = resource.Type
	b.visit(resource, node.ChildByFieldName("value"))
	try.Add(resource)
}

func (b *builder) parseCatch(node *sitter.Node) *tree.Node {
	clause := &tree.Node{Kind: tree.KindOther, Name: node.Type(), Position: position(node)}
	b.withScope(func() {
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() != "catch_formal_parameter" {
				b.visit(clause, child)
				continue
			}
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				name := nameNode.Content(b.source)
				clause.Add(&tree.Node{Kind: tree.KindVariable, Name: name, Role: tree.RoleLocal, Position: position(child), Symbol: b.scope.declare(name, tree.RoleLocal)})
			}
		}
	})
	return clause
}

func (b *builder) parseLambda(node *sitter.Node) *tree.Node {
	lambda := &tree.Node{Kind: tree.KindOther, Name: node.Type(), Position: position(node)}
	b.withScope(func() {
		if parameters := node.ChildByFieldName("parameters"); parameters != nil {
			b.parseLambdaParameters(lambda, parameters)
		}
		b.visit(lambda, node.ChildByFieldName("body"))
	})
	return lambda
}

func (b *builder) parseLambdaParameters(lambda *tree.Node, parameters *sitter.Node) {
	declare := func(nameNode *sitter.Node) {
		name := nameNode.Content(b.source)
		lambda.Add(&tree.Node{Kind: tree.KindVariable, Name: name, Role: tree.RoleLocal, Position: position(nameNode), Symbol: b.scope.declare(name, tree.RoleLocal)})
	}
	switch parameters.Type() {
	case "identifier":
		declare(parameters)
	case "inferred_parameters":
		for i := 0; i < int(parameters.NamedChildCount()); i++ {
			declare(parameters.NamedChild(i))
		}
	case "formal_parameters":
		for i := 0; i < int(parameters.NamedChildCount()); i++ {
			parameter := parameters.NamedChild(i)
			if nameNode := parameter.ChildByFieldName("name"); nameNode != nil {
				declare(nameNode)
			}
		}
	}
}

func (b *builder) parseEnhancedFor(node *sitter.Node) *tree.Node {
	statement := &tree.Node{Kind: tree.KindOther, Name: node.Type(), Position: position(node)}
	b.visit(statement, node.ChildByFieldName("value"))
	b.withScope(func() {
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			name := nameNode.Content(b.source)
			variable := &tree.Node{Kind: tree.KindVariable, Name: name, Role: tree.RoleLocal, Position: position(nameNode), Symbol: b.scope.declare(name, tree.RoleLocal)}
			if typeNode := node.ChildByFieldName("type"); typeNode != nil {
				variable.Type = typeNode.Content(b.source)
				variable.Symbol.Type = variable.Type
			}
			statement.Add(variable)
		}
		b.visit(statement, node.ChildByFieldName("body"))
	})
	return statement
}

func (b *builder) parseObjectCreation(node *sitter.Node) *tree.Node {
	creation := &tree.Node{Kind: tree.KindOther, Name: node.Type(), Position: position(node)}
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		creation.Type = typeNode.Content(b.source)
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "argument_list":
			b.visitChildren(creation, child)
		case "class_body":
			creation.Add(b.parseAnonymousClass(child))
		default:
			b.visit(creation, child)
		}
	}
	return creation
}

// parseInstanceOf declares a pattern variable in the scope of the enclosing statement
func (b *builder) parseInstanceOf(node *sitter.Node) *tree.Node {
	expression := &tree.Node{Kind: tree.KindOther, Name: node.Type(), Position: position(node)}
	b.visit(expression, node.ChildByFieldName("left"))
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		nameNode = patternName(node.ChildByFieldName("pattern"))
	}
	if nameNode != nil {
		name := nameNode.Content(b.source)
		variable := &tree.Node{Kind: tree.KindVariable, Name: name, Role: tree.RoleLocal, Position: position(nameNode), Symbol: b.scope.declare(name, tree.RoleLocal)}
		if typeNode := node.ChildByFieldName("right"); typeNode != nil {
			variable.Type = typeNode.Content(b.source)
			variable.Symbol.Type = variable.Type
		}
		expression.Add(variable)
	}
	return expression
}

// patternName returns the identifier bound by a type pattern
func patternName(pattern *sitter.Node) *sitter.Node {
	if pattern == nil {
		return nil
	}
	switch pattern.Type() {
	case "identifier":
		return pattern
	case "type_pattern":
		for i := int(pattern.NamedChildCount()) - 1; i >= 0; i-- {
			if child := pattern.NamedChild(i); child.Type() == "identifier" {
				return child
			}
		}
	case "pattern":
		if pattern.NamedChildCount() > 0 {
			return patternName(pattern.NamedChild(0))
		}
	}
	return nil
}
