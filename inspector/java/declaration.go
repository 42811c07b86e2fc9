package java

import (
	"strconv"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/aemrules/tree"
)

// builder converts a tree-sitter Java syntax tree into tree.Node
type builder struct {
	source    []byte
	imports   *importTable
	scope     *scope
	class     string // qualified name of the enclosing class
	method    string
	anonymous int
}

func newBuilder(source []byte) *builder {
	return &builder{source: source, imports: newImportTable()}
}

// parseCompilationUnit converts the program node
func (b *builder) parseCompilationUnit(root *sitter.Node, path string) *tree.Node {
	unit := &tree.Node{Kind: tree.KindCompilationUnit, Name: path, Position: position(root)}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_declaration":
			b.imports.pkg = parsePackageDeclaration(child, b.source)
			unit.QualifiedName = b.imports.pkg
		case "import_declaration":
			b.imports.addImport(child, b.source)
		}
	}
	b.scope = newScope(nil, scopeBlock, b.imports.pkg)
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if isTypeDeclaration(child.Type()) {
			unit.Add(b.parseTypeDeclaration(child))
		}
	}
	return unit
}

func isTypeDeclaration(nodeType string) bool {
	switch nodeType {
	case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration", "annotation_type_declaration":
		return true
	}
	return false
}

// parseTypeDeclaration converts class, interface, enum, record and annotation type declarations
func (b *builder) parseTypeDeclaration(node *sitter.Node) *tree.Node {
	name := ""
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		name = nameNode.Content(b.source)
	}
	qualifiedName := b.imports.qualify(name)
	if b.class != "" {
		qualifiedName = b.class + "." + name
	}
	class := &tree.Node{Kind: tree.KindClass, Name: name, QualifiedName: qualifiedName, Position: position(node)}
	b.parseModifiers(class, node)

	outerClass, outerMethod, outerScope := b.class, b.method, b.scope
	b.class, b.method = qualifiedName, ""
	b.scope = newScope(outerScope, scopeClass, qualifiedName)
	defer func() {
		b.class, b.method, b.scope = outerClass, outerMethod, outerScope
	}()

	if node.Type() == "record_declaration" {
		b.parseRecordComponents(class, node)
	}
	if body := node.ChildByFieldName("body"); body != nil {
		b.parseClassBody(class, body)
	}
	return class
}

// parseAnonymousClass converts the class body of an object creation expression
func (b *builder) parseAnonymousClass(body *sitter.Node) *tree.Node {
	b.anonymous++
	qualifiedName := b.class + "$" + strconv.Itoa(b.anonymous)
	class := &tree.Node{Kind: tree.KindClass, QualifiedName: qualifiedName, Position: position(body)}

	outerClass, outerMethod, outerScope := b.class, b.method, b.scope
	b.class, b.method = qualifiedName, ""
	b.scope = newScope(outerScope, scopeClass, qualifiedName)
	defer func() {
		b.class, b.method, b.scope = outerClass, outerMethod, outerScope
	}()
	b.parseClassBody(class, body)
	return class
}

// parseClassBody declares all fields up front, then converts members in source order
func (b *builder) parseClassBody(class *tree.Node, body *sitter.Node) {
	members := classMembers(body)
	for _, member := range members {
		switch member.Type() {
		case "field_declaration", "constant_declaration":
			fieldType := ""
			if typeNode := member.ChildByFieldName("type"); typeNode != nil {
				fieldType = typeNode.Content(b.source)
			}
			for _, declarator := range declarators(member) {
				if nameNode := declarator.ChildByFieldName("name"); nameNode != nil {
					b.scope.declare(nameNode.Content(b.source), tree.RoleField).Type = fieldType
				}
			}
		case "enum_constant":
			if nameNode := member.ChildByFieldName("name"); nameNode != nil {
				b.scope.declare(nameNode.Content(b.source), tree.RoleField)
			}
		}
	}
	for _, member := range members {
		b.parseMember(class, member)
	}
}

// classMembers flattens class, interface, enum and annotation bodies
func classMembers(body *sitter.Node) []*sitter.Node {
	var result []*sitter.Node
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() == "enum_body_declarations" {
			result = append(result, classMembers(child)...)
			continue
		}
		result = append(result, child)
	}
	return result
}

func declarators(node *sitter.Node) []*sitter.Node {
	var result []*sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == "variable_declarator" {
			result = append(result, child)
		}
	}
	return result
}

func (b *builder) parseMember(class *tree.Node, member *sitter.Node) {
	switch member.Type() {
	case "field_declaration", "constant_declaration":
		for _, declarator := range declarators(member) {
			class.Add(b.parseVariable(member, declarator, tree.RoleField))
		}
	case "enum_constant":
		class.Add(b.parseEnumConstant(member))
	case "method_declaration", "constructor_declaration", "compact_constructor_declaration", "annotation_type_element_declaration":
		class.Add(b.parseMethod(member))
	case "static_initializer":
		initializer := &tree.Node{Kind: tree.KindOther, Name: member.Type(), Position: position(member)}
		b.visitChildren(initializer, member)
		class.Add(initializer)
	case "block":
		class.Add(b.parseBlock(member))
	default:
		if isTypeDeclaration(member.Type()) {
			class.Add(b.parseTypeDeclaration(member))
		}
	}
}

// parseVariable converts one declarator of a field, local or constant declaration
func (b *builder) parseVariable(declaration, declarator *sitter.Node, role tree.Role) *tree.Node {
	nameNode := declarator.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(b.source)
	variable := &tree.Node{Kind: tree.KindVariable, Name: name, Role: role, Position: position(declarator)}
	if typeNode := declaration.ChildByFieldName("type"); typeNode != nil {
		variable.Type = typeNode.Content(b.source)
	}
	b.parseModifiers(variable, declaration)
	if role == tree.RoleField {
		variable.Symbol = b.scope.field(name)
	}
	if variable.Symbol == nil {
		variable.Symbol = b.scope.declare(name, role)
	}
	variable.Symbol.Type = variable.Type
	if value := declarator.ChildByFieldName("value"); value != nil {
		b.visit(variable, value)
	}
	return variable
}

func (b *builder) parseEnumConstant(node *sitter.Node) *tree.Node {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(b.source)
	constant := &tree.Node{Kind: tree.KindVariable, Name: name, Role: tree.RoleField, Type: b.class, Position: position(node), Symbol: b.scope.field(name)}
	b.parseModifiers(constant, node)
	if arguments := node.ChildByFieldName("arguments"); arguments != nil {
		b.visit(constant, arguments)
	}
	if body := node.ChildByFieldName("body"); body != nil {
		constant.Add(b.parseAnonymousClass(body))
	}
	return constant
}

func (b *builder) parseRecordComponents(class *tree.Node, node *sitter.Node) {
	parameters := node.ChildByFieldName("parameters")
	if parameters == nil {
		return
	}
	for i := 0; i < int(parameters.NamedChildCount()); i++ {
		component := parameters.NamedChild(i)
		nameNode := component.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		field := &tree.Node{Kind: tree.KindVariable, Name: nameNode.Content(b.source), Role: tree.RoleField, Position: position(component)}
		if typeNode := component.ChildByFieldName("type"); typeNode != nil {
			field.Type = typeNode.Content(b.source)
		}
		b.parseModifiers(field, component)
		field.Symbol = b.scope.declare(field.Name, tree.RoleField)
		field.Symbol.Type = field.Type
		class.Add(field)
	}
}

// parseMethod converts methods and constructors; parameters are declared in a method scope
func (b *builder) parseMethod(node *sitter.Node) *tree.Node {
	method := &tree.Node{Kind: tree.KindMethod, Position: position(node)}
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		method.Name = nameNode.Content(b.source)
	}
	switch node.Type() {
	case "constructor_declaration", "compact_constructor_declaration":
		method.IsConstructor = true
	}
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		method.Type = typeNode.Content(b.source)
	}
	b.parseModifiers(method, node)

	outerMethod, outerScope := b.method, b.scope
	b.method = b.class + "." + method.Name
	b.scope = newScope(outerScope, scopeMethod, b.method)
	defer func() {
		b.method, b.scope = outerMethod, outerScope
	}()

	if parameters := node.ChildByFieldName("parameters"); parameters != nil {
		for i := 0; i < int(parameters.NamedChildCount()); i++ {
			method.Add(b.parseParameter(parameters.NamedChild(i)))
		}
	}
	if body := node.ChildByFieldName("body"); body != nil {
		method.Add(b.parseBlock(body))
	}
	return method
}

// parseParameter converts formal and spread parameters
func (b *builder) parseParameter(node *sitter.Node) *tree.Node {
	var nameNode, typeNode *sitter.Node
	switch node.Type() {
	case "formal_parameter":
		nameNode, typeNode = node.ChildByFieldName("name"), node.ChildByFieldName("type")
	case "spread_parameter":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			switch child.Type() {
			case "variable_declarator":
				nameNode = child.ChildByFieldName("name")
			case "modifiers":
			default:
				if typeNode == nil {
					typeNode = child
				}
			}
		}
	default:
		return nil
	}
	if nameNode == nil {
		return nil
	}
	parameter := &tree.Node{Kind: tree.KindVariable, Name: nameNode.Content(b.source), Role: tree.RoleParameter, Position: position(node)}
	if typeNode != nil {
		parameter.Type = typeNode.Content(b.source)
	}
	b.parseModifiers(parameter, node)
	parameter.Symbol = b.scope.declare(parameter.Name, tree.RoleParameter)
	parameter.Symbol.Type = parameter.Type
	return parameter
}

// parseModifiers copies keyword modifiers and converts annotations of a declaration
func (b *builder) parseModifiers(declaration *tree.Node, node *sitter.Node) {
	var modifiers *sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == "modifiers" {
			modifiers = child
			break
		}
	}
	if modifiers == nil {
		return
	}
	for i := 0; i < int(modifiers.ChildCount()); i++ {
		child := modifiers.Child(i)
		switch child.Type() {
		case "marker_annotation", "annotation":
			declaration.Add(b.parseAnnotation(child))
		default:
			if !child.IsNamed() {
				declaration.Modifiers = append(declaration.Modifiers, child.Type())
			}
		}
	}
}

// parseAnnotation resolves the annotation type to its qualified name
func (b *builder) parseAnnotation(node *sitter.Node) *tree.Node {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(b.source)
	return &tree.Node{
		Kind:          tree.KindAnnotation,
		Name:          name,
		QualifiedName: b.imports.resolve(name),
		Symbol:        &tree.Symbol{Name: name, Kind: tree.SymbolType},
		Position:      position(node),
	}
}

func position(node *sitter.Node) tree.Position {
	start := node.StartPoint()
	return tree.Position{
		Line:   int(start.Row) + 1,
		Column: int(start.Column) + 1,
		Offset: int(node.StartByte()),
		End:    int(node.EndByte()),
	}
}
