package tree

// Kind identifies the syntactic category of a Node
type Kind int

const (
	KindOther Kind = iota
	KindCompilationUnit
	KindClass
	KindMethod
	KindVariable
	KindAnnotation
	KindIdentifier
	KindMemberAccess
	KindMethodInvocation
	KindAssignment
	KindBlock
	KindTry
	KindFinally
	KindReturn
)

var kindNames = map[Kind]string{
	KindOther:            "other",
	KindCompilationUnit:  "compilationUnit",
	KindClass:            "class",
	KindMethod:           "method",
	KindVariable:         "variable",
	KindAnnotation:       "annotation",
	KindIdentifier:       "identifier",
	KindMemberAccess:     "memberAccess",
	KindMethodInvocation: "methodInvocation",
	KindAssignment:       "assignment",
	KindBlock:            "block",
	KindTry:              "try",
	KindFinally:          "finally",
	KindReturn:           "return",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Role describes where a variable is declared
type Role int

const (
	RoleNone Role = iota
	RoleField
	RoleParameter
	RoleLocal
	RoleResource // try-with-resources variable
)

// Position locates a node in its source file. Line and Column are 1-based, offsets are byte offsets.
type Position struct {
	Line   int `yaml:"line" json:"line"`
	Column int `yaml:"column" json:"column"`
	Offset int `yaml:"offset" json:"offset"`
	End    int `yaml:"end" json:"end"`
}

// Node is a syntax tree node produced by a front end. Checks only read it.
//
// Kind specific fields:
//   - Class: Name (simple, empty for anonymous classes), QualifiedName, Modifiers
//   - Method: Name, IsConstructor, Modifiers, parameters are Variable children with RoleParameter
//   - Variable: Name, Type, Role, Modifiers, Symbol
//   - Annotation: Name (as written), QualifiedName (resolved, empty when unresolved)
//   - Identifier: Name, Symbol
//   - MemberAccess: Name (selected member), first child is the receiver
//   - MethodInvocation: Name, first child is the receiver when Receiver is set
//   - Assignment: children are target then value
type Node struct {
	Kind          Kind
	Name          string
	QualifiedName string
	Type          string
	Role          Role
	IsConstructor bool
	Receiver      bool
	Modifiers     []string
	Symbol        *Symbol
	Position      Position
	Children      []*Node
}

// Add appends children skipping nils
func (n *Node) Add(children ...*Node) {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
}

// Annotations returns annotations attached to a declaration
func (n *Node) Annotations() []*Node {
	return n.childrenOf(KindAnnotation)
}

// Parameters returns declared parameters of a method
func (n *Node) Parameters() []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == KindVariable && child.Role == RoleParameter {
			result = append(result, child)
		}
	}
	return result
}

// Body returns the body block of a method, nil for abstract methods
func (n *Node) Body() *Node {
	for _, child := range n.Children {
		if child.Kind == KindBlock {
			return child
		}
	}
	return nil
}

// Members returns direct member declarations of a class
func (n *Node) Members() []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind != KindAnnotation {
			result = append(result, child)
		}
	}
	return result
}

// HasModifier returns true if a keyword modifier (public, static...) is present
func (n *Node) HasModifier(modifier string) bool {
	for _, candidate := range n.Modifiers {
		if candidate == modifier {
			return true
		}
	}
	return false
}

func (n *Node) childrenOf(kind Kind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}
