// Package resolver reports resource resolvers opened in a method and not closed in a finally block.
package resolver

import (
	"fmt"
	"strings"

	"github.com/viant/aemrules/check"
	"github.com/viant/aemrules/rules"
	"github.com/viant/aemrules/tree"
)

const (
	// Key is the rule key
	Key = "AEM-1"
	// Message is reported for every unclosed resolver
	Message = "ResourceResolver should be closed in finally block."

	FactoryMethodsParam   = "factoryMethods"
	DefaultFactoryMethods = "getResourceResolver,getAdministrativeResourceResolver,getServiceResourceResolver"
	FactoryTypeParam      = "factoryType"
	DefaultFactoryType    = "ResourceResolverFactory"
)

// Check detects unclosed resource resolvers
type Check struct {
	FactoryMethods map[string]bool
	FactoryType    string // simple type name of the receiver opening resolvers
}

// New creates a check with default factory methods
func New() *Check {
	return &Check{FactoryMethods: splitNames(DefaultFactoryMethods), FactoryType: DefaultFactoryType}
}

// Factory creates a check for the registry
func Factory() check.Check {
	return New()
}

func (c *Check) Key() string {
	return Key
}

func (c *Check) Declaration() *rules.Declaration {
	return &rules.Declaration{
		Key:      Key,
		Name:     "ResourceResolver should be closed in finally block",
		Priority: rules.Critical,
		Tags:     []string{"aem", "bug"},
	}
}

func (c *Check) Parameters() []rules.ParamDeclaration {
	return []rules.ParamDeclaration{
		{
			Key:          FactoryMethodsParam,
			Field:        "FactoryMethods",
			Description:  "Comma separated names of methods opening a ResourceResolver",
			DefaultValue: DefaultFactoryMethods,
			Type:         "TEXT",
		},
		{
			Key:          FactoryTypeParam,
			Field:        "FactoryType",
			Description:  "Simple type name of the service opening a ResourceResolver",
			DefaultValue: DefaultFactoryType,
			Type:         "STRING",
		},
	}
}

// Configure replaces factory method names and the factory type
func (c *Check) Configure(params map[string]string) error {
	for key, value := range params {
		switch key {
		case FactoryMethodsParam:
			names := splitNames(value)
			if len(names) == 0 {
				return fmt.Errorf("rule %v: %v was empty", Key, FactoryMethodsParam)
			}
			c.FactoryMethods = names
		case FactoryTypeParam:
			if value = strings.TrimSpace(value); value != "" {
				c.FactoryType = simpleTypeName(value)
			}
		default:
			return fmt.Errorf("unknown parameter %q of rule %v", key, Key)
		}
	}
	return nil
}

// Scan checks every method body, methods of nested classes are checked on their own
func (c *Check) Scan(ctx *check.Context, file *tree.Node) {
	walker := tree.NewWalker().On(tree.KindMethod, func(method *tree.Node, descend func()) {
		if body := method.Body(); body != nil {
			c.scanMethod(ctx, body)
		}
		descend()
	})
	walker.Walk(file)
}

func (c *Check) scanMethod(ctx *check.Context, body *tree.Node) {
	var opened []*tree.Node
	closed := map[string]bool{}
	returned := map[string]bool{}
	inspectMethod(body, func(node *tree.Node) {
		switch node.Kind {
		case tree.KindVariable:
			if node.Role == tree.RoleLocal && c.isFactoryCall(value(node.Children)) {
				opened = append(opened, node)
			}
		case tree.KindAssignment:
			if len(node.Children) == 2 && node.Children[0].Kind == tree.KindIdentifier && c.isFactoryCall(value(node.Children[1:])) {
				opened = append(opened, node)
			}
		case tree.KindReturn:
			tree.Inspect(node, func(candidate *tree.Node) bool {
				if candidate.Kind == tree.KindIdentifier {
					returned[candidate.Name] = true
				}
				return candidate.Kind != tree.KindClass
			})
		case tree.KindFinally:
			inspectMethod(node, func(candidate *tree.Node) {
				if name := closedName(candidate); name != "" {
					closed[name] = true
				}
			})
		}
	})
	for _, node := range opened {
		name := node.Name
		if node.Kind == tree.KindAssignment {
			name = node.Children[0].Name
		}
		if closed[name] || returned[name] {
			continue
		}
		ctx.Report(c, node, Message)
	}
}

// inspectMethod visits nodes of a method body, skipping nested class declarations
func inspectMethod(body *tree.Node, fn func(node *tree.Node)) {
	tree.Inspect(body, func(node *tree.Node) bool {
		if node.Kind == tree.KindClass {
			return false
		}
		fn(node)
		return true
	})
}

// value returns the initializer among declaration children unwrapping casts and parentheses
func value(children []*tree.Node) *tree.Node {
	var result *tree.Node
	for _, child := range children {
		if child.Kind != tree.KindAnnotation {
			result = child
			break
		}
	}
	for result != nil && result.Kind == tree.KindOther && len(result.Children) > 0 {
		result = result.Children[len(result.Children)-1]
	}
	return result
}

// isFactoryCall matches factory method calls. A receiver of known type must be the factory type;
// otherwise the call needs arguments, since getters borrowing a resolver take none.
func (c *Check) isFactoryCall(node *tree.Node) bool {
	if node == nil || node.Kind != tree.KindMethodInvocation || !c.FactoryMethods[node.Name] {
		return false
	}
	arguments := len(node.Children)
	if node.Receiver && arguments > 0 {
		arguments--
		receiver := node.Children[0]
		switch receiver.Kind {
		case tree.KindIdentifier, tree.KindMemberAccess:
			if receiver.Symbol.IsVariable() && receiver.Symbol.Type != "" {
				return simpleTypeName(receiver.Symbol.Type) == c.FactoryType
			}
		}
	}
	return arguments > 0
}

// simpleTypeName strips package qualifiers and type arguments
func simpleTypeName(typeName string) string {
	if index := strings.Index(typeName, "<"); index != -1 {
		typeName = typeName[:index]
	}
	typeName = strings.TrimSpace(typeName)
	if index := strings.LastIndex(typeName, "."); index != -1 {
		typeName = typeName[index+1:]
	}
	return typeName
}

// closedName returns the receiver name of a <name>.close() call
func closedName(node *tree.Node) string {
	if node.Kind != tree.KindMethodInvocation || node.Name != "close" || !node.Receiver || len(node.Children) == 0 {
		return ""
	}
	if receiver := node.Children[0]; receiver.Kind == tree.KindIdentifier {
		return receiver.Name
	}
	return ""
}

func splitNames(value string) map[string]bool {
	result := map[string]bool{}
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			result[name] = true
		}
	}
	return result
}
