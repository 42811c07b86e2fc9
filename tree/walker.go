package tree

// Handler processes a node; calling descend visits the node's children.
// Not calling descend prunes the subtree.
type Handler func(node *Node, descend func())

// Walker performs depth-first, source-ordered traversal dispatching on node kind.
// Kinds without a handler have their children visited.
type Walker struct {
	handlers map[Kind]Handler
}

// NewWalker creates a walker without handlers
func NewWalker() *Walker {
	return &Walker{handlers: make(map[Kind]Handler)}
}

// On registers a handler for kind, replacing a previous one
func (w *Walker) On(kind Kind, handler Handler) *Walker {
	w.handlers[kind] = handler
	return w
}

// Walk traverses node and its descendants
func (w *Walker) Walk(node *Node) {
	if node == nil {
		return
	}
	handler, ok := w.handlers[node.Kind]
	if !ok {
		w.WalkChildren(node)
		return
	}
	handler(node, func() { w.WalkChildren(node) })
}

// WalkChildren traverses children of node without dispatching node itself
func (w *Walker) WalkChildren(node *Node) {
	for _, child := range node.Children {
		w.Walk(child)
	}
}

// Inspect calls fn for node and its descendants in depth-first order until fn returns false for a subtree
func Inspect(node *Node, fn func(*Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range node.Children {
		Inspect(child, fn)
	}
}
