package ast

// FindParentOfType walks up from start through ancestors (a node -> parent
// map typically built once per analysis via Walk) and returns the nearest
// enclosing ancestor of concrete type K, e.g. which FunctionDecl a Call or
// RangeExpr sits inside of. The semantic analyser does not call it.
func FindParentOfType[K Node](start Node, ancestors map[Node]Node) (K, bool) {
	var zero K
	cur := ancestors[start]
	for cur != nil {
		if k, ok := cur.(K); ok {
			return k, true
		}
		cur = ancestors[cur]
	}
	return zero, false
}

// BuildAncestors walks the whole tree rooted at root and returns a map from
// each node to its immediate parent, the structure FindParentOfType
// expects.
func BuildAncestors(root Node) map[Node]Node {
	ancestors := make(map[Node]Node)
	var stack []Node
	Inspect(root, func(n Node) bool {
		if n == nil {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			return false
		}
		if len(stack) > 0 {
			ancestors[n] = stack[len(stack)-1]
		}
		stack = append(stack, n)
		return true
	})
	return ancestors
}
