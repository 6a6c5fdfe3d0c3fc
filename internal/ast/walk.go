package ast

// Walk visits node and then each of its children, depth-first. fn
// returns false to stop descending into that node's children; Walk
// itself never stops early for siblings.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *Unary:
		Walk(n.Operand, fn)
	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Cast:
		Walk(n.Operand, fn)
	case *Conditional:
		Walk(n.Condition, fn)
		Walk(n.Then, fn)
		Walk(n.Else, fn)
	case *Call:
		Walk(n.Callee, fn)
		for _, a := range n.Args {
			Walk(a, fn)
		}
	case *ArrayAccess:
		Walk(n.Base, fn)
		Walk(n.Index, fn)
	case *Select:
		Walk(n.Base, fn)
	case *TypeQuery:
		Walk(n.Operand, fn)
	case *CompoundLiteral:
		Walk(n.Init, fn)
	case *BuiltinConstantP:
		Walk(n.Operand, fn)
	case *VaBuiltin:
		Walk(n.List, fn)
		Walk(n.Second, fn)
	case *StatementExpr:
		Walk(n.Body, fn)
	case *Block:
		for _, s := range n.Body {
			Walk(s, fn)
		}
	case *ExprStmt:
		Walk(n.X, fn)
	case *If:
		Walk(n.Condition, fn)
		Walk(n.Then, fn)
		Walk(n.Else, fn)
	case *Switch:
		Walk(n.Tag, fn)
		Walk(n.Body, fn)
	case *CaseLabel:
		Walk(n.Value, fn)
		Walk(n.Body, fn)
	case *DefaultLabel:
		Walk(n.Body, fn)
	case *While:
		Walk(n.Condition, fn)
		Walk(n.Body, fn)
	case *DoWhile:
		Walk(n.Body, fn)
		Walk(n.Condition, fn)
	case *For:
		Walk(n.Init, fn)
		Walk(n.Condition, fn)
		Walk(n.Step, fn)
		Walk(n.Body, fn)
	case *Goto:
		Walk(n.Target, fn)
	case *Return:
		Walk(n.Value, fn)
	case *Labeled:
		Walk(n.Body, fn)
	case *MSTry:
		Walk(n.Body, fn)
		Walk(n.Filter, fn)
		Walk(n.Handler, fn)
	case *InitValue:
		Walk(n.Value, fn)
	case *InitList:
		for _, e := range n.Elements {
			Walk(e, fn)
		}
	case *DesignatedInit:
		for _, d := range n.Path {
			Walk(d.Index, fn)
		}
		Walk(n.Value, fn)
	}
}
