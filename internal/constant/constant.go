// Package constant implements the three mutually recursive predicates
// that decide whether an expression may appear where C requires a
// constant: a plain compile-time constant, a link-time address
// constant, and a constant initializer. Each is pure over the typed
// AST — none has side effects or needs a symbol table to evaluate.
package constant

import (
	"github.com/cparsecore/cparsecore/internal/ast"
	"github.com/cparsecore/cparsecore/internal/entity"
	"github.com/cparsecore/cparsecore/internal/types"
)

// Classifier holds the one piece of machine state the predicates
// need: a pointer cast's destination width has to be compared against
// the target's pointer size to decide whether it preserves an
// address.
type Classifier struct {
	tb *types.Table
}

// New returns a Classifier backed by tb.
func New(tb *types.Table) *Classifier {
	return &Classifier{tb: tb}
}

// IsConstantExpression reports whether e may appear wherever C
// requires a compile-time constant expression.
func (c *Classifier) IsConstantExpression(e ast.Expr) bool {
	switch n := e.(type) {
	case nil:
		return false
	case *ast.Literal, *ast.StringLiteral:
		return true
	case *ast.TypeQuery:
		// sizeof of a VLA is not constant; every other type query
		// (sizeof a non-VLA type, _Alignof, __builtin_classify_type)
		// is. sizeof of an expression operand folds through the
		// operand's static type, never evaluating it, so it's always
		// constant regardless of the operand's own constancy.
		if n.Kind == ast.QuerySizeof && n.Type != nil {
			t := types.SkipTyperef(n.Type)
			return t.Kind() != types.KindArray || t.SizeConstant() || !t.IsVLA()
		}
		return true
	case *ast.Offsetof, *ast.BuiltinTypesCompatibleP, *ast.BuiltinConstantP:
		return true
	case *ast.Invalid:
		return true
	case *ast.Reference:
		return n.Entity != nil && n.Entity.Kind() == entity.KindEnumValue
	case *ast.Unary:
		switch n.Op {
		case ast.UnaryNegate, ast.UnaryPlus, ast.UnaryComplement, ast.UnaryNot:
			return c.IsConstantExpression(n.Operand)
		case ast.UnaryAddress:
			return c.isObjectWithConstantAddress(n.Operand)
		default:
			return false
		}
	case *ast.Cast:
		if !isScalar(n.ExprType(), c.tb) {
			return false
		}
		return c.IsConstantExpression(n.Operand)
	case *ast.Binary:
		if n.Op == ast.LogicalAnd || n.Op == ast.LogicalOr {
			if !c.IsConstantExpression(n.Left) {
				return false
			}
			if foldsToShortCircuit(n.Left, n.Op) {
				return true
			}
			return c.IsConstantExpression(n.Right)
		}
		if n.Op.IsAssignment() || n.Op == ast.Comma {
			return false
		}
		return c.IsConstantExpression(n.Left) && c.IsConstantExpression(n.Right)
	case *ast.Conditional:
		if !c.IsConstantExpression(n.Condition) {
			return false
		}
		branch, ok := selectedBranch(n)
		if !ok {
			return c.IsConstantExpression(n.Then) && c.IsConstantExpression(n.Else)
		}
		return c.IsConstantExpression(branch)
	case *ast.CompoundLiteral:
		return c.IsConstantInitializer(n.Init)
	case *ast.Call:
		return c.isAlwaysConstantCall(n)
	default:
		return false
	}
}

// isAlwaysConstantCall reports whether a call's callee is a reference
// to one of the handful of builtins C treats as constant regardless
// of their arguments (__builtin_huge_val/__builtin_inf/__builtin_nan).
func (c *Classifier) isAlwaysConstantCall(call *ast.Call) bool {
	ref, ok := call.Callee.(*ast.Reference)
	if !ok || ref.Entity == nil {
		return false
	}
	fn, ok := ref.Entity.(*entity.Function)
	if !ok {
		return false
	}
	switch fn.Builtin {
	case entity.BuiltinGNUHugeVal, entity.BuiltinGNUInf, entity.BuiltinGNUNan:
		return true
	default:
		return false
	}
}

// isObjectWithConstantAddress backs `&x`: true iff x names an object
// whose address the linker (not the compiler) resolves.
func (c *Classifier) isObjectWithConstantAddress(e ast.Expr) bool {
	return c.isObjectWithLinkerConstantAddress(e)
}

// isObjectWithLinkerConstantAddress implements
// is_object_with_linker_constant_address: references to a non-local,
// non-thread-local object or function, and the lvalue forms built
// from one (dereference, indexing by a constant, member access).
func (c *Classifier) isObjectWithLinkerConstantAddress(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.Reference:
		return entityHasLinkerConstantAddress(n.Entity)
	case *ast.Unary:
		if n.Op == ast.UnaryDereference {
			return c.IsAddressConstant(n.Operand)
		}
		return false
	case *ast.ArrayAccess:
		return c.IsConstantExpression(n.Index) && c.IsAddressConstant(n.Base)
	case *ast.Select:
		if n.Arrow {
			return c.IsAddressConstant(n.Base)
		}
		return c.isObjectWithLinkerConstantAddress(n.Base)
	default:
		return false
	}
}

func entityHasLinkerConstantAddress(e entity.Entity) bool {
	switch v := e.(type) {
	case *entity.Variable:
		if v.ThreadLocal {
			return false
		}
		return storageIsLinkResolved(v.StorageClass)
	case *entity.Function:
		return true
	default:
		return false
	}
}

func storageIsLinkResolved(sc entity.StorageClass) bool {
	switch sc {
	case entity.StorageNone, entity.StorageExtern, entity.StorageStatic:
		return true
	default:
		return false
	}
}

// IsAddressConstant reports whether e is a link-time address
// constant: the operand of a pointer-context constant expression.
func (c *Classifier) IsAddressConstant(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.StringLiteral:
		return true
	case *ast.LabelAddress:
		return true
	case *ast.Reference:
		if n.Entity == nil {
			return false
		}
		switch n.Entity.Kind() {
		case entity.KindFunction:
			return true
		case entity.KindVariable:
			return entityHasLinkerConstantAddress(n.Entity)
		default:
			return false
		}
	case *ast.Unary:
		switch n.Op {
		case ast.UnaryAddress:
			return c.isObjectWithLinkerConstantAddress(n.Operand)
		case ast.UnaryDereference:
			// Dereferencing a function pointer just names the
			// function again; C treats `*f` and `f` as the same
			// designator.
			t := types.SkipTyperef(n.Operand.ExprType())
			if t != nil && t.Kind() == types.KindPointer && isFunctionType(t.PointsTo()) {
				return c.IsAddressConstant(n.Operand)
			}
			return false
		default:
			return false
		}
	case *ast.Cast:
		target := types.SkipTyperef(n.ExprType())
		if target == nil {
			return false
		}
		if target.Kind() == types.KindPointer {
			return c.IsConstantExpression(n.Operand) || c.IsAddressConstant(n.Operand)
		}
		if types.IsTypeInteger(target, c.tb) && c.tb.GetTypeSize(target, nil) >= c.pointerSize() {
			return c.IsConstantExpression(n.Operand) || c.IsAddressConstant(n.Operand)
		}
		return false
	case *ast.Binary:
		switch n.Op {
		case ast.Add:
			if c.IsAddressConstant(n.Left) && c.IsConstantExpression(n.Right) {
				return true
			}
			return c.IsConstantExpression(n.Left) && c.IsAddressConstant(n.Right)
		case ast.Sub:
			return c.IsAddressConstant(n.Left) && c.IsConstantExpression(n.Right)
		default:
			return false
		}
	case *ast.Conditional:
		if !c.IsConstantExpression(n.Condition) {
			return false
		}
		branch, ok := selectedBranch(n)
		if !ok {
			return c.IsAddressConstant(n.Then) && c.IsAddressConstant(n.Else)
		}
		return c.IsAddressConstant(branch)
	default:
		return false
	}
}

func (c *Classifier) pointerSize() int {
	if c.tb.Machine().MachineSize >= 64 {
		return 8
	}
	return 4
}

func isFunctionType(t *types.Type) bool {
	if t == nil {
		return false
	}
	return types.SkipTyperef(t).Kind() == types.KindFunction
}

func isScalar(t *types.Type, tb *types.Table) bool {
	if t == nil {
		return false
	}
	return types.IsTypeScalar(t, tb)
}

// foldsToShortCircuit reports whether a literal zero/nonzero left
// operand already determines a &&/|| result without evaluating the
// right side (left==0 short-circuits &&, left!=0 short-circuits ||).
// A non-literal operand can't be folded here, so the caller still
// requires the right side to be constant.
func foldsToShortCircuit(left ast.Expr, op ast.BinaryOp) bool {
	lit, ok := left.(*ast.Literal)
	if !ok || lit.Kind != ast.LiteralInteger && lit.Kind != ast.LiteralBool {
		return false
	}
	isZero := lit.IntValue == 0 && !lit.BoolValue
	if op == ast.LogicalAnd {
		return isZero
	}
	return !isZero
}

// selectedBranch folds a conditional's condition to pick Then or
// Else when it is itself a literal, so the unreached branch is never
// required to be constant. ok is false when the condition isn't a
// literal the classifier can fold on its own.
func selectedBranch(n *ast.Conditional) (ast.Expr, bool) {
	lit, ok := n.Condition.(*ast.Literal)
	if !ok {
		return nil, false
	}
	truthy := lit.BoolValue || lit.IntValue != 0
	if truthy {
		if n.Then != nil {
			return n.Then, true
		}
		return n.Condition, true
	}
	return n.Else, true
}

// IsConstantInitializer reports whether init may initialize an object
// with static storage duration.
func (c *Classifier) IsConstantInitializer(init ast.Initializer) bool {
	switch n := init.(type) {
	case nil:
		return false
	case *ast.InitValue:
		return c.IsConstantExpression(n.Value)
	case *ast.InitString:
		return true
	case *ast.DesignatedInit:
		return true
	case *ast.InitList:
		for _, elem := range n.Elements {
			if !c.IsConstantInitializer(elem) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
