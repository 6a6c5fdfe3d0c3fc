// Package printer renders the typed AST back to C source text: one
// recursive-descent routine per node kind, threading an operator
// precedence through expression printing so parentheses appear only
// where the grammar needs them or where the source wrote them.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cparsecore/cparsecore/internal/ast"
	"github.com/cparsecore/cparsecore/internal/types"
)

// precedence mirrors ast.c's PREC_* ladder, lowest first.
type precedence int

const (
	precExpression precedence = iota // comma operator
	precAssignment
	precConditional
	precLogicalOr
	precLogicalAnd
	precOr
	precXor
	precAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precUnary
	precPostfix
	precPrimary
)

// rightToLeft reports whether prec associates right-to-left
// (assignment, the conditional operator, and unary operators do;
// everything else is left-to-right).
func rightToLeft(p precedence) bool {
	return p == precAssignment || p == precConditional || p == precUnary
}

// Printer accumulates rendered C source in a strings.Builder, one
// method per node kind.
type Printer struct {
	out    strings.Builder
	indent int
}

// New returns an empty Printer.
func New() *Printer {
	return &Printer{}
}

// String returns everything printed so far.
func (p *Printer) String() string { return p.out.String() }

func (p *Printer) writeString(s string) { p.out.WriteString(s) }
func (p *Printer) writeByte(b byte)     { p.out.WriteByte(b) }

func (p *Printer) writeIndent() {
	p.writeString(strings.Repeat("\t", p.indent))
}

// PrintExpr renders e as a standalone top-level expression (the
// lowest precedence, so it is never spuriously parenthesized).
func PrintExpr(e ast.Expr) string {
	p := New()
	p.expr(e, precExpression)
	return p.String()
}

// PrintStmt renders s as a standalone statement.
func PrintStmt(s ast.Stmt) string {
	p := New()
	p.stmt(s)
	return p.String()
}

// PrintType renders t's declarator-free spelling (its base type name;
// pointer/array/function declarators are rendered left-to-right around
// an empty identifier slot, matching the C declarator grammar read
// inside-out).
func PrintType(t *types.Type) string {
	p := New()
	p.typeName(t, "")
	return p.String()
}

func (p *Printer) expr(e ast.Expr, minPrec precedence) {
	if e == nil {
		return
	}
	prec := exprPrecedence(e)
	needParens := prec < minPrec || e.WasParenthesized()
	if needParens {
		p.writeByte('(')
	}
	p.exprNode(e, prec)
	if needParens {
		p.writeByte(')')
	}
}

// exprPrecedence implements get_expression_precedence.
func exprPrecedence(e ast.Expr) precedence {
	switch n := e.(type) {
	case *ast.Literal, *ast.StringLiteral, *ast.Reference, *ast.TypeQuery,
		*ast.Offsetof, *ast.BuiltinConstantP, *ast.BuiltinTypesCompatibleP,
		*ast.VaBuiltin, *ast.StatementExpr, *ast.LabelAddress, *ast.Invalid:
		return precPrimary
	case *ast.Call, *ast.Select, *ast.ArrayAccess:
		return precPostfix
	case *ast.CompoundLiteral:
		return precUnary
	case *ast.Conditional:
		return precConditional
	case *ast.Cast:
		return precUnary
	case *ast.Unary:
		switch n.Op {
		case ast.UnaryPostfixIncrement, ast.UnaryPostfixDecrement:
			return precPostfix
		case ast.UnaryThrow:
			return precAssignment
		default:
			return precUnary
		}
	case *ast.Binary:
		return binaryPrecedence(n.Op)
	default:
		return precPrimary
	}
}

func binaryPrecedence(op ast.BinaryOp) precedence {
	switch op {
	case ast.Comma:
		return precExpression
	case ast.Assign:
		return precAssignment
	default:
		if op.IsAssignment() {
			return precAssignment
		}
	}
	switch op {
	case ast.Add, ast.Sub:
		return precAdditive
	case ast.Mul, ast.Div, ast.Mod:
		return precMultiplicative
	case ast.Equal, ast.NotEqual:
		return precEquality
	case ast.Less, ast.LessEqual, ast.Greater, ast.GreaterEqual:
		return precRelational
	case ast.BitwiseAnd:
		return precAnd
	case ast.BitwiseOr:
		return precOr
	case ast.BitwiseXor:
		return precXor
	case ast.LogicalAnd:
		return precLogicalAnd
	case ast.LogicalOr:
		return precLogicalOr
	case ast.ShiftLeft, ast.ShiftRight:
		return precShift
	case ast.IsGreater, ast.IsGreaterEqual, ast.IsLess, ast.IsLessEqual, ast.IsLessGreater, ast.IsUnordered:
		return precPrimary
	default:
		return precPrimary
	}
}

func binaryOperatorText(op ast.BinaryOp) string {
	switch op {
	case ast.Comma:
		return ", "
	case ast.Assign:
		return " = "
	case ast.Add:
		return " + "
	case ast.Sub:
		return " - "
	case ast.Mul:
		return " * "
	case ast.Div:
		return " / "
	case ast.Mod:
		return " % "
	case ast.BitwiseAnd:
		return " & "
	case ast.BitwiseOr:
		return " | "
	case ast.BitwiseXor:
		return " ^ "
	case ast.LogicalAnd:
		return " && "
	case ast.LogicalOr:
		return " || "
	case ast.Equal:
		return " == "
	case ast.NotEqual:
		return " != "
	case ast.Less:
		return " < "
	case ast.LessEqual:
		return " <= "
	case ast.Greater:
		return " > "
	case ast.GreaterEqual:
		return " >= "
	case ast.ShiftLeft:
		return " << "
	case ast.ShiftRight:
		return " >> "
	case ast.AddAssign:
		return " += "
	case ast.SubAssign:
		return " -= "
	case ast.MulAssign:
		return " *= "
	case ast.DivAssign:
		return " /= "
	case ast.ModAssign:
		return " %= "
	case ast.BitwiseAndAssign:
		return " &= "
	case ast.BitwiseOrAssign:
		return " |= "
	case ast.BitwiseXorAssign:
		return " ^= "
	case ast.ShiftLeftAssign:
		return " <<= "
	case ast.ShiftRightAssign:
		return " >>= "
	default:
		return " ?op? "
	}
}

func (p *Printer) exprNode(e ast.Expr, prec precedence) {
	switch n := e.(type) {
	case *ast.Literal:
		p.literal(n)
	case *ast.StringLiteral:
		p.stringLiteral(n)
	case *ast.Reference:
		p.writeString(n.Entity.Symbol().Text())
	case *ast.Unary:
		p.unary(n, prec)
	case *ast.Binary:
		p.binary(n, prec)
	case *ast.Cast:
		if n.Implicit {
			p.expr(n.Operand, prec)
			break
		}
		p.writeByte('(')
		p.typeName(n.TargetType, "")
		p.writeByte(')')
		p.expr(n.Operand, prec)
	case *ast.Conditional:
		r2l := rightToLeft(prec)
		p.expr(n.Condition, prec+boolToPrec(r2l))
		p.writeString(" ? ")
		if n.Then != nil {
			p.expr(n.Then, precExpression)
		}
		p.writeString(" : ")
		p.expr(n.Else, prec+boolToPrec(!r2l))
	case *ast.Call:
		p.expr(n.Callee, precPostfix)
		p.writeByte('(')
		for i, arg := range n.Args {
			if i > 0 {
				p.writeString(", ")
			}
			p.expr(arg, precAssignment)
		}
		p.writeByte(')')
	case *ast.ArrayAccess:
		p.expr(n.Base, precPostfix)
		p.writeByte('[')
		p.expr(n.Index, precExpression)
		p.writeByte(']')
	case *ast.Select:
		p.expr(n.Base, precPostfix)
		if n.Arrow {
			p.writeString("->")
		} else {
			p.writeByte('.')
		}
		p.writeString(n.Member.Text())
	case *ast.TypeQuery:
		p.typeQuery(n)
	case *ast.CompoundLiteral:
		p.writeByte('(')
		p.typeName(n.Type, "")
		p.writeString(")")
		p.initializer(n.Init)
	case *ast.Offsetof:
		p.writeString("__builtin_offsetof(")
		p.typeName(n.Type, "")
		for _, m := range n.MemberPath {
			p.writeByte(',')
			p.writeString(m.Text())
		}
		p.writeByte(')')
	case *ast.BuiltinConstantP:
		p.writeString("__builtin_constant_p(")
		p.expr(n.Operand, precAssignment)
		p.writeByte(')')
	case *ast.BuiltinTypesCompatibleP:
		p.writeString("__builtin_types_compatible_p(")
		p.typeName(n.Left, "")
		p.writeString(", ")
		p.typeName(n.Right, "")
		p.writeByte(')')
	case *ast.VaBuiltin:
		p.vaBuiltin(n)
	case *ast.StatementExpr:
		p.writeString("(")
		p.block(n.Body)
		p.writeString(")")
	case *ast.LabelAddress:
		p.writeString("&&")
		p.writeString(n.Label.Text())
	case *ast.Invalid:
		p.writeString("<invalid>")
	default:
		p.writeString("<unhandled expression>")
	}
}

func boolToPrec(b bool) precedence {
	if b {
		return 1
	}
	return 0
}

func (p *Printer) unary(n *ast.Unary, prec precedence) {
	switch n.Op {
	case ast.UnaryPostfixIncrement:
		p.expr(n.Operand, prec)
		p.writeString("++")
		return
	case ast.UnaryPostfixDecrement:
		p.expr(n.Operand, prec)
		p.writeString("--")
		return
	}

	switch n.Op {
	case ast.UnaryNegate:
		p.writeByte('-')
	case ast.UnaryPlus:
		p.writeByte('+')
	case ast.UnaryNot:
		p.writeByte('!')
	case ast.UnaryComplement:
		p.writeByte('~')
	case ast.UnaryPrefixIncrement:
		p.writeString("++")
	case ast.UnaryPrefixDecrement:
		p.writeString("--")
	case ast.UnaryDereference:
		p.writeByte('*')
	case ast.UnaryAddress:
		p.writeByte('&')
	case ast.UnaryDelete:
		p.writeString("delete ")
	case ast.UnaryDeleteArray:
		p.writeString("delete [] ")
	case ast.UnaryThrow:
		p.writeString("throw ")
	case ast.UnaryAssume:
		p.writeString("__assume(")
		p.expr(n.Operand, precAssignment)
		p.writeByte(')')
		return
	}
	p.expr(n.Operand, prec)
}

func (p *Printer) binary(n *ast.Binary, callerPrec precedence) {
	prec := binaryPrecedence(n.Op)
	r2l := boolToPrec(rightToLeft(prec))
	p.expr(n.Left, prec+r2l)
	p.writeString(binaryOperatorText(n.Op))
	p.expr(n.Right, prec+1-r2l)
}

func (p *Printer) typeQuery(n *ast.TypeQuery) {
	switch n.Kind {
	case ast.QuerySizeof:
		p.writeString("sizeof")
	case ast.QueryAlignof:
		p.writeString("_Alignof")
	case ast.QueryClassifyType:
		p.writeString("__builtin_classify_type")
	}
	if n.Type != nil {
		p.writeByte('(')
		p.typeName(n.Type, "")
		p.writeByte(')')
		return
	}
	p.writeByte(' ')
	p.expr(n.Operand, precUnary)
}

func (p *Printer) vaBuiltin(n *ast.VaBuiltin) {
	switch n.Kind {
	case ast.VaStart:
		p.writeString("__builtin_va_start(")
		p.expr(n.List, precAssignment)
		p.writeString(", ")
		p.expr(n.Second, precAssignment)
		p.writeByte(')')
	case ast.VaArg:
		p.writeString("__builtin_va_arg(")
		p.expr(n.List, precAssignment)
		p.writeString(", ")
		p.typeName(n.ArgType, "")
		p.writeByte(')')
	case ast.VaCopy:
		p.writeString("__builtin_va_copy(")
		p.expr(n.List, precAssignment)
		p.writeString(", ")
		p.expr(n.Second, precAssignment)
		p.writeByte(')')
	case ast.VaEnd:
		p.writeString("__builtin_va_end(")
		p.expr(n.List, precAssignment)
		p.writeByte(')')
	}
}

func (p *Printer) literal(n *ast.Literal) {
	switch n.Kind {
	case ast.LiteralMSNoop:
		p.writeString("__noop")
	case ast.LiteralChar, ast.LiteralWideChar:
		if n.Kind == ast.LiteralWideChar {
			p.writeByte('L')
		}
		p.writeString(quoteString(n.Text, '\''))
	case ast.LiteralBool:
		if n.BoolValue {
			p.writeString("1")
		} else {
			p.writeString("0")
		}
	default:
		p.writeString(n.Text)
	}
}

func (p *Printer) stringLiteral(n *ast.StringLiteral) {
	if n.Value.Wide {
		p.writeByte('L')
	}
	p.writeString(quoteString(string(n.Value.Bytes), '"'))
}

// quoteString implements print_quoted_string's escape table.
func quoteString(s string, border byte) string {
	var b strings.Builder
	b.WriteByte(border)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case border, '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\v':
			b.WriteString(`\v`)
		default:
			if c < 0x20 || c >= 0x7f {
				b.WriteString(`\`)
				b.WriteString(strconv.FormatInt(int64(c), 8))
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte(border)
	return b.String()
}

func (p *Printer) initializer(init ast.Initializer) {
	if init == nil {
		return
	}
	switch n := init.(type) {
	case *ast.InitValue:
		p.expr(n.Value, precAssignment)
	case *ast.InitList:
		p.writeByte('{')
		for i, elem := range n.Elements {
			if i > 0 {
				p.writeString(", ")
			}
			p.initializer(elem)
		}
		p.writeByte('}')
	case *ast.InitString:
		if n.Value.Wide {
			p.writeByte('L')
		}
		p.writeString(quoteString(string(n.Value.Bytes), '"'))
	case *ast.DesignatedInit:
		for _, d := range n.Path {
			if d.Member != nil {
				p.writeByte('.')
				p.writeString(d.Member.Text())
			} else {
				p.writeByte('[')
				p.expr(d.Index, precExpression)
				p.writeByte(']')
			}
		}
		p.writeString(" = ")
		p.initializer(n.Value)
	}
}

func (p *Printer) stmt(s ast.Stmt) {
	if s == nil {
		return
	}
	switch n := s.(type) {
	case *ast.Empty:
		p.writeIndent()
		p.writeString(";\n")
	case *ast.Block:
		p.block(n)
		p.writeByte('\n')
	case *ast.ExprStmt:
		p.writeIndent()
		p.expr(n.X, precExpression)
		p.writeString(";\n")
	case *ast.DeclStmt:
		p.writeIndent()
		for i, e := range n.Entities {
			if i > 0 {
				p.writeString(", ")
			}
			p.writeString(e.Symbol().Text())
		}
		p.writeString(";\n")
	case *ast.If:
		p.writeIndent()
		p.writeString("if (")
		p.expr(n.Condition, precExpression)
		p.writeString(") ")
		p.stmtInline(n.Then)
		if n.Else != nil {
			p.writeIndent()
			p.writeString("else ")
			p.stmtInline(n.Else)
		}
	case *ast.Switch:
		p.writeIndent()
		p.writeString("switch (")
		p.expr(n.Tag, precExpression)
		p.writeString(") ")
		p.stmtInline(n.Body)
	case *ast.CaseLabel:
		p.writeIndent()
		p.writeString("case ")
		p.expr(n.Value, precExpression)
		p.writeString(":\n")
		p.stmt(n.Body)
	case *ast.DefaultLabel:
		p.writeIndent()
		p.writeString("default:\n")
		p.stmt(n.Body)
	case *ast.While:
		p.writeIndent()
		p.writeString("while (")
		p.expr(n.Condition, precExpression)
		p.writeString(") ")
		p.stmtInline(n.Body)
	case *ast.DoWhile:
		p.writeIndent()
		p.writeString("do ")
		p.stmtInline(n.Body)
		p.writeIndent()
		p.writeString("while (")
		p.expr(n.Condition, precExpression)
		p.writeString(");\n")
	case *ast.For:
		p.writeIndent()
		p.writeString("for (")
		p.forClause(n.Init)
		p.writeString("; ")
		p.expr(n.Condition, precExpression)
		p.writeString("; ")
		p.expr(n.Step, precExpression)
		p.writeString(") ")
		p.stmtInline(n.Body)
	case *ast.Goto:
		p.writeIndent()
		p.writeString("goto ")
		if n.Label != nil {
			p.writeString(n.Label.Symbol().Text())
		} else {
			p.expr(n.Target, precExpression)
		}
		p.writeString(";\n")
	case *ast.Continue:
		p.writeIndent()
		p.writeString("continue;\n")
	case *ast.Break:
		p.writeIndent()
		p.writeString("break;\n")
	case *ast.Return:
		p.writeIndent()
		p.writeString("return")
		if n.Value != nil {
			p.writeByte(' ')
			p.expr(n.Value, precExpression)
		}
		p.writeString(";\n")
	case *ast.Labeled:
		p.writeString(n.Label.Symbol().Text())
		p.writeString(":\n")
		p.stmt(n.Body)
	case *ast.Asm:
		p.writeIndent()
		fmt.Fprintf(&p.out, "asm(%q);\n", n.Template)
	case *ast.MSTry:
		p.writeIndent()
		p.writeString("__try ")
		p.stmtInline(n.Body)
		if n.Filter != nil {
			p.writeIndent()
			p.writeString("__except (")
			p.expr(n.Filter, precExpression)
			p.writeString(") ")
			p.stmtInline(n.Handler)
		} else {
			p.writeIndent()
			p.writeString("__finally ")
			p.stmtInline(n.Handler)
		}
	case *ast.MSLeave:
		p.writeIndent()
		p.writeString("__leave;\n")
	case *ast.InvalidStmt:
		p.writeIndent()
		p.writeString("<invalid statement>;\n")
	default:
		p.writeIndent()
		p.writeString("<unhandled statement>;\n")
	}
}

// stmtInline prints a nested statement without re-indenting a block's
// own opening brace (since the caller already wrote the trailing
// space before it), but indents any other nested statement kind on
// its own line.
func (p *Printer) stmtInline(s ast.Stmt) {
	if b, ok := s.(*ast.Block); ok {
		p.block(b)
		p.writeByte('\n')
		return
	}
	p.writeByte('\n')
	p.indent++
	p.stmt(s)
	p.indent--
}

func (p *Printer) forClause(init ast.Stmt) {
	switch n := init.(type) {
	case nil:
	case *ast.ExprStmt:
		p.expr(n.X, precExpression)
	case *ast.DeclStmt:
		for i, e := range n.Entities {
			if i > 0 {
				p.writeString(", ")
			}
			p.writeString(e.Symbol().Text())
		}
	}
}

func (p *Printer) block(b *ast.Block) {
	p.writeString("{\n")
	p.indent++
	for _, s := range b.Body {
		p.stmt(s)
	}
	p.indent--
	p.writeIndent()
	p.writeByte('}')
}

// typeName renders t's declarator-free base-type spelling, with
// declarator-bearing kinds (pointer/array/function) wrapped around
// name, matching the grammar's inside-out declarator reading.
func (p *Printer) typeName(t *types.Type, name string) {
	if t == nil {
		p.writeString(name)
		return
	}
	p.qualifiers(t.Qualifiers())

	switch t.Kind() {
	case types.KindAtomic, types.KindComplex, types.KindImaginary:
		p.writeString(atomicTypeName(t.Kind(), t.AtomicKind()))
		if name != "" {
			p.writeByte(' ')
			p.writeString(name)
		}
	case types.KindPointer:
		p.typeName(t.PointsTo(), "*"+name)
	case types.KindReference:
		p.typeName(t.RefersTo(), "&"+name)
	case types.KindArray:
		inner := name
		if t.IsVLA() {
			inner = fmt.Sprintf("%s[]", name)
		} else if t.SizeConstant() {
			inner = fmt.Sprintf("%s[%d]", name, t.ArraySize())
		} else {
			inner = fmt.Sprintf("%s[]", name)
		}
		p.typeName(t.Element(), inner)
	case types.KindFunction:
		var params strings.Builder
		params.WriteByte('(')
		for i, param := range t.Parameters() {
			if i > 0 {
				params.WriteString(", ")
			}
			sub := New()
			sub.typeName(param.Type, "")
			params.WriteString(sub.String())
		}
		if t.Variadic() {
			if len(t.Parameters()) > 0 {
				params.WriteString(", ")
			}
			params.WriteString("...")
		}
		params.WriteByte(')')
		p.typeName(t.ReturnType(), name+params.String())
	case types.KindCompoundStruct:
		p.writeString("struct ")
		p.entityName(t)
		if name != "" {
			p.writeByte(' ')
			p.writeString(name)
		}
	case types.KindCompoundUnion:
		p.writeString("union ")
		p.entityName(t)
		if name != "" {
			p.writeByte(' ')
			p.writeString(name)
		}
	case types.KindEnum:
		p.writeString("enum ")
		p.entityName(t)
		if name != "" {
			p.writeByte(' ')
			p.writeString(name)
		}
	case types.KindTypedef:
		if ref := t.TypedefEntity(); ref != nil {
			if sym := ref.EntitySymbol(); sym != nil {
				p.writeString(sym.Text())
			}
		}
		if name != "" {
			p.writeByte(' ')
			p.writeString(name)
		}
	case types.KindBitfield:
		p.typeName(t.BitfieldBase(), name)
		fmt.Fprintf(&p.out, " : %d", t.BitfieldBitSize())
	case types.KindBuiltin:
		if sym := t.BuiltinSymbol(); sym != nil {
			p.writeString(sym.Text())
		}
		if name != "" {
			p.writeByte(' ')
			p.writeString(name)
		}
	default:
		p.writeString("<invalid type>")
	}
}

func (p *Printer) entityName(t *types.Type) {
	ref := t.CompoundEntity()
	if ref == nil {
		p.writeString("<anonymous>")
		return
	}
	if sym := ref.EntitySymbol(); sym != nil {
		p.writeString(sym.Text())
		return
	}
	if alias := ref.AliasSymbol(); alias != nil {
		p.writeString(alias.Text())
		return
	}
	p.writeString("<anonymous>")
}

func (p *Printer) qualifiers(q types.Qualifiers) {
	if q.Has(types.QualConst) {
		p.writeString("const ")
	}
	if q.Has(types.QualVolatile) {
		p.writeString("volatile ")
	}
	if q.Has(types.QualRestrict) {
		p.writeString("restrict ")
	}
}

func atomicTypeName(kind types.Kind, ak types.AtomicKind) string {
	name := ak.String()
	switch kind {
	case types.KindComplex:
		return "_Complex " + name
	case types.KindImaginary:
		return "_Imaginary " + name
	default:
		return name
	}
}
