// Package constant implements compile-time constant representation and
// folding: the typed ConstDecl variants and the arithmetic and intrinsic
// evaluation rules spec.md §3.2 and §4.2 describe. Relational operators
// (=, <>, <, <=, >, >=) are not folded by this package.
package constant

import (
	"fmt"

	"github.com/cwbudde/go-pascal-sema/internal/lexer"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

// Const is the common interface every constant variant implements. Each
// variant carries the source location of the literal or fold that produced
// it (spec.md §3.2).
type Const interface {
	Kind() types.Kind
	Pos() lexer.Position
	String() string
}

type baseConst struct {
	pos lexer.Position
}

func (b baseConst) Pos() lexer.Position { return b.pos }

// IntConst is an Int(i64) constant.
type IntConst struct {
	baseConst
	Value int64
}

func NewInt(pos lexer.Position, v int64) *IntConst { return &IntConst{baseConst{pos}, v} }
func (c *IntConst) Kind() types.Kind                { return types.Integer }
func (c *IntConst) String() string                  { return fmt.Sprintf("%d", c.Value) }

// RealConst is a Real(f64) constant.
type RealConst struct {
	baseConst
	Value float64
}

func NewReal(pos lexer.Position, v float64) *RealConst { return &RealConst{baseConst{pos}, v} }
func (c *RealConst) Kind() types.Kind                   { return types.Real }
func (c *RealConst) String() string                     { return fmt.Sprintf("%g", c.Value) }

// CharConst is a Char(u8) constant.
type CharConst struct {
	baseConst
	Value byte
}

func NewChar(pos lexer.Position, v byte) *CharConst { return &CharConst{baseConst{pos}, v} }
func (c *CharConst) Kind() types.Kind                { return types.Char }
func (c *CharConst) String() string                  { return fmt.Sprintf("%q", rune(c.Value)) }

// BoolConst is a Bool(bool) constant.
type BoolConst struct {
	baseConst
	Value bool
}

func NewBool(pos lexer.Position, v bool) *BoolConst { return &BoolConst{baseConst{pos}, v} }
func (c *BoolConst) Kind() types.Kind                { return types.Boolean }
func (c *BoolConst) String() string                  { return fmt.Sprintf("%t", c.Value) }

// StringConst is a String(str) constant.
type StringConst struct {
	baseConst
	Value string
}

func NewString(pos lexer.Position, v string) *StringConst { return &StringConst{baseConst{pos}, v} }
func (c *StringConst) Kind() types.Kind                     { return types.String }
func (c *StringConst) String() string                       { return fmt.Sprintf("%q", c.Value) }

// EnumConst is an Enum(enum-type, ordinal) constant.
type EnumConst struct {
	baseConst
	Type    *types.EnumType
	Ordinal int
}

func NewEnum(pos lexer.Position, t *types.EnumType, ordinal int) *EnumConst {
	return &EnumConst{baseConst{pos}, t, ordinal}
}
func (c *EnumConst) Kind() types.Kind { return types.Enum }
func (c *EnumConst) String() string {
	for _, m := range c.Type.Members {
		if m.Ordinal == c.Ordinal {
			return m.Name
		}
	}
	return fmt.Sprintf("%s(%d)", c.Type.String(), c.Ordinal)
}

// RangeConst is a Range(range) constant, a compile-time subrange value.
type RangeConst struct {
	baseConst
	Value *types.RangeType
}

func NewRange(pos lexer.Position, r *types.RangeType) *RangeConst {
	return &RangeConst{baseConst{pos}, r}
}
func (c *RangeConst) Kind() types.Kind { return types.Range }
func (c *RangeConst) String() string    { return c.Value.String() }

// SetConst is a Set(list<ConstDecl>) constant.
type SetConst struct {
	baseConst
	Elements []Const
}

func NewSet(pos lexer.Position, elems ...Const) *SetConst {
	return &SetConst{baseConst{pos}, elems}
}
func (c *SetConst) Kind() types.Kind { return types.Set }
func (c *SetConst) String() string {
	s := "["
	for i, e := range c.Elements {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + "]"
}

// CompoundConst wraps an expression that could not be folded to a scalar
// constant at this point but is still recorded as constant-like context
// (e.g. a record or array literal of constants). The expr type is left as
// `any` to avoid this package depending on internal/ast.
type CompoundConst struct {
	baseConst
	Expr any
}

func NewCompound(pos lexer.Position, expr any) *CompoundConst {
	return &CompoundConst{baseConst{pos}, expr}
}
func (c *CompoundConst) Kind() types.Kind { return types.Void }
func (c *CompoundConst) String() string    { return "<compound>" }
