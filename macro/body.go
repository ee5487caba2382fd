package macro

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xdevs23/pcblin/core"
)

// Primitive codes defined by the format.
const (
	PrimitiveComment    = 0
	PrimitiveCircle     = 1
	PrimitiveVectorLine = 20
	PrimitiveCenterLine = 21
	PrimitiveOutline    = 4
	PrimitivePolygon    = 5
	PrimitiveThermal    = 7
)

// Sentinel errors for macro body construction.
var (
	// ErrVariableName indicates a macro variable name that is not a
	// positive nonzero integer.
	ErrVariableName = errors.New("macro: variable name must be a positive integer")

	// ErrExpression indicates an expression that would render to an
	// invalid word.
	ErrExpression = errors.New("macro: invalid expression")
)

// Block is one rendered unit of a macro body. Each block supplies its own
// block delimiter, so a whole body concatenates with no separator.
type Block interface {
	String() string
}

// VariableDef binds a macro variable to an expression.
type VariableDef struct {
	Name       core.Name
	Expression string
}

func (v VariableDef) String() string {
	return "$" + v.Name.String() + "=" + v.Expression + "*"
}

// Primitive invokes a macro primitive with formatted arguments.
type Primitive struct {
	Code int
	Args []string
}

func (p Primitive) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(p.Code))
	for _, arg := range p.Args {
		b.WriteByte(',')
		b.WriteString(arg)
	}
	b.WriteByte('*')
	return b.String()
}

// Body is an ordered sequence of macro body blocks.
type Body struct {
	blocks []Block
}

// Variable appends a variable definition. The name must represent a
// positive nonzero integer, and the rendered definition must form a valid
// word.
func (b *Body) Variable(name core.Name, expression string) error {
	n, err := strconv.Atoi(name.String())
	if err != nil || n <= 0 {
		return fmt.Errorf("%w: %q", ErrVariableName, name)
	}
	if expression == "" {
		return fmt.Errorf("%w: empty expression for $%s", ErrExpression, name)
	}
	def := VariableDef{Name: name, Expression: expression}
	if !core.IsWord(def.String()) {
		return fmt.Errorf("%w: %q", ErrExpression, expression)
	}
	b.blocks = append(b.blocks, def)
	return nil
}

// Primitive appends a primitive invocation with already-formatted argument
// expressions. The rendered invocation must form a valid word.
func (b *Body) Primitive(code int, args ...string) error {
	p := Primitive{Code: code, Args: args}
	if !core.IsWord(p.String()) {
		return fmt.Errorf("%w: primitive %d args %v", ErrExpression, code, args)
	}
	b.blocks = append(b.blocks, p)
	return nil
}

// Len returns the number of blocks in the body.
func (b *Body) Len() int {
	return len(b.blocks)
}

// String renders the full body: all blocks concatenated with no separator.
func (b *Body) String() string {
	var sb strings.Builder
	for _, blk := range b.blocks {
		sb.WriteString(blk.String())
	}
	return sb.String()
}
