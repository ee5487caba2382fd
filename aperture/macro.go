package aperture

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xdevs23/pcblin/core"
	"github.com/xdevs23/pcblin/format"
	"github.com/xdevs23/pcblin/macro"
)

// ErrEmptyMacro indicates a macro definition whose body has no blocks.
var ErrEmptyMacro = errors.New("aperture: macro body is empty")

// Macro is an aperture backed by an aperture macro. Define builds the macro
// body through the caller's callback; the document layer emits the AM
// command before the AD command referencing it.
type Macro struct {
	name      core.Name
	body      *macro.Body
	arguments []format.Value
}

// Define validates the macro name, runs build to populate the macro body,
// and returns the macro aperture. The arguments, if any, are passed to the
// macro in the aperture definition.
func Define(name string, build func(*macro.Body) error, arguments ...format.Value) (Macro, error) {
	n, err := core.NewName(name)
	if err != nil {
		return Macro{}, err
	}
	body := &macro.Body{}
	if err := build(body); err != nil {
		return Macro{}, err
	}
	if body.Len() == 0 {
		return Macro{}, fmt.Errorf("%w: %s", ErrEmptyMacro, name)
	}
	return Macro{name: n, body: body, arguments: arguments}, nil
}

// Name returns the macro's name.
func (m Macro) Name() core.Name {
	return m.name
}

// Parameters renders the AD parameter list: the macro name, followed by the
// X-separated argument list when arguments are present.
func (m Macro) Parameters() (string, error) {
	if len(m.arguments) == 0 {
		return m.name.String(), nil
	}
	parts := make([]string, 0, len(m.arguments))
	for _, arg := range m.arguments {
		parts = append(parts, arg.Text())
	}
	return m.name.String() + "," + strings.Join(parts, "X"), nil
}

// MacroCommand renders the full macro-definition (AM) command.
func (m Macro) MacroCommand() (string, error) {
	cmd := "%AM" + m.name.String() + "*" + m.body.String() + "%"
	if !core.IsCommand(cmd) {
		return "", fmt.Errorf("%w: %q", core.ErrInvalidCommand, cmd)
	}
	return cmd, nil
}
