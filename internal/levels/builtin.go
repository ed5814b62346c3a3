package levels

import (
	"embed"
	"fmt"

	"github.com/vovakirdan/termfolio/internal/registry"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// builtinLoopWidth applies to built-in files that omit loop_width.
const builtinLoopWidth = 2000

func init() {
	for _, name := range []string{"portfolio", "playground"} {
		l := mustLoadBuiltin(name)
		registry.Register(l.ID(), func() registry.Level {
			return mustLoadBuiltin(name)
		})
	}
}

// mustLoadBuiltin parses an embedded level. A broken built-in is a build
// defect, so it panics.
func mustLoadBuiltin(name string) *Level {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		panic(fmt.Sprintf("levels: missing built-in %q: %v", name, err))
	}
	l, err := Parse(data, builtinLoopWidth)
	if err != nil {
		panic(fmt.Sprintf("levels: built-in %q: %v", name, err))
	}
	return l
}

// BuiltinYAML returns the embedded source of a built-in level, for use as
// a template.
func BuiltinYAML(id string) ([]byte, error) {
	data, err := builtinFS.ReadFile("builtin/" + id + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("levels: %w %q", ErrUnknownLevel, id)
	}
	return data, nil
}
