package handlers

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/eknkc/pug"
	"github.com/eknkc/pug/compiler"
)

// Renderer writes a named view for data
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

type executor interface {
	Execute(w io.Writer, data any) error
}

// PugRenderer renders pug views compiled once at startup
type PugRenderer struct {
	templates map[string]executor
}

// NewPugRenderer compiles <dir>/<name>.pug for every name
func NewPugRenderer(dir string, names ...string) (*PugRenderer, error) {
	// pug refuses paths that start with ".."
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve views dir %s: %w", dir, err)
	}

	r := &PugRenderer{templates: make(map[string]executor, len(names))}
	for _, name := range names {
		tpl, err := pug.CompileFile(name+".pug", pug.Options{Dir: compiler.FsDir(abs)})
		if err != nil {
			return nil, fmt.Errorf("compile view %s: %w", name, err)
		}
		r.templates[name] = tpl
	}
	return r, nil
}

// Render executes the named view
func (r *PugRenderer) Render(w io.Writer, name string, data any) error {
	tpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}
	return tpl.Execute(w, data)
}
