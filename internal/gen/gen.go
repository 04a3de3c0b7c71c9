// Package gen renders the float32 limits table as Go source for
// projects that want the constants in their own package.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/chewxy/math32"
	"golang.org/x/tools/imports"

	"github.com/synadia-labs/floatconsts/floatconsts"
	tmplfs "github.com/synadia-labs/floatconsts/internal/gen/templates"
)

// Options configures a generation run.
type Options struct {
	// Package is the package clause of the generated file. Required.
	Package string
	// Prefix, if set, is prepended to every generated identifier.
	Prefix string
}

type genEntry struct {
	Name    string
	Type    string
	Literal string
}

// constsTemplate is parsed once; ParseFS names templates by filename.
var constsTemplate = template.Must(template.New("consts.go.tpl").ParseFS(tmplfs.FS, "consts.go.tpl"))

func (o Options) validate() error {
	if o.Package == "" {
		return errors.New("gen: package name is required")
	}
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("gen: invalid package name %q", o.Package)
	}
	if o.Prefix != "" && !token.IsIdentifier(o.Prefix+"X") {
		return fmt.Errorf("gen: invalid identifier prefix %q", o.Prefix)
	}
	return nil
}

// Generate writes a formatted Go source file declaring the verified
// float32 table to w.
func Generate(w io.Writer, opts Options) error {
	src, err := render(opts, "")
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// WriteFile renders the table into path, creating parent directories.
// The file is only written once rendering succeeded.
func WriteFile(path string, opts Options) error {
	src, err := render(opts, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, src, 0o644)
}

func render(opts Options, filename string) ([]byte, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	layout := floatconsts.Float32()
	if err := layout.Verify(); err != nil {
		return nil, floatconsts.WrapError(err, "gen")
	}
	return renderLayout(layout, opts, filename)
}

// renderLayout renders l without verifying it; the generated
// partition check is what rejects a bad layout at build time.
func renderLayout(l floatconsts.Layout, opts Options, filename string) ([]byte, error) {
	data := struct {
		Package string
		Prefix  string
		Consts  []genEntry
		Funcs   []genEntry
	}{
		Package: opts.Package,
		Prefix:  opts.Prefix,
	}
	for _, e := range l.Entries() {
		ge := genEntry{Name: opts.Prefix + e.Name}
		switch e.Kind {
		case floatconsts.FloatKind:
			if e.Bits&floatconsts.ExpBitMask == floatconsts.ExpBitMask {
				// Inf and NaN: a Bits constant plus an accessor.
				data.Consts = append(data.Consts, genEntry{
					Name:    ge.Name + "Bits",
					Type:    "uint32",
					Literal: hexBits(e.Bits),
				})
				data.Funcs = append(data.Funcs, ge)
				continue
			}
			ge.Type = "float32"
			ge.Literal = strconv.FormatFloat(float64(math32.Float32frombits(e.Bits)), 'x', -1, 32)
		case floatconsts.IntKind:
			ge.Literal = e.Value
		case floatconsts.MaskKind:
			ge.Type = "uint32"
			ge.Literal = hexBits(e.Bits)
		}
		data.Consts = append(data.Consts, ge)
	}

	var buf bytes.Buffer
	if err := constsTemplate.ExecuteTemplate(&buf, "consts.go.tpl", data); err != nil {
		return nil, err
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		// Fall back to go/format if goimports fails.
		if formatted, ferr := format.Source(buf.Bytes()); ferr == nil {
			src = formatted
		} else {
			return nil, fmt.Errorf("gen: format output: %w", ferr)
		}
	}
	return src, nil
}

func hexBits(u uint32) string {
	return fmt.Sprintf("0x%08X", u)
}
