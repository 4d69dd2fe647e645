// Package gen renders the module interface header and the weak trampoline
// source from reconstructed signatures, and orchestrates a generation run.
package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"fdwarf/internal/dwarfx"
	"fdwarf/internal/elfx"
	"fdwarf/internal/sig"
)

// Options configures a generation run. Log must be set; pass zerolog.Nop()
// to silence.
type Options struct {
	FuncSection    string
	DataSection    string
	HeaderTemplate string
	SourceTemplate string
	OutDir         string
	Log            zerolog.Logger
}

// RenderHeader substitutes the interface template: STRUCT becomes one
// function-pointer field per signature, FUNCTIONS the forward declarations,
// TAGS the comma-joined call-table tags. All three blocks share the same
// signature order, so table position and declaration position stay aligned.
func RenderHeader(pkg string, sigs []sig.Signature, tpl string) string {
	fields := make([]string, 0, len(sigs))
	decls := make([]string, 0, len(sigs))
	tags := make([]string, 0, len(sigs))
	for _, s := range sigs {
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.String()
		}
		fields = append(fields, fmt.Sprintf("%s (* %s)(%s);", s.Return, s.Name, strings.Join(params, ", ")))
		decls = append(decls, s.Decl()+";")
		tags = append(tags, s.Tag(pkg))
	}

	out := strings.ReplaceAll(tpl, "PACKAGE", pkg)
	out = strings.ReplaceAll(out, "STRUCT", "\t"+strings.Join(fields, "\n\t"))
	out = strings.ReplaceAll(out, "FUNCTIONS", strings.Join(decls, "\n"))
	out = strings.ReplaceAll(out, "TAGS", strings.Join(tags, ", "))
	return out
}

// RenderSource substitutes the implementation template: STRUCT becomes the
// address-of-function initializer list in declaration order, FUNCTIONS the
// trampoline bodies. The VARIABLES token is stripped.
func RenderSource(pkg string, sigs []sig.Signature, tpl string) string {
	inits := make([]string, 0, len(sigs))
	bodies := make([]string, 0, len(sigs))
	for _, s := range sigs {
		inits = append(inits, "&"+s.Name)
		bodies = append(bodies, trampoline(pkg, s))
	}

	out := strings.ReplaceAll(tpl, "PACKAGE", pkg)
	out = strings.ReplaceAll(out, "VARIABLES\n\n", "")
	out = strings.ReplaceAll(out, "STRUCT", "\t"+strings.Join(inits, ",\n\t"))
	out = strings.ReplaceAll(out, "FUNCTIONS", strings.Join(bodies, "\n"))
	return out
}

// trampoline renders one weakly bound forwarding definition. Every argument
// is wrapped in fmr_infer, so the marshaling type is decided from the value
// at call time; the debug info only shapes the declaration.
func trampoline(pkg string, s sig.Signature) string {
	args := make([]string, len(s.Params))
	for i, p := range s.Params {
		args[i] = fmt.Sprintf("fmr_infer(%s)", p.Name)
	}
	call := fmt.Sprintf("lf_invoke(&_%s, %s, %s, fmr_args(%s));",
		pkg, s.Tag(pkg), s.Class.Literal(), strings.Join(args, ", "))
	if s.Return == "void" {
		return fmt.Sprintf("LF_WEAK %s {\n\t%s\n\treturn;\n}\n", s.Decl(), call)
	}
	return fmt.Sprintf("LF_WEAK %s {\n\treturn %s\n}\n", s.Decl(), call)
}

// Generate reads the binary's debug information and writes <pkg>.h and
// <pkg>.c, overwriting existing files. A binary whose function section
// cannot be located produces no output and no error; a binary without
// debug information is an error before anything is written. Given the same
// binary and templates the outputs are byte-identical across runs.
func Generate(binPath, pkg string, opts Options) error {
	ef, err := elfx.Open(binPath)
	if err != nil {
		return err
	}
	defer ef.Close()

	d, err := ef.DWARF()
	if err != nil {
		return err
	}

	funcs := ef.SectionRange(opts.FuncSection)
	vars := ef.SectionRange(opts.DataSection)
	opts.Log.Debug().
		Str("funcs", fmt.Sprintf("0x%x+0x%x", funcs.Addr, funcs.Size)).
		Str("vars", fmt.Sprintf("0x%x+0x%x", vars.Addr, vars.Size)).
		Msg("section ranges")
	if funcs.Empty() {
		opts.Log.Warn().Str("section", opts.FuncSection).
			Msg("function section not found, nothing to generate")
		return nil
	}

	units, err := dwarfx.LoadUnits(d)
	if err != nil {
		return err
	}
	sigs, err := sig.Extract(units, funcs)
	if err != nil {
		return err
	}
	opts.Log.Info().Int("functions", len(sigs)).Msg("signatures extracted")
	for _, s := range sigs {
		opts.Log.Debug().
			Str("decl", s.Decl()).
			Str("class", s.Class.Literal()).
			Uint64("addr", s.Addr).
			Msg("function")
	}

	// Both templates are loaded and validated before either file is
	// written; a broken source template can't leave a stray header behind.
	htpl, err := LoadTemplate(opts.HeaderTemplate, HeaderPlaceholders)
	if err != nil {
		return err
	}
	stpl, err := LoadTemplate(opts.SourceTemplate, SourcePlaceholders)
	if err != nil {
		return err
	}

	hpath := filepath.Join(opts.OutDir, pkg+".h")
	if err := os.WriteFile(hpath, []byte(RenderHeader(pkg, sigs, htpl)), 0644); err != nil {
		return fmt.Errorf("gen: write %s: %w", hpath, err)
	}
	opts.Log.Info().Str("path", hpath).Msg("wrote interface header")

	cpath := filepath.Join(opts.OutDir, pkg+".c")
	if err := os.WriteFile(cpath, []byte(RenderSource(pkg, sigs, stpl)), 0644); err != nil {
		return fmt.Errorf("gen: write %s: %w", cpath, err)
	}
	opts.Log.Info().Str("path", cpath).Msg("wrote trampoline source")
	return nil
}
