package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fdwarf/internal/dwarfx"
	"fdwarf/internal/sig"
)

const headerTpl = `#ifndef __PACKAGE_h__
#define __PACKAGE_h__
typedef struct _PACKAGE_interface {
STRUCT
} PACKAGE_interface;
FUNCTIONS
enum { TAGS };
#endif
`

const sourceTpl = `#include "PACKAGE.h"
VARIABLES

void *const _PACKAGE_table[] = {
STRUCT
};
FUNCTIONS
`

func demoSigs() []sig.Signature {
	return []sig.Signature{
		{
			Addr:   0x100,
			Return: "int32_t",
			Name:   "add",
			Class:  dwarfx.SizeInt32,
			Params: []sig.Param{
				{Type: "int32_t", Name: "a"},
				{Type: "int32_t", Name: "b"},
			},
		},
		{
			Addr:   0x120,
			Return: "void",
			Name:   "reset",
			Class:  dwarfx.SizeInt16,
		},
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("demo", demoSigs(), headerTpl)

	for _, want := range []string{
		"__demo_h__",
		"\tint32_t (* add)(int32_t a, int32_t b);",
		"\tvoid (* reset)();",
		"int32_t add(int32_t a, int32_t b);",
		"void reset();",
		"enum { _demo_add, _demo_reset };",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "PACKAGE") || strings.Contains(out, "TAGS") {
		t.Errorf("unsubstituted placeholder left in header:\n%s", out)
	}
}

func TestRenderSource(t *testing.T) {
	out := RenderSource("demo", demoSigs(), sourceTpl)

	for _, want := range []string{
		`#include "demo.h"`,
		"\t&add,\n\t&reset",
		"LF_WEAK int32_t add(int32_t a, int32_t b) {\n\treturn lf_invoke(&_demo, _demo_add, fmr_int32_t, fmr_args(fmr_infer(a), fmr_infer(b)));\n}\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("source missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "VARIABLES") {
		t.Errorf("VARIABLES token left in source:\n%s", out)
	}
}

// A void trampoline dispatches as a standalone statement and, because of the
// long-standing runtime contract, passes fmr_int16_t rather than fmr_void_t.
func TestRenderSourceVoidTrampoline(t *testing.T) {
	out := RenderSource("demo", demoSigs(), sourceTpl)

	want := "LF_WEAK void reset() {\n\tlf_invoke(&_demo, _demo_reset, fmr_int16_t, fmr_args());\n\treturn;\n}\n"
	if !strings.Contains(out, want) {
		t.Errorf("source missing void trampoline %q:\n%s", want, out)
	}
	if strings.Contains(out, "return lf_invoke(&_demo, _demo_reset") {
		t.Error("void trampoline must not return the dispatch result")
	}
	if strings.Contains(out, "fmr_void_t") {
		t.Error("void return must keep the fmr_int16_t dispatch class")
	}
}

func TestRenderDeterministic(t *testing.T) {
	sigs := demoSigs()
	if RenderHeader("demo", sigs, headerTpl) != RenderHeader("demo", sigs, headerTpl) {
		t.Error("header rendering is not deterministic")
	}
	if RenderSource("demo", sigs, sourceTpl) != RenderSource("demo", sigs, sourceTpl) {
		t.Error("source rendering is not deterministic")
	}
}

// Table order must match declaration order position by position.
func TestRenderOrderAligned(t *testing.T) {
	header := RenderHeader("demo", demoSigs(), headerTpl)
	source := RenderSource("demo", demoSigs(), sourceTpl)

	if strings.Index(header, "(* add)") > strings.Index(header, "(* reset)") {
		t.Error("header field order does not follow signature order")
	}
	if strings.Index(source, "&add") > strings.Index(source, "&reset") {
		t.Error("initializer order does not follow signature order")
	}
	if strings.Index(header, "_demo_add") > strings.Index(header, "_demo_reset") {
		t.Error("tag order does not follow signature order")
	}
}

func TestRenderNoFunctions(t *testing.T) {
	header := RenderHeader("demo", nil, headerTpl)
	source := RenderSource("demo", nil, sourceTpl)

	if strings.Contains(header, "STRUCT") || strings.Contains(header, "FUNCTIONS") {
		t.Errorf("placeholders left in empty header:\n%s", header)
	}
	if !strings.Contains(header, "enum {  };") {
		t.Errorf("empty tag block not rendered:\n%s", header)
	}
	if strings.Contains(source, "LF_WEAK") {
		t.Errorf("empty source grew a trampoline:\n%s", source)
	}
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "template.h")
	if err := os.WriteFile(good, []byte(headerTpl), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTemplate(good, HeaderPlaceholders); err != nil {
		t.Fatalf("valid template rejected: %v", err)
	}
}
