// Package disasm provides 32-bit ARM disassembly for module function
// sections.
package disasm

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/arch/arm/armasm"
)

// Inst is a decoded ARM instruction with address and raw bytes.
type Inst struct {
	Addr uint64
	Raw  uint32
	Text string
}

// SymbolLookup resolves an address to a symbolic name. Returns ("", false)
// if unknown.
type SymbolLookup func(addr uint64) (name string, ok bool)

// Disassemble decodes ARM instructions from a byte region. Words that do
// not decode are kept as .word rows so addresses stay aligned.
func Disassemble(data []byte, base uint64) []Inst {
	n := len(data) / 4
	result := make([]Inst, 0, n)
	for i := 0; i < n; i++ {
		off := i * 4
		raw := binary.LittleEndian.Uint32(data[off : off+4])

		var text string
		inst, err := armasm.Decode(data[off:off+4], armasm.ModeARM)
		if err != nil {
			text = fmt.Sprintf(".word 0x%08x", raw)
		} else {
			text = armasm.GNUSyntax(inst)
		}

		result = append(result, Inst{Addr: base + uint64(off), Raw: raw, Text: text})
	}
	return result
}

// Format renders a slice of instructions as stable text output.
// Each line: <addr>  <hex bytes>  <disasm>  ; <symbol>
func Format(insts []Inst, lookup SymbolLookup) string {
	var b strings.Builder
	for _, inst := range insts {
		fmt.Fprintf(&b, "0x%08x  ", inst.Addr)
		fmt.Fprintf(&b, "%02x %02x %02x %02x  ",
			byte(inst.Raw), byte(inst.Raw>>8), byte(inst.Raw>>16), byte(inst.Raw>>24))
		b.WriteString(inst.Text)
		if lookup != nil {
			if name, ok := lookup(inst.Addr); ok {
				fmt.Fprintf(&b, "  ; <%s>", name)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
