package main

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// reversePrimitives maps an exact opcode encoding back to its mnemonic, for
// disassembly of primitives and of their EXIT-fused forms.
var reversePrimitives = func() map[uint16]string {
	m := make(map[uint16]string, len(primitives))
	for _, p := range primitives {
		m[p.op] = p.name
	}
	return m
}()

// Binary renders the image as a big-endian sequence of 16-bit words, with
// no header, footer, or alignment padding.
func (c *Compiler) Binary() []byte {
	words := c.img.words
	out := make([]byte, 2*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint16(out[2*i:], w)
	}
	return out
}

// HexListing renders one lowercase, zero-padded 4-digit hex word per line.
func (c *Compiler) HexListing() string {
	var sb strings.Builder
	for _, w := range c.img.words {
		fmt.Fprintf(&sb, "%04x\n", w)
	}
	return sb.String()
}

// Disassemble renders an annotated listing: each address is preceded by a
// `# name` comment if it is the start of a named Thread, then the
// instruction is rendered recognizing LIT, branch-class words (with an
// optional resolved target name), exact primitive matches, and
// primitive|EXIT fused forms. Unrecognized encodings print `<unknown>`.
func (c *Compiler) Disassemble() string {
	var sb strings.Builder
	for addr, w := range c.img.words {
		if name, ok := c.dict.AddrName(addr); ok {
			fmt.Fprintf(&sb, "# %s\n", name)
		}
		fmt.Fprintf(&sb, "% 4x: %04x\t# %s\n", addr, w, c.disasmWord(w))
	}
	return sb.String()
}

func (c *Compiler) disasmWord(w uint16) string {
	switch cls := classify(w); cls {
	case classLit:
		return fmt.Sprintf("%d", w&0x7fff)
	case classZBranch, classBranch, classCall:
		dest := w & branchTargetMask
		mnem := classMnemonic(cls)
		if name, ok := c.dict.AddrName(int(dest)); ok {
			return fmt.Sprintf("%s %s (%04x)", mnem, name, dest)
		}
		return fmt.Sprintf("%s %04x", mnem, dest)
	}

	if name, ok := reversePrimitives[w]; ok {
		return name
	}
	if w&opEXIT == opEXIT {
		if name, ok := reversePrimitives[w&^opEXIT]; ok {
			return fmt.Sprintf("%s EXIT", name)
		}
	}
	return "<unknown>"
}
