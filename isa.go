package main

// Fixed encodings for the target stack CPU. These are load-bearing
// contracts: the cross-compiler never generates any opcode value not listed
// here, and the peephole and disassembler classify every emitted word by
// testing against the masks below rather than by equality, so that OR'd-in
// branch targets and fused EXIT bits still classify correctly.
const (
	opNOP      uint16 = 0x0800
	opINVERT   uint16 = 0x0700
	opHALVE    uint16 = 0x0200 // 2/
	opZEROEQ   uint16 = 0x0300 // 0=
	opAND      uint16 = 0x06c0
	opOR       uint16 = 0x05c0
	opXOR      uint16 = 0x04c0
	opADD      uint16 = 0x00c0 // +
	opSUB      uint16 = 0x01c0 // -
	opDUP      uint16 = 0x0840
	opSWAP     uint16 = 0x0980
	opDROP     uint16 = 0x09c0
	opTOR      uint16 = 0x09d0 // >R
	opRFROM    uint16 = 0x0a70 // R>
	opRFETCH   uint16 = 0x0a40 // R@
	opBRANCH   uint16 = 0x4000
	opZBRANCH  uint16 = 0x6000 // 0BRANCH
	opCALL     uint16 = 0x2000
	opEXECUTE  uint16 = 0x09e0
	opEXIT     uint16 = 0x1830
	opSTOREINC uint16 = 0x0dc0 // !+
	opFETCH    uint16 = 0x0c00 // @
	opLIT      uint16 = 0x8000
)

// branchTargetMask isolates the 13-bit target field OR'd into BRANCH,
// 0BRANCH and CALL words.
const branchTargetMask uint16 = 0x1fff

// exitBits is what the peephole ORs into a folded primitive -- narrower
// than the standalone EXIT opcode above. Primitives are folded by OR, not
// replacement, so using the full EXIT encoding here would corrupt any
// primitive whose own bits don't already cover EXIT's bit 11. The
// fused-word test (op & opEXIT == opEXIT) and the disassembler's unmask
// use the full opEXIT instead, so a folded word is recognized as fused
// only when the folded primitive already set bit 11 itself, and the unmask
// then clears that bit too, leaving a different primitive's encoding or
// none at all.
const exitBits uint16 = 0x1030

// rstackMask is the 0x30 bit pair the peephole tests to refuse folding EXIT
// into a return-stack primitive, since doing so would shift when the return
// stack is touched relative to the call returning. It matches >R (0x09d0)
// and R> (0x0a70), and also EXECUTE (0x09e0); R@ (0x0a40) sets neither bit
// and is folded like any other primitive.
const rstackMask uint16 = 0x30

// primitives is the fixed mnemonic-to-encoding table, in the order a fresh
// runtime dictionary is populated.
var primitives = []struct {
	name string
	op   uint16
}{
	{"NOP", opNOP},
	{"INVERT", opINVERT},
	{"2/", opHALVE},
	{"0=", opZEROEQ},
	{"AND", opAND},
	{"OR", opOR},
	{"XOR", opXOR},
	{"+", opADD},
	{"-", opSUB},
	{"DUP", opDUP},
	{"SWAP", opSWAP},
	{"DROP", opDROP},
	{">R", opTOR},
	{"R>", opRFROM},
	{"R@", opRFETCH},
	{"BRANCH", opBRANCH},
	{"0BRANCH", opZBRANCH},
	{"CALL", opCALL},
	{"EXECUTE", opEXECUTE},
	{"EXIT", opEXIT},
	{"!+", opSTOREINC},
	{"@", opFETCH},
	{"LIT", opLIT},
}

// opClass is the branch/literal classification of an encoded word, tested
// by bit pattern rather than exact equality, since a branch word carries an
// OR'd-in target address and a folded primitive carries OR'd-in EXIT bits --
// neither survives an equality test against the bare opcode.
type opClass int

const (
	classOther opClass = iota
	classLit
	classZBranch
	classBranch
	classCall
)

// classify reports which opcode class op belongs to. Order matters: 0BRANCH
// and BRANCH both set bit 14, so 0BRANCH (bits 14 and 13) must be checked
// before the plain BRANCH bit test, and LIT (bit 15) must be checked first
// of all since literal payloads may incidentally set the lower bits.
func classify(op uint16) opClass {
	switch {
	case op&opLIT != 0:
		return classLit
	case op&opZBRANCH == opZBRANCH:
		return classZBranch
	case op&opBRANCH != 0:
		return classBranch
	case op&opCALL != 0:
		return classCall
	default:
		return classOther
	}
}

func classMnemonic(c opClass) string {
	switch c {
	case classZBranch:
		return "0BRANCH"
	case classBranch:
		return "BRANCH"
	case classCall:
		return "CALL"
	}
	return ""
}
