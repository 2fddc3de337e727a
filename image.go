package main

// CodeSize and MemSize are the fixed capacities of code space and data
// space respectively.
const (
	CodeSize = 256
	MemSize  = 256
)

// noLastOp is the sentinel meaning "last_op is none": either nothing has
// been emitted yet, or a control-flow label was just set, making the next
// word an independent jump target rather than something the peephole may
// fold a following EXIT into.
const noLastOp = -1

// Image is the append-only output buffer: a sequence of 16-bit words with
// slot 0 reserved for the entry BRANCH the linker patches in, plus the
// data-space counter advanced by ALLOT/VARIABLE (a separate logical region
// the compiler only ever counts, never writes).
type Image struct {
	words  []uint16
	lastOp int
	memPos int
}

// NewImage returns an empty image with slot 0 reserved.
func NewImage() *Image {
	return &Image{
		words:  []uint16{0},
		lastOp: noLastOp,
	}
}

// Here is the next-free code address, equivalently the image's length.
func (img *Image) Here() int { return len(img.words) }

// MemPos is the current data-space counter.
func (img *Image) MemPos() int { return img.memPos }

// Allot reserves n data-space cells, returning the address of the first
// one, and advances the data-space counter. The compiler never writes to
// this region; it is addressed only by literal address value.
func (img *Image) Allot(n int) int {
	addr := img.memPos
	img.memPos += n
	return addr
}

// Word returns the word at addr.
func (img *Image) Word(addr int) uint16 { return img.words[addr] }

// PatchOr ORs bits into the word at addr, used to back-fill a forward
// branch's target field once its destination is known. This is always
// non-destructive: the site was emitted with the target field zero.
func (img *Image) PatchOr(addr int, bits uint16) {
	img.words[addr] |= bits
}

// InvalidateLastOp marks that the next emitted word must be reachable as an
// independent instruction (a jump target), disabling the exit-merge
// peephole for it.
func (img *Image) InvalidateLastOp() { img.lastOp = noLastOp }

// Comma appends one word to the image. EXIT is special-cased: before it is
// appended, maybeMergeExit gets a chance to fold it into the preceding word
// instead.
func (img *Image) Comma(op uint16) {
	if op == opEXIT && img.maybeMergeExit() {
		return
	}
	img.lastOp = img.Here()
	img.words = append(img.words, op)
}

// CompileLiteral emits a literal load for v. Values whose low 16 bits have
// bit 15 set (negative, or >= 0x8000) are emitted as LIT|~v followed by
// INVERT; all others are emitted directly as LIT|v.
func (img *Image) CompileLiteral(v int) {
	u := uint16(v)
	if u&opLIT != 0 {
		img.Comma(opLIT | ^u)
		img.Comma(opINVERT)
	} else {
		img.Comma(opLIT | u)
	}
}

// maybeMergeExit implements the exit-merge peephole. It either folds the
// pending EXIT into the previously emitted word and reports true, or
// declines and reports false so the caller appends EXIT as its own word.
func (img *Image) maybeMergeExit() bool {
	if img.lastOp == noLastOp || img.lastOp != img.Here()-1 {
		return false
	}
	op := img.words[img.lastOp]
	switch classify(op) {
	case classLit, classZBranch:
		// A LIT payload or conditional branch can never also be a return
		// point.
		return false
	case classBranch:
		// An unconditional branch never returns; just drop the EXIT.
		return true
	case classCall:
		// Tail-call fold: CALL immediately before a return becomes BRANCH.
		img.words[img.lastOp] = (op &^ opCALL) | opBRANCH
		return true
	}
	if op&opEXIT == opEXIT {
		// Already carries the EXIT bit pattern; idempotent, drop ours.
		return true
	}
	if op&rstackMask != 0 {
		// Return-stack ops would have their timing corrupted by folding.
		return false
	}
	img.words[img.lastOp] = op | exitBits
	return true
}
