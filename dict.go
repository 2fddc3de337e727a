package main

import "strings"

// Entry is a runtime-dictionary word: a Primitive, Thread, or Literal. All
// three are immediate-compilable -- invoking one in compile state appends
// to the image -- and additionally Executable for the interpret-state
// case, though only Literal gives that a well-defined meaning; see
// errIllegalInterpretExecute in errors.go for the other two.
type Entry interface {
	Name() string
	Compile(img *Image)
	Execute(c *Compiler) error
}

// Primitive is a built-in word compiled by emitting its fixed opcode.
type Primitive struct {
	name string
	op   uint16
}

func (p Primitive) Name() string        { return p.name }
func (p Primitive) Compile(img *Image)  { img.Comma(p.op) }
func (p Primitive) Execute(c *Compiler) error {
	return errIllegalInterpretExecute{Kind: "primitive", Name: p.name}
}

// Thread is a user colon-definition, compiled by emitting a CALL to its
// code address.
type Thread struct {
	name string
	addr int
}

func (t Thread) Name() string       { return t.name }
func (t Thread) Compile(img *Image) { img.Comma(opCALL | uint16(t.addr)) }
func (t Thread) Execute(c *Compiler) error {
	return errIllegalInterpretExecute{Kind: "thread", Name: t.name}
}

// Literal is a CONSTANT or VARIABLE, compiled by emitting a literal load of
// its integer value. Unlike Primitive/Thread, executing a Literal in
// interpret state is well-defined: it simply pushes its value.
type Literal struct {
	name string
	val  int
}

func (l Literal) Name() string        { return l.name }
func (l Literal) Compile(img *Image)  { img.CompileLiteral(l.val) }
func (l Literal) Execute(c *Compiler) error {
	c.push(l.val)
	return nil
}

// Dictionary is the runtime wordlist: newest-first, case-insensitive linear
// search. At this scale (at most a few hundred entries) linear search is
// adequate and needs no hashing; shadowing falls out naturally from always
// prepending new entries and searching from the front.
type Dictionary struct {
	entries []Entry
}

// NewDictionary returns a dictionary pre-populated with the fixed primitive
// table.
func NewDictionary() *Dictionary {
	d := &Dictionary{entries: make([]Entry, 0, len(primitives))}
	// Inserted oldest-first here is fine: none of the primitives share a
	// name, so search order amongst them never matters; user Threads and
	// Literals defined afterward are prepended ahead of all of them.
	for _, p := range primitives {
		d.entries = append(d.entries, Primitive{name: p.name, op: p.op})
	}
	return d
}

// Define prepends a new entry, so that it shadows any earlier entry sharing
// its name.
func (d *Dictionary) Define(e Entry) {
	d.entries = append([]Entry{e}, d.entries...)
}

// Search performs a case-insensitive newest-first linear search.
func (d *Dictionary) Search(word string) (Entry, bool) {
	for _, e := range d.entries {
		if strings.EqualFold(e.Name(), word) {
			return e, true
		}
	}
	return nil, false
}

// AddrName returns the name of the Thread whose address equals addr, used
// by the disassembler to annotate the start of named words and to resolve
// branch targets to names. A linear scan per call; at a 256-word code
// budget this is cheap enough that building and caching a reverse index
// would only add bookkeeping.
func (d *Dictionary) AddrName(addr int) (string, bool) {
	for _, e := range d.entries {
		if t, ok := e.(Thread); ok && t.addr == addr {
			return t.name, true
		}
	}
	return "", false
}
