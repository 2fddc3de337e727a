package main

// cParen implements `(`: skip a comment through the matching `)`.
func (c *Compiler) cParen() error {
	c.lex.ParseUntil(')')
	return nil
}

// cBackslash implements `\`: skip a line comment through end of line.
func (c *Compiler) cBackslash() error {
	c.lex.ParseUntil('\n')
	return nil
}

// cColon implements `:`: begin a new definition.
func (c *Compiler) cColon() error {
	c.lastWord = c.lex.Word()
	c.lastXT = c.img.Here()
	c.state = StateCompile
	return nil
}

// cSemicolon implements `;`: close the current definition, through the
// exit-merge peephole, and install it as a Thread. A non-empty control
// stack here means some IF/BEGIN/etc. was never closed; that's a warning,
// not a fatal error, and the residual contents are left in place rather
// than cleared, so a later diagnostic still sees exactly what went wrong.
func (c *Compiler) cSemicolon() error {
	c.img.Comma(opEXIT)
	c.dict.Define(Thread{name: c.lastWord, addr: c.lastXT})
	c.state = StateInterpret
	if n := len(c.stack); n > 0 {
		c.warn("%v", ControlStackUnbalancedError{Depth: n})
	}
	return nil
}

// cConstant implements `CONSTANT (n --)`: pop a value, read the following
// name, and install it as a Literal.
func (c *Compiler) cConstant() error {
	val, err := c.pop()
	if err != nil {
		return err
	}
	name := c.lex.Word()
	c.dict.Define(Literal{name: name, val: val})
	return nil
}

// cVariable implements `VARIABLE`: read the following name, allocate one
// data cell, and install the cell's address as a Literal.
func (c *Compiler) cVariable() error {
	name := c.lex.Word()
	addr := c.img.Allot(1)
	c.dict.Define(Literal{name: name, val: addr})
	return nil
}

// cAllot implements `ALLOT (n -- addr)`.
func (c *Compiler) cAllot() error {
	n, err := c.pop()
	if err != nil {
		return err
	}
	c.push(c.img.Allot(n))
	return nil
}

// cIf implements `IF`: push a patch site and emit a conditional branch with
// a zero target.
func (c *Compiler) cIf() error {
	c.push(c.img.Here())
	c.img.Comma(opZBRANCH)
	return nil
}

// cThen implements `THEN`: pop a patch site and OR in the current address
// as its target. `UNTIL` is a plain alias of this.
func (c *Compiler) cThen() error {
	orig, err := c.pop()
	if err != nil {
		return err
	}
	c.img.PatchOr(orig, uint16(c.img.Here()))
	c.img.InvalidateLastOp()
	return nil
}

func (c *Compiler) cUntil() error { return c.cThen() }

// cBegin implements `BEGIN`: push the current address as a backward-branch
// destination, and mark it as a label (no exit-merge across it).
func (c *Compiler) cBegin() error {
	c.push(c.img.Here())
	c.img.InvalidateLastOp()
	return nil
}

// cAgain implements `AGAIN`: pop a destination and emit an unconditional
// branch back to it.
func (c *Compiler) cAgain() error {
	dest, err := c.pop()
	if err != nil {
		return err
	}
	c.img.Comma(opBRANCH | uint16(dest))
	return nil
}

// cAhead implements `AHEAD`: like IF, but unconditional.
func (c *Compiler) cAhead() error {
	c.push(c.img.Here())
	c.img.Comma(opBRANCH)
	return nil
}

// cWhile implements `WHILE`: swaps the BEGIN destination underneath a new
// IF-style forward patch site.
func (c *Compiler) cWhile() error {
	dest, err := c.pop()
	if err != nil {
		return err
	}
	if err := c.cIf(); err != nil {
		return err
	}
	c.push(dest)
	return nil
}

// cRepeat implements `REPEAT`: AGAIN back to BEGIN, then THEN to patch
// WHILE's forward branch to the loop exit.
func (c *Compiler) cRepeat() error {
	if err := c.cAgain(); err != nil {
		return err
	}
	return c.cThen()
}

// cElse implements `ELSE`, equivalent to AHEAD followed by swapping in the
// earlier IF orig and patching it with THEN.
func (c *Compiler) cElse() error {
	orig, err := c.pop()
	if err != nil {
		return err
	}
	if err := c.cAhead(); err != nil {
		return err
	}
	c.push(orig)
	return c.cThen()
}
