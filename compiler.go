package main

import "strconv"

// State is the outer interpreter's single compile/interpret flag.
type State int

const (
	StateInterpret State = 0
	StateCompile   State = 1
)

// Compiler is the outer interpreter: tokenizer position, dictionary, image
// buffer, and the single value/control stack shared between interpret-state
// literals and in-progress control-flow patch sites. IF/BEGIN/WHILE and
// friends push and pop addresses on the very same stack a bare numeric
// literal pushes a value onto; nothing distinguishes the two kinds of
// entry beyond how the compiler word that popped them chooses to use them.
type Compiler struct {
	lex   *Lexer
	dict  *Dictionary
	img   *Image
	stack []int
	state State

	lastWord string
	lastXT   int

	logf func(mess string, args ...interface{})
	warn func(mess string, args ...interface{})
}

// NewCompiler returns a Compiler with a freshly populated dictionary and an
// empty image, ready to evaluate source text. logf and warn may be nil, in
// which case tracing and warnings are discarded.
func NewCompiler(logf, warn func(mess string, args ...interface{})) *Compiler {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}
	return &Compiler{
		lex:  NewLexer(""),
		dict: NewDictionary(),
		img:  NewImage(),
		logf: logf,
		warn: warn,
	}
}

// Image exposes the underlying code/data buffer, e.g. for the linker and
// emitters.
func (c *Compiler) Image() *Image { return c.img }

// Dictionary exposes the runtime wordlist, e.g. for the linker and
// disassembler.
func (c *Compiler) Dictionary() *Dictionary { return c.dict }

func (c *Compiler) push(v int) { c.stack = append(c.stack, v) }

func (c *Compiler) pop() (int, error) {
	if len(c.stack) == 0 {
		return 0, StackUnderflowError{}
	}
	v := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return v, nil
}

// Evaluate feeds src through the outer interpreter, continuing from
// wherever a prior call left off. Compiling several files concatenated
// together is just repeated calls to Evaluate across a single Compiler.
func (c *Compiler) Evaluate(src string) error {
	c.lex = NewLexer(c.lex.Rest() + src)
	for {
		w := c.lex.Word()
		if w == "" {
			return nil
		}
		if err := c.eval(w); err != nil {
			return TokenError{Word: w, Err: err}
		}
	}
}

// compilerWord is an immediate/defining word: invoked regardless of state.
type compilerWord func(c *Compiler) error

var compilerDict map[string]compilerWord

func init() {
	compilerDict = map[string]compilerWord{
		"(":        (*Compiler).cParen,
		"\\":       (*Compiler).cBackslash,
		":":        (*Compiler).cColon,
		";":        (*Compiler).cSemicolon,
		"constant": (*Compiler).cConstant,
		"variable": (*Compiler).cVariable,
		"allot":    (*Compiler).cAllot,
		"if":       (*Compiler).cIf,
		"then":     (*Compiler).cThen,
		"else":     (*Compiler).cElse,
		"begin":    (*Compiler).cBegin,
		"again":    (*Compiler).cAgain,
		"until":    (*Compiler).cUntil,
		"ahead":    (*Compiler).cAhead,
		"while":    (*Compiler).cWhile,
		"repeat":   (*Compiler).cRepeat,
	}
}

// eval dispatches a single token through the outer interpreter: compiler
// words run immediately, dictionary words execute or compile depending on
// state, and anything else must parse as a number.
func (c *Compiler) eval(w string) error {
	c.logf("state=%d here=%d: %s", c.state, c.img.Here(), w)

	if fn, ok := compilerDict[lower(w)]; ok {
		return fn(c)
	}

	if e, ok := c.dict.Search(w); ok {
		if c.state == StateInterpret {
			return e.Execute(c)
		}
		e.Compile(c.img)
		return nil
	}

	v, err := parseNumber(w)
	if err != nil {
		return UnknownWordError{Word: w}
	}
	if c.state == StateCompile {
		c.img.CompileLiteral(v)
	} else {
		c.push(v)
	}
	return nil
}

func lower(s string) string {
	b := []byte(s)
	for i, ch := range b {
		if ch >= 'A' && ch <= 'Z' {
			b[i] = ch + ('a' - 'A')
		}
	}
	return string(b)
}

// parseNumber parses a decimal integer, or a hexadecimal one when prefixed
// with `$`.
func parseNumber(w string) (int, error) {
	if len(w) > 0 && w[0] == '$' {
		n, err := strconv.ParseInt(w[1:], 16, 64)
		return int(n), err
	}
	n, err := strconv.ParseInt(w, 10, 64)
	return int(n), err
}
