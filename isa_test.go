package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_classify(t *testing.T) {
	for _, tc := range []struct {
		name string
		op   uint16
		want opClass
	}{
		{"LIT zero", 0x8000, classLit},
		{"LIT payload", 0x8100, classLit},
		{"0BRANCH zero", opZBRANCH, classZBranch},
		{"0BRANCH with target", opZBRANCH | 5, classZBranch},
		{"BRANCH zero", opBRANCH, classBranch},
		{"BRANCH with target", opBRANCH | 5, classBranch},
		{"CALL zero", opCALL, classCall},
		{"CALL with target", opCALL | 5, classCall},
		{"DUP is other", opDUP, classOther},
		{"EXIT is other", opEXIT, classOther},
		{"NOP is other", opNOP, classOther},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classify(tc.op))
		})
	}
}

func Test_classMnemonic(t *testing.T) {
	assert.Equal(t, "BRANCH", classMnemonic(classBranch))
	assert.Equal(t, "0BRANCH", classMnemonic(classZBranch))
	assert.Equal(t, "CALL", classMnemonic(classCall))
	assert.Equal(t, "", classMnemonic(classOther))
	assert.Equal(t, "", classMnemonic(classLit))
}

func Test_primitiveEncodings(t *testing.T) {
	// These are load-bearing contracts; any drift here would silently
	// desync the compiler from the target CPU.
	want := map[string]uint16{
		"NOP": 0x0800, "INVERT": 0x0700, "2/": 0x0200, "0=": 0x0300,
		"AND": 0x06c0, "OR": 0x05c0, "XOR": 0x04c0, "+": 0x00c0, "-": 0x01c0,
		"DUP": 0x0840, "SWAP": 0x0980, "DROP": 0x09c0, ">R": 0x09d0,
		"R>": 0x0a70, "R@": 0x0a40, "BRANCH": 0x4000, "0BRANCH": 0x6000,
		"CALL": 0x2000, "EXECUTE": 0x09e0, "EXIT": 0x1830, "!+": 0x0dc0,
		"@": 0x0c00, "LIT": 0x8000,
	}
	got := make(map[string]uint16, len(primitives))
	for _, p := range primitives {
		got[p.name] = p.op
	}
	assert.Equal(t, want, got)
}
