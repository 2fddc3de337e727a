package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Dictionary_Search_caseInsensitive(t *testing.T) {
	d := NewDictionary()
	for _, w := range []string{"dup", "DUP", "Dup", "dUp"} {
		e, ok := d.Search(w)
		if assert.True(t, ok, w) {
			assert.Equal(t, "DUP", e.Name())
		}
	}
}

func Test_Dictionary_Search_notFound(t *testing.T) {
	d := NewDictionary()
	_, ok := d.Search("nonesuch")
	assert.False(t, ok)
}

func Test_Dictionary_Define_shadowsNewestFirst(t *testing.T) {
	d := NewDictionary()
	d.Define(Thread{name: "square", addr: 10})
	d.Define(Thread{name: "square", addr: 20})

	e, ok := d.Search("square")
	if assert.True(t, ok) {
		th, ok := e.(Thread)
		if assert.True(t, ok) {
			assert.Equal(t, 20, th.addr, "the later definition must shadow the earlier one")
		}
	}
}

func Test_Dictionary_Define_canShadowAPrimitive(t *testing.T) {
	d := NewDictionary()
	d.Define(Thread{name: "dup", addr: 5})

	e, ok := d.Search("DUP")
	if assert.True(t, ok) {
		_, isThread := e.(Thread)
		assert.True(t, isThread, "a user word must shadow a same-named primitive")
	}
}

func Test_Dictionary_AddrName(t *testing.T) {
	d := NewDictionary()
	d.Define(Thread{name: "square", addr: 10})
	d.Define(Literal{name: "flag", val: 1})

	name, ok := d.AddrName(10)
	assert.True(t, ok)
	assert.Equal(t, "square", name)

	_, ok = d.AddrName(1)
	assert.False(t, ok, "a Literal is not addressable as a code word")

	_, ok = d.AddrName(99)
	assert.False(t, ok)
}

func Test_Entry_Execute(t *testing.T) {
	c := NewCompiler(nil, nil)

	err := Primitive{name: "DUP", op: opDUP}.Execute(c)
	assert.Error(t, err)

	err = Thread{name: "square", addr: 10}.Execute(c)
	assert.Error(t, err)

	err = Literal{name: "flag", val: 42}.Execute(c)
	assert.NoError(t, err)
	v, err := c.pop()
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

func Test_Entry_Compile(t *testing.T) {
	img := NewImage()

	Primitive{name: "DUP", op: opDUP}.Compile(img)
	Thread{name: "square", addr: 7}.Compile(img)
	Literal{name: "flag", val: 3}.Compile(img)

	assert.Equal(t, []uint16{opDUP, opCALL | 7, opLIT | 3}, img.words[1:])
}
