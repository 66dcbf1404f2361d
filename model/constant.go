// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math/big"
	"strings"
)

// Constant is an owned constant value. A constant that refers to another
// global object does so through a GlobalRef leaf carrying the object's
// Name, never by embedding the object itself.
type Constant interface {
	fmt.Stringer
	isConstant()
}

// Int is an integer constant.
type Int struct {
	BitSize uint64
	X       *big.Int
}

// Float is a floating-point constant kept in its rendered literal form.
type Float struct {
	Kind FloatKind
	X    string
}

// Null is the null pointer constant.
type Null struct {
	Typ Type
}

// ZeroInit is a zeroinitializer constant.
type ZeroInit struct {
	Typ Type
}

// Undef is an undefined constant.
type Undef struct {
	Typ Type
}

// CharArray is a character array constant.
type CharArray struct {
	X []byte
}

// Array is an array constant.
type Array struct {
	Elems []Constant
}

// Vector is a vector constant.
type Vector struct {
	Elems []Constant
}

// Struct is a struct constant.
type Struct struct {
	Packed bool
	Fields []Constant
}

// GlobalRef is a reference to a global object (function, global variable
// or alias) by its assigned Name.
type GlobalRef struct {
	Name Name
	Typ  Type
}

// Expr is a constant expression with decoded operands.
type Expr struct {
	Op   string
	Args []Constant
}

// Raw carries the rendered form of a constant kind the snapshot does not
// model structurally.
type Raw struct {
	Text string
}

func (*Int) isConstant()       {}
func (*Float) isConstant()     {}
func (*Null) isConstant()      {}
func (*ZeroInit) isConstant()  {}
func (*Undef) isConstant()     {}
func (*CharArray) isConstant() {}
func (*Array) isConstant()     {}
func (*Vector) isConstant()    {}
func (*Struct) isConstant()    {}
func (*GlobalRef) isConstant() {}
func (*Expr) isConstant()      {}
func (*Raw) isConstant()       {}

func (c *Int) String() string {
	if c.X == nil {
		return "0"
	}
	return c.X.String()
}

func (c *Float) String() string     { return c.X }
func (c *Null) String() string      { return "null" }
func (c *ZeroInit) String() string  { return "zeroinitializer" }
func (c *Undef) String() string     { return "undef" }
func (c *CharArray) String() string { return fmt.Sprintf("c%q", string(c.X)) }

func joinConsts(cs []Constant) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

func (c *Array) String() string  { return "[" + joinConsts(c.Elems) + "]" }
func (c *Vector) String() string { return "<" + joinConsts(c.Elems) + ">" }

func (c *Struct) String() string {
	body := "{ " + joinConsts(c.Fields) + " }"
	if c.Packed {
		return "<" + body + ">"
	}
	return body
}

func (c *GlobalRef) String() string { return c.Name.String() }

func (c *Expr) String() string {
	return fmt.Sprintf("%s (%s)", c.Op, joinConsts(c.Args))
}

func (c *Raw) String() string { return c.Text }

// Refs returns the names of all global objects referenced anywhere in the
// constant tree, in first-occurrence order.
func Refs(c Constant) []Name {
	var (
		names []Name
		seen  = make(map[Name]bool)
	)
	var walk func(c Constant)
	walk = func(c Constant) {
		switch c := c.(type) {
		case *GlobalRef:
			if !seen[c.Name] {
				seen[c.Name] = true
				names = append(names, c.Name)
			}
		case *Array:
			for _, e := range c.Elems {
				walk(e)
			}
		case *Vector:
			for _, e := range c.Elems {
				walk(e)
			}
		case *Struct:
			for _, f := range c.Fields {
				walk(f)
			}
		case *Expr:
			for _, a := range c.Args {
				walk(a)
			}
		default:
		}
	}
	if c != nil {
		walk(c)
	}
	return names
}
