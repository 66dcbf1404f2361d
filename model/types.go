// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"strings"
)

// Type is an owned LLVM-IR type.
type Type interface {
	fmt.Stringer
	isType()
}

// NamedType is the slot shared by every reference to a named type. Def is
// nil while the slot is unresolved during decode; a Def that is still nil
// once decode has finished denotes an opaque type declaration. The same
// slot object backs the definition and all reference sites, which is what
// lets self-referential types terminate.
type NamedType struct {
	TypeName string
	Def      Type
}

// VoidType is the void type.
type VoidType struct{}

// IntType is an integer type of arbitrary bit width.
type IntType struct {
	BitSize uint64
}

// FloatKind distinguishes floating-point types.
type FloatKind int

const (
	FloatHalf FloatKind = iota
	FloatSingle
	FloatDouble
	FloatFP128
	FloatX86FP80
	FloatPPCFP128
	FloatOther
)

// FloatType is a floating-point type.
type FloatType struct {
	Kind FloatKind
}

// PointerType is an address-space-qualified pointer type.
type PointerType struct {
	Elem      Type
	AddrSpace uint64
}

// ArrayType is a fixed-length array type.
type ArrayType struct {
	Len  uint64
	Elem Type
}

// VectorType is a SIMD vector type.
type VectorType struct {
	Len      uint64
	Scalable bool
	Elem     Type
}

// StructType is an anonymous (literal) struct type. Named structs are
// reached through their NamedType slot instead.
type StructType struct {
	Packed bool
	Fields []Type
}

// FuncType is a function signature type.
type FuncType struct {
	Ret      Type
	Params   []Type
	Variadic bool
}

// LabelType is the type of basic-block labels.
type LabelType struct{}

// MetadataType is the type of metadata values.
type MetadataType struct{}

// TokenType is the token type.
type TokenType struct{}

// RawType carries the rendered form of a type kind the snapshot does not
// model structurally.
type RawType struct {
	Text string
}

func (*NamedType) isType()    {}
func (*VoidType) isType()     {}
func (*IntType) isType()      {}
func (*FloatType) isType()    {}
func (*PointerType) isType()  {}
func (*ArrayType) isType()    {}
func (*VectorType) isType()   {}
func (*StructType) isType()   {}
func (*FuncType) isType()     {}
func (*LabelType) isType()    {}
func (*MetadataType) isType() {}
func (*TokenType) isType()    {}
func (*RawType) isType()      {}

func (t *NamedType) String() string { return "%" + t.TypeName }
func (*VoidType) String() string    { return "void" }
func (t *IntType) String() string   { return fmt.Sprintf("i%d", t.BitSize) }

func (t *FloatType) String() string {
	switch t.Kind {
	case FloatHalf:
		return "half"
	case FloatSingle:
		return "float"
	case FloatDouble:
		return "double"
	case FloatFP128:
		return "fp128"
	case FloatX86FP80:
		return "x86_fp80"
	case FloatPPCFP128:
		return "ppc_fp128"
	}
	return "float"
}

func (t *PointerType) String() string {
	if t.AddrSpace != 0 {
		return fmt.Sprintf("%v addrspace(%d)*", t.Elem, t.AddrSpace)
	}
	return fmt.Sprintf("%v*", t.Elem)
}

func (t *ArrayType) String() string {
	return fmt.Sprintf("[%d x %v]", t.Len, t.Elem)
}

func (t *VectorType) String() string {
	if t.Scalable {
		return fmt.Sprintf("<vscale x %d x %v>", t.Len, t.Elem)
	}
	return fmt.Sprintf("<%d x %v>", t.Len, t.Elem)
}

func (t *StructType) String() string {
	fields := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		fields[i] = f.String()
	}
	body := "{ " + strings.Join(fields, ", ") + " }"
	if len(t.Fields) == 0 {
		body = "{}"
	}
	if t.Packed {
		return "<" + body + ">"
	}
	return body
}

func (t *FuncType) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	if t.Variadic {
		params = append(params, "...")
	}
	return fmt.Sprintf("%v (%s)", t.Ret, strings.Join(params, ", "))
}

func (*LabelType) String() string    { return "label" }
func (*MetadataType) String() string { return "metadata" }
func (*TokenType) String() string    { return "token" }
func (t *RawType) String() string    { return t.Text }

// Opaque reports whether the named type was declared without a definition.
func (t *NamedType) Opaque() bool { return t.Def == nil }
