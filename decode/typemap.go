// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"github.com/llir/llvm/ir/types"

	"irsnap/model"
)

// typeMap memoizes named types. A slot is registered before the type body
// is constructed, so a recursive reference to the same name finds the
// still-empty slot and shares it instead of re-entering construction.
type typeMap struct {
	defs map[string]*model.NamedType
}

func newTypeMap() *typeMap {
	return &typeMap{defs: make(map[string]*model.NamedType)}
}

// resolve returns the slot for name, creating it first and then invoking
// construct to populate it. Once populated, a slot is never replaced. A
// slot whose construct returned nil stays empty: that is the final state
// of an opaque type declaration.
func (tm *typeMap) resolve(name string, construct func() model.Type) *model.NamedType {
	if slot, ok := tm.defs[name]; ok {
		return slot
	}
	slot := &model.NamedType{TypeName: name}
	tm.defs[name] = slot
	slot.Def = construct()
	return slot
}

// typeName returns the declared name of a type, or "" for literal types.
func typeName(t types.Type) string {
	type named interface{ Name() string }
	if n, ok := t.(named); ok {
		return n.Name()
	}
	return ""
}

// decodeType translates a foreign type. Named types resolve through the
// memoizer; anonymous types are constructed inline on every occurrence.
func (d *decoder) decodeType(t types.Type) model.Type {
	if name := typeName(t); name != "" {
		return d.types.resolve(name, func() model.Type {
			return d.decodeTypeBody(t)
		})
	}
	return d.decodeTypeBody(t)
}

func (d *decoder) decodeTypeBody(t types.Type) model.Type {
	switch t := t.(type) {
	case *types.VoidType:
		return &model.VoidType{}
	case *types.IntType:
		return &model.IntType{BitSize: t.BitSize}
	case *types.FloatType:
		return &model.FloatType{Kind: floatKindFromIR(t.Kind)}
	case *types.PointerType:
		return &model.PointerType{
			Elem:      d.decodeType(t.ElemType),
			AddrSpace: uint64(t.AddrSpace),
		}
	case *types.ArrayType:
		return &model.ArrayType{Len: t.Len, Elem: d.decodeType(t.ElemType)}
	case *types.VectorType:
		return &model.VectorType{
			Len:      t.Len,
			Scalable: t.Scalable,
			Elem:     d.decodeType(t.ElemType),
		}
	case *types.StructType:
		if t.Opaque {
			// The slot of an opaque declaration is left empty.
			return nil
		}
		fields := make([]model.Type, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = d.decodeType(f)
		}
		return &model.StructType{Packed: t.Packed, Fields: fields}
	case *types.FuncType:
		params := make([]model.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = d.decodeType(p)
		}
		return &model.FuncType{
			Ret:      d.decodeType(t.RetType),
			Params:   params,
			Variadic: t.Variadic,
		}
	case *types.LabelType:
		return &model.LabelType{}
	case *types.MetadataType:
		return &model.MetadataType{}
	case *types.TokenType:
		return &model.TokenType{}
	default:
		return &model.RawType{Text: t.String()}
	}
}
