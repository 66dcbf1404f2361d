// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"math/big"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/value"

	"irsnap/model"
)

// decodeConstant translates a foreign constant into its owned form. A leaf
// that names another global object becomes a GlobalRef resolved through
// the pass-1 name table; the referenced object is never decoded from here,
// which is what makes circular initializers terminate.
func (d *decoder) decodeConstant(c constant.Constant) (model.Constant, error) {
	switch c := c.(type) {
	case *ir.Global:
		return d.globalRef(c)
	case *ir.Func:
		return d.globalRef(c)
	case *ir.Alias:
		return d.globalRef(c)
	case *constant.Int:
		return &model.Int{
			BitSize: c.Typ.BitSize,
			X:       new(big.Int).Set(c.X),
		}, nil
	case *constant.Float:
		return &model.Float{
			Kind: floatKindFromIR(c.Typ.Kind),
			X:    c.Ident(),
		}, nil
	case *constant.Null:
		return &model.Null{Typ: d.decodeType(c.Typ)}, nil
	case *constant.ZeroInitializer:
		return &model.ZeroInit{Typ: d.decodeType(c.Typ)}, nil
	case *constant.Undef:
		return &model.Undef{Typ: d.decodeType(c.Typ)}, nil
	case *constant.CharArray:
		return &model.CharArray{X: append([]byte(nil), c.X...)}, nil
	case *constant.Array:
		elems, err := d.decodeConstants(c.Elems)
		if err != nil {
			return nil, err
		}
		return &model.Array{Elems: elems}, nil
	case *constant.Vector:
		elems, err := d.decodeConstants(c.Elems)
		if err != nil {
			return nil, err
		}
		return &model.Vector{Elems: elems}, nil
	case *constant.Struct:
		fields, err := d.decodeConstants(c.Fields)
		if err != nil {
			return nil, err
		}
		return &model.Struct{Packed: c.Typ.Packed, Fields: fields}, nil
	case *constant.ExprBitCast:
		return d.castExpr("bitcast", c.From)
	case *constant.ExprPtrToInt:
		return d.castExpr("ptrtoint", c.From)
	case *constant.ExprIntToPtr:
		return d.castExpr("inttoptr", c.From)
	case *constant.ExprAddrSpaceCast:
		return d.castExpr("addrspacecast", c.From)
	case *constant.ExprGetElementPtr:
		args := make([]model.Constant, 0, len(c.Indices)+1)
		src, err := d.decodeConstant(c.Src)
		if err != nil {
			return nil, err
		}
		args = append(args, src)
		for _, idx := range c.Indices {
			arg, err := d.decodeConstant(idx)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return &model.Expr{Op: "getelementptr", Args: args}, nil
	default:
		// Rarer constant kinds keep their rendered form.
		return &model.Raw{Text: c.Ident()}, nil
	}
}

func (d *decoder) decodeConstants(cs []constant.Constant) ([]model.Constant, error) {
	out := make([]model.Constant, len(cs))
	for i, c := range cs {
		v, err := d.decodeConstant(c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (d *decoder) castExpr(op string, from constant.Constant) (model.Constant, error) {
	arg, err := d.decodeConstant(from)
	if err != nil {
		return nil, err
	}
	return &model.Expr{Op: op, Args: []model.Constant{arg}}, nil
}

func (d *decoder) globalRef(v value.Value) (model.Constant, error) {
	name, ok := d.globalName(v)
	if !ok {
		return nil, structErrf("reference to unknown global %v", v.Ident())
	}
	return &model.GlobalRef{Name: name, Typ: d.decodeType(v.Type())}, nil
}
