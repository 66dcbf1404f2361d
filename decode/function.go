// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/value"

	"irsnap/logger"
	"irsnap/model"
)

// decodeFunc translates one defined function into its owned form.
// Instruction records keep the rendered instruction text plus the Names of
// every global object the instruction references, resolved through the
// pass-1 table.
func (d *decoder) decodeFunc(f *ir.Func) (*model.Function, error) {
	logger.Debugf("decode function %v", d.names[f])

	sig := f.Sig
	fn := &model.Function{
		Name:            d.names[f],
		Linkage:         linkageFromIR(f.Linkage),
		Visibility:      visibilityFromIR(f.Visibility),
		DLLStorageClass: storageClassFromIR(f.DLLStorageClass),
		CallingConv:     callingConvString(f.CallingConv),
		UnnamedAddr:     unnamedAddrFromIR(f.UnnamedAddr),
		RetType:         d.decodeType(sig.RetType),
		Variadic:        sig.Variadic,
	}
	for _, p := range f.Params {
		fn.Params = append(fn.Params, model.Param{
			Name: p.LocalName,
			Typ:  d.decodeType(p.Typ),
		})
	}
	md, err := d.decodeAttachments(f.Metadata)
	if err != nil {
		return nil, err
	}
	fn.Metadata = md

	if !d.cfg.Bodies {
		return fn, nil
	}
	for _, b := range f.Blocks {
		blk := model.Block{Name: b.LocalName}
		for _, inst := range b.Insts {
			rec, err := d.instRecord(inst)
			if err != nil {
				return nil, err
			}
			blk.Insts = append(blk.Insts, rec)
		}
		term, err := d.instRecord(b.Term)
		if err != nil {
			return nil, err
		}
		blk.Term = term
		fn.Blocks = append(fn.Blocks, blk)
	}
	return fn, nil
}

type withOperands interface {
	Operands() []*value.Value
}

func (d *decoder) instRecord(v interface{ LLString() string }) (model.Inst, error) {
	rec := model.Inst{Text: v.LLString()}
	ops, ok := v.(withOperands)
	if !ok {
		return rec, nil
	}
	seen := make(map[model.Name]bool)
	for _, op := range ops.Operands() {
		if op == nil || *op == nil {
			continue
		}
		names, err := d.valueRefs(*op)
		if err != nil {
			return rec, err
		}
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				rec.Globals = append(rec.Globals, n)
			}
		}
	}
	return rec, nil
}

// valueRefs returns the global objects referenced by one operand value.
// Local values carry no global references.
func (d *decoder) valueRefs(v value.Value) ([]model.Name, error) {
	c, ok := v.(constant.Constant)
	if !ok {
		return nil, nil
	}
	mc, err := d.decodeConstant(c)
	if err != nil {
		return nil, err
	}
	return model.Refs(mc), nil
}
