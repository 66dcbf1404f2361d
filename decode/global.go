// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"fmt"

	"github.com/llir/llvm/ir"

	"irsnap/logger"
	"irsnap/model"
)

// decodeGlobal translates one foreign global variable into its owned form.
func (d *decoder) decodeGlobal(g *ir.Global) (*model.GlobalVariable, error) {
	typ := d.decodeType(g.Type())
	logger.Debugf("decode global %v: %v", d.names[g], typ)

	addrSpace, err := pointerAddrSpace(typ)
	if err != nil {
		return nil, structErrf("global %v: %v", d.names[g], err)
	}
	gv := &model.GlobalVariable{
		Name:            d.names[g],
		Linkage:         linkageFromIR(g.Linkage),
		Visibility:      visibilityFromIR(g.Visibility),
		IsConstant:      g.Immutable,
		Typ:             typ,
		AddrSpace:       addrSpace,
		DLLStorageClass: storageClassFromIR(g.DLLStorageClass),
		ThreadLocal:     tlsModeFromIR(g.TLSModel),
		UnnamedAddr:     unnamedAddrFromIR(g.UnnamedAddr),
		ExternInit:      g.ExternallyInitialized,
		Section:         g.Section,
		Align:           uint64(g.Align),
	}
	if g.Init != nil {
		val, err := d.decodeConstant(g.Init)
		if err != nil {
			return nil, err
		}
		gv.Init = val
	}
	if g.Comdat != nil {
		gv.Comdat = &model.Comdat{
			Name: g.Comdat.Name,
			Kind: selectionFromIR(g.Comdat.Kind),
		}
	}
	md, err := d.decodeAttachments(g.Metadata)
	if err != nil {
		return nil, err
	}
	gv.Metadata = md
	return gv, nil
}

// decodeAlias translates one foreign global alias into its owned form.
func (d *decoder) decodeAlias(a *ir.Alias) (*model.GlobalAlias, error) {
	typ := d.decodeType(a.Type())
	addrSpace, err := pointerAddrSpace(typ)
	if err != nil {
		return nil, structErrf("alias %v: %v", d.names[a], err)
	}
	if a.Aliasee == nil {
		return nil, structErrf("alias %v: missing aliasee", d.names[a])
	}
	aliasee, err := d.decodeConstant(a.Aliasee)
	if err != nil {
		return nil, err
	}
	return &model.GlobalAlias{
		Name:            d.names[a],
		Aliasee:         aliasee,
		Linkage:         linkageFromIR(a.Linkage),
		Visibility:      visibilityFromIR(a.Visibility),
		Typ:             typ,
		AddrSpace:       addrSpace,
		DLLStorageClass: storageClassFromIR(a.DLLStorageClass),
		ThreadLocal:     tlsModeFromIR(a.TLSModel),
		UnnamedAddr:     unnamedAddrFromIR(a.UnnamedAddr),
	}, nil
}

// pointerAddrSpace returns the address space of a pointer type. Global
// objects always have pointer type in well-formed IR; anything else is a
// structural violation of the input format, reported rather than ignored.
func pointerAddrSpace(t model.Type) (uint64, error) {
	p, ok := t.(*model.PointerType)
	if !ok {
		return 0, fmt.Errorf("non-pointer type %v", t)
	}
	return p.AddrSpace, nil
}
