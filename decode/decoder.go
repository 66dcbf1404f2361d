// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"sort"
	"strings"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"

	"irsnap/model"
)

// decoder carries the mutable state of one decode: the pass-1 name table,
// the type memoizer and the metadata index. It is used by a single
// goroutine; only the finished, frozen Module escapes it.
type decoder struct {
	cfg   Config
	src   *ir.Module
	names map[value.Value]model.Name
	types *typeMap
	md    *mdIndex
}

// Decode translates a deserialized foreign module graph into an owned
// snapshot. The name argument becomes the module identifier of the
// snapshot, usually the path the graph was loaded from.
func Decode(name string, src *ir.Module, cfg Config) (*model.Module, error) {
	d := &decoder{
		cfg:   cfg,
		src:   src,
		names: make(map[value.Value]model.Name),
		types: newTypeMap(),
		md:    newMDIndex(),
	}
	// Pass 1: map every global object to a Name before anything else is
	// decoded, so that circular references resolve through the table.
	d.assignNames()
	// Pass 2: decode entities in the same enumeration order.
	return d.run(name)
}

func (d *decoder) run(name string) (*model.Module, error) {
	m := &model.Module{
		Name:           name,
		SourceFilename: d.src.SourceFilename,
		DataLayout:     d.src.DataLayout,
		TargetTriple:   d.src.TargetTriple,
		InlineAsm:      strings.Join(d.src.ModuleAsms, "\n"),
	}

	// Named type slots in declaration order. References encountered later
	// find their slot already registered.
	for _, t := range d.src.TypeDefs {
		d.decodeType(t)
	}

	// Module-level metadata definitions in declaration order, so NodeIDs
	// do not depend on which entity happens to reference a node first.
	for _, def := range d.src.MetadataDefs {
		if _, err := d.identifyMD(def); err != nil {
			return nil, err
		}
	}

	for _, f := range d.src.Funcs {
		if len(f.Blocks) == 0 {
			// Declared-only functions are referenced through their Name;
			// they are not retained as entities.
			continue
		}
		fn, err := d.decodeFunc(f)
		if err != nil {
			return nil, err
		}
		m.Funcs = append(m.Funcs, fn)
	}
	for _, g := range d.src.Globals {
		gv, err := d.decodeGlobal(g)
		if err != nil {
			return nil, err
		}
		m.Globals = append(m.Globals, gv)
	}
	for _, a := range d.src.Aliases {
		ga, err := d.decodeAlias(a)
		if err != nil {
			return nil, err
		}
		m.Aliases = append(m.Aliases, ga)
	}
	for _, c := range d.src.ComdatDefs {
		m.Comdats = append(m.Comdats, model.Comdat{
			Name: c.Name,
			Kind: selectionFromIR(c.Kind),
		})
	}

	// Named metadata entries in sorted-name order; the source exposes them
	// as a map, and the snapshot must not depend on its iteration order.
	names := make([]string, 0, len(d.src.NamedMetadataDefs))
	for n := range d.src.NamedMetadataDefs {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		nmd, err := d.decodeNamedMetadata(d.src.NamedMetadataDefs[n])
		if err != nil {
			return nil, err
		}
		m.NamedMetadata = append(m.NamedMetadata, nmd)
	}

	// Freeze: hand the decode-time tables to the module. No decode-time
	// state is reachable from the result after this point.
	m.TypeDefs = d.types.defs
	m.MetadataNodes = d.md.nodes
	return m, nil
}
