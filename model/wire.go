// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// The in-memory type graph is cyclic through shared NamedType slots. On
// the wire a named type flattens to its name and the module carries one
// name-to-definition table, so serialized snapshots stay acyclic.

// MarshalJSON encodes the slot as a reference to its name.
func (t *NamedType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Named string
	}{t.TypeName})
}

// EncodeMsgpack encodes the slot as a reference to its name.
func (t *NamedType) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString("%" + t.TypeName)
}

// moduleWire is the serialization view of a Module: TypeDefs maps each
// name to the definition itself (nil for opaque types) while every
// reference inside a definition is by name.
type moduleWire struct {
	Name           string
	SourceFilename string
	DataLayout     string
	TargetTriple   string
	Funcs          []*Function
	Globals        []*GlobalVariable
	Aliases        []*GlobalAlias
	TypeDefs       map[string]Type
	Comdats        []Comdat
	InlineAsm      string
	MetadataNodes  map[NodeID]*Node
	NamedMetadata  []NamedMetadata
}

func (m *Module) wire() *moduleWire {
	defs := make(map[string]Type, len(m.TypeDefs))
	for name, slot := range m.TypeDefs {
		defs[name] = slot.Def
	}
	return &moduleWire{
		Name:           m.Name,
		SourceFilename: m.SourceFilename,
		DataLayout:     m.DataLayout,
		TargetTriple:   m.TargetTriple,
		Funcs:          m.Funcs,
		Globals:        m.Globals,
		Aliases:        m.Aliases,
		TypeDefs:       defs,
		Comdats:        m.Comdats,
		InlineAsm:      m.InlineAsm,
		MetadataNodes:  m.MetadataNodes,
		NamedMetadata:  m.NamedMetadata,
	}
}

// MarshalJSON serializes the module in its acyclic wire form.
func (m *Module) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.wire())
}

// EncodeMsgpack serializes the module in its acyclic wire form.
func (m *Module) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(m.wire())
}
