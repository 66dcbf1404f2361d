// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

// GlobalVariable is an owned global variable.
type GlobalVariable struct {
	Name            Name
	Linkage         Linkage
	Visibility      Visibility
	IsConstant      bool
	Typ             Type
	AddrSpace       uint64
	DLLStorageClass DLLStorageClass
	ThreadLocal     ThreadLocalMode
	UnnamedAddr     UnnamedAddr
	ExternInit      bool
	Init            Constant
	Section         string
	Comdat          *Comdat
	Align           uint64
	Metadata        []Attachment
}

// GlobalAlias is an owned global alias.
type GlobalAlias struct {
	Name            Name
	Aliasee         Constant
	Linkage         Linkage
	Visibility      Visibility
	Typ             Type
	AddrSpace       uint64
	DLLStorageClass DLLStorageClass
	ThreadLocal     ThreadLocalMode
	UnnamedAddr     UnnamedAddr
}

// Module is the root snapshot value. It owns every entity transitively and
// is immutable once the decoder returns it.
type Module struct {
	Name           string
	SourceFilename string
	DataLayout     string
	TargetTriple   string
	Funcs          []*Function
	Globals        []*GlobalVariable
	Aliases        []*GlobalAlias
	TypeDefs       map[string]*NamedType
	Comdats        []Comdat
	InlineAsm      string
	MetadataNodes  map[NodeID]*Node
	NamedMetadata  []NamedMetadata
}

// FuncByName returns the defined function with the given name, if any.
func (m *Module) FuncByName(name string) *Function {
	want := NameFromString(name)
	for _, f := range m.Funcs {
		if f.Name == want {
			return f
		}
	}
	return nil
}

// GlobalByName returns the global variable with the given name, if any.
func (m *Module) GlobalByName(name string) *GlobalVariable {
	want := NameFromString(name)
	for _, g := range m.Globals {
		if g.Name == want {
			return g
		}
	}
	return nil
}

// AliasByName returns the global alias with the given name, if any.
func (m *Module) AliasByName(name string) *GlobalAlias {
	want := NameFromString(name)
	for _, a := range m.Aliases {
		if a.Name == want {
			return a
		}
	}
	return nil
}

// TypeDef returns the named-type slot for name. The second result is false
// when the module declares no type with that name.
func (m *Module) TypeDef(name string) (*NamedType, bool) {
	t, ok := m.TypeDefs[name]
	return t, ok
}

// Metadata returns the decoded metadata node with the given ID, if any.
func (m *Module) Metadata(id NodeID) *Node {
	return m.MetadataNodes[id]
}
