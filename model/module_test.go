// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testModule() *Module {
	node := &NamedType{TypeName: "node"}
	node.Def = &StructType{Fields: []Type{
		&IntType{BitSize: 64},
		&PointerType{Elem: node},
	}}
	return &Module{
		Name: "test.ll",
		Funcs: []*Function{
			{Name: NameFromString("main"), RetType: &IntType{BitSize: 32}},
		},
		Globals: []*GlobalVariable{
			{Name: NameFromString("g"), Typ: &PointerType{Elem: &IntType{BitSize: 32}}},
			{Name: NameFromNum(0), Typ: &PointerType{Elem: &IntType{BitSize: 8}}},
		},
		Aliases: []*GlobalAlias{
			{Name: NameFromString("ga"), Aliasee: &GlobalRef{Name: NameFromString("g")}},
		},
		TypeDefs: map[string]*NamedType{"node": node},
		MetadataNodes: map[NodeID]*Node{
			0: {ID: 0, Fields: []MDField{&MDString{Value: "zero"}}},
		},
	}
}

func TestModuleByName(t *testing.T) {
	m := testModule()

	assert.NotNil(t, m.FuncByName("main"))
	assert.Nil(t, m.FuncByName("missing"))

	assert.NotNil(t, m.GlobalByName("g"))
	// numeric names do not match their textual spelling
	assert.Nil(t, m.GlobalByName("0"))

	assert.NotNil(t, m.AliasByName("ga"))
	assert.Nil(t, m.AliasByName("g"))
}

func TestModuleTypeDef(t *testing.T) {
	m := testModule()

	slot, ok := m.TypeDef("node")
	assert.True(t, ok)
	assert.False(t, slot.Opaque())

	_, ok = m.TypeDef("missing")
	assert.False(t, ok)
}

func TestModuleMetadata(t *testing.T) {
	m := testModule()
	assert.NotNil(t, m.Metadata(0))
	assert.Nil(t, m.Metadata(7))
}
