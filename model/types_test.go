// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	i8 := &IntType{BitSize: 8}
	testCases := []struct {
		typ Type
		s   string
	}{
		{&VoidType{}, "void"},
		{i8, "i8"},
		{&FloatType{Kind: FloatDouble}, "double"},
		{&PointerType{Elem: i8}, "i8*"},
		{&PointerType{Elem: i8, AddrSpace: 1}, "i8 addrspace(1)*"},
		{&ArrayType{Len: 4, Elem: i8}, "[4 x i8]"},
		{&VectorType{Len: 2, Elem: i8}, "<2 x i8>"},
		{&VectorType{Len: 2, Scalable: true, Elem: i8}, "<vscale x 2 x i8>"},
		{&StructType{Fields: []Type{i8, i8}}, "{ i8, i8 }"},
		{&StructType{Packed: true, Fields: []Type{i8}}, "<{ i8 }>"},
		{&StructType{}, "{}"},
		{&FuncType{Ret: &VoidType{}, Params: []Type{i8}, Variadic: true}, "void (i8, ...)"},
		{&NamedType{TypeName: "node"}, "%node"},
		{&RawType{Text: "x86_mmx"}, "x86_mmx"},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc.s), func(t *testing.T) {
			assert.Equal(t, tc.s, tc.typ.String())
		})
	}
}
