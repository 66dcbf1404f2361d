// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefsLeaf(t *testing.T) {
	assert.Empty(t, Refs(&Int{BitSize: 32, X: big.NewInt(1)}))
	assert.Empty(t, Refs(nil))

	names := Refs(&GlobalRef{Name: NameFromString("g")})
	assert.Equal(t, []Name{NameFromString("g")}, names)
}

func TestRefsNested(t *testing.T) {
	var (
		a = NameFromString("a")
		b = NameFromString("b")
	)
	c := &Struct{Fields: []Constant{
		&GlobalRef{Name: a},
		&Array{Elems: []Constant{
			&Expr{Op: "bitcast", Args: []Constant{&GlobalRef{Name: b}}},
			&GlobalRef{Name: a},
		}},
	}}
	assert.Equal(t, []Name{a, b}, Refs(c))
}

func TestConstantString(t *testing.T) {
	testCases := []struct {
		c Constant
		s string
	}{
		{&Int{BitSize: 8, X: big.NewInt(-3)}, "-3"},
		{&Null{}, "null"},
		{&ZeroInit{}, "zeroinitializer"},
		{&CharArray{X: []byte("hi")}, `c"hi"`},
		{&Array{Elems: []Constant{&Null{}, &Undef{}}}, "[null, undef]"},
		{&GlobalRef{Name: NameFromNum(2)}, "@2"},
		{&Expr{Op: "ptrtoint", Args: []Constant{&GlobalRef{Name: NameFromString("g")}}}, "ptrtoint (@g)"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.s, tc.c.String())
	}
}
