// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameString(t *testing.T) {
	testCases := []struct {
		n Name
		s string
	}{
		{NameFromString("foo"), "@foo"},
		{NameFromString(""), "@"},
		{NameFromNum(0), "@0"},
		{NameFromNum(42), "@42"},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc.s, tc.n.String())
		})
	}
}

func TestNameComparable(t *testing.T) {
	assert.Equal(t, NameFromString("a"), NameFromString("a"))
	assert.NotEqual(t, NameFromString("0"), NameFromNum(0))
	assert.NotEqual(t, NameFromNum(0), NameFromNum(1))

	m := map[Name]bool{NameFromNum(3): true}
	assert.True(t, m[NameFromNum(3)])
	assert.False(t, m[NameFromString("3")])
}
