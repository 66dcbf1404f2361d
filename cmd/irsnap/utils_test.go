// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsArgsn(t *testing.T) {
	assert.NotNil(t, IsArgsn(nil, []string{}))
	assert.Nil(t, IsArgsn(nil, []string{"a.ll"}))
	assert.Nil(t, IsArgsn(nil, []string{"a.ll", "b.ll"}))
}

func TestOnlyLL(t *testing.T) {
	testCases := []struct {
		args []string
		fail bool
	}{
		{args: []string{"a.ll"}},
		{args: []string{"a.ll", "dir/b.ll"}},
		{args: []string{"a.c"}, fail: true},
		{args: []string{"a.ll", "b.bc"}, fail: true},
		{args: []string{"a.ll.bak"}, fail: true},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc.args), func(t *testing.T) {
			err := onlyLL(tc.args)
			if tc.fail {
				assert.NotNil(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}
