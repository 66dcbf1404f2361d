// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	a := writeTestLL(t)
	b := filepath.Join(t.TempDir(), "other.ll")
	assert.Nil(t, os.WriteFile(b, []byte("@g = global i32 0\n"), 0600))

	assert.Nil(t, Info([]string{a}))
	assert.Nil(t, Info([]string{a, b}))
}

func TestInfoRejectsInput(t *testing.T) {
	err := Info([]string{"test.c"})
	assert.NotNil(t, err)

	err = Info([]string{filepath.Join(t.TempDir(), "missing.ll")})
	assert.NotNil(t, err)
	assert.Equal(t, int(loadError), getErrorCode(err))
}
