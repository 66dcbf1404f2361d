// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClone(t *testing.T) {
	m := testModule()
	c, err := m.Clone()

	assert.Nil(t, err)
	assert.NotSame(t, m, c)
	assert.Equal(t, m.Name, c.Name)
	assert.Equal(t, len(m.Funcs), len(c.Funcs))
	assert.Equal(t, len(m.Globals), len(c.Globals))

	// growing the clone's entity lists leaves the receiver alone
	c.Globals = append(c.Globals, &GlobalVariable{Name: NameFromString("extra")})
	assert.Nil(t, m.GlobalByName("extra"))
	assert.NotNil(t, c.GlobalByName("extra"))
}
