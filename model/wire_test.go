// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vmihailenco/msgpack/v5"
)

// The type graph is cyclic through shared NamedType slots; serialization
// must flatten the cycle instead of following it.
func TestMarshalSelfReferentialType(t *testing.T) {
	m := testModule()

	b, err := json.Marshal(m)
	assert.Nil(t, err)
	assert.Contains(t, string(b), `"Named":"node"`)

	_, err = msgpack.Marshal(m)
	assert.Nil(t, err)
}

func TestMarshalOpaqueType(t *testing.T) {
	m := &Module{
		Name:     "opaque.ll",
		TypeDefs: map[string]*NamedType{"opq": {TypeName: "opq"}},
	}
	b, err := json.MarshalIndent(m, "", "  ")
	assert.Nil(t, err)
	assert.Contains(t, string(b), `"opq": null`)
}

func TestNamedTypeMarshalJSON(t *testing.T) {
	slot := &NamedType{TypeName: "pair"}
	b, err := json.Marshal(slot)
	assert.Nil(t, err)
	assert.Equal(t, `{"Named":"pair"}`, string(b))
}
