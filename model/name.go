// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

import "fmt"

// Name identifies a global object, either by the textual name it carries
// in the source or by a sequence number synthesized for unnamed objects.
// Name is a comparable value type and can be used as a map key.
type Name struct {
	Str      string
	Num      int64
	Numbered bool
}

// NameFromString returns a textual Name.
func NameFromString(s string) Name {
	return Name{Str: s}
}

// NameFromNum returns a synthesized numeric Name.
func NameFromNum(n int64) Name {
	return Name{Num: n, Numbered: true}
}

// String renders the name with the global-object sigil, e.g. "@foo" or "@3".
func (n Name) String() string {
	if n.Numbered {
		return fmt.Sprintf("@%d", n.Num)
	}
	return "@" + n.Str
}
