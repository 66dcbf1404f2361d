// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"fmt"
	"testing"

	"github.com/llir/llvm/ir/enum"
	"github.com/stretchr/testify/assert"

	"irsnap/model"
)

func TestSelectionFromIR(t *testing.T) {
	testCases := []struct {
		in  enum.SelectionKind
		out model.SelectionKind
	}{
		{enum.SelectionKindAny, model.SelectionAny},
		{enum.SelectionKindExactMatch, model.SelectionExactMatch},
		{enum.SelectionKindLargest, model.SelectionLargest},
		{enum.SelectionKindNoDeduplicate, model.SelectionNoDeduplicate},
		{enum.SelectionKindSameSize, model.SelectionSameSize},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc.out), func(t *testing.T) {
			assert.Equal(t, tc.out, selectionFromIR(tc.in))
		})
	}
}

func TestLinkageFromIR(t *testing.T) {
	testCases := []struct {
		in  enum.Linkage
		out model.Linkage
	}{
		{enum.LinkageNone, model.External},
		{enum.LinkageExternal, model.External},
		{enum.LinkageInternal, model.Internal},
		{enum.LinkagePrivate, model.Private},
		{enum.LinkageLinkOnceODR, model.LinkOnceODR},
		{enum.LinkageWeak, model.WeakAny},
		{enum.LinkageCommon, model.Common},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc.out), func(t *testing.T) {
			assert.Equal(t, tc.out, linkageFromIR(tc.in))
		})
	}
}
