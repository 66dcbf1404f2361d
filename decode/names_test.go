// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"irsnap/model"
)

func TestNameOrNum(t *testing.T) {
	testCases := []struct {
		names []string
		want  []model.Name
	}{
		{[]string{"a", "b"}, []model.Name{
			model.NameFromString("a"),
			model.NameFromString("b"),
		}},
		{[]string{"", ""}, []model.Name{
			model.NameFromNum(0),
			model.NameFromNum(1),
		}},
		{[]string{"a", "", "b", ""}, []model.Name{
			model.NameFromString("a"),
			model.NameFromNum(0),
			model.NameFromString("b"),
			model.NameFromNum(1),
		}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc.names), func(t *testing.T) {
			var ctr int64
			got := make([]model.Name, 0, len(tc.names))
			for _, n := range tc.names {
				got = append(got, nameOrNum(n, &ctr))
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
