// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Clone returns a copy of the module with fresh top-level slices and maps.
// Entities are immutable once decoded, so the copy shares them with the
// receiver.
func (m *Module) Clone() (*Module, error) {
	c := new(Module)
	if err := copier.Copy(c, m); err != nil {
		return nil, fmt.Errorf("could not clone module: %v", err)
	}
	return c, nil
}
