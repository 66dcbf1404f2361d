// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"os"

	"github.com/llir/llvm/asm"

	"irsnap/logger"
	"irsnap/model"
)

// Load reads the file at path into memory, runs the external deserializer
// on it, and decodes the resulting graph into an owned snapshot. The error
// distinguishes read failures, deserializer failures and structural decode
// failures (see Class).
func Load(path string, cfg Config) (*model.Module, error) {
	logger.Infof("Parse '%s'", path)
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, loadErr(err)
	}
	src, err := asm.ParseBytes(path, buf)
	if err != nil {
		return nil, parseErr(err)
	}

	logger.Infof("Decode '%s'", path)
	return Decode(path, src, cfg)
}
