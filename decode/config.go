// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

// Config enables multiple options when decoding a module snapshot.
type Config struct {
	Bodies bool // whether defined function bodies are decoded
}

// DefaultConfig returns a default configuration for decoding a module.
func DefaultConfig() Config {
	return Config{
		Bodies: true,
	}
}
