// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tools provides small file and environment helpers shared by the
// command line.
package tools

import (
	"fmt"
	"os"

	"irsnap/logger"
)

const fileMode = 0600

// FileExists returns nil if a file exists otherwise an error
func FileExists(fn string) error {
	if _, err := os.Stat(fn); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", fn)
	}
	return nil
}

// CopyFile copies src into dst. Returns nil upon no error
func CopyFile(src, dst string) error {
	logger.Infof("copying file: '%s' -> '%s'", src, dst)
	input, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("could not read '%v': %v", src, err)
	}

	if err := os.WriteFile(dst, input, fileMode); err != nil {
		return fmt.Errorf("could not create '%v': %v", dst, err)
	}
	return nil
}

// Remove deletes a file.
func Remove(fn string) error {
	logger.Debugf("Remove file '%s'", fn)
	return os.Remove(fn)
}

// Dump writes the rendered content to a file.
func Dump(m fmt.Stringer, fn string) error {
	logger.Debugf("Dump file '%s'", fn)
	out, err := os.OpenFile(fn,
		os.O_TRUNC|os.O_WRONLY|os.O_CREATE, fileMode)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()
	_, err = fmt.Fprint(out, m)
	return err
}
