// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"irsnap/decode"
)

func TestWrapErrorNil(t *testing.T) {
	assert.Nil(t, wrapError(nil))
	assert.Equal(t, 0, getErrorCode(nil))
	assert.Equal(t, "", getErrorMessage(nil))
}

func TestWrapErrorCodes(t *testing.T) {
	plain := errors.New("boom")
	testCases := []struct {
		err  error
		code int
	}{
		{plain, int(internalError)},
		{loadFailure(t), int(loadError)},
		{parseFailure(t), int(loadError)},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc.code), func(t *testing.T) {
			wrapped := wrapError(tc.err)
			assert.Equal(t, tc.code, getErrorCode(wrapped))
			assert.Equal(t, tc.err.Error(), getErrorMessage(wrapped))
		})
	}
	// errors that bypassed wrapError still exit non-zero
	assert.Equal(t, int(internalError), getErrorCode(plain))
}

func loadFailure(t *testing.T) error {
	t.Helper()
	_, err := decode.Load(filepath.Join(t.TempDir(), "missing.ll"), decodeConfig())
	assert.NotNil(t, err)
	return err
}

func parseFailure(t *testing.T) error {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "garbage.ll")
	assert.Nil(t, os.WriteFile(fn, []byte("not IR"), 0600))
	_, err := decode.Load(fn, decodeConfig())
	assert.NotNil(t, err)
	return err
}
