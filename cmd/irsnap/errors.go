// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"irsnap/decode"
)

type errorType int

//go:generate go run golang.org/x/tools/cmd/stringer -type=errorType
const (
	noError       errorType = 0
	internalError errorType = 1
	loadError     errorType = 2
	decodeError   errorType = 3
)

type cliError struct {
	typ errorType
	err error
}

func (e *cliError) Error() string {
	return e.err.Error()
}

func (e *cliError) Code() int {
	return int(e.typ)
}

// wrapError maps decode failure classes to exit codes.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	switch decode.ClassOf(err) {
	case decode.LoadFailure, decode.ParseFailure:
		return &cliError{typ: loadError, err: err}
	case decode.StructFailure:
		return &cliError{typ: decodeError, err: err}
	}
	return &cliError{typ: internalError, err: err}
}

func getErrorCode(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(*cliError); ok {
		return e.Code()
	}
	return int(internalError)
}

func getErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
