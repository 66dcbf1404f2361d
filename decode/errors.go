// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"errors"
	"fmt"
)

// Class labels the stage at which a Load or Decode call failed.
type Class int

//go:generate go run golang.org/x/tools/cmd/stringer -type=Class
const (
	// LoadFailure reports that the input file could not be read.
	LoadFailure Class = iota + 1
	// ParseFailure reports that the external deserializer rejected the input.
	ParseFailure
	// StructFailure reports a structural violation found during decode.
	StructFailure
)

// Error labels an underlying failure with its Class. Structural errors are
// fatal to the decode that produced them; the input is static, so none of
// the classes is worth retrying.
type Error struct {
	Class Class
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Class, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ClassOf returns the failure class of err, or 0 when err was not produced
// by this package.
func ClassOf(err error) Class {
	var e *Error
	if errors.As(err, &e) {
		return e.Class
	}
	return 0
}

func loadErr(err error) error {
	return &Error{Class: LoadFailure, Err: err}
}

func parseErr(err error) error {
	return &Error{Class: ParseFailure, Err: err}
}

func structErrf(format string, args ...any) error {
	return &Error{Class: StructFailure, Err: fmt.Errorf(format, args...)}
}
