// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// IsArgsn ensures there are 1 or more arguments
func IsArgsn(_ *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("no input file specified")
	}
	return nil
}

var reIsLL = regexp.MustCompile(`(.*)\.ll$`)

// onlyLL rejects arguments that are not LLVM-IR assembly files.
func onlyLL(args []string) error {
	for _, a := range args {
		if !reIsLL.MatchString(a) {
			return fmt.Errorf("not an LLVM-IR file: %s", a)
		}
	}
	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
