// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vmihailenco/msgpack/v5"

	"irsnap/decode"
	"irsnap/logger"
	"irsnap/model"
	"irsnap/tools"
)

func init() {
	tools.RegEnv("IRSNAP_DEFAULT_FORMAT", "json", "Default snapshot dump format")

	var dumpCmd = cobra.Command{
		Use:   "dump <input.ll>",
		Short: "Decodes the input module and writes the snapshot to a file.",
		Args:  IsArgsn,

		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			for _, fn := range args {
				if err = Dump(fn); err != nil {
					break
				}
			}
			return err
		},
	}

	addDumpFlags(dumpCmd.Flags())
	rootCmd.AddCommand(&dumpCmd)
}

func addDumpFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&dumpFlags.output, "output", "o", "",
		"output file (default: <input>.snap.<format>)")
	flags.StringVarP(&dumpFlags.format, "format", "f",
		tools.GetEnv("IRSNAP_DEFAULT_FORMAT"), "snapshot format (json|msgpack)")
}

var dumpFlags struct {
	output string
	format string
}

// Dump decodes fn and writes the serialized snapshot.
func Dump(fn string) error {
	if err := onlyLL([]string{fn}); err != nil {
		return wrapError(err)
	}
	m, err := decode.Load(fn, decodeConfig())
	if err != nil {
		return wrapError(err)
	}

	buf, err := marshalSnapshot(m, dumpFlags.format)
	if err != nil {
		return wrapError(err)
	}

	out := dumpFlags.output
	if out == "" {
		out = fmt.Sprintf("%s.snap.%s", strings.TrimSuffix(fn, ".ll"), dumpFlags.format)
	}
	logger.Infof("Write '%s'", out)
	return wrapError(tools.Dump(buf, out))
}

func marshalSnapshot(m *model.Module, format string) (*bytes.Buffer, error) {
	switch format {
	case "json":
		b, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, err
		}
		return bytes.NewBuffer(b), nil
	case "msgpack":
		b, err := msgpack.Marshal(m)
		if err != nil {
			return nil, err
		}
		return bytes.NewBuffer(b), nil
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}
