// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"irsnap/decode"
	"irsnap/logger"
	"irsnap/model"
)

func init() {
	var infoCmd = cobra.Command{
		Use:   "info <input.ll>...",
		Short: "Prints a summary of each decoded module.",
		Args:  IsArgsn,

		DisableFlagsInUseLine: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return Info(args)
		},
	}

	rootCmd.AddCommand(&infoCmd)
}

// Info decodes every input file and prints its summary. Files decode in
// parallel; each decode is independent and internally sequential.
// Summaries print in argument order once all decodes finished.
func Info(args []string) error {
	if err := onlyLL(args); err != nil {
		return wrapError(err)
	}

	mods := make([]*model.Module, len(args))
	g := new(errgroup.Group)
	for i, fn := range args {
		i, fn := i, fn
		g.Go(func() error {
			logger.Debugf("Info %s", fn)
			m, err := decode.Load(fn, decodeConfig())
			if err != nil {
				return err
			}
			mods[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return wrapError(err)
	}

	for _, m := range mods {
		m.PrintSummary()
	}
	return nil
}
