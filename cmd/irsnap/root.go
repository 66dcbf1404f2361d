// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the main irsnap program of this project.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"irsnap/decode"
	"irsnap/logger"
	"irsnap/tools"
)

var rootCmd = cobra.Command{
	Use:           "irsnap",
	Short:         "",
	Long:          "",
	SilenceUsage:  true,
	SilenceErrors: true,

	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("run 'irsnap -h' for help")
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch rootFlags.log {
		case "INFO":
			logger.SetLevel(logger.INFO)
		case "WARN":
			logger.SetLevel(logger.WARN)
		default:
			logger.SetLevel(logger.ERROR)
		}
		if rootFlags.debug {
			logger.SetLevel(logger.DEBUG)
		}
		if rootFlags.quiet {
			logger.SetFileDescriptor(nil)
		}
		if !isTerminal() {
			color.NoColor = true
		}
	},
}

func init() {
	helpMessage :=
		`irsnap -- decode LLVM-IR modules into owned, shareable snapshots`

	helpMessage += "\n\nEnvironment Variables:"
	for _, ev := range tools.GetEnvvars() {
		helpMessage += "\n  " + ev.Name + " " +
			"(default: \"" + ev.Defv + "\")\n\t" + ev.Desc
	}
	rootCmd.Long = helpMessage

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.log, "log", "ERROR", "log level (ERROR|INFO|WARN)")
	flags.BoolVarP(&rootFlags.debug, "debug", "d", false, "set debug mode")
	flags.BoolVarP(&rootFlags.quiet, "quiet", "q", false, "do not produce output")
	flags.BoolVar(&rootFlags.bodies, "bodies", true, "decode function bodies")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

var rootFlags struct {
	log    string
	debug  bool
	quiet  bool
	bodies bool
}

func decodeConfig() decode.Config {
	cfg := decode.DefaultConfig()
	cfg.Bodies = rootFlags.bodies
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if msg := getErrorMessage(err); msg != "" {
			logger.Println(msg)
		}
		os.Exit(getErrorCode(err))
	}
}
