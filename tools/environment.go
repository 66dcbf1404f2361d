// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"os"
	"sort"
)

// Envvar describes an environment variable recognized by the command line,
// with its default value and a short description.
type Envvar struct {
	Name string
	Defv string
	Desc string
}

var envvars = make(map[string]Envvar)

// RegEnv registers an environment variable with a default value and a
// description shown in the command help.
func RegEnv(name, defv, desc string) {
	envvars[name] = Envvar{Name: name, Defv: defv, Desc: desc}
}

// GetEnv returns the value of a registered environment variable, falling
// back to the registered default when the variable is unset.
func GetEnv(name string) string {
	if v, has := os.LookupEnv(name); has {
		return v
	}
	return envvars[name].Defv
}

// GetEnvvars returns all registered environment variables sorted by name.
func GetEnvvars() []Envvar {
	out := make([]Envvar, 0, len(envvars))
	for _, ev := range envvars {
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
