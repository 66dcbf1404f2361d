// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

import (
	"sort"

	"github.com/fatih/color"

	"irsnap/logger"
)

var (
	nameColor   = color.New(color.FgCyan).SprintFunc()
	opaqueColor = color.New(color.FgYellow).SprintFunc()
	linkColor   = color.New(color.FgGreen).SprintFunc()
)

// PrintSummary displays at standard output a summary of the module.
func (m *Module) PrintSummary() {
	logger.Println("== SUMMARY ===================================")
	logger.Println()
	logger.Println("Module")
	logger.Printf("  Name          : %s\n", nameColor(m.Name))
	logger.Printf("  Source file   : %s\n", m.SourceFilename)
	logger.Printf("  Target triple : %s\n", m.TargetTriple)
	logger.Println()

	logger.Println("Entities")
	logger.Printf("  Functions : %d\n", len(m.Funcs))
	logger.Printf("  Globals   : %d\n", len(m.Globals))
	logger.Printf("  Aliases   : %d\n", len(m.Aliases))
	logger.Println()

	logger.Println("Linkage")
	for _, e := range m.linkageCounts() {
		logger.Printf("  %-22s : %d\n", linkColor(e.linkage), e.count)
	}
	logger.Println()

	logger.Println("Types")
	for _, name := range m.typeNames() {
		t := m.TypeDefs[name]
		if t.Opaque() {
			logger.Printf("  %%%s = %s\n", name, opaqueColor("opaque"))
			continue
		}
		logger.Printf("  %%%s = %v\n", name, t.Def)
	}
	logger.Println()

	logger.Println("Metadata")
	logger.Printf("  Nodes         : %d\n", len(m.MetadataNodes))
	logger.Printf("  Named entries : %d\n", len(m.NamedMetadata))
	logger.Println()
}

type linkageCount struct {
	linkage Linkage
	count   int
}

func (m *Module) linkageCounts() []linkageCount {
	counts := make(map[Linkage]int)
	for _, f := range m.Funcs {
		counts[f.Linkage]++
	}
	for _, g := range m.Globals {
		counts[g.Linkage]++
	}
	for _, a := range m.Aliases {
		counts[a.Linkage]++
	}
	var out []linkageCount
	for l, c := range counts {
		out = append(out, linkageCount{l, c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].linkage < out[j].linkage })
	return out
}

func (m *Module) typeNames() []string {
	names := make([]string, 0, len(m.TypeDefs))
	for name := range m.TypeDefs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
