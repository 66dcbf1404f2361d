// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"github.com/llir/llvm/ir/value"

	"irsnap/model"
)

// nameOrNum keeps a non-empty textual name and otherwise takes the current
// counter value and advances the counter. The counter is threaded
// explicitly so that decoding stays re-entrant.
func nameOrNum(name string, ctr *int64) model.Name {
	if name != "" {
		return model.NameFromString(name)
	}
	n := model.NameFromNum(*ctr)
	*ctr++
	return n
}

// assignNames is pass 1: allocate a Name for every global object in the
// fixed enumeration order (defined functions, declared functions, global
// variables, global aliases) and record it under the object's identity.
// Global objects may reference each other circularly, so every object must
// have a Name before any entity is decoded.
func (d *decoder) assignNames() {
	var ctr int64
	for _, f := range d.src.Funcs {
		if len(f.Blocks) > 0 {
			d.names[f] = nameOrNum(f.GlobalName, &ctr)
		}
	}
	for _, f := range d.src.Funcs {
		if len(f.Blocks) == 0 {
			d.names[f] = nameOrNum(f.GlobalName, &ctr)
		}
	}
	for _, g := range d.src.Globals {
		d.names[g] = nameOrNum(g.GlobalName, &ctr)
	}
	for _, a := range d.src.Aliases {
		d.names[a] = nameOrNum(a.GlobalName, &ctr)
	}
}

// globalName resolves the Name assigned to a global object in pass 1. The
// second result is false for an object pass 1 never saw, which indicates a
// malformed source graph.
func (d *decoder) globalName(v value.Value) (model.Name, bool) {
	n, ok := d.names[v]
	return n, ok
}
