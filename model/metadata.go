// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

import "fmt"

// NodeID is the stable identifier of a metadata node within one Module.
type NodeID int64

// Node is a decoded metadata node. Operands that reference other metadata
// nodes do so by NodeID, never by embedding, which keeps the node table
// acyclic on the wire even when the source metadata graph has cycles.
type Node struct {
	ID       NodeID
	Distinct bool
	Fields   []MDField
}

// MDField is one operand of a metadata node.
type MDField interface {
	fmt.Stringer
	isMDField()
}

// MDNodeRef references another metadata node by ID.
type MDNodeRef NodeID

// MDString is a metadata string operand.
type MDString struct {
	Value string
}

// MDValue is a constant value operand, e.g. a reference to a global.
type MDValue struct {
	Value Constant
}

// MDRaw carries the rendered form of a metadata operand or specialized
// node the snapshot does not model structurally.
type MDRaw struct {
	Text string
}

func (MDNodeRef) isMDField() {}
func (*MDString) isMDField() {}
func (*MDValue) isMDField()  {}
func (*MDRaw) isMDField()    {}

func (r MDNodeRef) String() string { return fmt.Sprintf("!%d", int64(r)) }
func (s *MDString) String() string { return fmt.Sprintf("!%q", s.Value) }
func (v *MDValue) String() string  { return v.Value.String() }
func (r *MDRaw) String() string    { return r.Text }

// NamedMetadata is a named metadata entry: a name plus the IDs of the
// nodes it lists, in source order.
type NamedMetadata struct {
	Name  string
	Nodes []NodeID
}

// Attachment is a metadata attachment on a global object, e.g. !dbg.
type Attachment struct {
	Name string
	Node NodeID
}
