// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/metadata"

	"irsnap/model"
)

// mdIndex maps metadata node identities to stable NodeIDs. A node's ID is
// registered before its content is decoded, mirroring the type memoizer's
// register-before-recurse rule; that is what terminates metadata cycles.
type mdIndex struct {
	ids   map[metadata.Definition]model.NodeID
	nodes map[model.NodeID]*model.Node
	next  model.NodeID
}

func newMDIndex() *mdIndex {
	return &mdIndex{
		ids:   make(map[metadata.Definition]model.NodeID),
		nodes: make(map[model.NodeID]*model.Node),
	}
}

// identifyMD returns the NodeID of def, assigning the next sequential ID
// and decoding the node's content on first encounter. Subsequent calls for
// the same identity return the already-assigned ID without re-decoding.
func (d *decoder) identifyMD(def metadata.Definition) (model.NodeID, error) {
	if id, ok := d.md.ids[def]; ok {
		return id, nil
	}
	id := d.md.next
	d.md.next++
	d.md.ids[def] = id
	node := &model.Node{ID: id}
	d.md.nodes[id] = node

	switch t := def.(type) {
	case *metadata.Tuple:
		node.Distinct = t.Distinct
		fields, err := d.decodeMDFields(t.Fields)
		if err != nil {
			return id, err
		}
		node.Fields = fields
	default:
		// Specialized nodes (DIFile and friends) have no uniform operand
		// access; keep their rendered form.
		node.Fields = []model.MDField{&model.MDRaw{Text: def.LLString()}}
	}
	return id, nil
}

func (d *decoder) decodeMDFields(fields []metadata.Field) ([]model.MDField, error) {
	out := make([]model.MDField, 0, len(fields))
	for _, f := range fields {
		mf, err := d.decodeMDField(f)
		if err != nil {
			return nil, err
		}
		out = append(out, mf)
	}
	return out, nil
}

func (d *decoder) decodeMDField(f metadata.Field) (model.MDField, error) {
	switch f := f.(type) {
	case *metadata.Tuple:
		id, err := d.identifyMD(f)
		if err != nil {
			return nil, err
		}
		return model.MDNodeRef(id), nil
	case *metadata.String:
		return &model.MDString{Value: f.Value}, nil
	case *metadata.Value:
		if c, ok := f.Value.(constant.Constant); ok {
			v, err := d.decodeConstant(c)
			if err != nil {
				return nil, err
			}
			return &model.MDValue{Value: v}, nil
		}
		return &model.MDRaw{Text: f.String()}, nil
	case constant.Constant:
		v, err := d.decodeConstant(f)
		if err != nil {
			return nil, err
		}
		return &model.MDValue{Value: v}, nil
	case metadata.Definition:
		id, err := d.identifyMD(f)
		if err != nil {
			return nil, err
		}
		return model.MDNodeRef(id), nil
	default:
		return &model.MDRaw{Text: f.String()}, nil
	}
}

// decodeNamedMetadata resolves a named metadata entry to the IDs of the
// nodes it lists, indexing any node not yet seen.
func (d *decoder) decodeNamedMetadata(nmd *metadata.NamedDef) (model.NamedMetadata, error) {
	out := model.NamedMetadata{Name: nmd.Name}
	for _, n := range nmd.Nodes {
		def, ok := mdDef(n)
		if !ok {
			return out, structErrf("named metadata !%s: unsupported operand %v", nmd.Name, n)
		}
		id, err := d.identifyMD(def)
		if err != nil {
			return out, err
		}
		out.Nodes = append(out.Nodes, id)
	}
	return out, nil
}

// decodeAttachments resolves metadata attachments of a global object.
func (d *decoder) decodeAttachments(mds []*metadata.Attachment) ([]model.Attachment, error) {
	var out []model.Attachment
	for _, a := range mds {
		def, ok := mdDef(a.Node)
		if !ok {
			return nil, structErrf("metadata attachment !%s: unsupported node %v", a.Name, a.Node)
		}
		id, err := d.identifyMD(def)
		if err != nil {
			return nil, err
		}
		out = append(out, model.Attachment{Name: a.Name, Node: id})
	}
	return out, nil
}

// mdDef extracts the metadata definition behind a node reference.
func mdDef(v any) (metadata.Definition, bool) {
	def, ok := v.(metadata.Definition)
	return def, ok
}
