// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package decode translates a live llir/llvm module graph into an owned
// model.Module snapshot. The source graph is addressed by pointer identity
// and may contain cycles among global objects, named types and metadata
// nodes; the decoder breaks all three with the same scheme: assign a
// stable identifier before recursing into content, and resolve every
// cross-reference through the identifier instead of the live pointer.
//
// Decoding runs in two passes over a fixed enumeration order (defined
// functions, declared functions, global variables, global aliases):
// pass 1 only assigns a Name to every global object, pass 2 decodes the
// entities and resolves references through the pass-1 table. Decode is
// single-threaded; the returned Module is immutable and safe to share.
package decode
