// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package model defines the owned, immutable snapshot of an LLVM-IR module.
// All cross-references between entities are by value: global objects are
// referenced by Name, metadata nodes by NodeID, and named types through
// shared NamedType slots. A model.Module holds no reference into the
// llir/llvm graph it was decoded from and can be shared across goroutines
// for read-only use.
package model
