// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

// Function is a defined function. Declared-only functions are not retained
// as entities; they appear only as GlobalRef leaves elsewhere.
type Function struct {
	Name            Name
	Linkage         Linkage
	Visibility      Visibility
	DLLStorageClass DLLStorageClass
	CallingConv     string
	UnnamedAddr     UnnamedAddr
	RetType         Type
	Params          []Param
	Variadic        bool
	Blocks          []Block
	Metadata        []Attachment
}

// Param is a function parameter.
type Param struct {
	Name string
	Typ  Type
}

// Block is a basic block of a defined function.
type Block struct {
	Name  string
	Insts []Inst
	Term  Inst
}

// Inst is one instruction record: its owned rendered form plus the Names
// of all global objects it references.
type Inst struct {
	Text    string
	Globals []Name
}
