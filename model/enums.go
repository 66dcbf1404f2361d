// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package model

// Linkage of a global object.
type Linkage int

const (
	External Linkage = iota
	AvailableExternally
	LinkOnceAny
	LinkOnceODR
	WeakAny
	WeakODR
	Appending
	Internal
	Private
	ExternalWeak
	Common
)

func (l Linkage) String() string {
	switch l {
	case External:
		return "external"
	case AvailableExternally:
		return "available_externally"
	case LinkOnceAny:
		return "linkonce"
	case LinkOnceODR:
		return "linkonce_odr"
	case WeakAny:
		return "weak"
	case WeakODR:
		return "weak_odr"
	case Appending:
		return "appending"
	case Internal:
		return "internal"
	case Private:
		return "private"
	case ExternalWeak:
		return "extern_weak"
	case Common:
		return "common"
	}
	return "external"
}

// Visibility style of a global object.
type Visibility int

const (
	DefaultVisibility Visibility = iota
	HiddenVisibility
	ProtectedVisibility
)

func (v Visibility) String() string {
	switch v {
	case HiddenVisibility:
		return "hidden"
	case ProtectedVisibility:
		return "protected"
	}
	return "default"
}

// DLLStorageClass of a global object.
type DLLStorageClass int

const (
	DefaultStorageClass DLLStorageClass = iota
	DLLImport
	DLLExport
)

// ThreadLocalMode of a global variable.
type ThreadLocalMode int

const (
	NotThreadLocal ThreadLocalMode = iota
	GeneralDynamicTLS
	LocalDynamicTLS
	InitialExecTLS
	LocalExecTLS
)

// UnnamedAddr flag of a global object.
type UnnamedAddr int

const (
	NoUnnamedAddr UnnamedAddr = iota
	LocalUnnamedAddr
	GlobalUnnamedAddr
)

// SelectionKind of a comdat.
type SelectionKind int

const (
	SelectionAny SelectionKind = iota
	SelectionExactMatch
	SelectionLargest
	SelectionNoDeduplicate
	SelectionSameSize
)

// Comdat is a comdat definition or reference.
type Comdat struct {
	Name string
	Kind SelectionKind
}
