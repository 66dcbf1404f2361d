// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

// Mechanical translation of llir enumerations into the model's target
// enumerations. No algorithmic content; kept in one place.

import (
	"fmt"

	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"

	"irsnap/model"
)

func linkageFromIR(l enum.Linkage) model.Linkage {
	switch l {
	case enum.LinkageAvailableExternally:
		return model.AvailableExternally
	case enum.LinkageLinkOnce:
		return model.LinkOnceAny
	case enum.LinkageLinkOnceODR:
		return model.LinkOnceODR
	case enum.LinkageWeak:
		return model.WeakAny
	case enum.LinkageWeakODR:
		return model.WeakODR
	case enum.LinkageAppending:
		return model.Appending
	case enum.LinkageInternal:
		return model.Internal
	case enum.LinkagePrivate:
		return model.Private
	case enum.LinkageExternWeak:
		return model.ExternalWeak
	case enum.LinkageCommon:
		return model.Common
	default:
		// enum.LinkageNone and enum.LinkageExternal both mean external.
		return model.External
	}
}

func visibilityFromIR(v enum.Visibility) model.Visibility {
	switch v {
	case enum.VisibilityHidden:
		return model.HiddenVisibility
	case enum.VisibilityProtected:
		return model.ProtectedVisibility
	default:
		return model.DefaultVisibility
	}
}

func storageClassFromIR(sc enum.DLLStorageClass) model.DLLStorageClass {
	switch sc {
	case enum.DLLStorageClassDLLImport:
		return model.DLLImport
	case enum.DLLStorageClassDLLExport:
		return model.DLLExport
	default:
		return model.DefaultStorageClass
	}
}

func tlsModeFromIR(tls enum.TLSModel) model.ThreadLocalMode {
	switch tls {
	case enum.TLSModelGeneric:
		return model.GeneralDynamicTLS
	case enum.TLSModelLocalDynamic:
		return model.LocalDynamicTLS
	case enum.TLSModelInitialExec:
		return model.InitialExecTLS
	case enum.TLSModelLocalExec:
		return model.LocalExecTLS
	default:
		return model.NotThreadLocal
	}
}

func unnamedAddrFromIR(ua enum.UnnamedAddr) model.UnnamedAddr {
	switch ua {
	case enum.UnnamedAddrLocalUnnamedAddr:
		return model.LocalUnnamedAddr
	case enum.UnnamedAddrUnnamedAddr:
		return model.GlobalUnnamedAddr
	default:
		return model.NoUnnamedAddr
	}
}

func selectionFromIR(sk enum.SelectionKind) model.SelectionKind {
	switch sk {
	case enum.SelectionKindExactMatch:
		return model.SelectionExactMatch
	case enum.SelectionKindLargest:
		return model.SelectionLargest
	case enum.SelectionKindNoDeduplicate:
		return model.SelectionNoDeduplicate
	case enum.SelectionKindSameSize:
		return model.SelectionSameSize
	default:
		return model.SelectionAny
	}
}

func floatKindFromIR(k types.FloatKind) model.FloatKind {
	switch k {
	case types.FloatKindHalf:
		return model.FloatHalf
	case types.FloatKindFloat:
		return model.FloatSingle
	case types.FloatKindDouble:
		return model.FloatDouble
	case types.FloatKindFP128:
		return model.FloatFP128
	case types.FloatKindX86_FP80:
		return model.FloatX86FP80
	case types.FloatKindPPC_FP128:
		return model.FloatPPCFP128
	default:
		return model.FloatOther
	}
}

func callingConvString(cc enum.CallingConv) string {
	if cc == enum.CallingConvNone {
		return ""
	}
	return fmt.Sprint(cc)
}
