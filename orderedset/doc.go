// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package orderedset - the ordered set contract shared by the
// balanced trees and selection of a balancing discipline by name
package orderedset
