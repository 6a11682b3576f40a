// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package profiler - measure the average cost of insert, contains and
// delete on an ordered set as it grows and shrinks
//
// a workload of random keys is applied in batches of a fixed number of
// cycles and each batch records the set size and the mean time per
// operation; the three series are saved as tab separated columns:
//
//	size_ins  insertion  size_acc  access  size_del  deletion
package profiler
