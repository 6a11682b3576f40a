// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package profiler

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/treeset/fault"
)

const header = "size_ins\tinsertion\tsize_acc\taccess\tsize_del\tdeletion\n"

// WriteTSV - write the statistics as tab separated columns
//
// rows continue until the longest series is exhausted, the missing
// cells of shorter series are left empty
func (p *Profiler) WriteTSV(w io.Writer) error {
	return p.stats.WriteTSV(w)
}

// SaveTSV - write the statistics to a new file
func (p *Profiler) SaveTSV(fileName string) error {
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if nil == err {
		err = p.WriteTSV(f)
		if e := f.Close(); nil == err {
			err = e
		}
	}
	if nil != err {
		p.log.Errorf("save: %q  error: %s", fileName, err)
		return fault.ErrWriteStatistics
	}
	p.log.Infof("saved: %q", fileName)
	return nil
}

// WriteTSV - write the three series side by side
func (s Statistics) WriteTSV(w io.Writer) error {
	buffer := bufio.NewWriter(w)

	if _, err := buffer.WriteString(header); nil != err {
		return err
	}

	rows := max(len(s.Insertion), len(s.Access), len(s.Deletion))
	for i := 0; i < rows; i += 1 {
		line := cell(s.Insertion, i) + "\t" + cell(s.Access, i) + "\t" + cell(s.Deletion, i) + "\n"
		if _, err := buffer.WriteString(line); nil != err {
			return err
		}
	}
	return buffer.Flush()
}

// a size and time pair, or two empty fields beyond the end of a series
func cell(series []Sample, i int) string {
	if i >= len(series) {
		return "\t"
	}
	return fmt.Sprintf("%d\t%s", series[i].Size, strconv.FormatFloat(series[i].Nanoseconds, 'g', -1, 64))
}
