// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/logger"
)

// ANSI colour codes
const (
	CoReset  = "\x1b[0m"
	CoRed    = "\x1b[31m"
	CoGreen  = "\x1b[32m"
	CoYellow = "\x1b[33m"
	CoCyan   = "\x1b[36m"
)

// Colour - wrap text in a colour and a reset
func Colour(color string, text string) string {
	return color + text + CoReset
}

// LogInfo print  message in Info level with assigned color
func LogInfo(log *logger.L, color string, message string) {
	log.Info(Colour(color, message))
}

// LogError print  message in Error level with assigned color
func LogError(log *logger.L, color string, message string) {
	log.Error(Colour(color, message))
}

// LogWarn print  message in Warn level with assigned color
func LogWarn(log *logger.L, color string, message string) {
	log.Warn(Colour(color, message))
}
