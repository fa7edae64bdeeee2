// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Average adult reading speed in words per minute.
const wordsPerMinute = 200

var stripPolicy = bluemonday.StrictPolicy()

// CalculateReadTime estimates reading time in whole minutes for an HTML
// body. Markup is stripped before counting words, rounded up, minimum 1.
func CalculateReadTime(content string) int64 {
	text := stripPolicy.Sanitize(content)
	words := int64(len(strings.Fields(text)))

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
