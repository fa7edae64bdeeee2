// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"strings"
	"testing"
)

func TestCalculateReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int64
	}{
		{"empty", "", 1},
		{"short", "just a few words here", 1},
		{"exactly 200 words", strings.Repeat("word ", 200), 1},
		{"201 words rounds up", strings.Repeat("word ", 201), 2},
		{"250 words", strings.Repeat("word ", 250), 2},
		{"600 words", strings.Repeat("word ", 600), 3},
		{"markup is not counted", "<p>" + strings.Repeat("<strong>word</strong> ", 250) + "</p>", 2},
		{"only markup", "<p><br/></p>", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateReadTime(tt.content); got != tt.want {
				t.Errorf("CalculateReadTime() = %d, want %d", got, tt.want)
			}
		})
	}
}
