// Copyright (c) 2024 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

package lib

import "testing"

func TestHasFlag(t *testing.T) {
	cases := []struct {
		flag string
		args []string
		want bool
	}{
		{"no-color", nil, false},
		{"no-color", []string{}, false},
		{"no-color", []string{"--no-color"}, true},
		{"no-color", []string{"no-color"}, true},
		{"no-color", []string{"-no-color"}, true},
		{"--no-color", []string{"no-color"}, true},
		{"no-color", []string{"--NO-COLOR"}, true},
		{"no-color", []string{"--no-colors"}, false},
		{"no-color", []string{"--verbose", "--no-color", "input.txt"}, true},
		{"color=256", []string{"--color=256"}, true},
		{"color", []string{"--color=256"}, false},
	}

	for i, testCase := range cases {
		if actual := HasFlag(testCase.flag, testCase.args); actual != testCase.want {
			t.Errorf("test case %d failed: HasFlag(%q, %v) = %v, want %v",
				i, testCase.flag, testCase.args, actual, testCase.want)
		}
	}
}

func TestColorLevelFromFlags(t *testing.T) {
	cases := []struct {
		args  []string
		level ColorLevel
		ok    bool
	}{
		{nil, ColorLevelNone, false},
		{[]string{"--verbose"}, ColorLevelNone, false},
		{[]string{"--no-color"}, ColorLevelNone, true},
		{[]string{"--no-colors"}, ColorLevelNone, true},
		{[]string{"--color=false"}, ColorLevelNone, true},
		{[]string{"--color=never"}, ColorLevelNone, true},
		{[]string{"--color"}, ColorLevelBasic, true},
		{[]string{"--colors"}, ColorLevelBasic, true},
		{[]string{"--color=true"}, ColorLevelBasic, true},
		{[]string{"--color=always"}, ColorLevelBasic, true},
		{[]string{"--color=256"}, ColorLevelAnsi256, true},
		{[]string{"--color=16m"}, ColorLevelAnsi16m, true},
		{[]string{"--color=full"}, ColorLevelAnsi16m, true},
		{[]string{"--color=truecolor"}, ColorLevelAnsi16m, true},
		// disabling wins over enabling, specific wins over generic
		{[]string{"--color=16m", "--no-color"}, ColorLevelNone, true},
		{[]string{"--color", "--color=16m"}, ColorLevelAnsi16m, true},
	}

	for i, testCase := range cases {
		level, ok := ColorLevelFromFlags(testCase.args)
		if level != testCase.level || ok != testCase.ok {
			t.Errorf("test case %d failed: ColorLevelFromFlags(%v) = (%s, %v), want (%s, %v)",
				i, testCase.args, level, ok, testCase.level, testCase.ok)
		}
	}
}
