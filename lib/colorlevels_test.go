// Copyright (c) 2024 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

package lib

import "testing"

func TestColorLevelOrdering(t *testing.T) {
	ordered := []ColorLevel{ColorLevelNone, ColorLevelBasic, ColorLevelAnsi256, ColorLevelAnsi16m}
	for i := 1; i < len(ordered); i++ {
		if !(ordered[i-1] < ordered[i]) {
			t.Errorf("expected %s < %s", ordered[i-1], ordered[i])
		}
	}
}

func TestColorLevelString(t *testing.T) {
	cases := []struct {
		level ColorLevel
		want  string
	}{
		{ColorLevelNone, "none"},
		{ColorLevelBasic, "basic"},
		{ColorLevelAnsi256, "256"},
		{ColorLevelAnsi16m, "16m"},
		{ColorLevel(42), "none"},
	}
	for i, testCase := range cases {
		if actual := testCase.level.String(); actual != testCase.want {
			t.Errorf("test case %d failed: want %q, got %q", i, testCase.want, actual)
		}
	}
}

func TestColorLevelFromInt(t *testing.T) {
	for i := 0; i <= 3; i++ {
		level, ok := ColorLevelFromInt(i)
		if !ok || level != ColorLevel(i) {
			t.Errorf("ColorLevelFromInt(%d) = (%s, %v)", i, level, ok)
		}
	}
	for _, i := range []int{-1, 4, 100} {
		if _, ok := ColorLevelFromInt(i); ok {
			t.Errorf("ColorLevelFromInt(%d) unexpectedly succeeded", i)
		}
	}
}

func TestMakeColorInfo(t *testing.T) {
	cases := []struct {
		level ColorLevel
		want  ColorInfo
	}{
		{ColorLevelNone, ColorInfo{ColorLevelNone, false, false, false}},
		{ColorLevelBasic, ColorInfo{ColorLevelBasic, true, false, false}},
		{ColorLevelAnsi256, ColorInfo{ColorLevelAnsi256, true, true, false}},
		{ColorLevelAnsi16m, ColorInfo{ColorLevelAnsi16m, true, true, true}},
	}
	for _, testCase := range cases {
		if actual := MakeColorInfo(testCase.level); actual != testCase.want {
			t.Errorf("MakeColorInfo(%s) = %+v, want %+v", testCase.level, actual, testCase.want)
		}
	}
}
