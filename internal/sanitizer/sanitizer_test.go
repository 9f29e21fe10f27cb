package sanitizer

import (
	"testing"
)

func TestCleanListingLine(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		changed  bool
	}{
		{
			input:    "/storage/emulated/0/save/CCGameManager.dat\r",
			expected: "/storage/emulated/0/save/CCGameManager.dat",
			changed:  true,
		},
		{
			input:    "  /save/a.dat  ",
			expected: "/save/a.dat",
			changed:  true,
		},
		{
			input:    "/save/Already Clean.dat",
			expected: "/save/Already Clean.dat",
			changed:  false,
		},
		{
			input:    "\r\n",
			expected: "",
			changed:  true,
		},
		{
			input:    "",
			expected: "",
			changed:  false,
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result, changed := CleanListingLine(test.input)
			if result != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, result)
			}
			if changed != test.changed {
				t.Errorf("Expected changed=%t, got changed=%t", test.changed, changed)
			}
		})
	}
}

func TestSafeBaseName(t *testing.T) {
	root := "/storage/emulated/0/Android/media/com.geode.launcher/save"

	tests := []struct {
		input    string
		root     string
		expected string
		ok       bool
	}{
		{root + "/CCLocalLevels.dat\r", root, "CCLocalLevels.dat", true},
		{root + "/level backup 1.gmd", root, "level backup 1.gmd", true},
		{root + "/geode/mods/x.dat", root, "", false},
		{root + "/../secret.dat", root, "", false},
		{root + "/..", root, "", false},
		{"/elsewhere/a.dat", root, "", false},
		{"/elsewhere/a.dat", "", "a.dat", true},
		{root + `/evil\name.dat`, root, "", false},
		{root + "/bell\a.dat", root, "", false},
		{"", root, "", false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result, ok := SafeBaseName(test.input, test.root)
			if ok != test.ok {
				t.Errorf("For input %q, expected ok=%t, got ok=%t", test.input, test.ok, ok)
			}
			if result != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, result)
			}
		})
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"CCGameManager.dat", true},
		{"sfxlibrary.dat", true},
		{"", false},
		{".", false},
		{"..", false},
		{"a/b", false},
		{`a\b`, false},
		{"tab\tname", false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result := ValidName(test.input)
			if result != test.expected {
				t.Errorf("For input %q, expected %t, got %t", test.input, test.expected, result)
			}
		})
	}
}
