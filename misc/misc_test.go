package misc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "anchors.json")
	if err := os.WriteFile(fileName, []byte(`{"Anchors": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	contents, err := ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if string(contents) != `{"Anchors": []}` {
		t.Errorf("ReadFile() = %q", contents)
	}

	if _, err := ReadFile(""); err == nil {
		t.Error("expected an error without a file name")
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestGetFreePort(t *testing.T) {
	port, err := GetFreePort()
	if err != nil {
		t.Fatal(err)
	}
	if port <= 0 || port > 65535 {
		t.Errorf("GetFreePort() = %d", port)
	}
}

func TestValidVerbosity(t *testing.T) {
	testCases := []struct {
		verbosity string
		valid     bool
	}{
		{"minimal", true},
		{"Normal", true},
		{"ALL", true},
		{"", false},
		{"debug", false},
	}
	for _, tc := range testCases {
		if got := ValidVerbosity(tc.verbosity); got != tc.valid {
			t.Errorf("ValidVerbosity(%q) = %t, want %t", tc.verbosity, got, tc.valid)
		}
	}
}

func TestCheckErrorIgnoresNil(t *testing.T) {
	// a nil error must never reach the logger, not even at Fatal
	if CheckError(nil, NewLogger("CheckErrorTest", "minimal"), Fatal) {
		t.Error("CheckError(nil) reported an error")
	}
}

func TestSeverityString(t *testing.T) {
	if Warning.String() != "Warning" || Fatal.String() != "Fatal" {
		t.Errorf("unexpected severity names %s, %s", Warning, Fatal)
	}
}
