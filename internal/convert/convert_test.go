package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTemp writes contents to a file under t.TempDir and returns
// the path.
func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keypair.json")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestConvert_Valid64ByteArray(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < 64; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString("255")
	}
	sb.WriteString("]")

	got, err := Convert(writeTemp(t, sb.String()))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got == "" {
		t.Fatal("Convert() returned empty string")
	}
	for _, c := range got {
		if strings.ContainsRune("0OIl", c) {
			t.Errorf("output contains forbidden base58 character %q: %s", c, got)
		}
	}
}

func TestConvert_LeadingZeroBytes(t *testing.T) {
	got, err := Convert(writeTemp(t, "[0,0,1,2,3]"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.HasPrefix(got, "11") {
		t.Errorf("leading zero bytes should encode as leading '1's, got %s", got)
	}
	if strings.HasPrefix(got, "111") {
		t.Errorf("exactly two leading '1's expected, got %s", got)
	}
}

func TestConvert_EmptyArray(t *testing.T) {
	got, err := Convert(writeTemp(t, "[]"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got != "" {
		t.Errorf("empty array should encode to empty string, got %q", got)
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  error // nil means any error
	}{
		{name: "not json", contents: "not json", wantErr: ErrInvalidJSON},
		{name: "truncated array", contents: "[1,2,", wantErr: ErrInvalidJSON},
		{name: "out of range", contents: "[256, 1, 2]"},
		{name: "negative value", contents: "[-1, 1, 2]"},
		{name: "float element", contents: "[1.5, 2]"},
		{name: "nested array", contents: "[[1,2],[3]]"},
		{name: "object value", contents: `{"key": [1,2,3]}`},
		{name: "string element", contents: `["a","b"]`},
		{name: "null value", contents: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(writeTemp(t, tt.contents))
			if err == nil {
				t.Fatal("Convert() succeeded, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConvert_MissingFile(t *testing.T) {
	_, err := Convert(filepath.Join(t.TempDir(), "no-such-file.json"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Convert() error = %v, want ErrFileNotFound", err)
	}
}

func TestRun_Success(t *testing.T) {
	path := writeTemp(t, "[1,2,3,4]")
	var stdout, stderr bytes.Buffer

	code := Run([]string{path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("Run() = %d, want 0", code)
	}
	out := stdout.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("stdout should end with a newline")
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("stdout should be exactly one line, got %q", out)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr should be empty on success, got %q", stderr.String())
	}
}

func TestRun_ArgCount(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"a", "b"},
		{"a", "b", "c"},
	} {
		var stdout, stderr bytes.Buffer
		code := Run(args, &stdout, &stderr)
		if code != 1 {
			t.Errorf("Run(%v) = %d, want 1", args, code)
		}
		if !strings.Contains(stdout.String(), "Usage:") {
			t.Errorf("Run(%v) stdout = %q, want usage message", args, stdout.String())
		}
	}
}

func TestRun_NullFile(t *testing.T) {
	path := writeTemp(t, "null")
	var stdout, stderr bytes.Buffer

	code := Run([]string{path}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("Run() = %d, want 1", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty for a null keypair file, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Error: ") {
		t.Errorf("stderr = %q, want an Error: line", stderr.String())
	}
}

func TestRun_ErrorMessages(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	tests := []struct {
		name       string
		path       string
		wantStderr string
	}{
		{name: "missing file", path: missing, wantStderr: "Error: File not found: " + missing},
		{name: "invalid json", path: writeTemp(t, "not json"), wantStderr: "Error: Invalid JSON in "},
		{name: "out of range", path: writeTemp(t, "[256, 1, 2]"), wantStderr: "Error: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := Run([]string{tt.path}, &stdout, &stderr)
			if code != 1 {
				t.Errorf("Run() = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want substring %q", stderr.String(), tt.wantStderr)
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout should be empty on failure, got %q", stdout.String())
			}
		})
	}
}
