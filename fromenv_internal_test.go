package chainfmt

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLookupEnvPrefix(t *testing.T) {
	t.Setenv("CHAINFMT_X_LINE_CHAR", "#")
	if got, ok := lookupEnv("CHAINFMT_X_", "LINE_CHAR"); !ok || got != "#" {
		t.Fatalf("lookupEnv with prefix = %q, %v", got, ok)
	}
	t.Setenv("LINE_CHAR", "+")
	if got, ok := lookupEnv("", "LINE_CHAR"); !ok || got != "+" {
		t.Fatalf("lookupEnv without prefix = %q, %v", got, ok)
	}
}

func TestParseEnvBool(t *testing.T) {
	cases := []struct {
		in     string
		want   bool
		wantOK bool
	}{
		{in: "true", want: true, wantOK: true},
		{in: " 1 ", want: true, wantOK: true},
		{in: "F", want: false, wantOK: true},
		{in: "maybe", wantOK: false},
	}
	for _, tc := range cases {
		got, ok := parseEnvBool(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("parseEnvBool(%q) = %v, %v", tc.in, got, ok)
		}
	}
}

func TestWriterFromEnvOutputDefaultKeepsBase(t *testing.T) {
	base := &bytes.Buffer{}
	for _, value := range []string{"", "  ", "default", "DEFAULT"} {
		writer, err := writerFromEnvOutput(value, base)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", value, err)
		}
		if writer != base {
			t.Fatalf("expected base writer for %q", value)
		}
	}
}

func TestWriterFromEnvOutputStdoutStderr(t *testing.T) {
	if w, _ := writerFromEnvOutput("stdout", nil); w != os.Stdout {
		t.Fatalf("expected os.Stdout")
	}
	if w, _ := writerFromEnvOutput("Stderr", nil); w != os.Stderr {
		t.Fatalf("expected os.Stderr")
	}
	if w, _ := writerFromEnvOutput("stderr+", nil); w != os.Stderr {
		t.Fatalf("expected os.Stderr for an empty tee path")
	}
}

func TestWriterFromEnvOutputFileIsOwned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "owned.log")
	writer, err := writerFromEnvOutput(path, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := writer.(ownedCloser); !ok {
		t.Fatalf("file outputs must be owned, got %T", writer)
	}
	if _, err := writer.Write([]byte("file")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := closeOutput(writer); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := closeOutput(writer); err != nil {
		t.Fatalf("second close should be a no-op: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(data) != "file" {
		t.Fatalf("unexpected file output: %q", string(data))
	}
}

func TestWriterFromEnvOutputStdoutTee(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdout.log")

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	t.Cleanup(func() {
		os.Stdout = old
	})

	writer, err := writerFromEnvOutput("stdout+"+path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := writer.Write([]byte("stdout")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := closeOutput(writer); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	_ = w.Close()
	output, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read stdout: %v", err)
	}
	_ = r.Close()

	if string(output) != "stdout" {
		t.Fatalf("expected stdout output, got %q", string(output))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(data) != "stdout" {
		t.Fatalf("expected file output, got %q", string(data))
	}
}

func TestWriterFromEnvOutputErrorFallback(t *testing.T) {
	base := &bytes.Buffer{}
	writer, err := writerFromEnvOutput(t.TempDir(), base)
	if err == nil {
		t.Fatalf("expected error for directory output")
	}
	if writer != base {
		t.Fatalf("expected base writer fallback")
	}
	if !strings.Contains(err.Error(), "open chainfmt output") {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestTeeWriterWritesAll(t *testing.T) {
	var a, b bytes.Buffer
	tee := newTeeWriter(&a, nil, &b)
	if n, err := tee.Write([]byte("xy")); err != nil || n != 2 {
		t.Fatalf("tee write = %d, %v", n, err)
	}
	if a.String() != "xy" || b.String() != "xy" {
		t.Fatalf("tee did not fan out: %q %q", a.String(), b.String())
	}
}
