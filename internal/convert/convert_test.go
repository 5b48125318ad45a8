// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/batchreport/internal/runner"
)

// stubConverter copies input to output when scripted to succeed, standing in
// for a real PDF renderer. It records the paths it was asked to convert.
type stubConverter struct {
	fail   map[string]runner.Result // keyed by input filename; absent means success
	inputs []string
}

func (c *stubConverter) Convert(inPath, outPath string) runner.Result {
	c.inputs = append(c.inputs, inPath)
	if res, ok := c.fail[filepath.Base(inPath)]; ok {
		return res
	}
	data, err := os.ReadFile(inPath)
	if err != nil {
		return runner.Result{ExitCode: 1}
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return runner.Result{ExitCode: 1}
	}
	return runner.Result{}
}

func writeTxt(t *testing.T, dir, period, content string) string {
	t.Helper()
	path := filepath.Join(dir, period+".txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPeriodConvertsAndDeletes(t *testing.T) {
	dir := t.TempDir()
	txt := writeTxt(t, dir, "2025-01", "REPORT 2025-01")

	conv := &stubConverter{}
	res := Period(conv, "2025-01", Options{NamePrefix: "KUP", OutDir: dir}, io.Discard)

	if !res.Success() {
		t.Fatalf("unexpected result: %+v", res)
	}
	if _, err := os.Stat(txt); !os.IsNotExist(err) {
		t.Errorf("text file should be deleted, stat err = %v", err)
	}
	pdf := filepath.Join(dir, "KUP-2025-01.pdf")
	data, err := os.ReadFile(pdf)
	if err != nil {
		t.Fatalf("final artifact missing: %v", err)
	}
	if string(data) != "REPORT 2025-01" {
		t.Errorf("artifact contains %q", data)
	}
}

func TestPeriodDeletesEvenWhenConversionFails(t *testing.T) {
	dir := t.TempDir()
	txt := writeTxt(t, dir, "2025-01", "body")

	conv := &stubConverter{fail: map[string]runner.Result{
		"2025-01.txt": {ExitCode: 43},
	}}
	res := Period(conv, "2025-01", Options{NamePrefix: "KUP", OutDir: dir}, io.Discard)

	if res.Success() {
		t.Fatal("expected conversion failure")
	}
	if _, err := os.Stat(txt); !os.IsNotExist(err) {
		t.Errorf("text file should be deleted regardless of conversion outcome, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "KUP-2025-01.pdf")); err == nil {
		t.Error("no PDF expected from a failed conversion")
	}
}

func TestPeriodKeepRetainsTextFile(t *testing.T) {
	dir := t.TempDir()
	txt := writeTxt(t, dir, "2025-01", "body")

	conv := &stubConverter{}
	res := Period(conv, "2025-01", Options{NamePrefix: "KUP", OutDir: dir, Keep: true}, io.Discard)

	if !res.Success() {
		t.Fatalf("unexpected result: %+v", res)
	}
	if _, err := os.Stat(txt); err != nil {
		t.Errorf("text file should be retained with Keep: %v", err)
	}
}

func TestPeriodWarnings(t *testing.T) {
	tests := []struct {
		name    string
		result  runner.Result
		warn    bool
		wantMsg string
	}{
		{
			name:    "silent on failure by default",
			result:  runner.Result{ExitCode: 43},
			wantMsg: "",
		},
		{
			name:    "non-zero exit reported in warn mode",
			result:  runner.Result{ExitCode: 43},
			warn:    true,
			wantMsg: "converter exited 43",
		},
		{
			name:    "launch failure reported in warn mode",
			result:  runner.Result{ExitCode: -1, Err: errors.New("pandoc: not found")},
			warn:    true,
			wantMsg: "did not start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTxt(t, dir, "2025-01", "body")
			conv := &stubConverter{fail: map[string]runner.Result{"2025-01.txt": tt.result}}

			var status bytes.Buffer
			Period(conv, "2025-01", Options{NamePrefix: "KUP", OutDir: dir, Warn: tt.warn}, &status)

			if tt.wantMsg == "" {
				if strings.Contains(status.String(), "warning") {
					t.Errorf("unexpected warning: %q", status.String())
				}
			} else if !strings.Contains(status.String(), tt.wantMsg) {
				t.Errorf("output %q should contain %q", status.String(), tt.wantMsg)
			}
		})
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	periods := []string{"2025-01", "2025-02", "2025-03"}
	for _, p := range periods {
		writeTxt(t, dir, p, "report "+p)
	}

	conv := &stubConverter{fail: map[string]runner.Result{
		"2025-02.txt": {ExitCode: 1},
	}}

	var status bytes.Buffer
	result := Batch(conv, periods, Options{NamePrefix: "KUP", OutDir: dir}, &status)

	if result.Converted != 2 || result.Failed != 1 {
		t.Errorf("result = %+v, want 2 converted, 1 failed", result)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if !strings.Contains(status.String(), "Pass 2 summary: 2 converted, 1 failed (total: 3)") {
		t.Errorf("missing summary line in %q", status.String())
	}

	// Every text file is consumed, converted or not.
	for _, p := range periods {
		if _, err := os.Stat(filepath.Join(dir, p+".txt")); !os.IsNotExist(err) {
			t.Errorf("text file for %s should be gone, stat err = %v", p, err)
		}
	}

	// Conversion order follows list order.
	want := []string{
		filepath.Join(dir, "2025-01.txt"),
		filepath.Join(dir, "2025-02.txt"),
		filepath.Join(dir, "2025-03.txt"),
	}
	if len(conv.inputs) != len(want) {
		t.Fatalf("converted %d inputs, want %d", len(conv.inputs), len(want))
	}
	for i := range want {
		if conv.inputs[i] != want[i] {
			t.Errorf("input[%d] = %s, want %s", i, conv.inputs[i], want[i])
		}
	}
}
