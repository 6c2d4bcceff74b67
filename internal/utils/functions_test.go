package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		input uint64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{8 * 1024 * 1024, "8.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}
	for _, tc := range cases {
		if got := FormatBytes(tc.input); got != tc.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFormatSpeed(t *testing.T) {
	if got := FormatSpeed(2048, 2.0); got != "1.00 KB/s" {
		t.Errorf("FormatSpeed(2048, 2.0) = %q, want %q", got, "1.00 KB/s")
	}
	if got := FormatSpeed(1000, 0); got != "0 B/s" {
		t.Errorf("FormatSpeed(1000, 0) = %q, want %q", got, "0 B/s")
	}
}

func TestParseBytes(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"", 0},
		{"100", 100},
		{"500KB", 500 * 1024},
		{"2MB", 2 * 1024 * 1024},
		{"1.5m", 1536 * 1024},
		{"1GB", 1024 * 1024 * 1024},
	}
	for _, tc := range cases {
		got, err := ParseBytes(tc.input)
		if err != nil {
			t.Errorf("ParseBytes(%q): %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseBytes(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}

	if _, err := ParseBytes("fast"); err == nil {
		t.Error("expected error for invalid size string")
	}
}

func TestParseHeaderArgs(t *testing.T) {
	headers := ParseHeaderArgs([]string{
		"Authorization: Bearer token",
		"X-Custom:value",
		"malformed-header",
	})
	if len(headers) != 2 {
		t.Fatalf("got %d headers, want 2", len(headers))
	}
	if headers["Authorization"] != "Bearer token" {
		t.Errorf("Authorization = %q", headers["Authorization"])
	}
	if headers["X-Custom"] != "value" {
		t.Errorf("X-Custom = %q", headers["X-Custom"])
	}
}

func TestReadDownloadList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.yaml")
	content := "- link: https://example.com/a\n- link: https://example.com/b\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadDownloadList(path)
	if err != nil {
		t.Fatalf("ReadDownloadList: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].URL != "https://example.com/a" {
		t.Errorf("entries[0].URL = %q", entries[0].URL)
	}
}

func TestReadDownloadListRejectsMissingURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.yaml")
	if err := os.WriteFile(path, []byte("- link: \"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadDownloadList(path); err == nil {
		t.Error("expected error for entry with empty link")
	}
}
