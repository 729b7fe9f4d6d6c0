package ingest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseHTML(t *testing.T) {
	raw := []byte(`<html><head><title>Заголовок</title><style>p{color:red}</style></head>
<body><p>Первый   абзац.</p><script>var x = 1;</script><div>Второй абзац.</div></body></html>`)

	got, err := ParseHTML(raw)
	if err != nil {
		t.Fatalf("ParseHTML failed: %v", err)
	}

	want := "Первый абзац.\nВторой абзац."
	if got != want {
		t.Errorf("ParseHTML() = %q, want %q", got, want)
	}
}

func TestParseDOCX(t *testing.T) {
	raw := buildDOCX(t, `<w:document><w:body><w:p><w:r><w:t>Глава 1</w:t></w:r></w:p><w:p><w:r><w:t>Привет, мир.</w:t></w:r></w:p></w:body></w:document>`)
	got, err := parseDOCX(raw)
	if err != nil {
		t.Fatalf("parseDOCX failed: %v", err)
	}
	if got != "Глава 1\nПривет, мир." {
		t.Errorf("parseDOCX() = %q", got)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		file       string
		content    string
		wantFormat string
		wantText   string
		wantErr    bool
	}{
		{
			name:       "plain text keeps layout",
			file:       "note.txt",
			content:    "\xef\xbb\xbfСтрока один.\r\nСтрока два.",
			wantFormat: "text",
			wantText:   "Строка один.\nСтрока два.",
		},
		{
			name:       "markdown is plain text",
			file:       "readme.md",
			content:    "# Title\n\nBody.",
			wantFormat: "text",
			wantText:   "# Title\n\nBody.",
		},
		{
			name:       "html",
			file:       "page.html",
			content:    "<p>Hello <b>world</b>.</p>",
			wantFormat: "html",
			wantText:   "Hello world.",
		},
		{
			name:    "unsupported extension",
			file:    "image.png",
			content: "x",
			wantErr: true,
		},
		{
			name:    "invalid utf-8",
			file:    "bad.txt",
			content: "\xff\xfe\xfd",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write sample: %v", err)
			}

			parsed, err := ParseFile(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFile failed: %v", err)
			}
			if parsed.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", parsed.Format, tt.wantFormat)
			}
			if parsed.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", parsed.Text, tt.wantText)
			}
			if parsed.Title != strings.TrimSuffix(tt.file, filepath.Ext(tt.file)) {
				t.Errorf("Title = %q", parsed.Title)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	for path, want := range map[string]bool{
		"a.txt":  true,
		"b.HTML": true,
		"c.pdf":  true,
		"d.docx": true,
		"e.go":   false,
		"f":      false,
	} {
		if got := Supported(path); got != want {
			t.Errorf("Supported(%q) = %v, want %v", path, got, want)
		}
	}
}

func buildDOCX(t *testing.T, bodyXML string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	xml := `<?xml version="1.0" encoding="UTF-8"?>` + bodyXML
	if _, err := f.Write([]byte(xml)); err != nil {
		t.Fatalf("write xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return b.Bytes()
}
