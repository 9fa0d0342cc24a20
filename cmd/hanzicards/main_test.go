package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jask/hanzicards/internal/catalog"
	"github.com/jask/hanzicards/internal/config"
	"github.com/jask/hanzicards/internal/database"
)

const sampleCatalog = `{"lessons": [
  {"id": 1, "title": "คำทักทาย", "image": "images/lesson1.png", "vocab": [
    {"hanzi": "你好", "pinyin": "Nǐ hǎo", "thai": "สวัสดี"},
    {"hanzi": "谢谢", "pinyin": "Xièxiè", "thai": "ขอบคุณ"},
    {"hanzi": "再见", "pinyin": "Zàijiàn", "thai": "ลาก่อน"},
    {"hanzi": "是", "pinyin": "Shì", "thai": "ใช่"}
  ]},
  {"id": 2, "title": "ตัวเลข", "image": "", "vocab": [
    {"hanzi": "一", "pinyin": "Yī", "thai": "หนึ่ง"}
  ]}
]}`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HANZICARDS_CONFIG", "")
	t.Chdir(t.TempDir())
}

func TestOpenSource(t *testing.T) {
	tests := []struct {
		source   string
		wantType string
		wantBase string
	}{
		{source: "lessons/data.json", wantType: "catalog.FileSource", wantBase: "lessons"},
		{source: "https://example.com/data.json", wantType: "catalog.HTTPSource", wantBase: "."},
		{source: "sqlite:///srv/cards/catalog.db", wantType: "database.SQLiteSource", wantBase: "/srv/cards"},
	}
	for _, tt := range tests {
		cfg := config.Config{Catalog: config.CatalogConfig{Source: tt.source}}
		src, base, err := openSource(cfg)
		if err != nil {
			t.Fatalf("%s: %v", tt.source, err)
		}
		var got string
		switch src.(type) {
		case catalog.FileSource:
			got = "catalog.FileSource"
		case catalog.HTTPSource:
			got = "catalog.HTTPSource"
		case database.SQLiteSource:
			got = "database.SQLiteSource"
		}
		if got != tt.wantType || base != tt.wantBase {
			t.Fatalf("%s: got %s base %q, want %s base %q", tt.source, got, base, tt.wantType, tt.wantBase)
		}
	}

	if _, _, err := openSource(config.Config{}); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestReportFlagsBlockingIssues(t *testing.T) {
	c, err := catalog.FileSource{Path: writeCatalog(t)}.Load(t.Context())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var out bytes.Buffer
	if code := report(&out, "data.json", c); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	text := out.String()
	if !strings.Contains(text, "data.json: 2 lessons, 5 entries, 1 issues") {
		t.Fatalf("missing summary line:\n%s", text)
	}
	if !strings.Contains(text, "error lesson 2:") || !strings.Contains(text, "not_quizzable") {
		t.Fatalf("missing blocking issue:\n%s", text)
	}
}

func TestRunValidate(t *testing.T) {
	isolate(t)
	path := writeCatalog(t)

	var out bytes.Buffer
	if code := runValidate([]string{"--source", path}, &out); code != 1 {
		t.Fatalf("expected exit 1, got %d:\n%s", code, out.String())
	}

	out.Reset()
	missing := filepath.Join(t.TempDir(), "missing.json")
	if code := runValidate([]string{"--source", missing}, &out); code != 1 {
		t.Fatalf("expected exit 1 for missing file, got %d", code)
	}
	if !strings.Contains(out.String(), "load "+missing) {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestRunImport(t *testing.T) {
	path := writeCatalog(t)
	dbPath := filepath.Join(t.TempDir(), "nested", "catalog.db")

	var out bytes.Buffer
	if code := runImport([]string{path, dbPath}, &out); code != 0 {
		t.Fatalf("import failed with %d:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "imported 2 lessons, 5 entries") {
		t.Fatalf("unexpected output: %s", out.String())
	}

	c, err := database.SQLiteSource{Path: dbPath}.Load(t.Context())
	if err != nil {
		t.Fatalf("load imported catalog: %v", err)
	}
	if c.Len() != 2 || c.Lessons[0].Vocab[1].Term != "谢谢" {
		t.Fatalf("unexpected catalog: %+v", c.Lessons)
	}

	out.Reset()
	if code := runImport([]string{path}, &out); code != 2 {
		t.Fatalf("expected usage exit 2, got %d", code)
	}
}

func TestRunSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")

	var out bytes.Buffer
	if code := runSample([]string{"--lessons", "2", "--entries", "5", "--seed", "4", path}, &out); code != 0 {
		t.Fatalf("sample failed with %d:\n%s", code, out.String())
	}
	c, err := catalog.FileSource{Path: path}.Load(t.Context())
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if c.Len() != 2 || len(c.Lessons[1].Vocab) != 5 {
		t.Fatalf("unexpected sample: %+v", c.Lessons)
	}
	if issues := catalog.Validate(c); len(issues) != 0 {
		t.Fatalf("sample has issues: %v", issues)
	}

	out.Reset()
	if code := runSample(nil, &out); code != 2 {
		t.Fatalf("expected usage exit 2, got %d", code)
	}
}
