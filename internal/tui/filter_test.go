package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jask/hanzicards/internal/catalog"
)

func TestFilterLessons(t *testing.T) {
	lessons := []catalog.Lesson{
		{ID: 1, Title: "Greetings"},
		{ID: 2, Title: "Numbers and counting"},
		{ID: 3, Title: "Colours"},
		{ID: 12, Title: "คำทักทาย"},
	}
	tests := []struct {
		query string
		want  []int
	}{
		{"", []int{0, 1, 2, 3}},
		{"  ", []int{0, 1, 2, 3}},
		{"greet", []int{0}},
		{"NUMBERS", []int{1}},
		{"colors", []int{2}},   // one edit from "colours"
		{"countinq", []int{1}}, // typo
		{"ทักทาย", []int{3}},
		{"12", []int{3}},
		{"xyzzy", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := filterLessons(lessons, tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("filterLessons(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("filterLessons(%q) = %v, want %v", tt.query, got, tt.want)
				}
			}
		})
	}
}

func TestFilterLessonsOrdersExactFirst(t *testing.T) {
	lessons := []catalog.Lesson{
		{ID: 1, Title: "Frut"},
		{ID: 2, Title: "Fruit"},
	}
	got := filterLessons(lessons, "fruit")
	if len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Fatalf("got %v, want exact match first", got)
	}
}

func TestImageRef(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "images"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "images", "nihao.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	if ref, ok := imageRef(dir, "images/nihao.png"); !ok || ref != filepath.Join(dir, "images", "nihao.png") {
		t.Fatalf("existing image: got %q %v", ref, ok)
	}
	if _, ok := imageRef(dir, "images/missing.png"); ok {
		t.Fatal("missing image should be hidden")
	}
	if _, ok := imageRef(dir, "images"); ok {
		t.Fatal("directory should be hidden")
	}
	if _, ok := imageRef(dir, ""); ok {
		t.Fatal("empty reference should be hidden")
	}
	if ref, ok := imageRef(dir, "https://example.com/a.png"); !ok || ref != "https://example.com/a.png" {
		t.Fatalf("url: got %q %v", ref, ok)
	}
}
