package walker

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// testdataDir returns the absolute path to the testdata/content directory.
func testdataDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	root := filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "content")
	abs, err := filepath.Abs(root)
	if err != nil {
		t.Fatalf("resolve testdata path: %v", err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		t.Fatalf("testdata dir does not exist: %s", abs)
	}
	return abs
}

func relPaths(files []FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

func TestWalk_ContentPages(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(WalkerConfig{
		RootDir: dir,
		Include: []string{"**/*.md"},
		Exclude: []string{"**/_*.md", "**/drafts/**"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{
		"guides/advanced/caching.md",
		"guides/index.md",
		"guides/install.md",
		"index.md",
	}
	got := relPaths(files)
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalk_FileInfoFields(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(WalkerConfig{RootDir: dir, Include: []string{"**/*.md"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		if !filepath.IsAbs(f.Path) {
			t.Errorf("FileInfo.Path %q is not absolute", f.Path)
		}
		if f.Size <= 0 {
			t.Errorf("FileInfo.Size for %s = %d", f.RelPath, f.Size)
		}
	}
}

func TestWalk_SkipsBinaryAndIgnored(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(WalkerConfig{RootDir: dir, Include: []string{"**/*.md"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	for _, f := range files {
		switch f.RelPath {
		case "assets/logo.md":
			t.Error("binary file should be skipped")
		case "ignored.md":
			t.Error(".gitignore entries should be skipped")
		}
	}
}

func TestWalk_SkipsLargeFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "small.md"), []byte("# Small"), 0o644); err != nil {
		t.Fatal(err)
	}
	large := make([]byte, 2048)
	for i := range large {
		large[i] = 'a'
	}
	if err := os.WriteFile(filepath.Join(dir, "large.md"), large, 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := Walk(WalkerConfig{RootDir: dir, MaxFileSize: 1024})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(files) != 1 || files[0].RelPath != "small.md" {
		t.Errorf("Walk() = %v, want [small.md]", relPaths(files))
	}
}

func TestWalk_DefaultExcludeDirs(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []string{"page.md", "node_modules/pkg/readme.md", ".data/cache.md", ".git/HEAD.md"} {
		full := filepath.Join(dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("# x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := Walk(WalkerConfig{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "page.md" {
		t.Errorf("Walk() = %v, want [page.md]", got)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	if _, err := Walk(WalkerConfig{RootDir: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestWalk_Deterministic(t *testing.T) {
	dir := testdataDir(t)

	first, err := Walk(WalkerConfig{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	second, err := Walk(WalkerConfig{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("walks differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d changed between walks: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestMatchesInclude(t *testing.T) {
	if !MatchesInclude("anything.md", nil) {
		t.Error("empty include list should match everything")
	}
	if !MatchesInclude("guides/install.md", []string{"**/*.md"}) {
		t.Error("**/*.md should match nested markdown")
	}
	if MatchesInclude("guides/install.txt", []string{"**/*.md"}) {
		t.Error("**/*.md should not match .txt")
	}
}

func TestMatchesExclude(t *testing.T) {
	if MatchesExclude("anything.md", nil) {
		t.Error("empty exclude list should match nothing")
	}
	tests := []struct {
		path string
		want bool
	}{
		{"_partial.md", true},
		{"guides/_partial.md", true},
		{"drafts/wip.md", true},
		{"guides/drafts/wip.md", true},
		{"guides/install.md", false},
	}
	for _, tt := range tests {
		if got := MatchesExclude(tt.path, []string{"**/_*.md", "**/drafts/**"}); got != tt.want {
			t.Errorf("MatchesExclude(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestMatchesGitignore(t *testing.T) {
	patterns := []string{"ignored.md", "build/", "/docs/*.tmp.md"}
	tests := []struct {
		path string
		want bool
	}{
		{"ignored.md", true},
		{"nested/ignored.md", true},
		{"build/page.md", true},
		{"build", false},
		{"docs/a.tmp.md", true},
		{"keep.md", false},
	}
	for _, tt := range tests {
		if got := matchesGitignore(tt.path, patterns); got != tt.want {
			t.Errorf("matchesGitignore(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
