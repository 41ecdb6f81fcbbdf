package roster

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestImportParsesDelimitersAndDedupes(t *testing.T) {
	path := writeFile(t, "roster.txt", "张三,李四;王五\n\n李四\n")

	names, impErr := ImportFromText(path)
	if impErr != nil {
		t.Fatalf("unexpected import error: %v", impErr)
	}

	want := []string{"张三", "李四", "王五"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestImportTrimsTokens(t *testing.T) {
	path := writeFile(t, "roster.csv", "  张三 , 李四 ;; 王五  \n")

	names, impErr := ImportFromText(path)
	if impErr != nil {
		t.Fatalf("unexpected import error: %v", impErr)
	}
	want := []string{"张三", "李四", "王五"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestImportRejectsSpreadsheets(t *testing.T) {
	for _, name := range []string{"roster.xlsx", "roster.XLS"} {
		path := filepath.Join(t.TempDir(), name)
		_, impErr := ImportFromText(path)
		if impErr == nil {
			t.Fatalf("%s: expected an import error", name)
		}
		if impErr.Kind != UnsupportedFormat {
			t.Errorf("%s: expected UnsupportedFormat, got %v", name, impErr.Kind)
		}
		if impErr.Message == "" {
			t.Errorf("%s: rejection should carry a user-facing message", name)
		}
	}
}

func TestImportRejectsMissingFile(t *testing.T) {
	_, impErr := ImportFromText(filepath.Join(t.TempDir(), "nope.txt"))
	if impErr == nil || impErr.Kind != Unreadable {
		t.Fatalf("expected Unreadable, got %v", impErr)
	}
}

func TestImportRejectsEmptyFile(t *testing.T) {
	for _, content := range []string{"", "\n\n", " ; , ; \n,,\n"} {
		path := writeFile(t, "empty.txt", content)
		_, impErr := ImportFromText(path)
		if impErr == nil || impErr.Kind != Empty {
			t.Errorf("content %q: expected Empty, got %v", content, impErr)
		}
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{" 张三 ", "李四", "张三", "", "  ", "王五"})
	want := []string{"张三", "李四", "王五"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
