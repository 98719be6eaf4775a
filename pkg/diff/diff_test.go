package diff

import (
	"strings"
	"testing"
)

const initialSnapshot = `param_values:
    - param_id: 3
      value: 1234
colors:
    - red
    - blue
`

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	result := GenerateUnifiedDiff([]byte(initialSnapshot), []byte(initialSnapshot), "initial", "current")

	if result != "" {
		t.Errorf("Expected empty diff for identical content, got: %s", result)
	}
}

func TestGenerateUnifiedDiff_ValueChange(t *testing.T) {
	current := strings.Replace(initialSnapshot, "value: 1234", "value: 9999", 1)

	result := GenerateUnifiedDiff([]byte(initialSnapshot), []byte(current), "initial", "current")

	if !strings.Contains(result, "--- initial") || !strings.Contains(result, "+++ current") {
		t.Error("Diff should contain unified diff headers with labels")
	}
	if !strings.Contains(result, "-      value: 1234\n") {
		t.Errorf("Diff should show the removed value line, got:\n%s", result)
	}
	if !strings.Contains(result, "+      value: 9999\n") {
		t.Errorf("Diff should show the added value line, got:\n%s", result)
	}
	if !strings.Contains(result, "     - red\n") {
		t.Errorf("Diff should keep unchanged lines as context, got:\n%s", result)
	}
}

func TestGenerateUnifiedDiff_AppendedColor(t *testing.T) {
	current := initialSnapshot + "    - green\n"

	result := GenerateUnifiedDiff([]byte(initialSnapshot), []byte(current), "initial", "current")

	if !strings.Contains(result, "+    - green\n") {
		t.Errorf("Diff should show the appended color, got:\n%s", result)
	}
	if strings.Contains(result, "\n-") {
		t.Errorf("Appending should not remove lines, got:\n%s", result)
	}
	if !strings.Contains(result, "@@ -1,6 +1,7 @@") {
		t.Errorf("Hunk header should carry line counts, got:\n%s", result)
	}
}

func TestGenerateUnifiedDiff_Truncation(t *testing.T) {
	var before []string
	var after []string

	for i := 0; i < 11000; i++ {
		before = append(before, "    - red")
		if i%2 == 0 {
			after = append(after, "    - blue")
		} else {
			after = append(after, "    - red")
		}
	}

	result := GenerateUnifiedDiff([]byte(strings.Join(before, "\n")), []byte(strings.Join(after, "\n")), "initial", "current")

	if !strings.Contains(result, "truncated") {
		t.Error("Large diff should be truncated with truncation message")
	}

	lineCount := strings.Count(result, "\n")
	if lineCount > 10100 {
		t.Errorf("Truncated diff should not exceed ~10,000 lines, got %d", lineCount)
	}
}

func TestGenerateUnifiedDiff_EmptyContent(t *testing.T) {
	result := GenerateUnifiedDiff([]byte(""), []byte("colors: []\n"), "initial", "current")

	if !strings.Contains(result, "+colors: []") {
		t.Error("Diff should show added content")
	}
}

func TestStat(t *testing.T) {
	current := strings.Replace(initialSnapshot, "value: 1234", "value: 0", 1) + "    - green\n"

	added, removed := Stat([]byte(initialSnapshot), []byte(current))
	if added != 2 || removed != 1 {
		t.Errorf("Expected 2 added and 1 removed line, got +%d -%d", added, removed)
	}

	added, removed = Stat([]byte(initialSnapshot), []byte(initialSnapshot))
	if added != 0 || removed != 0 {
		t.Errorf("Identical content should have no changes, got +%d -%d", added, removed)
	}
}
