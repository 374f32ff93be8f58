package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_DuplicateID(t *testing.T) {
	qs := []Question{
		{ID: "A1", Category: "A", Prompt: "one", Mode: ModeTyped},
		{ID: "A1", Category: "A", Prompt: "two", Mode: ModeTimed},
	}
	if err := Validate(qs); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestValidate_UnknownMode(t *testing.T) {
	qs := []Question{{ID: "X1", Category: "A", Prompt: "q", Mode: "audio"}}
	if err := Validate(qs); err == nil {
		t.Fatal("expected unknown type error")
	}
}

func TestDefaultQuestions_Valid(t *testing.T) {
	qs := DefaultQuestions()
	if err := Validate(qs); err != nil {
		t.Fatalf("default set invalid: %v", err)
	}

	cats := Categories(qs)
	for _, want := range []string{"A", "B", "C", "D"} {
		c, ok := cats[want]
		if !ok {
			t.Fatalf("default set missing category %s", want)
		}
		if c[0] == 0 || c[1] == 0 {
			t.Errorf("category %s: typed=%d timed=%d, want both > 0", want, c[0], c[1])
		}
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	content := `{"questions": [
		{"id": "A1", "category": "A", "category_name": "Motivation", "question": "Why here?", "type": "both", "tips": "Be honest."},
		{"id": "B1", "category": "B", "question": "Describe great service.", "type": "typed"}
	]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	qs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Mode != ModeEither || !qs[0].TypedEligible() || !qs[0].TimedEligible() {
		t.Errorf("A1 eligibility wrong: %+v", qs[0])
	}
	if qs[1].TimedEligible() {
		t.Errorf("B1 should not be timed-eligible")
	}
}

func TestLoad_SchemaRejectsBadMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	content := `{"questions": [{"id": "A1", "category": "A", "question": "q", "type": "telepathy"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	qs := LoadOrDefault(filepath.Join(t.TempDir(), "nope.json"), nil)
	if len(qs) == 0 {
		t.Fatal("expected built-in default questions")
	}
}
