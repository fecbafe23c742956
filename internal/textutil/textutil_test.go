package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Doe/John  ", "Doe-John"},
		{"a:b*c", "a-b-c"},
		{"what?<>|\"", "what"},
		{"", ""},
		{" ..hidden. ", "hidden"},
		{"tab\there", "tabhere"},
	}
	for _, tt := range tests {
		if got := SanitizeFileName(tt.in); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"jane", "DOE", "Doe, Jane"},
		{"  mary  ann ", "o'neil", "O'neil, Mary Ann"},
		{"", "smith", "Smith"},
		{"alex", "", "Alex"},
		{"", "", ""},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.first, tt.last); got != tt.want {
			t.Errorf("DisplayName(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestExportFileName(t *testing.T) {
	if got := ExportFileName("Jane", "Doe", "id-1"); got != "Doe_Jane.json" {
		t.Fatalf("unexpected export name %q", got)
	}
	if got := ExportFileName("", "", "id-1"); got != "id-1.json" {
		t.Fatalf("expected id fallback, got %q", got)
	}
}

func TestMatchScore(t *testing.T) {
	doc := "Doe, Jane MRN 123456 subglottic stenosis"

	if got := MatchScore("jane doe", doc); got <= 0 {
		t.Fatalf("expected positive score for exact tokens, got %v", got)
	}
	if got := MatchScore("sten", doc); got <= 0 {
		t.Fatalf("expected prefix to score, got %v", got)
	}
	if got := MatchScore("smith", doc); got != 0 {
		t.Fatalf("expected zero for unrelated query, got %v", got)
	}
	if got := MatchScore("", doc); got != 0 {
		t.Fatalf("expected zero for empty query, got %v", got)
	}
	exact := MatchScore("123456", doc)
	partial := MatchScore("1234", doc)
	if exact <= partial {
		t.Fatalf("expected exact match (%v) to outrank prefix (%v)", exact, partial)
	}
}

func TestTokenizeKeepsShortSurnames(t *testing.T) {
	tokens := Tokenize("Li, Wu-Ng x")
	want := []string{"li", "wu", "ng"}
	if len(tokens) != len(want) {
		t.Fatalf("Tokenize = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("Tokenize = %v, want %v", tokens, want)
		}
	}
}
