package export

import (
	"strings"
	"testing"

	"draftdeck/internal/domain/services"
)

func TestRenderHTML_Report(t *testing.T) {
	doc := &services.ExportDocument{
		Title: "Annual Report",
		Sections: []services.ExportSection{
			{Title: "Introduction", Content: "First paragraph.\n\nSecond paragraph."},
			{Title: "Conclusion", Content: "Wrapping up."},
		},
	}

	html, err := renderHTML(doc, services.ExportDOCX)
	if err != nil {
		t.Fatalf("renderHTML returned error: %v", err)
	}

	for _, want := range []string{
		"<h1>Annual Report</h1>",
		"<h2>Introduction</h2>",
		"<p>First paragraph.</p>",
		"<p>Second paragraph.</p>",
		"<h2>Conclusion</h2>",
		"<p>Wrapping up.</p>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report html missing %q", want)
		}
	}
	if strings.Contains(html, "<li>") {
		t.Errorf("report html contains slide bullets")
	}
}

func TestRenderHTML_Slides(t *testing.T) {
	doc := &services.ExportDocument{
		Title: "Pitch Deck",
		Sections: []services.ExportSection{
			{Title: "Market", Content: "Big market\nGrowing fast\n\nUnderserved"},
		},
	}

	html, err := renderHTML(doc, services.ExportPPTX)
	if err != nil {
		t.Fatalf("renderHTML returned error: %v", err)
	}

	for _, want := range []string{
		"<h2>Market</h2>",
		"<li>Big market</li>",
		"<li>Growing fast</li>",
		"<li>Underserved</li>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("slides html missing %q", want)
		}
	}
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	doc := &services.ExportDocument{
		Title: "Injection <script>",
		Sections: []services.ExportSection{
			{Title: "S", Content: "a < b & c"},
		},
	}

	html, err := renderHTML(doc, services.ExportDOCX)
	if err != nil {
		t.Fatalf("renderHTML returned error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("html did not escape the title")
	}
	if !strings.Contains(html, "a &lt; b &amp; c") {
		t.Errorf("html did not escape the body")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Quarterly Report", "Quarterly Report"},
		{"a/b\\c:d", "a_b_c_d"},
		{"déjà vu", "d_j_ vu"},
		{"   ", "document"},
		{"", "document"},
		{"under_score-dash", "under_score-dash"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitParagraphs(t *testing.T) {
	got := splitParagraphs("one\n\n\n\ntwo\n\n  \n\nthree")
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("got %d paragraphs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paragraph %d = %q, want %q", i, got[i], want[i])
		}
	}
}
