package generation

import (
	"strings"
	"testing"

	"draftdeck/internal/domain/models"
)

func TestPromptRegistry_Defaults(t *testing.T) {
	r, err := NewPromptRegistry()
	if err != nil {
		t.Fatalf("NewPromptRegistry returned error: %v", err)
	}
	if r.DefaultModel() == "" {
		t.Error("default model is empty")
	}
	if r.MaxTokens() <= 0 {
		t.Errorf("max tokens = %d", r.MaxTokens())
	}
}

func TestPromptRegistry_GeneratePrompt(t *testing.T) {
	r, err := NewPromptRegistry()
	if err != nil {
		t.Fatalf("NewPromptRegistry returned error: %v", err)
	}

	project := &models.Project{DocType: models.DocTypeReport, MainTopic: "solar adoption"}
	section := &models.Section{Title: "Market Overview"}

	prompt, err := r.GeneratePrompt(project, section)
	if err != nil {
		t.Fatalf("GeneratePrompt returned error: %v", err)
	}
	if !strings.Contains(prompt, "solar adoption") {
		t.Errorf("prompt missing the main topic: %q", prompt)
	}
	if !strings.Contains(prompt, "Market Overview") {
		t.Errorf("prompt missing the section title: %q", prompt)
	}
}

func TestPromptRegistry_RefinePrompt(t *testing.T) {
	r, err := NewPromptRegistry()
	if err != nil {
		t.Fatalf("NewPromptRegistry returned error: %v", err)
	}

	content := "Current body text."
	project := &models.Project{DocType: models.DocTypeSlides, MainTopic: "wind power"}
	section := &models.Section{Title: "Costs", Content: &content}

	prompt, err := r.RefinePrompt(project, section, "make it shorter")
	if err != nil {
		t.Fatalf("RefinePrompt returned error: %v", err)
	}
	for _, want := range []string{"wind power", "Costs", "Current body text.", "make it shorter"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("refine prompt missing %q", want)
		}
	}
}

func TestPromptRegistry_KindsDiffer(t *testing.T) {
	r, err := NewPromptRegistry()
	if err != nil {
		t.Fatalf("NewPromptRegistry returned error: %v", err)
	}

	section := &models.Section{Title: "Same Title"}
	report, err := r.GeneratePrompt(&models.Project{DocType: models.DocTypeReport, MainTopic: "t"}, section)
	if err != nil {
		t.Fatalf("report prompt: %v", err)
	}
	slides, err := r.GeneratePrompt(&models.Project{DocType: models.DocTypeSlides, MainTopic: "t"}, section)
	if err != nil {
		t.Fatalf("slides prompt: %v", err)
	}
	if report == slides {
		t.Error("report and slide prompts are identical")
	}
}
