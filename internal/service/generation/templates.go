package generation

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"draftdeck/internal/domain/models"
)

//go:embed templates/*.yaml
var templateFiles embed.FS

// promptSet holds the generation and refinement templates for one
// document kind.
type promptSet struct {
	Label    string `yaml:"label"`
	Generate string `yaml:"generate"`
	Refine   string `yaml:"refine"`
}

type promptFile struct {
	Defaults struct {
		Model     string `yaml:"model"`
		MaxTokens int    `yaml:"max_tokens"`
	} `yaml:"defaults"`
	Kinds map[string]promptSet `yaml:"kinds"`
}

// PromptRegistry renders provider prompts from embedded YAML templates,
// keyed by document kind.
type PromptRegistry struct {
	defaults struct {
		Model     string
		MaxTokens int
	}
	generate map[models.DocType]*template.Template
	refine   map[models.DocType]*template.Template
	labels   map[models.DocType]string
}

// promptData is the template context for both prompt kinds.
type promptData struct {
	DocKind        string
	MainTopic      string
	SectionTitle   string
	CurrentContent string
	Instruction    string
}

// NewPromptRegistry loads the embedded prompt templates.
func NewPromptRegistry() (*PromptRegistry, error) {
	data, err := templateFiles.ReadFile("templates/prompts.yaml")
	if err != nil {
		return nil, fmt.Errorf("read prompt templates: %w", err)
	}

	var file promptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal prompt templates: %w", err)
	}

	r := &PromptRegistry{
		generate: make(map[models.DocType]*template.Template),
		refine:   make(map[models.DocType]*template.Template),
		labels:   make(map[models.DocType]string),
	}
	r.defaults.Model = file.Defaults.Model
	r.defaults.MaxTokens = file.Defaults.MaxTokens

	for kind, set := range file.Kinds {
		docType := models.DocType(kind)
		if !docType.Valid() {
			return nil, fmt.Errorf("unknown document kind %q in prompt templates", kind)
		}

		gen, err := template.New(kind + "/generate").Parse(set.Generate)
		if err != nil {
			return nil, fmt.Errorf("parse %s generate template: %w", kind, err)
		}
		ref, err := template.New(kind + "/refine").Parse(set.Refine)
		if err != nil {
			return nil, fmt.Errorf("parse %s refine template: %w", kind, err)
		}

		r.generate[docType] = gen
		r.refine[docType] = ref
		r.labels[docType] = set.Label
	}

	for _, docType := range []models.DocType{models.DocTypeReport, models.DocTypeSlides} {
		if _, ok := r.generate[docType]; !ok {
			return nil, fmt.Errorf("prompt templates missing document kind %q", docType)
		}
	}

	return r, nil
}

// DefaultModel returns the configured default model identifier.
func (r *PromptRegistry) DefaultModel() string {
	return r.defaults.Model
}

// MaxTokens returns the configured response budget.
func (r *PromptRegistry) MaxTokens() int {
	return r.defaults.MaxTokens
}

// GeneratePrompt renders the fresh-generation prompt for a section.
func (r *PromptRegistry) GeneratePrompt(project *models.Project, section *models.Section) (string, error) {
	return r.render(r.generate[project.DocType], project, section, "")
}

// RefinePrompt renders the refinement prompt for a section and a
// user-supplied instruction.
func (r *PromptRegistry) RefinePrompt(project *models.Project, section *models.Section, instruction string) (string, error) {
	return r.render(r.refine[project.DocType], project, section, instruction)
}

func (r *PromptRegistry) render(tmpl *template.Template, project *models.Project, section *models.Section, instruction string) (string, error) {
	if tmpl == nil {
		return "", fmt.Errorf("no prompt template for document kind %q", project.DocType)
	}

	current := ""
	if section.Content != nil {
		current = *section.Content
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, promptData{
		DocKind:        r.labels[project.DocType],
		MainTopic:      project.MainTopic,
		SectionTitle:   section.Title,
		CurrentContent: current,
		Instruction:    instruction,
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
