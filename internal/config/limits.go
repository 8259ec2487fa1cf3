package config

const (
	// MaxProjectTitleLength is the maximum length for project titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxProjectTitleLength = 255

	// MaxSectionTitleLength is the maximum length for section/slide titles.
	// Same bound as project titles for consistency.
	MaxSectionTitleLength = 255

	// MaxTopicLength bounds the free-text main topic of a project.
	MaxTopicLength = 2000

	// MaxPromptLength bounds user-supplied refinement instructions.
	MaxPromptLength = 4000

	// MaxCommentLength bounds free-text section comments.
	MaxCommentLength = 4000

	// MaxOutlineEntries bounds the number of sections in one outline
	// submission. Larger outlines indicate client error.
	MaxOutlineEntries = 200
)
