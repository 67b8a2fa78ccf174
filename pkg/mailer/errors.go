package mailer

import "errors"

// Validation errors returned by Email.Validate.
var (
	ErrNoRecipient = errors.New("mailer: no recipient")
	ErrNoSubject   = errors.New("mailer: empty subject")
	ErrNoContent   = errors.New("mailer: empty html body")
)

// Rendering errors returned by Renderer.Render and ParseTemplate.
var (
	ErrTemplateNotFound   = errors.New("mailer: template not found")
	ErrRenderFailed       = errors.New("mailer: render failed")
	ErrInvalidFrontmatter = errors.New("mailer: invalid frontmatter")
)
