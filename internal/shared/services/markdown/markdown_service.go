// Package markdown renders admin-authored client notes to safe HTML.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// NotesRenderer converts Markdown notes to sanitized HTML.
type NotesRenderer interface {
	Render(notes string) (string, error)
}

type notesRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewNotesRenderer() NotesRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.TaskList,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &notesRenderer{md: md, policy: policy}
}

// Render returns "" for blank notes.
func (r *notesRenderer) Render(notes string) (string, error) {
	if strings.TrimSpace(notes) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(notes), &buf); err != nil {
		return "", fmt.Errorf("failed to render notes: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
