package frontmatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docstore/internal/frontmatter"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("splits frontmatter from content", func(t *testing.T) {
		t.Parallel()

		text := "---\n" +
			"id: doc-1\n" +
			"slug: getting-started\n" +
			"title: Getting Started\n" +
			"summary: Intro guide\n" +
			"version: 3\n" +
			"updatedAt: \"2026-01-02T03:04:05Z\"\n" +
			"---\n" +
			"\n" +
			"# Hello\n" +
			"\n" +
			"Body text.\n"

		doc, err := frontmatter.Parse(text)
		require.NoError(t, err)

		assert.Equal(t, "doc-1", doc.Meta.ID)
		assert.Equal(t, "getting-started", doc.Meta.Slug)
		assert.Equal(t, "Getting Started", doc.Meta.Title)
		assert.Equal(t, "Intro guide", doc.Meta.Summary)
		assert.Equal(t, 3, doc.Meta.Version)
		assert.Equal(t, "2026-01-02T03:04:05Z", doc.Meta.UpdatedAt)
		assert.Equal(t, "# Hello\n\nBody text.\n", doc.Content)
	})

	t.Run("file without a fence is all content", func(t *testing.T) {
		t.Parallel()

		doc, err := frontmatter.Parse("# Just Markdown\n")
		require.NoError(t, err)
		assert.Equal(t, frontmatter.Meta{}, doc.Meta)
		assert.Equal(t, "# Just Markdown\n", doc.Content)
	})

	t.Run("closing fence must be exactly three dashes on its own line", func(t *testing.T) {
		t.Parallel()

		// "---extra" must not close the block.
		_, err := frontmatter.Parse("---\ntitle: T\n---extra\nbody\n")
		assert.Error(t, err)
	})

	t.Run("thematic break in the content is not a fence", func(t *testing.T) {
		t.Parallel()

		text := "---\ntitle: T\n---\n\nabove\n\n----\n\nbelow\n"
		doc, err := frontmatter.Parse(text)
		require.NoError(t, err)
		assert.Equal(t, "T", doc.Meta.Title)
		assert.Equal(t, "above\n\n----\n\nbelow\n", doc.Content)
	})

	t.Run("closing fence at end of file without newline", func(t *testing.T) {
		t.Parallel()

		doc, err := frontmatter.Parse("---\ntitle: T\n---")
		require.NoError(t, err)
		assert.Equal(t, "T", doc.Meta.Title)
		assert.Equal(t, "", doc.Content)
	})

	t.Run("unterminated fence is an error", func(t *testing.T) {
		t.Parallel()

		_, err := frontmatter.Parse("---\nid: doc-1\n")
		assert.Error(t, err)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		t.Parallel()

		_, err := frontmatter.Parse("---\n\t tab: indent\n---\nbody\n")
		assert.Error(t, err)
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("round trips through parse", func(t *testing.T) {
		t.Parallel()

		original := &frontmatter.Doc{
			Meta: frontmatter.Meta{
				ID:        "doc-1",
				Slug:      "guide",
				Title:     "Guide",
				Summary:   "A guide",
				Project:   "platform",
				Version:   2,
				UpdatedAt: "2026-01-02T03:04:05Z",
			},
			Content: "# Heading\n\nParagraph.",
		}

		text, err := frontmatter.Render(original)
		require.NoError(t, err)

		parsed, err := frontmatter.Parse(text)
		require.NoError(t, err)
		assert.Equal(t, original.Meta, parsed.Meta)
		assert.Equal(t, "# Heading\n\nParagraph.\n", parsed.Content)
	})

	t.Run("omits empty optional fields", func(t *testing.T) {
		t.Parallel()

		text, err := frontmatter.Render(&frontmatter.Doc{
			Meta:    frontmatter.Meta{Title: "T", Summary: "S"},
			Content: "body",
		})
		require.NoError(t, err)

		assert.NotContains(t, text, "id:")
		assert.NotContains(t, text, "project:")
		assert.NotContains(t, text, "version:")
	})
}
