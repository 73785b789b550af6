package services

import (
	"os"
	"testing"

	"jekyll-cms/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScaffoldContent(t *testing.T) {
	scaffold := &models.Scaffold{
		Name:    "post",
		Section: models.SectionDrafts,
		Fields: []models.Field{
			{Name: "layout", Widget: "hidden", Default: "post"},
			{Name: "title", Widget: "string"},
			{Name: "published", Widget: "boolean"},
			{Name: "tags", Widget: "list"},
			{Name: "body", Widget: "markdown", Default: "Write here."},
		},
	}

	content, err := GenerateScaffoldContent(scaffold, map[string]interface{}{
		"title": "My New Draft",
	})
	require.NoError(t, err)

	fm, body, format, err := ParseFrontMatter(content)
	require.NoError(t, err)
	assert.Equal(t, "yaml", format)
	assert.Equal(t, "post", fm["layout"])
	assert.Equal(t, "My New Draft", fm["title"])
	assert.Equal(t, false, fm["published"])
	assert.Equal(t, "Write here.", body)
}

func TestGenerateScaffoldContentBodyOverride(t *testing.T) {
	scaffold := &models.Scaffold{
		Fields: []models.Field{
			{Name: "title", Widget: "string", Default: "Untitled"},
			{Name: "body", Widget: "markdown"},
		},
	}

	content, err := GenerateScaffoldContent(scaffold, map[string]interface{}{
		"body": "Overridden body.",
	})
	require.NoError(t, err)

	_, body, _, err := ParseFrontMatter(content)
	require.NoError(t, err)
	assert.Equal(t, "Overridden body.", body)
}

func TestCreateDraft(t *testing.T) {
	repo := setupTestRepo(t)
	writeRepoFile(t, repo, "admin/config.yml", `scaffolds:
  - name: post
    section: drafts
    fields:
      - name: layout
        widget: hidden
        default: post
      - name: title
        widget: string
      - name: body
        widget: markdown
        default: New draft body.
`)

	err := CreateDraft("fresh.md", "post", map[string]interface{}{"title": "Fresh"})
	require.NoError(t, err)

	doc, err := ReadDocument(models.SectionDrafts, "fresh.md")
	require.NoError(t, err)
	assert.Equal(t, "Fresh", doc.Title)
	assert.Equal(t, "post", doc.Layout)
	assert.Equal(t, "New draft body.", doc.Body)

	// Second create of the same path must refuse.
	err = CreateDraft("fresh.md", "post", nil)
	assert.True(t, os.IsExist(err))
}

func TestCreateDraftRejectsTraversal(t *testing.T) {
	setupTestRepo(t)
	err := CreateDraft("../escape.md", "post", nil)
	assert.Error(t, err)
}
