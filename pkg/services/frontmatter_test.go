package services

import (
	"testing"

	"jekyll-cms/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatterYAML(t *testing.T) {
	content := []byte("---\ntitle: About Me\nlayout: page\npermalink: /about/\n---\nHi, I write about Java internals.\n")

	fm, body, format, err := ParseFrontMatter(content)
	require.NoError(t, err)
	assert.Equal(t, "yaml", format)
	assert.Equal(t, "About Me", fm["title"])
	assert.Equal(t, "page", fm["layout"])
	assert.Equal(t, "Hi, I write about Java internals.", body)
}

func TestParseFrontMatterTOML(t *testing.T) {
	content := []byte("+++\ntitle = \"Queues\"\nlayout = \"post\"\n+++\nBody text here.\n")

	fm, body, format, err := ParseFrontMatter(content)
	require.NoError(t, err)
	assert.Equal(t, "toml", format)
	assert.Equal(t, "Queues", fm["title"])
	assert.Equal(t, "Body text here.", body)
}

func TestParseFrontMatterJSON(t *testing.T) {
	content := []byte("{\n  \"title\": \"Data\"\n}\n")

	fm, body, format, err := ParseFrontMatter(content)
	require.NoError(t, err)
	assert.Equal(t, "json", format)
	assert.Equal(t, "Data", fm["title"])
	assert.Empty(t, body)
}

func TestParseFrontMatterRejectsHeaderlessContent(t *testing.T) {
	_, _, _, err := ParseFrontMatter([]byte("just a plain paragraph with no header"))
	assert.Error(t, err)
}

func TestParseFrontMatterRejectsUnterminatedHeader(t *testing.T) {
	_, _, _, err := ParseFrontMatter([]byte("---\ntitle: Broken\n"))
	assert.Error(t, err)
}

func TestConstructFileContentRoundTrip(t *testing.T) {
	fm := map[string]interface{}{
		"title":       "Draft Post",
		"layout":      "post",
		"feature_img": "/images/queue.png",
	}
	body := "Some *markdown* body.\n\n```java\nQueue<Integer> q;\n```"

	content, err := ConstructFileContent(fm, body, "yaml")
	require.NoError(t, err)

	parsedFM, parsedBody, format, err := ParseFrontMatter(content)
	require.NoError(t, err)
	assert.Equal(t, "yaml", format)
	assert.Equal(t, fm, parsedFM)
	assert.Equal(t, body, parsedBody)
}

func TestConstructFileContentUnsupportedFormat(t *testing.T) {
	_, err := ConstructFileContent(map[string]interface{}{"title": "x"}, "", "ini")
	assert.Error(t, err)
}

func TestNormalizeContentIsStable(t *testing.T) {
	raw := []byte("---\r\ntitle: CRLF Post\r\nlayout: post\r\n---\r\n\r\nWindows line endings.\r\n")

	once := NormalizeContent(raw)
	twice := NormalizeContent(once)
	assert.Equal(t, string(once), string(twice))
}

func TestNormalizeContentPassesThroughHeaderless(t *testing.T) {
	raw := []byte("  no header at all  \n")
	assert.Equal(t, "no header at all\n", string(NormalizeContent(raw)))
}

func TestSanitizeFrontMatterInterfaceKeys(t *testing.T) {
	fm := map[string]interface{}{
		"header": map[interface{}]interface{}{
			"image": "/images/wide.jpg",
		},
		"tags": []interface{}{"java", "queues"},
	}

	sanitized := sanitizeFrontMatter(fm)
	header, ok := sanitized["header"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "/images/wide.jpg", header["image"])
}

func TestPopulateDocumentFields(t *testing.T) {
	doc := &models.Document{
		FrontMatter: map[string]interface{}{
			"title":       "Hello",
			"layout":      "post",
			"permalink":   "/hello/",
			"feature_img": "/images/hello.png",
			"date":        "2023-04-05 10:00:00 +0000",
		},
	}

	PopulateDocumentFields(doc)
	assert.Equal(t, "Hello", doc.Title)
	assert.Equal(t, "post", doc.Layout)
	assert.Equal(t, "/hello/", doc.Permalink)
	assert.Equal(t, "/images/hello.png", doc.FeatureImage)
	assert.Equal(t, "2023-04-05 10:00:00 +0000", doc.Date)
}
