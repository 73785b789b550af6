package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jekyll-cms/pkg/models"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ParseFrontMatter splits a document into its front matter map, body and
// format. Jekyll content is YAML-delimited (---); TOML (+++) and pure JSON
// documents are accepted too.
func ParseFrontMatter(content []byte) (map[string]interface{}, string, string, error) {
	str := string(content)
	// Check for YAML (---)
	if strings.HasPrefix(str, "---\n") || strings.HasPrefix(str, "---\r\n") {
		parts := strings.SplitN(str, "---", 3) // "", FM, Body
		if len(parts) == 3 {
			var fm map[string]interface{}
			if err := yaml.Unmarshal([]byte(parts[1]), &fm); err == nil {
				return fm, strings.TrimSpace(parts[2]), "yaml", nil
			}
		}
	}
	// Check for TOML (+++)
	if strings.HasPrefix(str, "+++\n") || strings.HasPrefix(str, "+++\r\n") {
		parts := strings.SplitN(str, "+++", 3)
		if len(parts) == 3 {
			var fm map[string]interface{}
			if err := toml.Unmarshal([]byte(parts[1]), &fm); err == nil {
				return fm, strings.TrimSpace(parts[2]), "toml", nil
			}
		}
	}
	// Check for JSON ({)
	if strings.HasPrefix(strings.TrimSpace(str), "{") {
		var fm map[string]interface{}
		if err := json.Unmarshal(content, &fm); err == nil {
			return fm, "", "json", nil
		}
	}

	return nil, "", "", fmt.Errorf("unknown format")
}

// ConstructFileContent serializes a front matter map and body back into
// file content in the requested format.
func ConstructFileContent(fm map[string]interface{}, body string, format string) ([]byte, error) {
	normalizedFM := sanitizeFrontMatter(fm)
	if normalizedFM == nil {
		normalizedFM = map[string]interface{}{}
	}

	var buf bytes.Buffer
	switch format {
	case "yaml":
		buf.WriteString("---\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(normalizedFM); err != nil {
			return nil, err
		}
		buf.WriteString("---\n")
	case "toml":
		buf.WriteString("+++\n")
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(normalizedFM); err != nil {
			return nil, err
		}
		buf.WriteString("+++\n")
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(normalizedFM); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(normalizeLineEndings(body))
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// NormalizeContent reserializes a document through the codec so that
// hand-edited and CMS-written files compare equal in diffs.
func NormalizeContent(content []byte) []byte {
	if len(content) == 0 {
		return content
	}
	fm, body, format, err := ParseFrontMatter(content)
	if err != nil {
		return append(bytes.TrimSpace(content), '\n')
	}

	normalized, err := ConstructFileContent(sanitizeFrontMatter(fm), body, format)
	if err != nil {
		return append(bytes.TrimSpace(content), '\n')
	}
	return append(bytes.TrimSpace(normalized), '\n')
}

// PopulateDocumentFields copies the well-known front matter keys into the
// document's typed fields.
func PopulateDocumentFields(doc *models.Document) {
	if doc == nil || doc.FrontMatter == nil {
		return
	}
	if t, ok := doc.FrontMatter["title"].(string); ok {
		doc.Title = t
	}
	if l, ok := doc.FrontMatter["layout"].(string); ok {
		doc.Layout = l
	}
	if p, ok := doc.FrontMatter["permalink"].(string); ok {
		doc.Permalink = p
	}
	if img, ok := doc.FrontMatter["feature_img"].(string); ok {
		doc.FeatureImage = img
	}
	switch d := doc.FrontMatter["date"].(type) {
	case string:
		doc.Date = d
	case time.Time:
		doc.Date = d.Format("2006-01-02 15:04:05 -0700")
	}
}

func sanitizeFrontMatter(fm map[string]interface{}) map[string]interface{} {
	if fm == nil {
		return nil
	}
	sanitized := make(map[string]interface{}, len(fm))
	for k, v := range fm {
		sanitized[k] = sanitizeFrontMatterValue(v)
	}
	return sanitized
}

func sanitizeFrontMatterValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return sanitizeFrontMatter(v)
	case map[interface{}]interface{}:
		normalized := make(map[string]interface{}, len(v))
		for key, inner := range v {
			normalized[fmt.Sprint(key)] = sanitizeFrontMatterValue(inner)
		}
		return normalized
	case []interface{}:
		slice := make([]interface{}, len(v))
		for i := range v {
			slice[i] = sanitizeFrontMatterValue(v[i])
		}
		return slice
	default:
		return v
	}
}

func normalizeLineEndings(input string) string {
	return strings.ReplaceAll(input, "\r\n", "\n")
}
