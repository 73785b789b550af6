package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"jekyll-cms/pkg/config"
	"jekyll-cms/pkg/models"
)

// LintContent checks one document against the content rules. The rules are
// deliberately few: a front matter header must precede a non-empty body,
// and every document has a title. Everything else is advisory.
func LintContent(path string, content []byte) models.LintResult {
	result := models.LintResult{
		Path:     path,
		Errors:   []string{},
		Warnings: []string{},
	}

	fm, body, _, err := ParseFrontMatter(content)
	if err != nil {
		result.Errors = append(result.Errors, "document must begin with a front matter header")
		return result
	}

	title, _ := fm["title"].(string)
	if strings.TrimSpace(title) == "" {
		result.Errors = append(result.Errors, "front matter must include a non-empty title")
	}

	if strings.TrimSpace(body) == "" {
		result.Errors = append(result.Errors, "front matter must precede a non-empty body")
	}

	if _, ok := fm["layout"]; !ok {
		result.Warnings = append(result.Warnings, "no layout set, the generator will fall back to its default")
	}

	if permalink, ok := fm["permalink"].(string); ok && permalink != "" && !strings.HasPrefix(permalink, "/") {
		result.Warnings = append(result.Warnings, fmt.Sprintf("permalink %q should start with /", permalink))
	}

	if img, ok := fm["feature_img"].(string); ok && img != "" {
		imgPath := SafeJoin(config.RepoPath, "", strings.TrimPrefix(img, "/"))
		if imgPath == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("feature image path %q is invalid", img))
		} else if _, err := os.Stat(imgPath); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("feature image %q not found in repo", img))
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// LintDocument lints a single document by section and path.
func LintDocument(section, relPath string) (models.LintResult, error) {
	dir, err := SectionDir(section)
	if err != nil {
		return models.LintResult{}, err
	}
	fullPath := SafeJoin(config.RepoPath, dir, relPath)
	if fullPath == "" {
		return models.LintResult{}, fmt.Errorf("invalid document path")
	}
	content, err := os.ReadFile(fullPath)
	if err != nil {
		return models.LintResult{}, err
	}
	displayPath := filepath.ToSlash(filepath.Join(dir, relPath))
	return LintContent(displayPath, content), nil
}

// LintSite lints every document in the repo and additionally flags
// permalinks claimed by more than one document.
func LintSite() ([]models.LintResult, error) {
	docs, err := GetDocumentsCache()
	if err != nil {
		return nil, err
	}

	results := make([]models.LintResult, len(docs))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, config.LintConcurrency)
	for i := range docs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			doc := docs[i]
			res, err := LintDocument(doc.Section, doc.Path)
			if err != nil {
				res = models.LintResult{
					Path:     doc.Path,
					Errors:   []string{fmt.Sprintf("unable to read document: %v", err)},
					Warnings: []string{},
				}
			}
			results[i] = res
		}(i)
	}
	wg.Wait()

	flagDuplicatePermalinks(docs, results)

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

func flagDuplicatePermalinks(docs []models.Document, results []models.LintResult) {
	byPermalink := make(map[string][]int)
	for i, doc := range docs {
		if doc.Permalink == "" {
			continue
		}
		byPermalink[doc.Permalink] = append(byPermalink[doc.Permalink], i)
	}
	for permalink, indexes := range byPermalink {
		if len(indexes) < 2 {
			continue
		}
		for _, i := range indexes {
			results[i].Errors = append(results[i].Errors,
				fmt.Sprintf("permalink %q is claimed by %d documents", permalink, len(indexes)))
			results[i].IsValid = false
		}
	}
}
