package services

import (
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"jekyll-cms/pkg/config"
	"jekyll-cms/pkg/models"
)

var (
	documentCache []models.Document
	cacheMutex    sync.Mutex
	cacheLoaded   bool
)

var postDatePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-`)

// GetDocumentsCache returns the index of every document in the repo:
// published posts, drafts, and root-level pages.
func GetDocumentsCache() ([]models.Document, error) {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if cacheLoaded {
		return documentCache, nil
	}

	dirtyFiles, _ := getGitDirtyFiles(config.RepoPath)

	var documents []models.Document

	scanSection := func(section, dir string) error {
		sectionDir := filepath.Join(config.RepoPath, dir)
		if _, err := os.Stat(sectionDir); os.IsNotExist(err) {
			return nil
		}
		return filepath.WalkDir(sectionDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
				return nil
			}
			relPath, _ := filepath.Rel(sectionDir, path)
			documents = append(documents, indexDocument(section, relPath, path, dirtyFiles))
			return nil
		})
	}

	if err := scanSection(models.SectionPosts, config.PostsDir); err != nil {
		return nil, err
	}
	if err := scanSection(models.SectionDrafts, config.DraftsDir); err != nil {
		return nil, err
	}

	// Pages are loose .md files at the repo root.
	entries, err := os.ReadDir(config.RepoPath)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		if strings.EqualFold(entry.Name(), "README.md") {
			continue
		}
		fullPath := filepath.Join(config.RepoPath, entry.Name())
		documents = append(documents, indexDocument(models.SectionPages, entry.Name(), fullPath, dirtyFiles))
	}

	documentCache = documents
	cacheLoaded = true
	return documentCache, nil
}

func indexDocument(section, relPath, fullPath string, dirtyFiles map[string]bool) models.Document {
	repoRelPath, _ := filepath.Rel(config.RepoPath, fullPath)
	repoRelPath = filepath.ToSlash(repoRelPath)

	doc := models.Document{
		Path:    relPath,
		Section: section,
		Title:   relPath, // Default to path
		IsDirty: dirtyFiles[repoRelPath],
	}

	if section == models.SectionPosts {
		if m := postDatePattern.FindStringSubmatch(filepath.Base(relPath)); m != nil {
			doc.Date = m[1]
		}
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return doc
	}
	fm, _, _, err := ParseFrontMatter(content)
	if err != nil {
		return doc
	}
	doc.FrontMatter = fm
	PopulateDocumentFields(&doc)
	doc.FrontMatter = nil // index stays light, full parse happens on Get
	if doc.Title == "" {
		doc.Title = relPath
	}
	return doc
}

func getGitDirtyFiles(dir string) (map[string]bool, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	dirty := make(map[string]bool)
	lines := strings.Split(string(out), "\n")
	for _, line := range lines {
		if len(line) < 4 {
			continue
		}
		path := strings.TrimSpace(line[3:])
		path = strings.Trim(path, "\"")
		dirty[path] = true
	}
	return dirty, nil
}

func InvalidateCache() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	cacheLoaded = false
	documentCache = nil
}
