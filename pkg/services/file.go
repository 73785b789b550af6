package services

import (
	"os"
	"path/filepath"
	"strings"

	"jekyll-cms/pkg/config"
	"jekyll-cms/pkg/models"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

func SafeJoin(root, sub, target string) string {
	cleanTarget := filepath.Clean(target)
	if strings.Contains(cleanTarget, "..") {
		return ""
	}
	return filepath.Join(root, sub, cleanTarget)
}

// SectionDir maps a document section to its directory inside the repo.
// Pages live at the repo root, the Jekyll way.
func SectionDir(section string) (string, error) {
	switch section {
	case models.SectionPosts:
		return config.PostsDir, nil
	case models.SectionDrafts:
		return config.DraftsDir, nil
	case models.SectionPages, "":
		return "", nil
	default:
		return "", errors.Errorf("unknown section: %s", section)
	}
}

// ReadDocument loads and parses one content file. A document whose front
// matter cannot be parsed still comes back with its raw content set.
func ReadDocument(section, relPath string) (*models.Document, error) {
	dir, err := SectionDir(section)
	if err != nil {
		return nil, err
	}
	fullPath := SafeJoin(config.RepoPath, dir, relPath)
	if fullPath == "" {
		return nil, errors.New("invalid document path")
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read document")
	}

	doc := &models.Document{
		Path:    relPath,
		Section: section,
	}
	fm, body, format, err := ParseFrontMatter(content)
	if err != nil {
		doc.Content = string(content)
		return doc, nil
	}

	doc.FrontMatter = fm
	doc.Body = body
	doc.Format = format
	PopulateDocumentFields(doc)
	return doc, nil
}

// WriteDocument saves content for a document path, confined to the repo.
func WriteDocument(section, relPath string, content []byte) error {
	dir, err := SectionDir(section)
	if err != nil {
		return err
	}
	fullPath := SafeJoin(config.RepoPath, dir, relPath)
	if fullPath == "" {
		return errors.New("invalid document path")
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return errors.Wrap(err, "unable to create document directory")
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return errors.Wrap(err, "unable to write document")
	}
	InvalidateCache()
	return nil
}

// GetSiteConfig reads the subset of _config.yml the CMS needs.
func GetSiteConfig() (*models.SiteConfig, error) {
	content, err := os.ReadFile(filepath.Join(config.RepoPath, "_config.yml"))
	if err != nil {
		return nil, errors.Wrap(err, "unable to read _config.yml")
	}

	var cfg models.SiteConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, errors.Wrap(err, "unable to parse _config.yml")
	}
	return &cfg, nil
}

// GetCMSConfig reads the scaffold definitions from admin/config.yml.
func GetCMSConfig() (*models.CMSConfig, error) {
	content, err := os.ReadFile(filepath.Join(config.RepoPath, "admin", "config.yml"))
	if err != nil {
		return nil, errors.Wrap(err, "unable to read admin/config.yml")
	}

	var cfg models.CMSConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, errors.Wrap(err, "unable to parse admin/config.yml")
	}
	return &cfg, nil
}

// FindScaffold returns the named scaffold, or the first one whose section
// matches when no name is given.
func FindScaffold(cfg *models.CMSConfig, name, section string) (*models.Scaffold, error) {
	if cfg == nil {
		return nil, errors.New("no CMS config loaded")
	}
	for i := range cfg.Scaffolds {
		if name != "" && cfg.Scaffolds[i].Name == name {
			return &cfg.Scaffolds[i], nil
		}
		if name == "" && cfg.Scaffolds[i].Section == section {
			return &cfg.Scaffolds[i], nil
		}
	}
	return nil, errors.Errorf("no scaffold found for %q", name+section)
}
