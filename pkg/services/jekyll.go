package services

import (
	"os"
	"os/exec"
	"time"

	"jekyll-cms/pkg/config"
	"jekyll-cms/pkg/models"

	"github.com/pkg/errors"
)

// BuildSite runs the external generator over the repo. Drafts are included
// so the preview shows unpublished work too. Rendering itself stays the
// generator's job.
func BuildSite() (string, error) {
	cmd := exec.Command("jekyll", "build",
		"--source", config.RepoPath,
		"--destination", config.SitePath,
		"--baseurl", config.GetAppURL()+config.PreviewURL,
		"--drafts",
	)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// GenerateScaffoldContent builds the initial file content for a new
// document from a scaffold's field definitions, with optional overrides.
// Jekyll front matter is YAML.
func GenerateScaffoldContent(scaffold *models.Scaffold, overrides map[string]interface{}) ([]byte, error) {
	fm := make(map[string]interface{})
	var bodyContent string

	for _, field := range scaffold.Fields {
		if val, ok := overrides[field.Name]; ok {
			if field.Name == "body" {
				if strVal, ok := val.(string); ok {
					bodyContent = strVal
				}
				continue
			}
			fm[field.Name] = val
			continue
		}

		if field.Name == "body" {
			if val, ok := field.Default.(string); ok {
				bodyContent = val
			}
			continue
		}

		if field.Default != nil {
			fm[field.Name] = field.Default
		} else {
			switch field.Widget {
			case "datetime":
				fm[field.Name] = time.Now().Format(time.RFC3339)
			case "boolean":
				fm[field.Name] = false
			case "list":
				fm[field.Name] = []string{}
			default:
				fm[field.Name] = ""
			}
		}
	}

	return ConstructFileContent(fm, bodyContent, "yaml")
}

// CreateDraft scaffolds a new draft file. New documents always start life
// as drafts; publication is a later, separate move.
func CreateDraft(relPath, scaffoldName string, overrides map[string]interface{}) error {
	fullPath := SafeJoin(config.RepoPath, config.DraftsDir, relPath)
	if fullPath == "" {
		return errors.New("invalid draft path")
	}
	if _, err := os.Stat(fullPath); err == nil {
		return os.ErrExist
	}

	cfg, err := GetCMSConfig()
	if err != nil {
		return errors.Wrap(err, "unable to load scaffold config")
	}
	scaffold, err := FindScaffold(cfg, scaffoldName, models.SectionDrafts)
	if err != nil {
		return err
	}

	content, err := GenerateScaffoldContent(scaffold, overrides)
	if err != nil {
		return errors.Wrap(err, "unable to generate draft content")
	}

	return WriteDocument(models.SectionDrafts, relPath, content)
}
