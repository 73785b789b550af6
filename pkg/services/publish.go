package services

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"jekyll-cms/pkg/config"
	"jekyll-cms/pkg/logger"

	"github.com/pkg/errors"
)

// PublishDraft promotes a draft to a published post. The move between
// directories IS the publication: the draft file becomes a date-prefixed
// post file and gets a date stamped into its front matter. No other
// workflow state exists.
func PublishDraft(relPath string, now time.Time) (string, error) {
	draftPath := SafeJoin(config.RepoPath, config.DraftsDir, relPath)
	if draftPath == "" {
		return "", errors.New("invalid draft path")
	}

	content, err := os.ReadFile(draftPath)
	if err != nil {
		return "", errors.Wrap(err, "unable to read draft")
	}

	fm, body, format, err := ParseFrontMatter(content)
	if err != nil {
		return "", errors.Wrap(err, "draft has no parsable front matter")
	}

	if _, ok := fm["date"]; !ok {
		fm["date"] = now.Format("2006-01-02 15:04:05 -0700")
	}

	base := filepath.Base(relPath)
	base = strings.TrimPrefix(base, postDatePattern.FindString(base))
	postName := now.Format("2006-01-02") + "-" + base

	postPath := SafeJoin(config.RepoPath, config.PostsDir, postName)
	if postPath == "" {
		return "", errors.New("invalid post path")
	}
	if _, err := os.Stat(postPath); err == nil {
		return "", errors.Errorf("post %s already exists", postName)
	}

	normalized, err := ConstructFileContent(fm, body, format)
	if err != nil {
		return "", errors.Wrap(err, "unable to serialize post")
	}

	if err := os.MkdirAll(filepath.Dir(postPath), 0755); err != nil {
		return "", errors.Wrap(err, "unable to create posts directory")
	}
	if err := os.WriteFile(postPath, normalized, 0644); err != nil {
		return "", errors.Wrap(err, "unable to write post")
	}
	if err := os.Remove(draftPath); err != nil {
		return "", errors.Wrap(err, "unable to remove draft after publish")
	}

	InvalidateCache()
	logger.Sugar.Infow("published draft", "draft", relPath, "post", postName)
	return postName, nil
}

// UnpublishPost demotes a post back to a draft: the date prefix comes off
// the filename and the date key comes out of the front matter.
func UnpublishPost(relPath string) (string, error) {
	postPath := SafeJoin(config.RepoPath, config.PostsDir, relPath)
	if postPath == "" {
		return "", errors.New("invalid post path")
	}

	content, err := os.ReadFile(postPath)
	if err != nil {
		return "", errors.Wrap(err, "unable to read post")
	}

	base := filepath.Base(relPath)
	draftName := strings.TrimPrefix(base, postDatePattern.FindString(base))

	draftPath := SafeJoin(config.RepoPath, config.DraftsDir, draftName)
	if draftPath == "" {
		return "", errors.New("invalid draft path")
	}
	if _, err := os.Stat(draftPath); err == nil {
		return "", errors.Errorf("draft %s already exists", draftName)
	}

	if fm, body, format, err := ParseFrontMatter(content); err == nil {
		delete(fm, "date")
		if normalized, err := ConstructFileContent(fm, body, format); err == nil {
			content = normalized
		}
	}

	if err := os.MkdirAll(filepath.Dir(draftPath), 0755); err != nil {
		return "", errors.Wrap(err, "unable to create drafts directory")
	}
	if err := os.WriteFile(draftPath, content, 0644); err != nil {
		return "", errors.Wrap(err, "unable to write draft")
	}
	if err := os.Remove(postPath); err != nil {
		return "", errors.Wrap(err, "unable to remove post after unpublish")
	}

	InvalidateCache()
	logger.Sugar.Infow("unpublished post", "post", relPath, "draft", draftName)
	return draftName, nil
}
