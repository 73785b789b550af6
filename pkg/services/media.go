package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jekyll-cms/pkg/config"
)

// MediaFile describes an uploaded asset, typically a post's feature image.
type MediaFile struct {
	Name string `json:"name"`
	Path string `json:"path"` // Repo-relative path for use in front matter
	Size int64  `json:"size"`
	URL  string `json:"url"` // URL for preview
}

func mediaUsagePath(filename string) string {
	usagePath := "/" + filepath.ToSlash(filepath.Join(config.MediaDir, filename))
	return strings.ReplaceAll(usagePath, "//", "/")
}

func ListMediaFiles() ([]MediaFile, error) {
	fullMediaPath := filepath.Join(config.RepoPath, config.MediaDir)

	if _, err := os.Stat(fullMediaPath); os.IsNotExist(err) {
		os.MkdirAll(fullMediaPath, 0755)
	}

	entries, err := os.ReadDir(fullMediaPath)
	if err != nil {
		return nil, err
	}

	var files []MediaFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		usagePath := mediaUsagePath(entry.Name())
		files = append(files, MediaFile{
			Name: entry.Name(),
			Path: usagePath,
			Size: info.Size(),
			URL:  usagePath,
		})
	}
	return files, nil
}

func SaveMediaFile(header *multipart.FileHeader) (*MediaFile, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := filepath.Base(header.Filename)
	filename = strings.ReplaceAll(filename, " ", "_")

	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	filename = fmt.Sprintf("%s_%d%s", name, time.Now().Unix(), ext)

	fullMediaPath := SafeJoin(config.RepoPath, config.MediaDir, filename)
	if fullMediaPath == "" {
		return nil, fmt.Errorf("invalid media path")
	}
	if err := os.MkdirAll(filepath.Dir(fullMediaPath), 0755); err != nil {
		return nil, err
	}

	dst, err := os.Create(fullMediaPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	usagePath := mediaUsagePath(filename)
	return &MediaFile{
		Name: filename,
		Path: usagePath,
		Size: header.Size,
		URL:  usagePath,
	}, nil
}

func DeleteMediaFile(filename string) error {
	fullMediaPath := SafeJoin(config.RepoPath, config.MediaDir, filepath.Base(filename))
	if fullMediaPath == "" {
		return fmt.Errorf("invalid media path")
	}
	return os.Remove(fullMediaPath)
}
