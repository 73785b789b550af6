package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"jekyll-cms/pkg/config"
	"jekyll-cms/pkg/models"
	"jekyll-cms/pkg/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func HandleBuild(c *gin.Context) {
	log, err := services.BuildSite()
	if err != nil {
		c.JSON(500, gin.H{"status": "error", "log": log})
		return
	}
	NotifyReload()
	c.JSON(200, gin.H{"status": "ok", "log": log})
}

func HandleSync(c *gin.Context) {
	token, ok := sessions.Default(c).Get("access_token").(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	log, err := services.SyncRepo(token)
	if err != nil {
		c.JSON(500, gin.H{"status": "error", "log": log})
		return
	}
	c.JSON(200, gin.H{"status": "ok", "log": log})
}

func HandleShip(c *gin.Context) {
	token, ok := sessions.Default(c).Get("access_token").(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	log, err := services.ShipRepo(token)
	if err != nil {
		c.JSON(500, gin.H{"status": "error", "log": log})
		return
	}
	c.JSON(200, gin.H{"status": "ok", "log": log})
}

func ListDocuments(c *gin.Context) {
	documents, err := services.GetDocumentsCache()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch documents"})
		return
	}

	if section := c.Query("section"); section != "" {
		filtered := make([]models.Document, 0, len(documents))
		for _, doc := range documents {
			if doc.Section == section {
				filtered = append(filtered, doc)
			}
		}
		documents = filtered
	}
	c.JSON(http.StatusOK, documents)
}

func GetDocument(c *gin.Context) {
	section := c.DefaultQuery("section", models.SectionPosts)
	doc, err := services.ReadDocument(section, c.Query("path"))
	if err != nil {
		c.JSON(404, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func SaveDocument(c *gin.Context) {
	var doc models.Document
	if err := c.BindJSON(&doc); err != nil {
		c.JSON(400, gin.H{"error": "Invalid JSON"})
		return
	}

	var finalContent []byte
	var err error
	if doc.FrontMatter != nil {
		finalContent, err = services.ConstructFileContent(doc.FrontMatter, doc.Body, doc.Format)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to construct file content: " + err.Error()})
			return
		}
	} else {
		finalContent = []byte(doc.Content)
	}

	if err := services.WriteDocument(doc.Section, doc.Path, finalContent); err != nil {
		c.JSON(500, gin.H{"error": "Save failed"})
		return
	}

	NotifyReload()
	c.JSON(200, gin.H{"status": "saved"})
}

func CreateDraft(c *gin.Context) {
	var req struct {
		Path      string                 `json:"path"`
		Scaffold  string                 `json:"scaffold"`
		Overrides map[string]interface{} `json:"overrides"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid JSON"})
		return
	}
	if req.Path == "" {
		c.JSON(400, gin.H{"error": "Invalid path"})
		return
	}

	if err := services.CreateDraft(req.Path, req.Scaffold, req.Overrides); err != nil {
		if os.IsExist(err) {
			c.JSON(409, gin.H{"error": "Draft already exists"})
		} else {
			c.JSON(500, gin.H{"error": "Create failed", "log": err.Error()})
		}
		return
	}
	c.JSON(200, gin.H{"status": "created"})
}

func PublishDraft(c *gin.Context) {
	var req struct {
		Path string `json:"path"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid JSON"})
		return
	}

	postName, err := services.PublishDraft(req.Path, time.Now())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	NotifyReload()
	c.JSON(200, gin.H{"status": "published", "post": postName})
}

func UnpublishPost(c *gin.Context) {
	var req struct {
		Path string `json:"path"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid JSON"})
		return
	}

	draftName, err := services.UnpublishPost(req.Path)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	NotifyReload()
	c.JSON(200, gin.H{"status": "unpublished", "draft": draftName})
}

func LintDocument(c *gin.Context) {
	section := c.DefaultQuery("section", models.SectionPosts)
	result, err := services.LintDocument(section, c.Query("path"))
	if err != nil {
		c.JSON(404, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func LintSite(c *gin.Context) {
	results, err := services.LintSite()
	if err != nil {
		c.JSON(500, gin.H{"error": "Lint failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

func GetDiff(c *gin.Context) {
	var doc models.Document
	if err := c.BindJSON(&doc); err != nil {
		c.JSON(400, gin.H{"error": "Invalid JSON"})
		return
	}

	dir, err := services.SectionDir(doc.Section)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	fullPath := services.SafeJoin(config.RepoPath, dir, doc.Path)

	currentContent, err := os.ReadFile(fullPath)
	if err != nil {
		currentContent = []byte("")
	}
	if len(currentContent) > 0 {
		currentContent = services.NormalizeContent(currentContent)
	}

	var newContent []byte
	if doc.FrontMatter != nil {
		newContent, err = services.ConstructFileContent(doc.FrontMatter, doc.Body, doc.Format)
		if err != nil {
			c.JSON(500, gin.H{"error": "Construction failed"})
			return
		}
	} else {
		newContent = []byte(doc.Content)
	}

	tmpDir := os.TempDir()
	f1, err := os.CreateTemp(tmpDir, "diff_old_*")
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to stage diff files"})
		return
	}
	defer os.Remove(f1.Name())
	f2, err := os.CreateTemp(tmpDir, "diff_new_*")
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to stage diff files"})
		return
	}
	defer os.Remove(f2.Name())

	f1.Write(currentContent)
	f2.Write(newContent)
	f1.Close()
	f2.Close()

	relPath := filepath.Join(dir, doc.Path)
	diffStr, diffType := services.Diff(f1.Name(), f2.Name(), relPath)

	c.JSON(200, gin.H{"diff": diffStr, "type": diffType})
}

func GetSiteConfig(c *gin.Context) {
	cfg, err := services.GetSiteConfig()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to parse site config"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
