package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

var (
	RepoPath   = "./repo"
	SitePath   = "./repo/_site"
	PreviewURL = "/preview/"

	// Content layout inside the blog repo. Posts and drafts are
	// distinguished only by which directory holds them.
	PostsDir  = "_posts"
	DraftsDir = "_drafts"

	// Media settings
	MediaDir = "images"

	// Lint settings
	LintConcurrency = 20

	// Git settings
	GitUserEmail = "bot@jekyll-cms.local"
	GitUserName  = "Jekyll CMS Bot"
	GitBranch    = "main"
	GitRemote    = "origin"
)

var OauthConf *oauth2.Config

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	appURL := getEnv("APP_URL", "http://localhost:8080")
	redirectURL := getEnv("GITHUB_REDIRECT_URL", appURL+"/auth/callback")

	RepoPath = getEnv("REPO_PATH", "./repo")
	SitePath = getEnv("SITE_PATH", RepoPath+"/_site")

	PostsDir = getEnv("POSTS_DIR", "_posts")
	DraftsDir = getEnv("DRAFTS_DIR", "_drafts")
	MediaDir = getEnv("MEDIA_DIR", "images")

	GitUserEmail = getEnv("GIT_USER_EMAIL", "bot@jekyll-cms.local")
	GitUserName = getEnv("GIT_USER_NAME", "Jekyll CMS Bot")
	GitBranch = getEnv("GIT_BRANCH", "main")
	GitRemote = getEnv("GIT_REMOTE", "origin")

	if lc := os.Getenv("LINT_CONCURRENCY"); lc != "" {
		if val, err := strconv.Atoi(lc); err == nil && val > 0 {
			LintConcurrency = val
		}
	}

	OauthConf = &oauth2.Config{
		ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		Scopes:       []string{"repo"},
		Endpoint:     github.Endpoint,
		RedirectURL:  redirectURL,
	}
}

func GetAppURL() string {
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:8080"
	}
	return appURL
}
