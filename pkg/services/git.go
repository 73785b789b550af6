package services

import (
	"fmt"
	"net/url"
	"os/exec"
	"strings"
	"time"

	"jekyll-cms/pkg/config"
	"jekyll-cms/pkg/logger"
)

// ExecuteGitWithToken runs a git command with the remote swapped for a
// token-authenticated URL. The token never appears in the returned log.
func ExecuteGitWithToken(dir, token string, args ...string) (string, error) {
	cmdGetURL := exec.Command("git", "remote", "get-url", config.GitRemote)
	cmdGetURL.Dir = dir
	outURL, err := cmdGetURL.Output()
	if err != nil {
		return "Failed to get remote url", err
	}
	remoteURL := strings.TrimSpace(string(outURL))
	u, err := url.Parse(remoteURL)
	if err != nil {
		return "Invalid remote url", err
	}
	u.User = url.UserPassword("oauth2", token)
	authenticatedURL := u.String()

	newArgs := make([]string, len(args))
	copy(newArgs, args)
	for i, v := range newArgs {
		if v == config.GitRemote {
			newArgs[i] = authenticatedURL
		}
	}
	cmd := exec.Command("git", newArgs...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	safeLog := strings.ReplaceAll(string(output), token, "***")
	safeLog = strings.ReplaceAll(safeLog, authenticatedURL, remoteURL)
	return safeLog, err
}

// SyncRepo pulls the latest content from the remote.
func SyncRepo(token string) (string, error) {
	log, err := ExecuteGitWithToken(config.RepoPath, token, "pull", config.GitRemote, config.GitBranch)
	if err == nil {
		InvalidateCache()
		logger.Sugar.Infow("synced repo", "branch", config.GitBranch)
	}
	return log, err
}

// ShipRepo commits everything in the worktree and pushes it out.
func ShipRepo(token string) (string, error) {
	addCmd := exec.Command("git", "add", ".")
	addCmd.Dir = config.RepoPath
	if out, err := addCmd.CombinedOutput(); err != nil {
		return string(out), err
	}

	msg := fmt.Sprintf("Update content: %s", time.Now().Format("2006-01-02 15:04:05"))
	commitCmd := exec.Command("git",
		"-c", "user.email="+config.GitUserEmail,
		"-c", "user.name="+config.GitUserName,
		"commit", "-m", msg)
	commitCmd.Dir = config.RepoPath
	commitCmd.Run() // nothing to commit is fine, push may still be needed

	log, err := ExecuteGitWithToken(config.RepoPath, token, "push", config.GitRemote, config.GitBranch)
	if err == nil {
		logger.Sugar.Infow("shipped repo", "branch", config.GitBranch)
	}
	return log, err
}

// Diff reports the difference between saved and editor content, falling
// back to the git diff against HEAD when the editor matches the worktree.
func Diff(savedPath, editorPath, relPath string) (string, string) {
	cmd := exec.Command("git", "diff", "--no-index", savedPath, editorPath)
	output, err := cmd.CombinedOutput()

	if err != nil && cmd.ProcessState.ExitCode() == 1 {
		diffStr := string(output)
		diffStr = strings.ReplaceAll(diffStr, savedPath, "Saved (Normalized)")
		diffStr = strings.ReplaceAll(diffStr, editorPath, "Editor")
		return diffStr, "unsaved"
	}

	cmdGit := exec.Command("git", "diff", "HEAD", "--", relPath)
	cmdGit.Dir = config.RepoPath
	outGit, _ := cmdGit.CombinedOutput()

	if len(outGit) > 0 {
		return string(outGit), "git"
	}
	return "", "none"
}
