package handlers

import (
	"context"
	"net/http"
	"strings"

	"jekyll-cms/pkg/config"
	"jekyll-cms/pkg/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

// AuthRequired gates every CMS route behind a GitHub session. API calls
// get a JSON 401, page loads get bounced to the login screen.
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	if _, ok := session.Get("access_token").(string); !ok {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func GithubLogin(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, config.OauthConf.AuthCodeURL("state", oauth2.AccessTypeOffline))
}

func AuthCallback(c *gin.Context) {
	token, err := config.OauthConf.Exchange(context.Background(), c.Query("code"))
	if err != nil {
		logger.Sugar.Errorw("oauth exchange failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OAuth exchange failed"})
		return
	}

	session := sessions.Default(c)
	session.Set("access_token", token.AccessToken)
	if err := session.Save(); err != nil {
		logger.Sugar.Errorw("session save failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session save failed"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		logger.Sugar.Warnw("session save failed on logout", "err", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
