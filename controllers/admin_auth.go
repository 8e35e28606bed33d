package controllers

import (
	"crypto/subtle"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/utils"
)

// AdminLoginRequest represents the admin login request
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin handles admin authentication
func AdminLogin(c *gin.Context) {
	utils.LogInfo("AdminLogin called")
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var validationErrors utils.FieldValidationErrors
	if ok, msg := utils.ValidateUsername(req.Username); !ok {
		validationErrors = append(validationErrors, utils.FieldValidationError{Field: "username", Message: msg})
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		validationErrors = append(validationErrors, utils.FieldValidationError{Field: "password", Message: msg})
	}
	if len(validationErrors) > 0 {
		utils.LogError("Login validation failed: %v", validationErrors)
		utils.BadRequest(c, "Invalid input", validationErrors)
		return
	}

	clientAddr := c.ClientIP()
	if !loginLimiter.Allow(clientAddr) {
		utils.LogError("Rate limited login attempt from %s", clientAddr)
		utils.TooManyRequests(c, "Too many failed login attempts. Please try again later.")
		return
	}

	// Neither check reveals which field was wrong.
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(cfg.AdminUsername)) == 1
	passwordOK := utils.CheckPassword(req.Password, adminPasswordHash)
	if !usernameOK || !passwordOK {
		loginLimiter.RecordFailure(clientAddr)
		utils.LogError("Failed login attempt for username %q from %s", req.Username, clientAddr)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionKeyUser, cfg.AdminUsername)
	session.Set(middleware.SessionKeyLastActivity, time.Now().Unix())
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session for %s: %v", cfg.AdminUsername, err)
		utils.InternalServerError(c, "Failed to establish session")
		return
	}

	loginLimiter.Reset(clientAddr)
	utils.LogInfo("Admin login successful: %s", cfg.AdminUsername)
	utils.Success(c, "Login successful", gin.H{
		"user": cfg.AdminUsername,
	})
}

// AdminLogout destroys the session unconditionally
func AdminLogout(c *gin.Context) {
	utils.LogInfo("AdminLogout called")

	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear session on logout: %v", err)
	}

	utils.Success(c, "Logged out successfully", nil)
}

// AdminCheck reports the current session identity. It never errors; an
// unauthenticated caller just sees authenticated=false.
func AdminCheck(c *gin.Context) {
	session := sessions.Default(c)

	user, ok := session.Get(middleware.SessionKeyUser).(string)
	if !ok || user == "" {
		utils.Success(c, "Session checked", gin.H{"authenticated": false})
		return
	}

	lastActivity, ok := session.Get(middleware.SessionKeyLastActivity).(int64)
	if !ok || time.Since(time.Unix(lastActivity, 0)) > middleware.SessionMaxAge {
		utils.Success(c, "Session checked", gin.H{"authenticated": false})
		return
	}

	utils.Success(c, "Session checked", gin.H{
		"authenticated": true,
		"user":          user,
	})
}
