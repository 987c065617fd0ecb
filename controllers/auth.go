package controllers

import (
	"net/http"

	"tuneshop-backend/repositories"
	"tuneshop-backend/utils"

	"github.com/gin-gonic/gin"
)

// SessionInput is the identity payload the external auth provider posts
// after a successful login. There are no local passwords; users are upserted
// from this identity on every login.
type SessionInput struct {
	OpenID      string `json:"openId" binding:"required"`
	Name        string `json:"name"`
	Email       string `json:"email" binding:"omitempty,email"`
	LoginMethod string `json:"loginMethod"`
}

type AuthController struct {
	users *repositories.UserRepository
}

func NewAuthController(users *repositories.UserRepository) *AuthController {
	return &AuthController{users: users}
}

// Session upserts the user for the presented identity and sets the session
// cookie. First login creates the user; the configured owner identity gets
// the admin role.
func (a *AuthController) Session(c *gin.Context) {
	var input SessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := a.users.Upsert(repositories.UserUpsert{
		OpenID:      input.OpenID,
		Name:        input.Name,
		Email:       input.Email,
		LoginMethod: input.LoginMethod,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	maxAge := 24 * 3600
	c.SetCookie(utils.SessionCookieName, token, maxAge, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me returns the logged-in user or null. Public: the absence of a session is
// a normal answer here, never a 401.
func (a *AuthController) Me(c *gin.Context) {
	tokenString := utils.TokenFromRequest(c)
	if tokenString == "" {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	userID, _, err := utils.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	user, err := a.users.GetByID(userID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout clears the session cookie. Succeeds even when no session existed.
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
