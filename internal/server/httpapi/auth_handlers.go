package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvydev/notekeeper/internal/common"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	id, err := s.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}
		s.log(c).Error(c.Request.Context(), "registration failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	s.log(c).Info(c.Request.Context(), "user registered", "username", req.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": id})
}

func (s *HTTPServer) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "All the fields are required!"})
		return
	}

	token, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrMissingField):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "All the fields are required!"})
		case errors.Is(err, common.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Error, User not found"})
		case errors.Is(err, common.ErrBadCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect password"})
		default:
			s.log(c).Error(c.Request.Context(), "login failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// Session-lifetime cookie: no Max-Age, the token itself carries expiry.
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AccessTokenCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}

func (s *HTTPServer) handleLogout(c *gin.Context) {
	token, _ := c.Cookie(AccessTokenCookie)

	if err := s.auth.Logout(token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusCreated, gin.H{"message": "Logout successful"})
}
