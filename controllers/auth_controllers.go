package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/middlewares"
	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/utils"
)

const oauthStateCookie = "oauth_state"

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Register creates a password account. New accounts always start as USER;
// roles are only raised by staff through the users endpoint.
func (ac *AuthController) Register(c *gin.Context) {
	type request struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     models.RoleUser,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("new user registered: %s", user.Email)

	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{
		"user_id": user.ID,
	})
}

// Login verifies credentials and returns a session token.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"role":  user.Role,
	})
}

// GetProfile returns the session user.
func (ac *AuthController) GetProfile(c *gin.Context) {
	auth, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var user models.User
	if err := ac.DB.First(&user, auth.UserID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile", user)
}

func oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		ClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("OAUTH_REDIRECT_URL"),
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// OAuthLogin starts the sign-in redirect flow.
func (ac *AuthController) OAuthLogin(c *gin.Context) {
	state := uuid.NewString()
	c.SetCookie(oauthStateCookie, state, int((10 * time.Minute).Seconds()), "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, oauthConfig().AuthCodeURL(state))
}

// OAuthCallback exchanges the provider code, upserts the user by email and
// issues a session token. Provider accounts land as USER.
func (ac *AuthController) OAuthCallback(c *gin.Context) {
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		utils.RespondError(c, http.StatusBadRequest, errors.New("oauth state mismatch"))
		return
	}

	conf := oauthConfig()
	token, err := conf.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("oauth code exchange failed"))
		return
	}

	client := conf.Client(c.Request.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, errors.New("failed to fetch user info"))
		return
	}
	defer resp.Body.Close()

	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		utils.RespondError(c, http.StatusBadGateway, errors.New("invalid user info response"))
		return
	}

	var user models.User
	err = ac.DB.Where("email = ?", info.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Name:  info.Name,
			Email: info.Email,
			Role:  models.RoleUser,
		}
		if err := ac.DB.Create(&user).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("new oauth user: %s", user.Email)
	} else if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	sessionToken, err := utils.GenerateToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": sessionToken,
		"role":  user.Role,
	})
}
