package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (uc *UserController) GetUserByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid user id"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		respondServiceError(c, &utils.NotFoundError{Entity: "user", ID: uint(id)})
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User detail", user)
}

// GetUsersPaginated lists users with an optional email substring filter.
func (uc *UserController) GetUsersPaginated(c *gin.Context) {
	params := utils.ParsePageParams(c, "email_filter")

	query := uc.DB.Model(&models.User{})
	if params.Filter != "" {
		query = query.Where("LOWER(email) LIKE LOWER(?)", "%"+params.Filter+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var users []models.User
	if err := query.Limit(params.PageSize).Offset(params.Offset()).Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of users", utils.PageResult{
		Rows:       users,
		TotalCount: totalCount,
	})
}

// UpdateUserRole changes a user's role (staff tier only).
func (uc *UserController) UpdateUserRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid user id"))
		return
	}

	var req struct {
		Role models.Role `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !req.Role.Valid() {
		utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("invalid role"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		respondServiceError(c, &utils.NotFoundError{Entity: "user", ID: uint(id)})
		return
	}

	user.Role = req.Role
	if err := uc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("user %d role set to %s", user.ID, user.Role)
	utils.RespondJSON(c, http.StatusOK, "Role updated", user)
}
