package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/events"
	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/utils"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

// CreateFeedback accepts anonymous feedback from the public site.
func (fc *FeedbackController) CreateFeedback(c *gin.Context) {
	var req struct {
		Rating  *int   `json:"rating" binding:"required"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if *req.Rating < 0 || *req.Rating > 5 {
		utils.RespondError(c, http.StatusUnprocessableEntity, &utils.ValidationError{Message: "rating must be between 0 and 5"})
		return
	}

	feedback := models.Feedback{
		Rating:    *req.Rating,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := fc.DB.Create(&feedback).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastFeedbackCreated(feedback)
	utils.RespondJSON(c, http.StatusCreated, "Feedback created", feedback)
}

func (fc *FeedbackController) GetFeedbacksPaginated(c *gin.Context) {
	params := utils.ParsePageParams(c, "email_filter")

	query := fc.DB.Model(&models.Feedback{})
	if params.Filter != "" {
		query = query.Where("LOWER(email) LIKE LOWER(?)", "%"+params.Filter+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var feedbacks []models.Feedback
	if err := query.Order("id desc").
		Limit(params.PageSize).Offset(params.Offset()).
		Find(&feedbacks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of feedbacks", utils.PageResult{
		Rows:       feedbacks,
		TotalCount: totalCount,
	})
}
