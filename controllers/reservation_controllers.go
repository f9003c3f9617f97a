package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/events"
	"github.com/relaxing-koala/restaurant-api/middlewares"
	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/utils"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

type reservationRequest struct {
	Name       string    `json:"name" binding:"required"`
	Email      string    `json:"email" binding:"required,email"`
	Phone      string    `json:"phone" binding:"required"`
	Time       time.Time `json:"time" binding:"required"`
	NoOfGuests int       `json:"no_of_guests" binding:"required,min=1,max=10"`
	Message    *string   `json:"message"`
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	auth, _ := middlewares.CurrentUser(c)

	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation := models.Reservation{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Time:       req.Time,
		NoOfGuests: req.NoOfGuests,
		Message:    req.Message,
		CreatedBy:  auth.UserID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastReservationCreated(reservation)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// loadOwned fetches a reservation and enforces that the caller is its
// owner or staff.
func (rc *ReservationController) loadOwned(c *gin.Context) (*models.Reservation, bool) {
	id, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return nil, false
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		respondServiceError(c, &utils.NotFoundError{Entity: "reservation", ID: uint(id)})
		return nil, false
	}

	auth, _ := middlewares.CurrentUser(c)
	if reservation.CreatedBy != auth.UserID && !auth.Role.StaffTier() {
		utils.RespondError(c, http.StatusForbidden, utils.ErrNoPermission)
		return nil, false
	}

	return &reservation, true
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	reservation, ok := rc.loadOwned(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	reservation, ok := rc.loadOwned(c)
	if !ok {
		return
	}

	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation.Name = req.Name
	reservation.Email = req.Email
	reservation.Phone = req.Phone
	reservation.Time = req.Time
	reservation.NoOfGuests = req.NoOfGuests
	reservation.Message = req.Message
	reservation.UpdatedAt = time.Now()

	if err := rc.DB.Save(reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	reservation, ok := rc.loadOwned(c)
	if !ok {
		return
	}

	if err := rc.DB.Delete(reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{"reservation_id": reservation.ID})
}

func (rc *ReservationController) GetReservationsPaginated(c *gin.Context) {
	params := utils.ParsePageParams(c, "email_filter")

	query := rc.DB.Model(&models.Reservation{})
	if params.Filter != "" {
		query = query.Where("LOWER(email) LIKE LOWER(?)", "%"+params.Filter+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var reservations []models.Reservation
	if err := query.Order("updated_at desc").
		Limit(params.PageSize).Offset(params.Offset()).
		Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", utils.PageResult{
		Rows:       reservations,
		TotalCount: totalCount,
	})
}
