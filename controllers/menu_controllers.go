package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/middlewares"
	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

type menuRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Recommended bool   `json:"recommended"`
	Active      *bool  `json:"active"`
}

func (mc *MenuController) CreateMenu(c *gin.Context) {
	auth, _ := middlewares.CurrentUser(c)

	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	menu := models.Menu{
		Name:        req.Name,
		Description: req.Description,
		Recommended: req.Recommended,
		Active:      active,
		CreatedBy:   auth.UserID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := mc.DB.Create(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		respondServiceError(c, &utils.NotFoundError{Entity: "menu", ID: uint(id)})
		return
	}

	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu.Name = req.Name
	menu.Description = req.Description
	menu.Recommended = req.Recommended
	if req.Active != nil {
		menu.Active = *req.Active
	}
	menu.UpdatedAt = time.Now()

	if err := mc.DB.Save(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}

func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	if err := mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", id).Delete(&models.MenuItemToMenu{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Menu{}, id).Error
	}); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"menu_id": id})
}

func (mc *MenuController) GetMenusPaginated(c *gin.Context) {
	params := utils.ParsePageParams(c, "name_filter")

	query := mc.DB.Model(&models.Menu{})
	if params.Filter != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+params.Filter+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var menus []models.Menu
	if err := query.Order("updated_at desc").
		Limit(params.PageSize).Offset(params.Offset()).
		Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menus", utils.PageResult{
		Rows:       menus,
		TotalCount: totalCount,
	})
}

func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []models.Menu
	if err := mc.DB.Order("updated_at desc").Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		respondServiceError(c, &utils.NotFoundError{Entity: "menu", ID: uint(id)})
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

// GetLandingMenu returns every menu with its items, recommended menus
// first, for the public landing page.
func (mc *MenuController) GetLandingMenu(c *gin.Context) {
	var menus []models.Menu
	if err := mc.DB.Preload("Items.MenuItem").
		Order("recommended desc").
		Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Landing menu", menus)
}

func (mc *MenuController) AddMenuItemToMenu(c *gin.Context) {
	var req struct {
		MenuID     uint `json:"menu_id" binding:"required"`
		MenuItemID uint `json:"menu_item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var count int64
	mc.DB.Model(&models.Menu{}).Where("id = ?", req.MenuID).Count(&count)
	if count == 0 {
		respondServiceError(c, &utils.NotFoundError{Entity: "menu", ID: req.MenuID})
		return
	}
	mc.DB.Model(&models.MenuItem{}).Where("id = ?", req.MenuItemID).Count(&count)
	if count == 0 {
		respondServiceError(c, &utils.NotFoundError{Entity: "menu item", ID: req.MenuItemID})
		return
	}

	link := models.MenuItemToMenu{
		MenuID:     req.MenuID,
		MenuItemID: req.MenuItemID,
	}
	if err := mc.DB.Create(&link).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item added to menu", link)
}

func (mc *MenuController) RemoveMenuItemFromMenu(c *gin.Context) {
	var req struct {
		MenuID     uint `json:"menu_id" binding:"required"`
		MenuItemID uint `json:"menu_item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.DB.Where("menu_id = ? AND menu_item_id = ?", req.MenuID, req.MenuItemID).
		Delete(&models.MenuItemToMenu{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item removed from menu", nil)
}
