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

type MenuItemController struct {
	DB *gorm.DB
}

func NewMenuItemController(db *gorm.DB) *MenuItemController {
	return &MenuItemController{DB: db}
}

type menuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int64  `json:"price" binding:"min=0"` // minor units
	Vegan       bool   `json:"vegan"`
	Seafood     bool   `json:"seafood"`
}

func (mic *MenuItemController) CreateMenuItem(c *gin.Context) {
	auth, _ := middlewares.CurrentUser(c)

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Vegan:       req.Vegan,
		Seafood:     req.Seafood,
		CreatedBy:   auth.UserID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := mic.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

func (mic *MenuItemController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	var item models.MenuItem
	if err := mic.DB.First(&item, id).Error; err != nil {
		respondServiceError(c, &utils.NotFoundError{Entity: "menu item", ID: uint(id)})
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Vegan = req.Vegan
	item.Seafood = req.Seafood
	item.UpdatedAt = time.Now()

	if err := mic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

func (mic *MenuItemController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	if err := mic.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.MenuItemToMenu{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MenuItem{}, id).Error
	}); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"menu_item_id": id})
}

func (mic *MenuItemController) GetMenuItemsPaginated(c *gin.Context) {
	params := utils.ParsePageParams(c, "name_filter")

	query := mic.DB.Model(&models.MenuItem{})
	if params.Filter != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+params.Filter+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var items []models.MenuItem
	if err := query.Order("updated_at desc").
		Limit(params.PageSize).Offset(params.Offset()).
		Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menu items", utils.PageResult{
		Rows:       items,
		TotalCount: totalCount,
	})
}

func (mic *MenuItemController) GetAllMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := mic.DB.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

func (mic *MenuItemController) GetMenuItemByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	var item models.MenuItem
	if err := mic.DB.First(&item, id).Error; err != nil {
		respondServiceError(c, &utils.NotFoundError{Entity: "menu item", ID: uint(id)})
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// GetMenuItemMenus lists the menus a menu item belongs to.
func (mic *MenuItemController) GetMenuItemMenus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	var links []models.MenuItemToMenu
	if err := mic.DB.Where("menu_item_id = ?", id).Find(&links).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menus containing item", links)
}
