package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaxing-koala/restaurant-api/models"
)

func (env *testEnv) seedMenu(t *testing.T, name string, recommended bool) models.Menu {
	t.Helper()

	w := env.doJSON(t, "POST", "/dashboard/menus", map[string]interface{}{
		"name":        name,
		"description": name + " selection",
		"recommended": recommended,
	}, tokenFor(t, env.Staff))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var menu models.Menu
	decodeData(t, w, &menu)
	return menu
}

func TestMenuCRUD(t *testing.T) {
	env := newTestEnv(t)
	menu := env.seedMenu(t, "Breakfast", false)
	assert.True(t, menu.Active)

	url := fmt.Sprintf("/dashboard/menus/%d", menu.ID)
	w := env.doJSON(t, "PATCH", url, map[string]interface{}{
		"name":        "Brunch",
		"description": "Brunch selection",
		"recommended": true,
		"active":      false,
	}, tokenFor(t, env.Staff))
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Menu
	decodeData(t, w, &updated)
	assert.Equal(t, "Brunch", updated.Name)
	assert.True(t, updated.Recommended)
	assert.False(t, updated.Active)

	// Public detail route.
	w = env.doJSON(t, "GET", fmt.Sprintf("/menus/%d", menu.ID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, "DELETE", url, nil, tokenFor(t, env.Staff))
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, "GET", fmt.Sprintf("/menus/%d", menu.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMenuStaffOnly(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, "POST", "/dashboard/menus", map[string]interface{}{
		"name":        "Breakfast",
		"description": "Breakfast selection",
	}, tokenFor(t, env.Diner))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.doJSON(t, "POST", "/dashboard/menus", map[string]interface{}{
		"name":        "Breakfast",
		"description": "Breakfast selection",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMenuItemLinking(t *testing.T) {
	env := newTestEnv(t)
	menu := env.seedMenu(t, "Desserts", true)
	cake := env.seedMenuItem(t, "Lamington", 300)

	w := env.doJSON(t, "POST", "/dashboard/menus/items", map[string]interface{}{
		"menu_id":      menu.ID,
		"menu_item_id": cake.ID,
	}, tokenFor(t, env.Staff))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The link shows up on the item's menu listing.
	w = env.doJSON(t, "GET", fmt.Sprintf("/menu-items/%d/menus", cake.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var links []models.MenuItemToMenu
	decodeData(t, w, &links)
	require.Len(t, links, 1)
	assert.Equal(t, menu.ID, links[0].MenuID)

	// Linking to a missing menu is a targeted not-found.
	w = env.doJSON(t, "POST", "/dashboard/menus/items", map[string]interface{}{
		"menu_id":      uint(999),
		"menu_item_id": cake.ID,
	}, tokenFor(t, env.Staff))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.doJSON(t, "DELETE", "/dashboard/menus/items", map[string]interface{}{
		"menu_id":      menu.ID,
		"menu_item_id": cake.ID,
	}, tokenFor(t, env.Staff))
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	env.DB.Model(&models.MenuItemToMenu{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetLandingMenuRecommendedFirst(t *testing.T) {
	env := newTestEnv(t)
	env.seedMenu(t, "Breakfast", false)
	env.seedMenu(t, "Chef's Picks", true)

	w := env.doJSON(t, "GET", "/menus/landing", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var menus []models.Menu
	decodeData(t, w, &menus)
	require.Len(t, menus, 2)
	assert.Equal(t, "Chef's Picks", menus[0].Name)
}

func TestGetMenusPaginatedWithNameFilter(t *testing.T) {
	env := newTestEnv(t)
	env.seedMenu(t, "Breakfast", false)
	env.seedMenu(t, "Dinner", false)

	w := env.doJSON(t, "GET", "/menus?name_filter=break", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Rows       []models.Menu `json:"rows"`
		TotalCount int64         `json:"total_count"`
	}
	decodeData(t, w, &page)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "Breakfast", page.Rows[0].Name)
}
