package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaxing-koala/restaurant-api/models"
)

func TestMenuItemCRUD(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, "POST", "/dashboard/menu-items", map[string]interface{}{
		"name":        "Grilled Barramundi",
		"description": "With lemon butter",
		"price":       2850,
		"seafood":     true,
	}, tokenFor(t, env.Staff))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item models.MenuItem
	decodeData(t, w, &item)
	assert.Equal(t, int64(2850), item.Price)
	assert.True(t, item.Seafood)
	assert.Equal(t, env.Staff.ID, item.CreatedBy)

	url := fmt.Sprintf("/dashboard/menu-items/%d", item.ID)
	w = env.doJSON(t, "PATCH", url, map[string]interface{}{
		"name":        "Grilled Barramundi",
		"description": "With lemon butter",
		"price":       2950,
		"seafood":     true,
	}, tokenFor(t, env.Staff))
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.MenuItem
	decodeData(t, w, &updated)
	assert.Equal(t, int64(2950), updated.Price)

	// Authenticated detail route.
	w = env.doJSON(t, "GET", fmt.Sprintf("/menu-items/%d", item.ID), nil, tokenFor(t, env.Diner))
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, "DELETE", url, nil, tokenFor(t, env.Staff))
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, "GET", fmt.Sprintf("/menu-items/%d", item.ID), nil, tokenFor(t, env.Diner))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMenuItemStaffOnly(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, "POST", "/dashboard/menu-items", map[string]interface{}{
		"name":        "Flat White",
		"description": "Coffee",
		"price":       500,
	}, tokenFor(t, env.Diner))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetMenuItemsPaginatedPublic(t *testing.T) {
	env := newTestEnv(t)
	env.seedMenuItem(t, "Flat White", 500)
	env.seedMenuItem(t, "Lamington", 300)
	env.seedMenuItem(t, "Pavlova", 900)

	w := env.doJSON(t, "GET", "/menu-items?page_index=0&page_size=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Rows       []models.MenuItem `json:"rows"`
		TotalCount int64             `json:"total_count"`
	}
	decodeData(t, w, &page)
	assert.Len(t, page.Rows, 2)
	assert.Equal(t, int64(3), page.TotalCount)

	w = env.doJSON(t, "GET", "/menu-items?name_filter=pav", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &page)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "Pavlova", page.Rows[0].Name)
}

func TestGetAllMenuItemsPublic(t *testing.T) {
	env := newTestEnv(t)
	env.seedMenuItem(t, "Flat White", 500)
	env.seedMenuItem(t, "Lamington", 300)

	w := env.doJSON(t, "GET", "/menu-items/all", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.MenuItem
	decodeData(t, w, &items)
	assert.Len(t, items, 2)
}
