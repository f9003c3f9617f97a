package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relaxing-koala/restaurant-api/utils"
)

// respondServiceError maps typed service errors onto HTTP statuses:
// missing references are 404, domain rejections 422, everything else 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case utils.IsNotFound(err):
		utils.RespondError(c, http.StatusNotFound, err)
	case utils.IsValidation(err):
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
