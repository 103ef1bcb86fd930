package handlers

import (
	"net/http"

	"salonkit/middleware"
	"salonkit/utils"

	"github.com/gin-gonic/gin"
)

// ListMenusHandler returns menus. Non-managers only see published,
// non-archived menus.
func (hb *HandlerBundle) ListMenusHandler(c *gin.Context) {
	publishedOnly := !c.GetBool(middleware.CtxCanManage)
	menus, err := hb.MenuRepo.List(c.Request.Context(), publishedOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", "failed to list menus")
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// GetMenuHandler returns one menu by id, subject to the same visibility
// rule as listing.
func (hb *HandlerBundle) GetMenuHandler(c *gin.Context) {
	menu, err := hb.MenuRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", "failed to fetch menu")
		return
	}
	if menu == nil {
		utils.JSONError(c, http.StatusNotFound, "menu_not_found", "menu not found")
		return
	}
	if (!menu.Published || menu.Archived) && !c.GetBool(middleware.CtxCanManage) {
		utils.JSONError(c, http.StatusNotFound, "menu_not_found", "menu not found")
		return
	}
	c.JSON(http.StatusOK, menu)
}
