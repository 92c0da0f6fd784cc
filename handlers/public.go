package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPublicMenu returns only items a customer can currently order
func GetPublicMenu(c *gin.Context) {
	items, err := catalog.ListItems(true)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}
