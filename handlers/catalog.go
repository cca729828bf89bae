package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vipqueens/services/catalog"
)

// ListServices handles GET /api/services.
func ListServices(cat catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if category := c.Query("category"); category != "" {
			c.JSON(http.StatusOK, gin.H{"services": cat.GetServicesByCategory(category)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"services": cat.AllServices()})
	}
}

// ListStaff handles GET /api/staff. An optional specialty filter narrows
// the team to stylists qualified for a service category.
func ListStaff(cat catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if specialty := c.Query("specialty"); specialty != "" {
			c.JSON(http.StatusOK, gin.H{"staff": cat.GetStaffBySpecialty(specialty)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"staff": cat.AllStaff()})
	}
}
