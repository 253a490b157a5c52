package handlers

import (
	"database/sql"
	"net/http"

	intdb "stayscape/internal/db"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	DB *sql.DB
}

func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h SystemHandler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not connected"})
		return
	}
	if !intdb.HasTable(h.DB, "properties") {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "schema missing: properties table not found"})
		return
	}
	var count int
	if err := h.DB.QueryRow("SELECT COUNT(*) FROM properties").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "properties_in_db": count})
}
