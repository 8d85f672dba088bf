// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/chandran2006/saveup-backend/internal/httputil"
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/gin-gonic/gin"
)

type healthError struct {
	Error string `json:"error" example:"sql: database is closed"`
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	healthError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, healthError{Error: err.Error()})
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		c.JSON(http.StatusInternalServerError, healthError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
