package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/funkybooboo/alle-sub000/pkg/apierrors"
)

var errInvalidID = errors.New("id must be a positive integer")

// fail hands err to the error middleware and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func badRequest(c *gin.Context, key string, err error) {
	fail(c, apierrors.NewBadRequestError(key, err))
}

func parseID(c *gin.Context, param, key string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, key, errInvalidID)
		return 0, false
	}
	return id, true
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Root answers GET / with a plain-text banner.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Alle API is running")
}
