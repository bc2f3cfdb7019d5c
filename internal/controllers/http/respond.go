package http

import (
	"errors"
	"net/http"

	"marketplace/internal/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var statusByKind = map[domain.ErrorKind]int{
	domain.KindValidation:     http.StatusBadRequest,
	domain.KindAuthentication: http.StatusUnauthorized,
	domain.KindAuthorization:  http.StatusForbidden,
	domain.KindNotFound:       http.StatusNotFound,
	domain.KindConflict:       http.StatusConflict,
	domain.KindStorage:        http.StatusInternalServerError,
}

func ok(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// fail writes err as an error envelope. Storage failures are logged in full
// and answered with a generic message.
func fail(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	status, found := statusByKind[kind]
	if !found {
		status = http.StatusInternalServerError
	}

	var de *domain.Error
	if !errors.As(err, &de) || kind == domain.KindStorage {
		log.WithError(err).WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
		c.AbortWithStatusJSON(status, gin.H{
			"success": false,
			"code":    domain.ErrStorage.Code,
			"message": domain.ErrStorage.Message,
		})
		return
	}

	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"code":    de.Code,
		"message": de.Message,
	})
}

func badRequest(c *gin.Context, err error) {
	fail(c, domain.ErrInvalidInput.WithMessage("%s", err.Error()))
}
