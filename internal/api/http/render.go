package http

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/pagelab/internal/domain/query"
	"github.com/GriffinCanCode/pagelab/internal/shared/utils"
)

const contentTypeJSON = "application/json; charset=utf-8"

var hasher = utils.DefaultHasher()

// renderJSON encodes v with sonic using encoding/json compatible settings.
// Successful bodies carry an ETag and honour If-None-Match.
func renderJSON(c *gin.Context, status int, v any) {
	body, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to encode response"})
		return
	}

	if status == http.StatusOK {
		etag := hasher.ETag(body)
		c.Header("ETag", etag)
		if utils.MatchesETag(c.GetHeader("If-None-Match"), etag) {
			c.Status(http.StatusNotModified)
			return
		}
	}
	c.Data(status, contentTypeJSON, body)
}

// renderError maps err onto a client or server error body.
func renderError(c *gin.Context, err error) {
	var ve *query.ValidationError
	if errors.As(err, &ve) {
		renderJSON(c, http.StatusBadRequest, gin.H{"error": ve.Message})
		return
	}
	_ = c.Error(err)
	renderJSON(c, http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func renderNotFound(c *gin.Context, what string) {
	renderJSON(c, http.StatusNotFound, gin.H{"error": what + " not found"})
}
