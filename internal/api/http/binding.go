package http

import (
	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/pagelab/internal/domain/query"
)

// bindQuery binds the query string into obj. Type conversion failures
// become a ValidationError carrying typeMessage; range checks are left to
// the engine.
func bindQuery(c *gin.Context, obj any, typeMessage string) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return query.NewValidationError("", typeMessage)
	}
	return nil
}
