package context

import (
	"errors"
	"net/http"

	"campuswall/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 已经写过响应就不再写
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				status := be.Code
				if status < http.StatusBadRequest || status > 599 {
					status = http.StatusOK
				}
				c.JSON(status, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not found in context")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id has unexpected type")
	}

	return uid, nil
}
