package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRoleID(c *gin.Context) entity.RoleID {
	v, _ := c.Get("roleId")
	switch id := v.(type) {
	case entity.RoleID:
		return id
	case uint:
		return entity.RoleID(id)
	case float64:
		return entity.RoleID(id)
	default:
		return 0
	}
}
