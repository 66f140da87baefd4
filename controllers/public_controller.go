package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/resp"
	"github.com/usamaikram-xs-00008/menu-qr-gen/services"
)

type PublicController struct {
	Public *services.PublicService
}

func NewPublicController(public *services.PublicService) *PublicController {
	return &PublicController{Public: public}
}

// GET /menus/:restaurantSlug/:locationSlug
func (ctl *PublicController) Location(c *gin.Context) {
	page, err := ctl.Public.ResolveLocation(c.Param("restaurantSlug"), c.Param("locationSlug"))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, page)
}

// GET /menus/:restaurantSlug/:locationSlug/:menuSlug
func (ctl *PublicController) Menu(c *gin.Context) {
	page, err := ctl.Public.ResolveMenu(c.Param("restaurantSlug"), c.Param("locationSlug"), c.Param("menuSlug"))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, page)
}

// LegacyRedirect handles unmatched routes. A bare "/{restaurantSlug}" GET is
// the old QR target format; it redirects to the restaurant's oldest active
// location. Everything else is a plain 404.
func (ctl *PublicController) LegacyRedirect(c *gin.Context) {
	path := strings.Trim(c.Request.URL.Path, "/")
	if c.Request.Method == http.MethodGet && path != "" && !strings.Contains(path, "/") {
		target, err := ctl.Public.LegacyLocationPath(path)
		if err == nil {
			c.Redirect(http.StatusMovedPermanently, target)
			return
		}
	}
	resp.NotFound(c, "not found")
}
