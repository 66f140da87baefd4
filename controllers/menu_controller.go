package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/resp"
	"github.com/usamaikram-xs-00008/menu-qr-gen/services"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
)

type MenuController struct {
	Menus *services.MenuService
	Authz *services.AuthzService
}

func NewMenuController(menus *services.MenuService, authz *services.AuthzService) *MenuController {
	return &MenuController{Menus: menus, Authz: authz}
}

// GET /api/restaurants/:restaurantId/menus
func (ctl *MenuController) ListByRestaurant(c *gin.Context) {
	restID, ok := paramUint(c, "restaurantId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageRestaurant(utils.CurrentUserID(c), utils.CurrentRoleID(c), restID); err != nil {
		respondErr(c, err)
		return
	}
	menus, err := ctl.Menus.ListByRestaurant(restID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": menus})
}

// GET /api/menus/:menuId
func (ctl *MenuController) Get(c *gin.Context) {
	menuID, ok := paramUint(c, "menuId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageMenu(utils.CurrentUserID(c), utils.CurrentRoleID(c), menuID); err != nil {
		respondErr(c, err)
		return
	}
	menu, err := ctl.Menus.Get(menuID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, menu)
}

type CreateMenuRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// POST /api/restaurants/:restaurantId/menus
func (ctl *MenuController) Create(c *gin.Context) {
	restID, ok := paramUint(c, "restaurantId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageRestaurant(utils.CurrentUserID(c), utils.CurrentRoleID(c), restID); err != nil {
		respondErr(c, err)
		return
	}
	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := ctl.Menus.Create(restID, req.Name, req.Description)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, menu)
}

// UpdateMenuRequest doubles as the reorder envelope: {action:"reorder",
// direction:"up"|"down"} swaps positions instead of updating fields.
type UpdateMenuRequest struct {
	Action      string  `json:"action"`
	Direction   string  `json:"direction"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// PUT /api/menus/:menuId
func (ctl *MenuController) Update(c *gin.Context) {
	menuID, ok := paramUint(c, "menuId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageMenu(utils.CurrentUserID(c), utils.CurrentRoleID(c), menuID); err != nil {
		respondErr(c, err)
		return
	}
	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Action == "reorder" {
		menu, err := ctl.Menus.Reorder(menuID, services.ReorderDirection(req.Direction))
		if err != nil {
			respondErr(c, err)
			return
		}
		resp.OK(c, menu)
		return
	}

	menu, err := ctl.Menus.Update(menuID, services.UpdateMenuInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, menu)
}

// DELETE /api/menus/:menuId
func (ctl *MenuController) Delete(c *gin.Context) {
	menuID, ok := paramUint(c, "menuId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageMenu(utils.CurrentUserID(c), utils.CurrentRoleID(c), menuID); err != nil {
		respondErr(c, err)
		return
	}
	if err := ctl.Menus.Delete(menuID); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu deleted"})
}
