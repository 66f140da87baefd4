package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/resp"
	"github.com/usamaikram-xs-00008/menu-qr-gen/services"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
)

type LocationMenuController struct {
	Assignments *services.LocationMenuService
	Authz       *services.AuthzService
}

func NewLocationMenuController(assignments *services.LocationMenuService, authz *services.AuthzService) *LocationMenuController {
	return &LocationMenuController{Assignments: assignments, Authz: authz}
}

// GET /api/locations/:locationId/menus
func (ctl *LocationMenuController) List(c *gin.Context) {
	locID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageLocation(utils.CurrentUserID(c), utils.CurrentRoleID(c), locID); err != nil {
		respondErr(c, err)
		return
	}
	rows, err := ctl.Assignments.ListByLocation(locID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows})
}

type AssignMenuRequest struct {
	MenuID uint `json:"menuId" binding:"required"`
}

// POST /api/locations/:locationId/menus
func (ctl *LocationMenuController) Assign(c *gin.Context) {
	locID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageLocation(utils.CurrentUserID(c), utils.CurrentRoleID(c), locID); err != nil {
		respondErr(c, err)
		return
	}
	var req AssignMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	row, err := ctl.Assignments.Assign(locID, req.MenuID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, row)
}

type ToggleAssignmentRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// PUT /api/locations/:locationId/menus/:menuId
func (ctl *LocationMenuController) Toggle(c *gin.Context) {
	locID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	menuID, ok := paramUint(c, "menuId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageLocation(utils.CurrentUserID(c), utils.CurrentRoleID(c), locID); err != nil {
		respondErr(c, err)
		return
	}
	var req ToggleAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	row, err := ctl.Assignments.Toggle(locID, menuID, *req.IsActive)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, row)
}

// DELETE /api/locations/:locationId/menus/:menuId
func (ctl *LocationMenuController) Remove(c *gin.Context) {
	locID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	menuID, ok := paramUint(c, "menuId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageLocation(utils.CurrentUserID(c), utils.CurrentRoleID(c), locID); err != nil {
		respondErr(c, err)
		return
	}
	if err := ctl.Assignments.Remove(locID, menuID); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu unassigned"})
}
