package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/resp"
	"github.com/usamaikram-xs-00008/menu-qr-gen/services"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
)

type LocationController struct {
	Locations *services.LocationService
	Authz     *services.AuthzService
}

func NewLocationController(locations *services.LocationService, authz *services.AuthzService) *LocationController {
	return &LocationController{Locations: locations, Authz: authz}
}

// GET /api/restaurants/:restaurantId/locations
func (ctl *LocationController) ListByRestaurant(c *gin.Context) {
	restID, ok := paramUint(c, "restaurantId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageRestaurant(utils.CurrentUserID(c), utils.CurrentRoleID(c), restID); err != nil {
		respondErr(c, err)
		return
	}
	locs, err := ctl.Locations.ListByRestaurant(restID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": locs})
}

// GET /api/locations/:locationId
func (ctl *LocationController) Get(c *gin.Context) {
	locID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageLocation(utils.CurrentUserID(c), utils.CurrentRoleID(c), locID); err != nil {
		respondErr(c, err)
		return
	}
	loc, err := ctl.Locations.Get(locID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, loc)
}

type CreateLocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// POST /api/restaurants/:restaurantId/locations
func (ctl *LocationController) Create(c *gin.Context) {
	restID, ok := paramUint(c, "restaurantId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageRestaurant(utils.CurrentUserID(c), utils.CurrentRoleID(c), restID); err != nil {
		respondErr(c, err)
		return
	}
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	loc, err := ctl.Locations.Create(restID, req.Name, req.Address)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, loc)
}

type UpdateLocationRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"isActive"`
}

// PUT /api/locations/:locationId
func (ctl *LocationController) Update(c *gin.Context) {
	locID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageLocation(utils.CurrentUserID(c), utils.CurrentRoleID(c), locID); err != nil {
		respondErr(c, err)
		return
	}
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	loc, err := ctl.Locations.Update(locID, services.UpdateLocationInput{
		Name:     req.Name,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, loc)
}

// DELETE /api/locations/:locationId
func (ctl *LocationController) Delete(c *gin.Context) {
	locID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageLocation(utils.CurrentUserID(c), utils.CurrentRoleID(c), locID); err != nil {
		respondErr(c, err)
		return
	}
	if err := ctl.Locations.Delete(locID); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "location deleted"})
}
