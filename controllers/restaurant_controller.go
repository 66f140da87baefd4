package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/resp"
	"github.com/usamaikram-xs-00008/menu-qr-gen/services"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
)

type RestaurantController struct {
	Restaurants *services.RestaurantService
	Authz       *services.AuthzService
}

func NewRestaurantController(restaurants *services.RestaurantService, authz *services.AuthzService) *RestaurantController {
	return &RestaurantController{Restaurants: restaurants, Authz: authz}
}

// GET /api/restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Restaurants.ListFor(utils.CurrentUserID(c), utils.CurrentRoleID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rests})
}

type CreateRestaurantRequest struct {
	OwnerID uint   `json:"ownerId" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// POST /api/restaurants, super-admin onboarding for an existing account.
func (ctl *RestaurantController) Create(c *gin.Context) {
	if !utils.CurrentRoleID(c).Can(entity.CapInviteRestaurant) {
		resp.Forbidden(c, "forbidden")
		return
	}
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := ctl.Restaurants.Create(req.OwnerID, req.Name, req.Address)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, rest)
}

// GET /api/restaurants/:restaurantId
func (ctl *RestaurantController) Get(c *gin.Context) {
	id, ok := paramUint(c, "restaurantId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageRestaurant(utils.CurrentUserID(c), utils.CurrentRoleID(c), id); err != nil {
		respondErr(c, err)
		return
	}
	rest, err := ctl.Restaurants.Get(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, rest)
}

type UpdateRestaurantRequest struct {
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	LogoURL   *string `json:"logoUrl"`
	BannerURL *string `json:"bannerUrl"`
	IsActive  *bool   `json:"isActive"`
}

// PUT /api/restaurants/:restaurantId
func (ctl *RestaurantController) Update(c *gin.Context) {
	id, ok := paramUint(c, "restaurantId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageRestaurant(utils.CurrentUserID(c), utils.CurrentRoleID(c), id); err != nil {
		respondErr(c, err)
		return
	}
	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := ctl.Restaurants.Update(id, services.UpdateRestaurantInput{
		Name:      req.Name,
		Address:   req.Address,
		LogoURL:   req.LogoURL,
		BannerURL: req.BannerURL,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /api/restaurants/:restaurantId removes the whole tenant.
func (ctl *RestaurantController) Delete(c *gin.Context) {
	id, ok := paramUint(c, "restaurantId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageRestaurant(utils.CurrentUserID(c), utils.CurrentRoleID(c), id); err != nil {
		respondErr(c, err)
		return
	}
	if err := ctl.Restaurants.Delete(id); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "restaurant deleted"})
}
