package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/resp"
	"github.com/usamaikram-xs-00008/menu-qr-gen/services"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
)

type InvitationController struct {
	Invitations *services.InvitationService
}

func NewInvitationController(invitations *services.InvitationService) *InvitationController {
	return &InvitationController{Invitations: invitations}
}

type InviteRestaurantRequest struct {
	Email          string `json:"email" binding:"required,email"`
	RestaurantName string `json:"restaurantName" binding:"required"`
}

// POST /api/invite-restaurant
func (ctl *InvitationController) InviteRestaurant(c *gin.Context) {
	var req InviteRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	inv, err := ctl.Invitations.InviteRestaurant(utils.CurrentUserID(c), utils.CurrentRoleID(c), req.Email, req.RestaurantName)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, gin.H{
		"email":     inv.Email,
		"expiresAt": inv.ExpiresAt,
	})
}

type InviteStaffRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/invite-staff
func (ctl *InvitationController) InviteStaff(c *gin.Context) {
	var req InviteStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	inv, err := ctl.Invitations.InviteStaff(utils.CurrentUserID(c), utils.CurrentRoleID(c), req.Email)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, gin.H{
		"email":     inv.Email,
		"expiresAt": inv.ExpiresAt,
	})
}
