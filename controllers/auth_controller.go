package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/resp"
	"github.com/usamaikram-xs-00008/menu-qr-gen/services"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
)

type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	RestaurantName string `json:"restaurantName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AcceptInvitationRequest struct {
	Token     string `json:"token" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type AuthController struct {
	Auth        *services.AuthService
	Invitations *services.InvitationService
}

func NewAuthController(auth *services.AuthService, invitations *services.InvitationService) *AuthController {
	return &AuthController{Auth: auth, Invitations: invitations}
}

func userJSON(user *entity.User) gin.H {
	return gin.H{
		"id": user.ID, "email": user.Email, "firstName": user.FirstName,
		"lastName": user.LastName, "roleId": user.RoleID,
	}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, rest, err := a.Auth.RegisterOwner(services.RegisterOwnerInput{
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		RestaurantName: req.RestaurantName,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	resp.Created(c, gin.H{"user": userJSON(user), "restaurant": rest})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  userJSON(user),
	})
}

// POST /auth/accept-invitation
func (a *AuthController) AcceptInvitation(c *gin.Context) {
	var req AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Invitations.Accept(services.AcceptInvitationInput{
		Token:     req.Token,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	resp.Created(c, userJSON(user))
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.Me(utils.CurrentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, userJSON(user))
}
