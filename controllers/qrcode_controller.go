package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/resp"
	"github.com/usamaikram-xs-00008/menu-qr-gen/services"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
)

type QRCodeController struct {
	QRCodes   *services.QRCodeService
	Authz     *services.AuthzService
	JWTSecret string
}

func NewQRCodeController(qrcodes *services.QRCodeService, authz *services.AuthzService, jwtSecret string) *QRCodeController {
	return &QRCodeController{QRCodes: qrcodes, Authz: authz, JWTSecret: jwtSecret}
}

// GET /api/locations/:locationId/qrcodes
func (ctl *QRCodeController) ListByLocation(c *gin.Context) {
	locID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageLocation(utils.CurrentUserID(c), utils.CurrentRoleID(c), locID); err != nil {
		respondErr(c, err)
		return
	}
	codes, err := ctl.QRCodes.ListByLocation(locID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": codes})
}

type CreateQRCodeRequest struct {
	MenuID *uint `json:"menuId"`
}

// POST /api/locations/:locationId/qrcodes
func (ctl *QRCodeController) Create(c *gin.Context) {
	locID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageLocation(utils.CurrentUserID(c), utils.CurrentRoleID(c), locID); err != nil {
		respondErr(c, err)
		return
	}
	var req CreateQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	code, err := ctl.QRCodes.Create(locID, req.MenuID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, code)
}

// GET /api/qrcodes/:id
func (ctl *QRCodeController) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageQRCode(utils.CurrentUserID(c), utils.CurrentRoleID(c), id); err != nil {
		respondErr(c, err)
		return
	}
	code, err := ctl.QRCodes.Get(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, code)
}

type ToggleQRCodeRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// PUT /api/qrcodes/:id
func (ctl *QRCodeController) Toggle(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageQRCode(utils.CurrentUserID(c), utils.CurrentRoleID(c), id); err != nil {
		respondErr(c, err)
		return
	}
	var req ToggleQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	code, err := ctl.QRCodes.Toggle(id, *req.IsActive)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, code)
}

// DELETE /api/qrcodes/:id
func (ctl *QRCodeController) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageQRCode(utils.CurrentUserID(c), utils.CurrentRoleID(c), id); err != nil {
		respondErr(c, err)
		return
	}
	if err := ctl.QRCodes.Delete(id); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "qr code deleted"})
}

// Render serves GET /api/qr/:id. A numeric id looks the restaurant up by
// primary key and requires a valid token whose user may manage it. Anything
// else is treated as a public slug lookup over active restaurants only.
// Either way the response carries the QR image as a base64 data URL plus the
// menu URL it encodes.
func (ctl *QRCodeController) Render(c *gin.Context) {
	raw := c.Param("id")
	if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
		claims, authErr := ctl.bearerClaims(c)
		if authErr != nil {
			resp.Unauthorized(c, "invalid or missing token")
			return
		}
		rest, err := ctl.QRCodes.RestaurantByID(uint(id))
		if err != nil {
			respondErr(c, err)
			return
		}
		if err := ctl.Authz.CanManageRestaurant(claims.UserID, claims.RoleID, rest.ID); err != nil {
			respondErr(c, err)
			return
		}
		ctl.renderRestaurant(c, rest)
		return
	}

	rest, err := ctl.QRCodes.ActiveRestaurantBySlug(raw)
	if err != nil {
		respondErr(c, err)
		return
	}
	ctl.renderRestaurant(c, rest)
}

func (ctl *QRCodeController) renderRestaurant(c *gin.Context, rest *entity.Restaurant) {
	dataURL, menuURL, err := ctl.QRCodes.RenderRestaurantQR(rest)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{
		"qrCode":  dataURL,
		"menuUrl": menuURL,
		"name":    rest.Name,
		"slug":    rest.Slug,
	})
}

func (ctl *QRCodeController) bearerClaims(c *gin.Context) (*utils.Claims, error) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return nil, services.ErrForbidden
	}
	return utils.ParseToken(token, ctl.JWTSecret)
}
