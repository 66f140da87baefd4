package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/resp"
	"github.com/usamaikram-xs-00008/menu-qr-gen/services"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
)

type ItemController struct {
	Items *services.ItemService
	Authz *services.AuthzService
}

func NewItemController(items *services.ItemService, authz *services.AuthzService) *ItemController {
	return &ItemController{Items: items, Authz: authz}
}

// GET /api/categories/:categoryId/items
func (ctl *ItemController) ListByCategory(c *gin.Context) {
	catID, ok := paramUint(c, "categoryId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageCategory(utils.CurrentUserID(c), utils.CurrentRoleID(c), catID); err != nil {
		respondErr(c, err)
		return
	}
	items, err := ctl.Items.ListByCategory(catID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/items/:itemId
func (ctl *ItemController) Get(c *gin.Context) {
	itemID, ok := paramUint(c, "itemId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageItem(utils.CurrentUserID(c), utils.CurrentRoleID(c), itemID); err != nil {
		respondErr(c, err)
		return
	}
	item, err := ctl.Items.Get(itemID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, item)
}

type CreateItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}

// POST /api/categories/:categoryId/items
func (ctl *ItemController) Create(c *gin.Context) {
	catID, ok := paramUint(c, "categoryId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageCategory(utils.CurrentUserID(c), utils.CurrentRoleID(c), catID); err != nil {
		respondErr(c, err)
		return
	}
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Items.Create(catID, services.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, item)
}

type UpdateItemRequest struct {
	Action      string           `json:"action"`
	Direction   string           `json:"direction"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"imageUrl"`
	IsAvailable *bool            `json:"isAvailable"`
}

// PUT /api/items/:itemId
func (ctl *ItemController) Update(c *gin.Context) {
	itemID, ok := paramUint(c, "itemId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageItem(utils.CurrentUserID(c), utils.CurrentRoleID(c), itemID); err != nil {
		respondErr(c, err)
		return
	}
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Action == "reorder" {
		item, err := ctl.Items.Reorder(itemID, services.ReorderDirection(req.Direction))
		if err != nil {
			respondErr(c, err)
			return
		}
		resp.OK(c, item)
		return
	}

	item, err := ctl.Items.Update(itemID, services.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/items/:itemId
func (ctl *ItemController) Delete(c *gin.Context) {
	itemID, ok := paramUint(c, "itemId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageItem(utils.CurrentUserID(c), utils.CurrentRoleID(c), itemID); err != nil {
		respondErr(c, err)
		return
	}
	if err := ctl.Items.Delete(itemID); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item deleted"})
}
