package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/resp"
	"github.com/usamaikram-xs-00008/menu-qr-gen/services"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
)

type CategoryController struct {
	Categories *services.CategoryService
	Authz      *services.AuthzService
}

func NewCategoryController(categories *services.CategoryService, authz *services.AuthzService) *CategoryController {
	return &CategoryController{Categories: categories, Authz: authz}
}

// GET /api/menus/:menuId/categories
func (ctl *CategoryController) ListByMenu(c *gin.Context) {
	menuID, ok := paramUint(c, "menuId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageMenu(utils.CurrentUserID(c), utils.CurrentRoleID(c), menuID); err != nil {
		respondErr(c, err)
		return
	}
	cats, err := ctl.Categories.ListByMenu(menuID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// GET /api/categories/:categoryId
func (ctl *CategoryController) Get(c *gin.Context) {
	catID, ok := paramUint(c, "categoryId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageCategory(utils.CurrentUserID(c), utils.CurrentRoleID(c), catID); err != nil {
		respondErr(c, err)
		return
	}
	cat, err := ctl.Categories.Get(catID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, cat)
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// POST /api/menus/:menuId/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	menuID, ok := paramUint(c, "menuId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageMenu(utils.CurrentUserID(c), utils.CurrentRoleID(c), menuID); err != nil {
		respondErr(c, err)
		return
	}
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.Categories.Create(menuID, req.Name, req.Description)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, cat)
}

type UpdateCategoryRequest struct {
	Action      string  `json:"action"`
	Direction   string  `json:"direction"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// PUT /api/categories/:categoryId
func (ctl *CategoryController) Update(c *gin.Context) {
	catID, ok := paramUint(c, "categoryId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageCategory(utils.CurrentUserID(c), utils.CurrentRoleID(c), catID); err != nil {
		respondErr(c, err)
		return
	}
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Action == "reorder" {
		cat, err := ctl.Categories.Reorder(catID, services.ReorderDirection(req.Direction))
		if err != nil {
			respondErr(c, err)
			return
		}
		resp.OK(c, cat)
		return
	}

	cat, err := ctl.Categories.Update(catID, services.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /api/categories/:categoryId
func (ctl *CategoryController) Delete(c *gin.Context) {
	catID, ok := paramUint(c, "categoryId")
	if !ok {
		return
	}
	if err := ctl.Authz.CanManageCategory(utils.CurrentUserID(c), utils.CurrentRoleID(c), catID); err != nil {
		respondErr(c, err)
		return
	}
	if err := ctl.Categories.Delete(catID); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}
