package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/usamaikram-xs-00008/menu-qr-gen/configs"
	"github.com/usamaikram-xs-00008/menu-qr-gen/controllers"
	"github.com/usamaikram-xs-00008/menu-qr-gen/middlewares"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/mailer"
	"github.com/usamaikram-xs-00008/menu-qr-gen/services"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, m mailer.Mailer) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Services
	authz := services.NewAuthzService(db)
	authSvc := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	invSvc := services.NewInvitationService(db, m, cfg.BaseURL)
	restSvc := services.NewRestaurantService(db, cfg.UploadDir)
	locSvc := services.NewLocationService(db, cfg.UploadDir)
	menuSvc := services.NewMenuService(db, cfg.UploadDir)
	catSvc := services.NewCategoryService(db)
	itemSvc := services.NewItemService(db)
	asgSvc := services.NewLocationMenuService(db)
	qrSvc := services.NewQRCodeService(db, cfg.BaseURL, cfg.UploadDir)
	pubSvc := services.NewPublicService(db)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, invSvc)
	invCtrl := controllers.NewInvitationController(invSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, authz)
	locCtrl := controllers.NewLocationController(locSvc, authz)
	menuCtrl := controllers.NewMenuController(menuSvc, authz)
	catCtrl := controllers.NewCategoryController(catSvc, authz)
	itemCtrl := controllers.NewItemController(itemSvc, authz)
	asgCtrl := controllers.NewLocationMenuController(asgSvc, authz)
	qrCtrl := controllers.NewQRCodeController(qrSvc, authz, cfg.JWTSecret)
	pubCtrl := controllers.NewPublicController(pubSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/accept-invitation", authCtrl.AcceptInvitation)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Public menu pages
	r.GET("/menus/:restaurantSlug/:locationSlug", pubCtrl.Location)
	r.GET("/menus/:restaurantSlug/:locationSlug/:menuSlug", pubCtrl.Menu)

	// QR render: the controller decides between the authenticated id form
	// and the public slug form, so no middleware here.
	r.GET("/api/qr/:id", qrCtrl.Render)

	api := r.Group("/api", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("/restaurants", restCtrl.List)
		api.POST("/restaurants", restCtrl.Create)
		api.GET("/restaurants/:restaurantId", restCtrl.Get)
		api.PUT("/restaurants/:restaurantId", restCtrl.Update)
		api.DELETE("/restaurants/:restaurantId", restCtrl.Delete)

		api.GET("/restaurants/:restaurantId/locations", locCtrl.ListByRestaurant)
		api.POST("/restaurants/:restaurantId/locations", locCtrl.Create)
		api.GET("/locations/:locationId", locCtrl.Get)
		api.PUT("/locations/:locationId", locCtrl.Update)
		api.DELETE("/locations/:locationId", locCtrl.Delete)

		api.GET("/restaurants/:restaurantId/menus", menuCtrl.ListByRestaurant)
		api.POST("/restaurants/:restaurantId/menus", menuCtrl.Create)
		api.GET("/menus/:menuId", menuCtrl.Get)
		api.PUT("/menus/:menuId", menuCtrl.Update)
		api.DELETE("/menus/:menuId", menuCtrl.Delete)

		api.GET("/menus/:menuId/categories", catCtrl.ListByMenu)
		api.POST("/menus/:menuId/categories", catCtrl.Create)
		api.GET("/categories/:categoryId", catCtrl.Get)
		api.PUT("/categories/:categoryId", catCtrl.Update)
		api.DELETE("/categories/:categoryId", catCtrl.Delete)

		api.GET("/categories/:categoryId/items", itemCtrl.ListByCategory)
		api.POST("/categories/:categoryId/items", itemCtrl.Create)
		api.GET("/items/:itemId", itemCtrl.Get)
		api.PUT("/items/:itemId", itemCtrl.Update)
		api.DELETE("/items/:itemId", itemCtrl.Delete)

		api.GET("/locations/:locationId/menus", asgCtrl.List)
		api.POST("/locations/:locationId/menus", asgCtrl.Assign)
		api.PUT("/locations/:locationId/menus/:menuId", asgCtrl.Toggle)
		api.DELETE("/locations/:locationId/menus/:menuId", asgCtrl.Remove)

		api.GET("/locations/:locationId/qrcodes", qrCtrl.ListByLocation)
		api.POST("/locations/:locationId/qrcodes", qrCtrl.Create)
		api.GET("/qrcodes/:id", qrCtrl.Get)
		api.PUT("/qrcodes/:id", qrCtrl.Toggle)
		api.DELETE("/qrcodes/:id", qrCtrl.Delete)

		api.POST("/invite-restaurant", invCtrl.InviteRestaurant)
		api.POST("/invite-staff", invCtrl.InviteStaff)
	}

	// Old QR codes point at "/{restaurantSlug}".
	r.NoRoute(pubCtrl.LegacyRedirect)
}
