package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tavola/configs"
	"tavola/controllers"
	"tavola/entity"
	"tavola/middlewares"
	"tavola/notifier"
	"tavola/pkg/resp"
	"tavola/repository"
	"tavola/services"
	"tavola/ws"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, log *logrus.Logger) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) {
		if err := configs.Ping(); err != nil {
			resp.ServerError(c, err)
			return
		}
		c.JSON(200, gin.H{"ok": true})
	})

	db := configs.DB()

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Kitchen display feed
	hub := ws.NewKitchenHub(log)
	go hub.Run()

	// SMS updates; disabled without credentials
	var sms services.OrderNotifier
	if cfg.SMSAccountSID != "" {
		sms = notifier.NewSMSNotifier(notifier.SMSConfig{
			BaseURL:    cfg.SMSBaseURL,
			AccountSID: cfg.SMSAccountSID,
			AuthToken:  cfg.SMSAuthToken,
			From:       cfg.SMSFrom,
		}, log)
	}

	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, hub, sms, log)

	// Controllers
	authCtrl := controllers.NewAuthController(userRepo, cfg)
	orderCtrl := controllers.NewOrderController(orderSvc)
	menuCtrl := controllers.NewMenuController(menuRepo)
	kitchenCtrl := controllers.NewKitchenController(orderSvc)
	adminCtrl := controllers.NewAdminController(userRepo, settingRepo, orderSvc, cfg)

	api := r.Group("/api")

	// Public
	api.POST("/auth/login", authCtrl.Login)
	api.GET("/menu", menuCtrl.List)
	api.POST("/orders", orderCtrl.Create)
	api.GET("/orders/track/:phoneNumber", orderCtrl.Track)
	api.GET("/orders/:id", orderCtrl.Detail)
	api.GET("/admin/session", adminCtrl.Session)

	// Kitchen (any staff role)
	staff := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret,
		entity.RoleAdmin, entity.RoleManager, entity.RoleKitchen))
	{
		staff.GET("/kitchen/board", kitchenCtrl.Board)
		staff.PATCH("/orders/:id", orderCtrl.UpdateStatus)
	}
	r.GET("/ws/kitchen", middlewares.AuthMiddleware(cfg.JWTSecret,
		entity.RoleAdmin, entity.RoleManager, entity.RoleKitchen), hub.HandleWebSocket)

	// Back office (admin/manager)
	admin := api.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret,
		entity.RoleAdmin, entity.RoleManager))
	{
		admin.GET("/orders", adminCtrl.Orders)
		admin.GET("/menu", menuCtrl.AdminList)
		admin.POST("/menu", menuCtrl.Create)
		admin.PUT("/menu/:id", menuCtrl.Update)
		admin.PATCH("/menu/:id/availability", menuCtrl.SetAvailability)
		admin.DELETE("/menu/:id", menuCtrl.Delete)
		admin.GET("/settings", adminCtrl.GetSettings)
		admin.PUT("/settings", adminCtrl.PutSettings)
	}

	// Users are admin-only
	adminOnly := api.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		adminOnly.GET("/users", adminCtrl.ListUsers)
		adminOnly.POST("/users", adminCtrl.CreateUser)
		adminOnly.PUT("/users/:id", adminCtrl.UpdateUser)
	}
}
