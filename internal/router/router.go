package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"BistroHub/config"
	"BistroHub/internal/handler"
	"BistroHub/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.OpenTelemetryMiddleware())
	if config.Cfg.CSRFEnabled {
		h.Use(middleware.CSRFMiddleware()) // 面板走浏览器时开启
	}
	v1 := h.Group("/v1")

	// 认证相关路由
	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimitMiddleware()) // 认证接口限流
	{
		auth.POST("/signup", handler.Signup)
		auth.POST("/login", handler.Login)
		auth.POST("/token/refresh", handler.RefreshToken)
		auth.POST("/password/reset", handler.ResetPassword)
		auth.POST("/logout", middleware.AuthMiddleware(), handler.Logout)

		// 验证码相关路由
		otp := auth.Group("/otp", middleware.CaptchaRateLimitMiddleware())
		{
			otp.POST("/send", handler.SendOTP)
			otp.POST("/verify", handler.VerifyOTP)
		}
		auth.POST("/slider/verify", middleware.CaptchaRateLimitMiddleware(), handler.VerifySlider)
	}

	// 入驻引导路由
	onboarding := v1.Group("/onboarding")
	onboarding.Use(middleware.AuthMiddleware())
	{
		onboarding.GET("/session", handler.GetOnboardingSession)
		onboarding.PUT("/form-data", handler.SetOnboardingFormData)
		onboarding.POST("/goto", handler.GoToOnboardingStep)
		onboarding.POST("/back", handler.GoBackOnboardingStep)
		onboarding.POST("/submit", middleware.OnboardingSubmitRateLimitMiddleware(), handler.SubmitOnboardingStep)
		onboarding.POST("/email-confirm", handler.RequestOnboardingEmailConfirm)
		onboarding.POST("/reset", handler.ResetOnboarding)
	}

	// 商户账号与档案路由
	partners := v1.Group("/partners")
	partners.Use(middleware.AuthMiddleware())
	{
		partners.GET("/me", handler.GetMe)
		partners.GET("/me/profile", handler.GetProfile)
		partners.PATCH("/me/profile", middleware.ProfileSettingsRateLimitMiddleware(), handler.UpdateProfile)
		partners.PUT("/me/business-hours", middleware.ProfileSettingsRateLimitMiddleware(), handler.UpdateBusinessHours)
	}

	// 文件上传路由
	uploads := v1.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	{
		uploads.POST("", handler.UploadFile)
	}

	// 订单路由
	orders := v1.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("", handler.ListOrders)
		orders.GET("/:order_id", handler.GetOrder)
		orders.PATCH("/:order_id/status", handler.UpdateOrderStatus)
	}

	// 员工管理路由
	staff := v1.Group("/staff")
	staff.Use(middleware.AuthMiddleware())
	{
		staff.GET("", handler.ListStaff)
		staff.POST("", handler.InviteStaff)
		staff.PATCH("/:staff_id/role", handler.UpdateStaffRole)
		staff.DELETE("/:staff_id", handler.RemoveStaff)
	}
}
