// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodlink/internal/delivery/http/middleware"
	"foodlink/internal/delivery/http/router/handler"
	"foodlink/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DonationHandler *handler.DonationHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	donationHandler *handler.DonationHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		donationHandler: params.DonationHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	donor := r.authMiddleware.RequireRole(entity.RoleDonor)
	organization := r.authMiddleware.RequireRole(entity.RoleOrganization)

	donationsGroup := apiV1.Group("/donations")
	{
		donationsGroup.POST("", r.donationHandler.CreateDonation, donor)
		donationsGroup.GET("/:id", r.donationHandler.GetDonation)
		donationsGroup.PUT("/:id", r.donationHandler.UpdateDonation, donor)
		donationsGroup.GET("/:id/suggestions", r.donationHandler.GetSuggestions,
			r.authMiddleware.RequireRole(entity.RoleDonor, entity.RoleAdmin))
		donationsGroup.GET("/:id/handoff-code", r.donationHandler.GetHandoffCode, donor)

		donationsGroup.POST("/:id/accept", r.donationHandler.AcceptDonation, organization)
		donationsGroup.POST("/:id/pickup", r.donationHandler.PickUpDonation, organization)
		donationsGroup.POST("/:id/deliver", r.donationHandler.DeliverDonation, organization)
		donationsGroup.POST("/:id/cancel", r.donationHandler.CancelDonation, donor)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/reliability/recalculate", r.adminHandler.RecalculateReliability)
		adminGroup.POST("/reassignment/sweep", r.adminHandler.RunReassignmentSweep)
		adminGroup.POST("/expiry/sweep", r.adminHandler.RunExpirySweep)
	}
}
