// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"notekeeper/internal/delivery/http/middleware"
	"notekeeper/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	NoteHandler    *handler.NoteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	noteHandler    *handler.NoteHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		noteHandler:    params.NoteHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/register", r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)

	// Routes that require a bearer token. Registered per route rather than on a
	// root group so unknown paths still answer 404.
	authenticate := r.authMiddleware.Authenticate
	e.POST("/getUserData", r.accountHandler.GetUserData, authenticate)
	e.DELETE("/deleteUser", r.accountHandler.DeleteUser, authenticate)

	e.POST("/addNote", r.noteHandler.AddNote, authenticate)
	e.POST("/editNote", r.noteHandler.EditNote, authenticate)
	e.DELETE("/deleteNote", r.noteHandler.DeleteNote, authenticate)
}
