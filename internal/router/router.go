package router

import (
	"net/http"

	"github.com/thisistony/aucklandeats-meetup/internal/middleware"
	"github.com/thisistony/aucklandeats-meetup/internal/session"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	Me(c *ginext.Context)
	CheckUsername(c *ginext.Context)
	ListEvents(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	AddRestaurant(c *ginext.Context)
	AddTimeSlot(c *ginext.Context)
	AddComment(c *ginext.Context)
	SetRSVP(c *ginext.Context)
	VoteRestaurant(c *ginext.Context)
	UnvoteRestaurant(c *ginext.Context)
	VoteTimeSlot(c *ginext.Context)
	UnvoteTimeSlot(c *ginext.Context)
}

func InitRouter(mode string, h Handler, sessions *session.Manager, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	authed := middleware.Auth(sessions)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/me", h.Me)
		api.GET("/auth/username-check", h.CheckUsername)

		// Events
		api.GET("/events", h.ListEvents)
		api.POST("/events", authed, h.CreateEvent)
		api.GET("/events/:id", h.GetEvent)
		api.DELETE("/events/:id", authed, h.DeleteEvent)

		// Event sub-resources
		api.POST("/events/:id/restaurants", authed, h.AddRestaurant)
		api.POST("/events/:id/time-slots", authed, h.AddTimeSlot)
		api.POST("/events/:id/comments", authed, h.AddComment)
		api.POST("/events/:id/rsvp", authed, h.SetRSVP)

		// Votes
		api.POST("/restaurants/:id/vote", authed, h.VoteRestaurant)
		api.DELETE("/restaurants/:id/vote", authed, h.UnvoteRestaurant)
		api.POST("/time-slots/:id/vote", authed, h.VoteTimeSlot)
		api.DELETE("/time-slots/:id/vote", authed, h.UnvoteTimeSlot)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
