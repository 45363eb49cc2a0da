package routes

import (
	"net/http"

	"keliva/agents"
	"keliva/auth"
	"keliva/blogs"
	"keliva/clients"
	"keliva/companies"
	"keliva/globals"
	"keliva/middleware"
	"keliva/ratelim"
	"keliva/trips"

	"github.com/julienschmidt/httprouter"
)

var staffOnly = middleware.RequireRole(globals.RoleAgent)
var adminOnly = middleware.RequireRole()

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddClientRoutes(router *httprouter.Router) {
	router.GET("/api/clients", staffOnly(clients.GetClients))
	router.GET("/api/clients/:id", staffOnly(clients.GetClient))
	router.POST("/api/clients", ratelim.RateLimit(staffOnly(clients.CreateClient)))
	router.PUT("/api/clients/:id", ratelim.RateLimit(staffOnly(clients.UpdateClient)))
	router.DELETE("/api/clients/:id", ratelim.RateLimit(staffOnly(clients.DeleteClient)))
}

func AddAgentRoutes(router *httprouter.Router) {
	router.GET("/api/agents", staffOnly(agents.GetAgents))
	router.GET("/api/agents/:id", staffOnly(agents.GetAgent))
	router.POST("/api/agents", ratelim.RateLimit(adminOnly(agents.CreateAgent)))
	router.PUT("/api/agents/:id", ratelim.RateLimit(adminOnly(agents.UpdateAgent)))
	router.DELETE("/api/agents/:id", ratelim.RateLimit(adminOnly(agents.DeleteAgent)))
}

func AddCompanyRoutes(router *httprouter.Router) {
	router.GET("/api/companies", staffOnly(companies.GetCompanies))
	router.GET("/api/companies/:id", staffOnly(companies.GetCompany))
	router.POST("/api/companies", ratelim.RateLimit(staffOnly(companies.CreateCompany)))
	router.PUT("/api/companies/:id", ratelim.RateLimit(staffOnly(companies.UpdateCompany)))
	router.DELETE("/api/companies/:id", ratelim.RateLimit(staffOnly(companies.DeleteCompany)))
}

func AddTripRoutes(router *httprouter.Router) {
	router.GET("/api/trips", middleware.Authenticate(trips.GetTrips))
	router.GET("/api/trips/:id", middleware.Authenticate(trips.GetTrip))
	router.POST("/api/trips", ratelim.RateLimit(staffOnly(trips.CreateTrip)))
	router.PUT("/api/trips/:id", ratelim.RateLimit(staffOnly(trips.UpdateTrip)))
	router.DELETE("/api/trips/:id", ratelim.RateLimit(staffOnly(trips.DeleteTrip)))
	router.PUT("/api/trips/:id/publish", ratelim.RateLimit(staffOnly(trips.PublishTrip)))

	router.GET("/api/trips/:id/itinerary", middleware.Authenticate(trips.GetTripItinerary))
	router.GET("/api/trips/:id/print", ratelim.RateLimit(middleware.Authenticate(trips.PrintTrip)))
	router.POST("/api/trips/:id/cover", ratelim.RateLimit(staffOnly(trips.UploadTripCover)))

	router.GET("/ws/trips/:id/preview", middleware.OptionalAuth(trips.HandlePreviewWS))
}

func AddBlogRoutes(router *httprouter.Router) {
	router.GET("/api/blogs", blogs.GetBlogPosts)
	router.GET("/api/blogs/:id", blogs.GetBlogPost)
	router.POST("/api/blogs", ratelim.RateLimit(staffOnly(blogs.CreateBlogPost)))
	router.PUT("/api/blogs/:id", ratelim.RateLimit(staffOnly(blogs.UpdateBlogPost)))
	router.DELETE("/api/blogs/:id", ratelim.RateLimit(staffOnly(blogs.DeleteBlogPost)))
	router.POST("/api/blogs/upload", ratelim.RateLimit(staffOnly(blogs.UploadBlogImage)))
}
