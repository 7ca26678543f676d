package routes

import (
	"moviematch-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, movieHandler *handlers.MovieHandler, voteHandler *handlers.VoteHandler, recHandler *handlers.RecommendationHandler, trendingHandler *handlers.TrendingHandler, deviceHandler *handlers.DeviceHandler, uploadHandler *handlers.UploadHandler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes - catalog and discovery deck
	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Get("/deck", movieHandler.GetDeck)
		movies.Get("/:id", movieHandler.GetMovieByID)
		movies.Post("/", movieHandler.CreateMovie)
		movies.Put("/:id", movieHandler.UpdateMovie)
		movies.Delete("/:id", movieHandler.DeleteMovie)
	}

	// Vote routes - recording and history
	votes := v1.Group("/votes")
	{
		votes.Post("/", voteHandler.CastVote)
		votes.Get("/device/:deviceId", voteHandler.GetDeviceVotes)
	}

	// Preference routes
	v1.Get("/preferences/:deviceId", voteHandler.GetPreferences)

	// Recommendation routes
	recommendations := v1.Group("/recommendations")
	{
		recommendations.Get("/for-you", recHandler.GetForYou)
	}

	// Trending routes - windowed ranking snapshots
	trending := v1.Group("/trending")
	{
		trending.Get("/", trendingHandler.GetTrending)
		trending.Post("/recompute", trendingHandler.Recompute)
	}

	// Device routes - signed ID issuance
	devices := v1.Group("/devices")
	{
		devices.Post("/register", deviceHandler.RegisterDevice)
	}

	// Genre routes
	v1.Get("/genres", movieHandler.GetGenres)

	// Sync routes - TMDB synchronization
	sync := v1.Group("/sync")
	{
		sync.Post("/movies", movieHandler.SyncFromTMDB)
		sync.Get("/last-log", movieHandler.GetLastSyncLog)
	}

	// Dashboard routes - analytics
	dashboard := v1.Group("/dashboard")
	{
		dashboard.Get("/stats", movieHandler.GetDashboardStats)
	}

	upload := v1.Group("/upload")
	{
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
