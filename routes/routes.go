package routes

import (
	"net/http"

	"forkful/auth"
	"forkful/collections"
	"forkful/home"
	"forkful/mealplan"
	"forkful/middleware"
	"forkful/notify"
	"forkful/profile"
	"forkful/ratelim"
	"forkful/recipes"
	"forkful/reviews"
	"forkful/shopping"
	"forkful/suggestions"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
	router.ServeFiles("/static/userpic/*filepath", http.Dir("static/userpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/v1/auth/register", rl.Limit(auth.Register))
	router.POST("/api/v1/auth/login", rl.Limit(auth.Login))
	router.POST("/api/v1/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/v1/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddRecipeRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/v1/recipes/tags", rl.Limit(recipes.GetRecipeTags))
	router.GET("/api/v1/recipes", middleware.OptionalAuth(recipes.GetRecipes))
	router.GET("/api/v1/recipes/recipe/:id", middleware.OptionalAuth(recipes.GetRecipe))
	router.POST("/api/v1/recipes", middleware.Authenticate(recipes.CreateRecipe))
	router.PUT("/api/v1/recipes/recipe/:id", middleware.Authenticate(recipes.UpdateRecipe))
	router.DELETE("/api/v1/recipes/recipe/:id", middleware.Authenticate(recipes.DeleteRecipe))

	router.POST("/api/v1/recipes/recipe/:id/scale", middleware.OptionalAuth(recipes.ScaleRecipe))
	router.POST("/api/v1/recipes/ai-generate", rl.Limit(middleware.OptionalAuth(recipes.GenerateFromIngredients)))

	router.GET("/api/v1/recipes/favorites", middleware.Authenticate(recipes.GetFavorites))
	router.PUT("/api/v1/recipes/recipe/:id/favorite", middleware.Authenticate(recipes.AddFavorite))
	router.DELETE("/api/v1/recipes/recipe/:id/favorite", middleware.Authenticate(recipes.RemoveFavorite))
}

func AddShoppingRoutes(router *httprouter.Router) {
	router.POST("/api/v1/shopping/aggregate", middleware.Authenticate(shopping.Aggregate))
	router.GET("/api/v1/shopping/lists", middleware.Authenticate(shopping.GetLists))
	router.POST("/api/v1/shopping/lists", middleware.Authenticate(shopping.SaveList))
	router.DELETE("/api/v1/shopping/lists/:name", middleware.Authenticate(shopping.DeleteList))
	router.PUT("/api/v1/shopping/lists/:name/check", middleware.Authenticate(shopping.CheckItem))
	router.POST("/api/v1/shopping/lists/:name/items", middleware.Authenticate(shopping.AddCustomItem))
}

func AddMealPlanRoutes(router *httprouter.Router) {
	router.GET("/api/v1/mealplan", middleware.Authenticate(mealplan.GetPlan))
	router.PUT("/api/v1/mealplan", middleware.Authenticate(mealplan.PutPlan))
	router.DELETE("/api/v1/mealplan", middleware.Authenticate(mealplan.DeletePlan))
}

func AddReviewsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/v1/reviews/:entityType/:entityId", rl.Limit(middleware.OptionalAuth(reviews.GetReviews)))
	router.GET("/api/v1/reviews/:entityType/:entityId/:reviewId", rl.Limit(middleware.OptionalAuth(reviews.GetReview)))
	router.POST("/api/v1/reviews/:entityType/:entityId", rl.Limit(middleware.Authenticate(reviews.AddReview)))
	router.PUT("/api/v1/reviews/:entityType/:entityId/:reviewId", rl.Limit(middleware.Authenticate(reviews.EditReview)))
	router.DELETE("/api/v1/reviews/:entityType/:entityId/:reviewId", rl.Limit(middleware.Authenticate(reviews.DeleteReview)))
}

func AddCollectionRoutes(router *httprouter.Router) {
	router.GET("/api/v1/collections", middleware.Authenticate(collections.GetCollections))
	router.POST("/api/v1/collections", middleware.Authenticate(collections.CreateCollection))
	router.GET("/api/v1/collections/:id", middleware.OptionalAuth(collections.GetCollection))
	router.PUT("/api/v1/collections/:id", middleware.Authenticate(collections.UpdateCollection))
	router.DELETE("/api/v1/collections/:id", middleware.Authenticate(collections.DeleteCollection))
	router.PUT("/api/v1/collections/:id/recipes/:recipeid", middleware.Authenticate(collections.AddRecipe))
	router.DELETE("/api/v1/collections/:id/recipes/:recipeid", middleware.Authenticate(collections.RemoveRecipe))
}

func AddProfileRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/v1/profile/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/v1/profile/edit", middleware.Authenticate(profile.EditProfile))
	router.PUT("/api/v1/profile/avatar", middleware.Authenticate(profile.EditProfilePic))
	router.DELETE("/api/v1/profile/delete", middleware.Authenticate(profile.DeleteProfile))

	router.GET("/api/v1/user/:username", rl.Limit(profile.GetUserProfile))

	router.PUT("/api/v1/follows/:id", rl.Limit(middleware.Authenticate(profile.ToggleFollow)))
	router.DELETE("/api/v1/follows/:id", rl.Limit(middleware.Authenticate(profile.ToggleUnFollow)))
	router.GET("/api/v1/follows/:id/status", rl.Limit(middleware.Authenticate(profile.DoesFollow)))
	router.GET("/api/v1/followers/:id", rl.Limit(middleware.Authenticate(profile.GetFollowers)))
	router.GET("/api/v1/following/:id", rl.Limit(middleware.Authenticate(profile.GetFollowing)))
}

func AddSuggestionsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/v1/suggestions/follow", rl.Limit(middleware.Authenticate(suggestions.SuggestFollowers)))
	router.GET("/api/v1/suggestions/recipes", rl.Limit(middleware.OptionalAuth(suggestions.SuggestRecipes)))
}

func AddHomeRoutes(router *httprouter.Router) {
	router.GET("/api/v1/home/:apiRoute", middleware.OptionalAuth(home.GetHomeContent))
}

func AddNotifyRoutes(router *httprouter.Router) {
	router.GET("/ws/notify", middleware.Authenticate(notify.Handler))
}
