package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/milad/unitel/internal/app/controllers"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/middleware"
)

// Controllers bundles everything SetupRouter needs to wire.
type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	Faculty     *controllers.FacultyController
	Department  *controllers.DepartmentController
	Employee    *controllers.EmployeeController
	Post        *controllers.PostController
	Space       *controllers.SpaceController
	ESP         *controllers.ESPController
	ContactInfo *controllers.ContactInfoController
	Group       *controllers.GroupController
	Favorite    *controllers.FavoriteController
	Contacts    *controllers.ContactsController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.Use(middleware.Metrics())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.User.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/send-otp", c.Auth.SendOTP)
		auth.POST("/verify-otp", c.Auth.VerifyOTP)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// The related-contacts aggregation, the main read path of the API
		multiModel := authenticated.Group("/multi-model")
		{
			multiModel.GET("/related-contacts", c.Contacts.GetRelatedContacts)
		}

		users := authenticated.Group("/users")
		{
			users.GET("", c.User.GetAllUsers)
			users.GET("/me", c.User.GetMe)
			users.PUT("/me/name", c.User.EditName)
			users.PUT("/me/password", c.User.ChangePassword)
			users.DELETE("/me", c.User.DeleteMe)
		}

		faculties := authenticated.Group("/faculties")
		{
			faculties.GET("", c.Faculty.GetAllFaculties)
			faculties.GET("/:id", c.Faculty.GetFacultyByID)
			faculties.POST("", c.Faculty.CreateFaculty)
			faculties.PUT("/:id", c.Faculty.UpdateFaculty)
			faculties.DELETE("/:id", c.Faculty.DeleteFaculty)
		}

		departments := authenticated.Group("/departments")
		{
			departments.GET("", c.Department.GetAllDepartments)
			departments.GET("/:id", c.Department.GetDepartmentByID)
			departments.POST("", c.Department.CreateDepartment)
			departments.PUT("/:id", c.Department.UpdateDepartment)
			departments.DELETE("/:id", c.Department.DeleteDepartment)
		}

		employees := authenticated.Group("/employees")
		{
			employees.GET("", c.Employee.GetAllEmployees)
			employees.GET("/:id", c.Employee.GetEmployeeByID)
			employees.POST("", c.Employee.CreateEmployee)
			employees.DELETE("/:id", c.Employee.DeleteEmployee)

			// Employment classification
			employees.POST("/:id/faculty-member", c.Employee.SetFacultyMember)
			employees.POST("/:id/non-faculty-member", c.Employee.SetNonFacultyMember)
			employees.DELETE("/:id/classification", c.Employee.ClearClassification)

			// Space/post assignments
			employees.GET("/:id/esps", c.ESP.GetESPsByEmployee)
			employees.DELETE("/:id/esps/:sid/:pid", c.ESP.DeleteESP)
		}

		esps := authenticated.Group("/esps")
		{
			esps.POST("", c.ESP.CreateESP)
		}

		posts := authenticated.Group("/posts")
		{
			posts.GET("", c.Post.GetAllPosts)
			posts.GET("/:id", c.Post.GetPostByID)
			posts.POST("", c.Post.CreatePost)
			posts.PUT("/:id", c.Post.UpdatePost)
			posts.DELETE("/:id", c.Post.DeletePost)
		}

		spaces := authenticated.Group("/spaces")
		{
			spaces.GET("", c.Space.GetAllSpaces)
			spaces.GET("/:id", c.Space.GetSpaceByID)
			spaces.POST("", c.Space.CreateSpace)
			spaces.PUT("/:id", c.Space.UpdateSpace)
			spaces.DELETE("/:id", c.Space.DeleteSpace)
		}

		contactInfos := authenticated.Group("/contact-infos")
		{
			contactInfos.GET("/:number", c.ContactInfo.GetContactInfoByNumber)
			contactInfos.POST("", c.ContactInfo.CreateContactInfo)
			contactInfos.PUT("/:number", c.ContactInfo.UpdateContactInfo)
			contactInfos.DELETE("/:number", c.ContactInfo.DeleteContactInfo)
		}
		authenticated.GET("/contactables/:cid/contact-infos", c.ContactInfo.GetContactInfosByCID)

		groups := authenticated.Group("/groups")
		{
			groups.GET("", c.Group.GetAllGroups)
			groups.GET("/:id", c.Group.GetGroupByID)
			groups.POST("", c.Group.CreateGroup)
			groups.PUT("/:id", c.Group.UpdateGroup)
			groups.DELETE("/:id", c.Group.DeleteGroup)
			groups.POST("/:id/members", c.Group.AddMember)
			groups.DELETE("/:id/members/:empId", c.Group.RemoveMember)
		}

		favorites := authenticated.Group("/favorite-categories")
		{
			favorites.GET("", c.Favorite.GetCategories)
			favorites.POST("", c.Favorite.CreateCategory)
			favorites.DELETE("/:id", c.Favorite.DeleteCategory)
			favorites.GET("/:id/favorites", c.Favorite.GetFavorites)
			favorites.POST("/:id/favorites", c.Favorite.AddFavorite)
			favorites.DELETE("/:id/favorites/:cid", c.Favorite.RemoveFavorite)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
