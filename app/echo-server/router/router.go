package router

import (
	"courseHub/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupSessionRoutes(e *echo.Echo, handler *rest.SessionHandler) {
	e.POST("/jwt", handler.IssueToken)
	e.POST("/api/logout", handler.Logout)
}

func SetupUserRoutes(e *echo.Echo, handler *rest.UserHandler, authRequired, adminOnly echo.MiddlewareFunc) {
	e.POST("/user", handler.SaveUser)
	e.GET("/user/:email", handler.GetUserByEmail)

	e.GET("/users", handler.GetAllUsers, authRequired, adminOnly)
	e.DELETE("/student-remove/:email", handler.RemoveStudent, authRequired, adminOnly)
}

func SetupCatalogRoutes(e *echo.Echo, handler *rest.CatalogHandler, authRequired, adminOnly, studentOnly echo.MiddlewareFunc) {
	// Public catalog
	e.GET("/courses/:category", handler.PopularByCategory)
	e.GET("/trending-courses", handler.Trending)
	e.GET("/courses", handler.Search)
	e.GET("/category-courses/:category", handler.CoursesByCategory)
	e.GET("/products-length", handler.CoursesLength)

	// Any valid session
	e.GET("/course/:id", handler.GetCourse, authRequired)
	e.GET("/enrollments-course/:id", handler.EnrollmentCourse, authRequired, studentOnly)

	// Admin catalog management
	e.POST("/add-course", handler.AddCourse, authRequired, adminOnly)
	e.GET("/all-courses", handler.AdminListCourses, authRequired, adminOnly)
	e.GET("/singel-course/:id", handler.AdminGetCourse, authRequired, adminOnly)
	e.PUT("/update-course/:id", handler.UpdateCourse, authRequired, adminOnly)
	e.DELETE("/course/:id", handler.DeleteCourse, authRequired, adminOnly)
	e.GET("/products-count", handler.AdminCountCourses, authRequired, adminOnly)
}

func SetupCartRoutes(e *echo.Echo, handler *rest.CartHandler, authRequired, studentOnly echo.MiddlewareFunc) {
	e.GET("/carts", handler.ListByQuery)
	e.GET("/carts-length/:email", handler.Count)

	e.POST("/cart", handler.Add, authRequired, studentOnly)
	e.GET("/carts/:email", handler.ListOwned, authRequired, studentOnly)
	e.DELETE("/cart/:id", handler.Remove, authRequired, studentOnly)
}

func SetupCheckoutRoutes(e *echo.Echo, handler *rest.CheckoutHandler, authRequired, studentOnly echo.MiddlewareFunc) {
	e.POST("/payment", handler.Pay, authRequired, studentOnly)
	e.POST("/create-payment-intent", handler.CreatePaymentIntent, authRequired)
}

func SetupReportingRoutes(e *echo.Echo, handler *rest.ReportingHandler, authRequired, adminOnly, studentOnly echo.MiddlewareFunc) {
	e.GET("/payment-history/:email", handler.PaymentHistory, authRequired, studentOnly)
	e.GET("/enrollment/:email", handler.Enrollments, authRequired, studentOnly)
	e.GET("/student-statistic", handler.StudentStatistic, authRequired, studentOnly)

	e.GET("/orders", handler.Orders, authRequired, adminOnly)
	e.GET("/admin-statistics", handler.AdminStatistics, authRequired, adminOnly)
}
