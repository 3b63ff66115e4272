package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/okanserdaroglu/campushub/internal/app/controllers"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/middleware"
)

// Controllers bundles everything SetupRouter needs
type Controllers struct {
	Auth          *controllers.AuthController
	Application   *controllers.ApplicationController
	Student       *controllers.StudentController
	FacultyMember *controllers.FacultyMemberController
	Subject       *controllers.SubjectController
	Result        *controllers.ResultController
	Attendance    *controllers.AttendanceController
	Fee           *controllers.FeeController
	Announcement  *controllers.AnnouncementController
	Assignment    *controllers.AssignmentController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
	}

	// Prospective students file applications without an account
	v1.POST("/applications", c.Application.SubmitApplication)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.POST("/auth/logout", c.Auth.Logout)
	authenticated.PUT("/auth/password", c.Auth.ChangePassword)
	authenticated.GET("/auth/profile", c.Auth.GetProfile)

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	staffOnly := authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty)

	applications := authenticated.Group("/applications", adminOnly)
	{
		applications.GET("", c.Application.ListApplications)
		applications.GET("/:id", c.Application.GetApplication)
		applications.POST("/:id/approve", c.Application.ApproveApplication)
		applications.POST("/:id/reject", c.Application.RejectApplication)
	}

	students := authenticated.Group("/students")
	{
		students.GET("", staffOnly, c.Student.ListStudents)
		students.GET("/:id", staffOnly, c.Student.GetStudent)
		students.POST("", adminOnly, c.Student.CreateStudent)
		students.PUT("/:id", adminOnly, c.Student.UpdateStudent)
		students.DELETE("/:id", adminOnly, c.Student.DeleteStudent)
	}

	faculty := authenticated.Group("/faculty")
	{
		faculty.GET("", c.FacultyMember.ListFacultyMembers)
		faculty.GET("/:id", c.FacultyMember.GetFacultyMember)
		faculty.POST("", adminOnly, c.FacultyMember.CreateFacultyMember)
		faculty.PUT("/:id", adminOnly, c.FacultyMember.UpdateFacultyMember)
		faculty.DELETE("/:id", adminOnly, c.FacultyMember.DeleteFacultyMember)
	}

	subjects := authenticated.Group("/subjects")
	{
		subjects.GET("", c.Subject.ListSubjects)
		subjects.GET("/:id", c.Subject.GetSubject)
		subjects.POST("", adminOnly, c.Subject.CreateSubject)
		subjects.PUT("/:id", adminOnly, c.Subject.UpdateSubject)
		subjects.DELETE("/:id", adminOnly, c.Subject.DeleteSubject)
	}

	results := authenticated.Group("/results")
	{
		results.POST("/marks", staffOnly, c.Result.EnterMarks)
		results.PUT("/marks/:id", staffOnly, c.Result.CorrectMarks)
		results.POST("/publish", staffOnly, c.Result.PublishMarks)
		results.GET("/subjects/:id", staffOnly, c.Result.GetSubjectMarks)

		// Students reach their own record; the controller enforces it
		results.GET("/students/:id/semesters/:semester", c.Result.GetSemesterResult)
		results.GET("/students/:id/transcript", c.Result.GetTranscript)
	}

	attendance := authenticated.Group("/attendance")
	{
		attendance.POST("", staffOnly, c.Attendance.RecordAttendance)
		attendance.GET("/subjects/:id", staffOnly, c.Attendance.GetClassAttendance)
		attendance.GET("/students/:id", c.Attendance.GetStudentSummary)
	}

	fees := authenticated.Group("/fees")
	{
		fees.POST("/structures", adminOnly, c.Fee.CreateFeeStructure)
		fees.GET("/structures", c.Fee.ListFeeStructures)
		fees.POST("/payments", adminOnly, c.Fee.RecordPayment)
		fees.GET("/students/:id", c.Fee.GetStudentFeeStatus)
	}

	announcements := authenticated.Group("/announcements")
	{
		announcements.GET("", c.Announcement.ListAnnouncements)
		announcements.POST("", staffOnly, c.Announcement.CreateAnnouncement)
		announcements.PUT("/:id", staffOnly, c.Announcement.UpdateAnnouncement)
		announcements.DELETE("/:id", staffOnly, c.Announcement.DeleteAnnouncement)
	}

	events := authenticated.Group("/events")
	{
		events.GET("", c.Announcement.ListEvents)
		events.POST("", staffOnly, c.Announcement.CreateEvent)
		events.DELETE("/:id", staffOnly, c.Announcement.DeleteEvent)
	}

	assignments := authenticated.Group("/assignments")
	{
		assignments.GET("/subjects/:id", c.Assignment.ListAssignments)
		assignments.GET("/:id", c.Assignment.GetAssignment)
		assignments.POST("", staffOnly, c.Assignment.CreateAssignment)
		assignments.DELETE("/:id", staffOnly, c.Assignment.DeleteAssignment)
		assignments.POST("/:id/submissions", authMiddleware.RoleRequired(models.RoleStudent), c.Assignment.SubmitAssignment)
		assignments.GET("/:id/submissions", staffOnly, c.Assignment.ListSubmissions)
		assignments.PUT("/submissions/:id/feedback", staffOnly, c.Assignment.GiveFeedback)
	}
}
