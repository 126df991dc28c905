package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/registro-academico/internal/app/controllers"
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/app/models/dto"
	"github.com/yigit/registro-academico/internal/app/validators"
	"github.com/yigit/registro-academico/internal/middleware"
	"github.com/yigit/registro-academico/internal/pkg/validation"
)

// Controllers groups every handler the router mounts
type Controllers struct {
	Roles       *controllers.ResourceController[models.Role, dto.RoleRequest]
	Users       *controllers.ResourceController[models.User, dto.UserUpdateRequest]
	Careers     *controllers.ResourceController[models.Career, dto.CareerRequest]
	Teachers    *controllers.ResourceController[models.Teacher, dto.TeacherRequest]
	Students    *controllers.ResourceController[models.Student, dto.StudentRequest]
	Subjects    *controllers.ResourceController[models.Subject, dto.SubjectRequest]
	Periods     *controllers.ResourceController[models.Period, dto.PeriodRequest]
	Enrollments *controllers.ResourceController[models.Enrollment, dto.EnrollmentRequest]
	Activities  *controllers.ResourceController[models.Activity, dto.ActivityRequest]
	Attendance  *controllers.ResourceController[models.Attendance, dto.AttendanceRequest]
	Grades      *controllers.ResourceController[models.Grade, dto.GradeRequest]

	Auth   *controllers.AuthController
	Images *controllers.ImageController
	Health *controllers.HealthController
}

// SetupRouter configures all application routes under /api
func SetupRouter(api *gin.RouterGroup, c Controllers, v *validators.Validators, authMiddleware *middleware.AuthMiddleware) {
	api.GET("/salud", c.Health.Health)

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/registrar", middleware.Validate(v.Register()...), c.Auth.Register)
		auth.POST("/login", middleware.Validate(v.Login()...), c.Auth.Login)
		auth.POST("/recuperar", middleware.Validate(v.Recovery()...), c.Auth.RequestRecovery)
		auth.PUT("/restablecer", middleware.Validate(v.ResetPassword()...), c.Auth.ResetPassword)
		auth.GET("/perfil", authMiddleware.JWTAuth(), c.Auth.Profile)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	group := func(resource string) *gin.RouterGroup {
		return authenticated.Group("/"+resource, authMiddleware.RequirePermission(resource))
	}

	roles := group("rol")
	crudRoutes(roles, c.Roles, v, v.Role(), true)
	roles.GET("/busqueda_nombre", middleware.Validate(v.ByName()...), c.Roles.SearchByName("nombre"))

	users := group("usuario")
	crudRoutes(users, c.Users, v, v.UserUpdate(), false)
	users.GET("/busqueda",
		middleware.Validate(v.ByFilters([]string{"rol_id"}, validation.Query("correo").Optional().Email())...),
		c.Users.SearchBy([]string{"rol_id"}, "correo"))

	careers := group("carrera")
	crudRoutes(careers, c.Careers, v, v.Career(), true)
	careers.GET("/busqueda_nombre", middleware.Validate(v.ByName()...), c.Careers.SearchByName("nombre"))

	teachers := group("docente")
	crudRoutes(teachers, c.Teachers, v, v.Teacher(), true)
	teachers.GET("/busqueda_nombre", middleware.Validate(v.ByName()...), c.Teachers.SearchByName("nombre", "apellido"))
	teachers.GET("/busqueda",
		middleware.Validate(v.ByFilters(nil, cedulaFilter())...),
		c.Teachers.SearchBy(nil, "cedula"))

	students := group("estudiante")
	crudRoutes(students, c.Students, v, v.Student(), true)
	students.GET("/busqueda_nombre", middleware.Validate(v.ByName()...), c.Students.SearchByName("nombre", "apellido"))
	students.GET("/busqueda",
		middleware.Validate(v.ByFilters([]string{"carrera_id"}, cedulaFilter())...),
		c.Students.SearchBy([]string{"carrera_id"}, "cedula"))

	subjects := group("materia")
	crudRoutes(subjects, c.Subjects, v, v.Subject(), true)
	subjects.GET("/busqueda_nombre", middleware.Validate(v.ByName()...), c.Subjects.SearchByName("nombre"))
	filterRoute(subjects, v, c.Subjects, "carrera_id", "docente_id")

	periods := group("periodo")
	crudRoutes(periods, c.Periods, v, v.Period(), true)
	periods.GET("/busqueda_nombre", middleware.Validate(v.ByName()...), c.Periods.SearchByName("nombre"))

	enrollments := group("matricula")
	crudRoutes(enrollments, c.Enrollments, v, v.Enrollment(), true)
	enrollments.GET("/busqueda_fecha", middleware.Validate(v.ByDate()...), c.Enrollments.SearchByDate("fecha"))
	filterRoute(enrollments, v, c.Enrollments, "estudiante_id", "periodo_id")

	activities := group("actividad")
	crudRoutes(activities, c.Activities, v, v.Activity(), true)
	activities.GET("/busqueda_nombre", middleware.Validate(v.ByName()...), c.Activities.SearchByName("nombre"))
	activities.GET("/busqueda_fecha", middleware.Validate(v.ByDate()...), c.Activities.SearchByDate("fecha_entrega"))
	filterRoute(activities, v, c.Activities, "materia_id")

	attendance := group("asistencia")
	crudRoutes(attendance, c.Attendance, v, v.Attendance(), true)
	attendance.GET("/busqueda_fecha", middleware.Validate(v.ByDate()...), c.Attendance.SearchByDate("fecha"))
	filterRoute(attendance, v, c.Attendance, "estudiante_id", "materia_id")

	grades := group("nota")
	crudRoutes(grades, c.Grades, v, v.Grade(), true)
	filterRoute(grades, v, c.Grades, "estudiante_id", "materia_id", "actividad_id")

	// --- Profile images ---
	images := authenticated.Group("/imagen")
	{
		images.PUT("/docente",
			authMiddleware.RequirePermission("imagen_docente"),
			middleware.Validate(v.ID()...),
			c.Images.UploadTeacherImage)
		images.PUT("/estudiante",
			authMiddleware.RequirePermission("imagen_estudiante"),
			middleware.Validate(v.ID()...),
			c.Images.UploadStudentImage)
	}
}

// crudRoutes mounts listar, busqueda_id, guardar, editar and eliminar
func crudRoutes[T any, R controllers.Request[T]](g *gin.RouterGroup, c *controllers.ResourceController[T, R], v *validators.Validators, body []*validation.Rule, withCreate bool) {
	g.GET("/listar", c.List)
	g.GET("/busqueda_id", middleware.Validate(v.ID()...), c.GetByID)
	if withCreate {
		g.POST("/guardar", middleware.Validate(body...), c.Create)
	}
	g.PUT("/editar", middleware.Validate(v.WithID(body)...), c.Update)
	g.DELETE("/eliminar", middleware.Validate(v.ID()...), c.Delete)
}

// filterRoute mounts busqueda with identifier filters only
func filterRoute[T any, R controllers.Request[T]](g *gin.RouterGroup, v *validators.Validators, c *controllers.ResourceController[T, R], ids ...string) {
	g.GET("/busqueda", middleware.Validate(v.ByFilters(ids)...), c.SearchBy(ids))
}

func cedulaFilter() *validation.Rule {
	return validation.Query("cedula").Optional().Matches(validation.CedulaPattern, "La cédula debe tener 10 dígitos")
}
