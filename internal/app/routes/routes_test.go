package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/registro-academico/internal/app/auth"
	"github.com/yigit/registro-academico/internal/app/controllers"
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/app/models/dto"
	"github.com/yigit/registro-academico/internal/app/repositories"
	"github.com/yigit/registro-academico/internal/app/services"
	"github.com/yigit/registro-academico/internal/app/validators"
	"github.com/yigit/registro-academico/internal/middleware"
	"github.com/yigit/registro-academico/internal/mocks"
	"github.com/yigit/registro-academico/internal/pkg/auth"
	"github.com/yigit/registro-academico/internal/pkg/filestorage"
)

const maxImageBytes = 1 << 20

func init() {
	gin.SetMode(gin.TestMode)
}

type pinger struct{ err error }

func (p pinger) Ping(ctx context.Context) error { return p.err }

// studentImages exposes the image column of the in-memory students
type studentImages struct {
	store *mocks.MemoryStore[models.Student, *models.Student]
}

func (o studentImages) GetImage(ctx context.Context, id int64) (*repositories.ImageRef, error) {
	s, err := o.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &repositories.ImageRef{UserID: s.UserID, Image: s.Image}, nil
}

func (o studentImages) SetImage(ctx context.Context, id int64, name string) error {
	s, err := o.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	s.Image = &name
	return o.store.Update(ctx, id, s)
}

type teacherImages struct {
	store *mocks.MemoryStore[models.Teacher, *models.Teacher]
}

func (o teacherImages) GetImage(ctx context.Context, id int64) (*repositories.ImageRef, error) {
	tc, err := o.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &repositories.ImageRef{UserID: tc.UserID, Image: tc.Image}, nil
}

func (o teacherImages) SetImage(ctx context.Context, id int64, name string) error {
	tc, err := o.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	tc.Image = &name
	return o.store.Update(ctx, id, tc)
}

type teacherNames struct {
	store *mocks.MemoryStore[models.Teacher, *models.Teacher]
}

func (n teacherNames) FindByFullName(ctx context.Context, first, last string) ([]*models.Teacher, error) {
	return n.store.Search(ctx, repositories.Filter{Equals: map[string]any{"nombre": first, "apellido": last}})
}

type harness struct {
	router      *gin.Engine
	tokens      *auth.JWTService
	users       *mocks.UserStore
	careers     *mocks.MemoryStore[models.Career, *models.Career]
	teachers    *mocks.MemoryStore[models.Teacher, *models.Teacher]
	students    *mocks.MemoryStore[models.Student, *models.Student]
	enrollments *mocks.MemoryStore[models.Enrollment, *models.Enrollment]
	mailer      *mocks.Mailer
	imageDir    string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		tokens:      auth.NewJWTService(auth.JWTConfig{SecretKey: "secreto", AccessTokenExp: time.Hour, TokenIssuer: "registro-academico"}),
		users:       new(mocks.UserStore),
		careers:     mocks.NewMemoryStore[models.Career](),
		students:    mocks.NewMemoryStore[models.Student](),
		enrollments: mocks.NewMemoryStore[models.Enrollment](),
		mailer:      &mocks.Mailer{},
		imageDir:    t.TempDir(),
	}

	roles := mocks.NewMemoryStore(
		models.Role{ID: 1, Name: models.RoleAdmin},
		models.Role{ID: 2, Name: models.RoleTeacher},
		models.Role{ID: 3, Name: models.RoleStudent},
	)
	userRows := mocks.NewMemoryStore[models.User]()
	teachers := mocks.NewMemoryStore[models.Teacher]()
	h.teachers = teachers
	subjects := mocks.NewMemoryStore[models.Subject]()
	periods := mocks.NewMemoryStore(models.Period{ID: 1, Name: "2024-1", State: models.PeriodOpen})
	activities := mocks.NewMemoryStore[models.Activity]()
	attendance := mocks.NewMemoryStore[models.Attendance]()
	grades := mocks.NewMemoryStore[models.Grade]()
	pins := new(mocks.PinStore)

	hasher := mocks.Hasher{}
	authSvc := services.NewAuthService(h.users, teachers, h.students, hasher, h.tokens, zerolog.Nop())
	recoverySvc := services.NewRecoveryService(h.users, pins, h.mailer, hasher, services.RecoveryConfig{PinLength: 6, PinTTL: 15 * time.Minute}, zerolog.Nop())
	storage, err := filestorage.NewLocalStorage(h.imageDir, "/imagenes")
	require.NoError(t, err)
	imageSvc := services.NewImageService(storage, maxImageBytes, zerolog.Nop())

	c := Controllers{
		Roles:       controllers.NewResourceController[models.Role, dto.RoleRequest](services.NewCrudService[models.Role](roles, "el rol", nil)),
		Users:       controllers.NewResourceController[models.User, dto.UserUpdateRequest](services.NewCrudService[models.User](userRows, "el usuario", nil)),
		Careers:     controllers.NewResourceController[models.Career, dto.CareerRequest](services.NewCrudService[models.Career](h.careers, "la carrera", nil)),
		Teachers:    controllers.NewResourceController[models.Teacher, dto.TeacherRequest](services.NewTeacherService(teachers)),
		Students:    controllers.NewResourceController[models.Student, dto.StudentRequest](services.NewStudentService(h.students)),
		Subjects:    controllers.NewResourceController[models.Subject, dto.SubjectRequest](services.NewSubjectService(subjects, teacherNames{teachers})),
		Periods:     controllers.NewResourceController[models.Period, dto.PeriodRequest](services.NewCrudService[models.Period](periods, "el periodo", nil)),
		Enrollments: controllers.NewResourceController[models.Enrollment, dto.EnrollmentRequest](services.NewCrudService[models.Enrollment](h.enrollments, "la matrícula", nil)),
		Activities:  controllers.NewResourceController[models.Activity, dto.ActivityRequest](services.NewCrudService[models.Activity](activities, "la actividad", nil)),
		Attendance:  controllers.NewResourceController[models.Attendance, dto.AttendanceRequest](services.NewCrudService[models.Attendance](attendance, "la asistencia", nil)),
		Grades:      controllers.NewResourceController[models.Grade, dto.GradeRequest](services.NewCrudService[models.Grade](grades, "la nota", nil)),
		Auth:        controllers.NewAuthController(authSvc, recoverySvc, zerolog.Nop()),
		Images:      controllers.NewImageController(imageSvc, teacherImages{teachers}, studentImages{h.students}, maxImageBytes),
		Health:      controllers.NewHealthController(pinger{}),
	}

	v := validators.New(validators.Tables{
		Roles:       roles,
		Users:       userRows,
		Careers:     h.careers,
		Teachers:    teachers,
		Students:    h.students,
		Subjects:    subjects,
		Periods:     periods,
		Enrollments: h.enrollments,
		Activities:  activities,
	})

	authorizer, err := appauth.NewAuthorizer()
	require.NoError(t, err)

	h.router = gin.New()
	SetupRouter(h.router.Group("/api"), c, v, middleware.NewAuthMiddleware(authSvc, authorizer))
	return h
}

// login registers user with the account store and returns a bearer header
func (h *harness) login(t *testing.T, user *models.User) string {
	t.Helper()
	h.users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	token, _, err := h.tokens.GenerateAccessToken(auth.TokenSubject{UserID: user.ID, Email: user.Email, Role: user.RoleName})
	require.NoError(t, err)
	return "Bearer " + token
}

func (h *harness) do(t *testing.T, method, path, bearer, body string) (*httptest.ResponseRecorder, dto.Envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	var env dto.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

var (
	admin   = &models.User{ID: 1, Email: "admin@uni.edu", RoleID: 1, RoleName: models.RoleAdmin}
	docente = &models.User{ID: 2, Email: "ana@uni.edu", RoleID: 2, RoleName: models.RoleTeacher}
)

func TestCareerLifecycle(t *testing.T) {
	h := newHarness(t)
	bearer := h.login(t, admin)

	rec, env := h.do(t, http.MethodPost, "/api/carrera/guardar", bearer, `{"nombre": "Software", "descripcion": "Grado", "duracion": 8}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 1, env.Tipo)
	assert.Empty(t, env.Msj)
	created := env.Datos.(map[string]any)
	assert.Equal(t, float64(1), created["id"])

	rec, env = h.do(t, http.MethodGet, "/api/carrera/busqueda_id?id=1", bearer, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Software", env.Datos.(map[string]any)["nombre"])

	rec, env = h.do(t, http.MethodPut, "/api/carrera/editar?id=1", bearer, `{"nombre": "Software", "duracion": 9}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(9), env.Datos.(map[string]any)["duracion"])

	rec, env = h.do(t, http.MethodGet, "/api/carrera/busqueda_nombre?nombre=soft", bearer, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, env.Datos, 1)

	rec, env = h.do(t, http.MethodDelete, "/api/carrera/eliminar?id=1", bearer, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Software", env.Datos.(map[string]any)["nombre"])

	rec, env = h.do(t, http.MethodGet, "/api/carrera/listar", bearer, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, env.Datos)
}

func TestValidationFailures(t *testing.T) {
	h := newHarness(t)
	bearer := h.login(t, admin)
	_, err := h.careers.Create(context.Background(), &models.Career{Name: "Software", Duration: 8})
	require.NoError(t, err)

	t.Run("every failing field is reported", func(t *testing.T) {
		rec, env := h.do(t, http.MethodPost, "/api/carrera/guardar", bearer, `{"nombre": "Software", "duracion": 50}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, env.Tipo)
		require.Len(t, env.Msj, 2)
		assert.Equal(t, "nombre: Ya existe una carrera con ese nombre", env.Msj[0])
		assert.True(t, strings.HasPrefix(env.Msj[1], "duracion: "))
	})

	t.Run("editing keeps its own unique value", func(t *testing.T) {
		rec, _ := h.do(t, http.MethodPut, "/api/carrera/editar?id=1", bearer, `{"nombre": "Software", "duracion": 10}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing reference", func(t *testing.T) {
		rec, env := h.do(t, http.MethodPost, "/api/estudiante/guardar", bearer,
			`{"nombre": "Luis", "apellido": "Mora", "cedula": "1102030405", "correo": "luis@uni.edu", "carrera_id": 99}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"carrera_id: La carrera no existe"}, env.Msj)
		assert.Zero(t, h.students.Len())
	})

	t.Run("names wider than their column", func(t *testing.T) {
		rec, env := h.do(t, http.MethodPost, "/api/docente/guardar", bearer,
			`{"nombre": "`+strings.Repeat("n", 51)+`", "apellido": "Pérez", "cedula": "0102030405", "correo": "ana@uni.edu"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"nombre: Debe tener entre 2 y 50 caracteres"}, env.Msj)
		assert.Zero(t, h.teachers.Len())
	})

	t.Run("bad id", func(t *testing.T) {
		rec, env := h.do(t, http.MethodGet, "/api/carrera/busqueda_id?id=abc", bearer, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.Len(t, env.Msj, 1)
		assert.True(t, strings.HasPrefix(env.Msj[0], "id: "))
	})

	t.Run("unknown id", func(t *testing.T) {
		rec, env := h.do(t, http.MethodGet, "/api/carrera/busqueda_id?id=77", bearer, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, []string{"No se encontró la carrera con id 77"}, env.Msj)
	})
}

func TestEnrollmentDateSearch(t *testing.T) {
	h := newHarness(t)
	bearer := h.login(t, admin)
	ctx := context.Background()
	for _, date := range []string{"2024-03-01", "2024-03-15", "2024-04-01"} {
		_, err := h.enrollments.Create(ctx, &models.Enrollment{StudentID: 1, PeriodID: 1, Date: models.MustDate(date), State: models.EnrollmentActive})
		require.NoError(t, err)
	}

	rec, env := h.do(t, http.MethodGet, "/api/matricula/busqueda_fecha?desde=2024-03-01&hasta=2024-03-31", bearer, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, env.Datos, 2)

	rec, env = h.do(t, http.MethodGet, "/api/matricula/busqueda_fecha?desde=2024-03-31&hasta=2024-03-01", bearer, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, env.Msj, 1)
	assert.True(t, strings.HasPrefix(env.Msj[0], "hasta: "))
}

func TestAuthorization(t *testing.T) {
	h := newHarness(t)
	teacherBearer := h.login(t, docente)

	rec, env := h.do(t, http.MethodGet, "/api/carrera/listar", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, []string{"Se requiere un token de acceso"}, env.Msj)

	rec, _ = h.do(t, http.MethodGet, "/api/carrera/listar", teacherBearer, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = h.do(t, http.MethodPost, "/api/carrera/guardar", teacherBearer, `{"nombre": "Software", "duracion": 8}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, []string{"No tiene permisos para realizar esta acción"}, env.Msj)
	assert.Zero(t, h.careers.Len())

	rec, _ = h.do(t, http.MethodGet, "/api/rol/listar", teacherBearer, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginAndProfile(t *testing.T) {
	h := newHarness(t)
	stored := &models.User{ID: 2, Email: "ana@uni.edu", Password: "plain$Clave123!", RoleID: 2, RoleName: models.RoleTeacher}
	h.users.On("GetByEmail", mock.Anything, "ana@uni.edu").Return(stored, nil)
	h.users.On("GetByID", mock.Anything, int64(2)).Return(stored, nil)

	rec, env := h.do(t, http.MethodPost, "/api/auth/login", "", `{"correo": "ana@uni.edu", "clave": "Clave123!"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := env.Datos.(map[string]any)
	assert.Equal(t, "Bearer", data["tipo_token"])
	assert.NotContains(t, rec.Body.String(), "plain$")

	rec, env = h.do(t, http.MethodGet, "/api/auth/perfil", "Bearer "+data["token"].(string), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "ana@uni.edu", env.Datos.(map[string]any)["usuario"].(map[string]any)["correo"])

	rec, env = h.do(t, http.MethodPost, "/api/auth/login", "", `{"correo": "ana@uni.edu", "clave": "otra"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, []string{"Correo o contraseña incorrectos"}, env.Msj)
}

func TestRegisterRejectsAdministratorRole(t *testing.T) {
	h := newHarness(t)

	rec, env := h.do(t, http.MethodPost, "/api/auth/registrar", "", `{"correo": "nuevo@uni.edu", "clave": "Clave123!", "rol_id": 1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"rol_id: No se puede registrar una cuenta de administrador"}, env.Msj)
	h.users.AssertNotCalled(t, "CreateWithProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecoveryUnknownEmail(t *testing.T) {
	h := newHarness(t)
	h.users.On("GetByEmail", mock.Anything, "nadie@uni.edu").Return(nil, repositories.ErrNotFound)

	rec, env := h.do(t, http.MethodPost, "/api/auth/recuperar", "", `{"correo": "nadie@uni.edu"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"No existe un usuario con ese correo"}, env.Msj)
	assert.Empty(t, h.mailer.Sent)
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	rec, env := h.do(t, http.MethodGet, "/api/salud", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"estado": "ok"}, env.Datos)

	r := gin.New()
	r.GET("/api/salud", controllers.NewHealthController(pinger{err: errors.New("down")}).Health)
	down := httptest.NewRecorder()
	r.ServeHTTP(down, httptest.NewRequest(http.MethodGet, "/api/salud", nil))
	assert.Equal(t, http.StatusServiceUnavailable, down.Code)
}

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// upload sends content as the multipart field named field
func (h *harness) upload(t *testing.T, path, bearer, field string, content []byte) (*httptest.ResponseRecorder, dto.Envelope) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, "foto.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPut, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", bearer)

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	var env dto.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func (h *harness) storedImages(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(h.imageDir)
	require.NoError(t, err)
	names := []string{}
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func int64Ptr(v int64) *int64 { return &v }

func newStudentsWithAccounts(t *testing.T, h *harness) (owner, other string) {
	t.Helper()
	ctx := context.Background()
	for _, s := range []models.Student{
		{UserID: int64Ptr(3), CareerID: 1, FirstName: "Luis", LastName: "Mora", Cedula: "1102030405", Email: "luis@uni.edu"},
		{UserID: int64Ptr(4), CareerID: 1, FirstName: "Eva", LastName: "Ruiz", Cedula: "1102030406", Email: "eva@uni.edu"},
	} {
		_, err := h.students.Create(ctx, &s)
		require.NoError(t, err)
	}
	owner = h.login(t, &models.User{ID: 3, Email: "luis@uni.edu", RoleID: 3, RoleName: models.RoleStudent})
	other = h.login(t, &models.User{ID: 4, Email: "eva@uni.edu", RoleID: 3, RoleName: models.RoleStudent})
	return owner, other
}

func TestImageUpload_OnlyOwnProfile(t *testing.T) {
	h := newHarness(t)
	luis, eva := newStudentsWithAccounts(t, h)

	rec, env := h.upload(t, "/api/imagen/estudiante?id=1", eva, "imagen", pngPixel)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, []string{"Solo puede cambiar la imagen de su propio perfil"}, env.Msj)
	assert.Empty(t, h.storedImages(t))

	rec, _ = h.upload(t, "/api/imagen/estudiante?id=1", luis, "imagen", pngPixel)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, h.storedImages(t), 1)

	rec, _ = h.upload(t, "/api/imagen/estudiante?id=2", h.login(t, admin), "imagen", pngPixel)
	assert.Equal(t, http.StatusOK, rec.Code)

	// a teacher token never reaches student images
	rec, _ = h.upload(t, "/api/imagen/estudiante?id=1", h.login(t, docente), "imagen", pngPixel)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestImageUpload_ReplacesPreviousFile(t *testing.T) {
	h := newHarness(t)
	luis, _ := newStudentsWithAccounts(t, h)

	rec, env := h.upload(t, "/api/imagen/estudiante?id=1", luis, "imagen", pngPixel)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := env.Datos.(map[string]any)["imagen"].(string)

	rec, env = h.upload(t, "/api/imagen/estudiante?id=1", luis, "imagen", pngPixel)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	second := env.Datos.(map[string]any)["imagen"].(string)

	assert.NotEqual(t, first, second)
	assert.Equal(t, []string{second}, h.storedImages(t))

	stored, err := h.students.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, stored.Image)
	assert.Equal(t, second, *stored.Image)
}

func TestImageUpload_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		content []byte
		wantMsg string
	}{
		{"oversized body", "imagen", append(append([]byte{}, pngPixel...), make([]byte, maxImageBytes+(128<<10))...), ""},
		{"not an image", "imagen", []byte("#!/bin/sh\necho hola\n"), "Solo se permiten imágenes jpeg, jpg o png"},
		{"missing imagen part", "archivo", pngPixel, "Debe adjuntar una imagen en el campo imagen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			luis, _ := newStudentsWithAccounts(t, h)

			rec, env := h.upload(t, "/api/imagen/estudiante?id=1", luis, tt.field, tt.content)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.Len(t, env.Msj, 1)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, env.Msj[0])
			}
			assert.Empty(t, h.storedImages(t))

			stored, err := h.students.GetByID(context.Background(), 1)
			require.NoError(t, err)
			assert.Nil(t, stored.Image)
		})
	}
}
