package dto

import "github.com/yigit/registro-academico/internal/app/models"

// Profile kinds that can be created together with an account
const (
	ProfileTeacher = "docente"
	ProfileStudent = "estudiante"
)

// RegisterRequest creates an account and, optionally, the linked teacher or
// student profile.
type RegisterRequest struct {
	Email    string `json:"correo" example:"ana.perez@instituto.edu.ec"`
	Password string `json:"clave" example:"S3gura!2024"`
	RoleID   int64  `json:"rol_id" example:"2"`

	Profile   string `json:"perfil,omitempty" example:"docente"`
	FirstName string `json:"nombre,omitempty" example:"Ana"`
	LastName  string `json:"apellido,omitempty" example:"Pérez"`
	Cedula    string `json:"cedula,omitempty" example:"0102030405"`
	Phone     string `json:"telefono,omitempty" example:"0991234567"`
	Title     string `json:"titulo,omitempty" example:"MSc."`
	CareerID  int64  `json:"carrera_id,omitempty" example:"1"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"correo" example:"ana.perez@instituto.edu.ec"`
	Password string `json:"clave" example:"S3gura!2024"`
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string       `json:"token"`
	TokenType   string       `json:"tipo_token" example:"Bearer"`
	ExpiresIn   int          `json:"expira_en" example:"3600"`
	User        *models.User `json:"usuario"`
}

// RecoveryRequest asks for a recovery PIN
type RecoveryRequest struct {
	Email string `json:"correo" example:"ana.perez@instituto.edu.ec"`
}

// ResetPasswordRequest redeems a recovery PIN
type ResetPasswordRequest struct {
	Email    string `json:"correo" example:"ana.perez@instituto.edu.ec"`
	Pin      string `json:"pin" example:"4F9A2C"`
	Password string `json:"clave" example:"Nuev4Clave!"`
}

// RegisterResult is returned by a successful registration
type RegisterResult struct {
	User    *models.User    `json:"usuario"`
	Teacher *models.Teacher `json:"docente,omitempty"`
	Student *models.Student `json:"estudiante,omitempty"`
}

// ImageResponse is returned after a profile image upload
type ImageResponse struct {
	ID    int64  `json:"id" example:"1"`
	Image string `json:"imagen" example:"1718036400000-1a2b3c4d-1.png"`
	URL   string `json:"url" example:"/imagenes/1718036400000-1a2b3c4d-1.png"`
}
