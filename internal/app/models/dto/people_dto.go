package dto

import (
	"strings"

	"github.com/yigit/registro-academico/internal/app/models"
)

// TeacherRequest is the guardar/editar payload of a teacher. The image is
// managed by the upload endpoint.
type TeacherRequest struct {
	UserID    *int64 `json:"usuario_id" example:"3"`
	FirstName string `json:"nombre" example:"Ana"`
	LastName  string `json:"apellido" example:"Pérez"`
	Cedula    string `json:"cedula" example:"0102030405"`
	Email     string `json:"correo" example:"ana.perez@instituto.edu.ec"`
	Phone     string `json:"telefono" example:"0991234567"`
	Title     string `json:"titulo" example:"MSc. Ingeniería"`
}

func (r TeacherRequest) ToModel() *models.Teacher {
	return &models.Teacher{
		UserID:    r.UserID,
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Cedula:    strings.TrimSpace(r.Cedula),
		Email:     strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:     strings.TrimSpace(r.Phone),
		Title:     strings.TrimSpace(r.Title),
	}
}

// StudentRequest is the guardar/editar payload of a student
type StudentRequest struct {
	UserID    *int64       `json:"usuario_id" example:"4"`
	CareerID  int64        `json:"carrera_id" example:"1"`
	FirstName string       `json:"nombre" example:"Luis"`
	LastName  string       `json:"apellido" example:"Mora"`
	Cedula    string       `json:"cedula" example:"1102030405"`
	Email     string       `json:"correo" example:"luis.mora@instituto.edu.ec"`
	Phone     string       `json:"telefono" example:"0987654321"`
	BirthDate *models.Date `json:"fecha_nacimiento" swaggertype:"string" example:"2003-05-14"`
}

func (r StudentRequest) ToModel() *models.Student {
	return &models.Student{
		UserID:    r.UserID,
		CareerID:  r.CareerID,
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Cedula:    strings.TrimSpace(r.Cedula),
		Email:     strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:     strings.TrimSpace(r.Phone),
		BirthDate: r.BirthDate,
	}
}
