package dto

import (
	"strings"

	"github.com/yigit/registro-academico/internal/app/models"
)

// SubjectRequest identifies the teacher by first and last name
type SubjectRequest struct {
	Name             string `json:"nombre" example:"Bases de Datos"`
	Code             string `json:"codigo" example:"BD-201"`
	Credits          int    `json:"creditos" example:"4"`
	CareerID         int64  `json:"carrera_id" example:"1"`
	TeacherFirstName string `json:"docente_nombre" example:"Ana"`
	TeacherLastName  string `json:"docente_apellido" example:"Pérez"`
}

func (r SubjectRequest) ToModel() *models.Subject {
	return &models.Subject{
		Name:             strings.TrimSpace(r.Name),
		Code:             strings.ToUpper(strings.TrimSpace(r.Code)),
		Credits:          r.Credits,
		CareerID:         r.CareerID,
		TeacherFirstName: strings.TrimSpace(r.TeacherFirstName),
		TeacherLastName:  strings.TrimSpace(r.TeacherLastName),
	}
}

// EnrollmentRequest is the guardar/editar payload of an enrollment
type EnrollmentRequest struct {
	StudentID int64       `json:"estudiante_id" example:"1"`
	PeriodID  int64       `json:"periodo_id" example:"1"`
	Date      models.Date `json:"fecha" swaggertype:"string" example:"2024-03-20"`
	State     string      `json:"estado" example:"activa"`
}

func (r EnrollmentRequest) ToModel() *models.Enrollment {
	state := r.State
	if state == "" {
		state = models.EnrollmentActive
	}
	return &models.Enrollment{
		StudentID: r.StudentID,
		PeriodID:  r.PeriodID,
		Date:      r.Date,
		State:     state,
	}
}

// ActivityRequest is the guardar/editar payload of an activity
type ActivityRequest struct {
	SubjectID   int64       `json:"materia_id" example:"1"`
	Name        string      `json:"nombre" example:"Proyecto final"`
	Description string      `json:"descripcion" example:"Modelo entidad relación"`
	Kind        string      `json:"tipo" example:"proyecto"`
	DueDate     models.Date `json:"fecha_entrega" swaggertype:"string" example:"2024-06-15"`
	Weight      float64     `json:"ponderacion" example:"25"`
}

func (r ActivityRequest) ToModel() *models.Activity {
	return &models.Activity{
		SubjectID:   r.SubjectID,
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Kind:        r.Kind,
		DueDate:     r.DueDate,
		Weight:      r.Weight,
	}
}

// AttendanceRequest is the guardar/editar payload of an attendance record
type AttendanceRequest struct {
	StudentID int64       `json:"estudiante_id" example:"1"`
	SubjectID int64       `json:"materia_id" example:"1"`
	Date      models.Date `json:"fecha" swaggertype:"string" example:"2024-05-06"`
	State     string      `json:"estado" example:"presente"`
	Notes     string      `json:"observacion" example:""`
}

func (r AttendanceRequest) ToModel() *models.Attendance {
	return &models.Attendance{
		StudentID: r.StudentID,
		SubjectID: r.SubjectID,
		Date:      r.Date,
		State:     r.State,
		Notes:     strings.TrimSpace(r.Notes),
	}
}

// GradeRequest is the guardar/editar payload of a grade
type GradeRequest struct {
	StudentID  int64   `json:"estudiante_id" example:"1"`
	SubjectID  int64   `json:"materia_id" example:"1"`
	ActivityID int64   `json:"actividad_id" example:"1"`
	Score      float64 `json:"calificacion" example:"9.5"`
	Notes      string  `json:"observacion" example:"Excelente trabajo"`
}

func (r GradeRequest) ToModel() *models.Grade {
	return &models.Grade{
		StudentID:  r.StudentID,
		SubjectID:  r.SubjectID,
		ActivityID: r.ActivityID,
		Score:      r.Score,
		Notes:      strings.TrimSpace(r.Notes),
	}
}
