package models

// Subject is a course taught by one teacher within a career. The teacher
// names are read through a join and are not stored on the row.
type Subject struct {
	ID               int64  `json:"id" example:"1"`
	Name             string `json:"nombre" example:"Bases de Datos"`
	Code             string `json:"codigo" example:"BD-201"`
	Credits          int    `json:"creditos" example:"4"`
	CareerID         int64  `json:"carrera_id" example:"1"`
	TeacherID        int64  `json:"docente_id" example:"1"`
	TeacherFirstName string `json:"docente_nombre" example:"Ana"`
	TeacherLastName  string `json:"docente_apellido" example:"Pérez"`
	Timestamps
}

func (s *Subject) GetID() int64   { return s.ID }
func (s *Subject) SetID(id int64) { s.ID = id }
