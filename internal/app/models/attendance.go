package models

// Attendance records one student's presence in one class day
type Attendance struct {
	ID        int64  `json:"id" example:"1"`
	StudentID int64  `json:"estudiante_id" example:"1"`
	SubjectID int64  `json:"materia_id" example:"1"`
	Date      Date   `json:"fecha" swaggertype:"string" example:"2024-05-06"`
	State     string `json:"estado" example:"presente"`
	Notes     string `json:"observacion" example:""`
	Timestamps
}

func (a *Attendance) GetID() int64   { return a.ID }
func (a *Attendance) SetID(id int64) { a.ID = id }
