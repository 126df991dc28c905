package models

// Enrollment states
const (
	EnrollmentActive    = "activa"
	EnrollmentCancelled = "anulada"
)

// Enrollment registers a student in a period
type Enrollment struct {
	ID        int64  `json:"id" example:"1"`
	StudentID int64  `json:"estudiante_id" example:"1"`
	PeriodID  int64  `json:"periodo_id" example:"1"`
	Date      Date   `json:"fecha" swaggertype:"string" example:"2024-03-20"`
	State     string `json:"estado" example:"activa"`
	Timestamps
}

func (e *Enrollment) GetID() int64   { return e.ID }
func (e *Enrollment) SetID(id int64) { e.ID = id }
