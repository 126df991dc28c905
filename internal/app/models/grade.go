package models

// Grade is the score a student obtained in an activity
type Grade struct {
	ID         int64   `json:"id" example:"1"`
	StudentID  int64   `json:"estudiante_id" example:"1"`
	SubjectID  int64   `json:"materia_id" example:"1"`
	ActivityID int64   `json:"actividad_id" example:"1"`
	Score      float64 `json:"calificacion" example:"9.5"`
	Notes      string  `json:"observacion" example:"Excelente trabajo"`
	Timestamps
}

func (g *Grade) GetID() int64   { return g.ID }
func (g *Grade) SetID(id int64) { g.ID = id }
