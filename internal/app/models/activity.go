package models

// Activity is a graded piece of work within a subject
type Activity struct {
	ID          int64   `json:"id" example:"1"`
	SubjectID   int64   `json:"materia_id" example:"1"`
	Name        string  `json:"nombre" example:"Proyecto final"`
	Description string  `json:"descripcion" example:"Modelo entidad relación"`
	Kind        string  `json:"tipo" example:"proyecto"`
	DueDate     Date    `json:"fecha_entrega" swaggertype:"string" example:"2024-06-15"`
	Weight      float64 `json:"ponderacion" example:"25"`
	Timestamps
}

func (a *Activity) GetID() int64   { return a.ID }
func (a *Activity) SetID(id int64) { a.ID = id }
