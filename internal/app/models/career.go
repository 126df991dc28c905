package models

// Career is an academic program
type Career struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"nombre" example:"Ingeniería de Software"`
	Description string `json:"descripcion" example:"Carrera de grado"`
	Duration    int    `json:"duracion" example:"8"`
	Timestamps
}

func (c *Career) GetID() int64   { return c.ID }
func (c *Career) SetID(id int64) { c.ID = id }
