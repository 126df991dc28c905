package models

// Role groups users for authorization purposes
type Role struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"nombre" example:"docente"`
	Description string `json:"descripcion" example:"Personal docente"`
	Timestamps
}

func (r *Role) GetID() int64   { return r.ID }
func (r *Role) SetID(id int64) { r.ID = id }
