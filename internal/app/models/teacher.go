package models

// Teacher is a member of the teaching staff
type Teacher struct {
	ID        int64   `json:"id" example:"1"`
	UserID    *int64  `json:"usuario_id" example:"3"`
	FirstName string  `json:"nombre" example:"Ana"`
	LastName  string  `json:"apellido" example:"Pérez"`
	Cedula    string  `json:"cedula" example:"0102030405"`
	Email     string  `json:"correo" example:"ana.perez@instituto.edu.ec"`
	Phone     string  `json:"telefono" example:"0991234567"`
	Title     string  `json:"titulo" example:"MSc. Ingeniería"`
	Image     *string `json:"imagen" example:"1718036400000-1a2b3c4d-1.png"`
	Timestamps
}

func (t *Teacher) GetID() int64   { return t.ID }
func (t *Teacher) SetID(id int64) { t.ID = id }
