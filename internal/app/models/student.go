package models

// Student is enrolled in one career
type Student struct {
	ID        int64   `json:"id" example:"1"`
	UserID    *int64  `json:"usuario_id" example:"4"`
	CareerID  int64   `json:"carrera_id" example:"1"`
	FirstName string  `json:"nombre" example:"Luis"`
	LastName  string  `json:"apellido" example:"Mora"`
	Cedula    string  `json:"cedula" example:"1102030405"`
	Email     string  `json:"correo" example:"luis.mora@instituto.edu.ec"`
	Phone     string  `json:"telefono" example:"0987654321"`
	BirthDate *Date   `json:"fecha_nacimiento" swaggertype:"string" example:"2003-05-14"`
	Image     *string `json:"imagen" example:"1718036400000-9f8e7d6c-1.jpg"`
	Timestamps
}

func (s *Student) GetID() int64   { return s.ID }
func (s *Student) SetID(id int64) { s.ID = id }
