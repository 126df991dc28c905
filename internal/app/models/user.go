package models

// User is an account able to log in. The password hash never leaves the server.
type User struct {
	ID       int64  `json:"id" example:"1"`
	Email    string `json:"correo" example:"ana.perez@instituto.edu.ec"`
	Password string `json:"-"`
	RoleID   int64  `json:"rol_id" example:"2"`
	RoleName string `json:"rol" example:"docente"`
	Timestamps
}

func (u *User) GetID() int64   { return u.ID }
func (u *User) SetID(id int64) { u.ID = id }
