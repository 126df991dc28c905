package dto

import (
	"strings"

	"github.com/yigit/registro-academico/internal/app/models"
)

// RoleRequest is the guardar/editar payload of a role
type RoleRequest struct {
	Name        string `json:"nombre" example:"coordinador"`
	Description string `json:"descripcion" example:"Coordinación académica"`
}

func (r RoleRequest) ToModel() *models.Role {
	return &models.Role{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
	}
}

// UserUpdateRequest is the editar payload of a user. Passwords change only
// through recovery.
type UserUpdateRequest struct {
	Email  string `json:"correo" example:"ana.perez@instituto.edu.ec"`
	RoleID int64  `json:"rol_id" example:"2"`
}

func (r UserUpdateRequest) ToModel() *models.User {
	return &models.User{
		Email:  strings.ToLower(strings.TrimSpace(r.Email)),
		RoleID: r.RoleID,
	}
}

// CareerRequest is the guardar/editar payload of a career
type CareerRequest struct {
	Name        string `json:"nombre" example:"Ingeniería de Software"`
	Description string `json:"descripcion" example:"Carrera de grado"`
	Duration    int    `json:"duracion" example:"8"`
}

func (r CareerRequest) ToModel() *models.Career {
	return &models.Career{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Duration:    r.Duration,
	}
}

// PeriodRequest is the guardar/editar payload of an academic period
type PeriodRequest struct {
	Name      string      `json:"nombre" example:"2024-2025 A"`
	StartDate models.Date `json:"fecha_inicio" swaggertype:"string" example:"2024-04-01"`
	EndDate   models.Date `json:"fecha_fin" swaggertype:"string" example:"2024-08-31"`
	State     string      `json:"estado" example:"abierto"`
}

func (r PeriodRequest) ToModel() *models.Period {
	return &models.Period{
		Name:      strings.TrimSpace(r.Name),
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		State:     r.State,
	}
}
