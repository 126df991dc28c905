package models

// Period states
const (
	PeriodOpen   = "abierto"
	PeriodClosed = "cerrado"
)

// Period is an academic term
type Period struct {
	ID        int64  `json:"id" example:"1"`
	Name      string `json:"nombre" example:"2024-2025 A"`
	StartDate Date   `json:"fecha_inicio" swaggertype:"string" example:"2024-04-01"`
	EndDate   Date   `json:"fecha_fin" swaggertype:"string" example:"2024-08-31"`
	State     string `json:"estado" example:"abierto"`
	Timestamps
}

func (p *Period) GetID() int64   { return p.ID }
func (p *Period) SetID(id int64) { p.ID = id }
