package repositories

import (
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/db"
)

// RoleRepository handles roles
type RoleRepository struct {
	crudRepository[models.Role]
}

func NewRoleRepository(conn db.DBTX) *RoleRepository {
	return &RoleRepository{newCrud(conn, table[models.Role]{
		name:    "roles",
		columns: []string{"nombre", "descripcion"},
		values: func(r *models.Role) []any {
			return []any{r.Name, r.Description}
		},
		selects: qualify("roles", "id", "nombre", "descripcion", "created_at", "updated_at"),
		scan: func(s scanner, r *models.Role) error {
			return s.Scan(&r.ID, &r.Name, &r.Description, &r.CreatedAt, &r.UpdatedAt)
		},
	})}
}

// CareerRepository handles careers
type CareerRepository struct {
	crudRepository[models.Career]
}

func NewCareerRepository(conn db.DBTX) *CareerRepository {
	return &CareerRepository{newCrud(conn, table[models.Career]{
		name:    "carreras",
		columns: []string{"nombre", "descripcion", "duracion"},
		values: func(c *models.Career) []any {
			return []any{c.Name, c.Description, c.Duration}
		},
		selects: qualify("carreras", "id", "nombre", "descripcion", "duracion", "created_at", "updated_at"),
		scan: func(s scanner, c *models.Career) error {
			return s.Scan(&c.ID, &c.Name, &c.Description, &c.Duration, &c.CreatedAt, &c.UpdatedAt)
		},
	})}
}

// PeriodRepository handles academic periods
type PeriodRepository struct {
	crudRepository[models.Period]
}

func NewPeriodRepository(conn db.DBTX) *PeriodRepository {
	return &PeriodRepository{newCrud(conn, table[models.Period]{
		name:    "periodos",
		columns: []string{"nombre", "fecha_inicio", "fecha_fin", "estado"},
		values: func(p *models.Period) []any {
			return []any{p.Name, p.StartDate.Time, p.EndDate.Time, p.State}
		},
		selects: qualify("periodos", "id", "nombre", "fecha_inicio", "fecha_fin", "estado", "created_at", "updated_at"),
		scan: func(s scanner, p *models.Period) error {
			return s.Scan(&p.ID, &p.Name, &p.StartDate.Time, &p.EndDate.Time, &p.State, &p.CreatedAt, &p.UpdatedAt)
		},
		orderBy: "periodos.fecha_inicio DESC, periodos.id ASC",
	})}
}
