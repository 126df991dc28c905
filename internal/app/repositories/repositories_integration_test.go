//go:build integration

package repositories

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/yigit/registro-academico/internal/app/migrations"
	"github.com/yigit/registro-academico/internal/app/models"
)

const postgresImage = "postgres:16-alpine"

func dockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, "docker", "info").Run() == nil
}

// startPostgres runs a throwaway database with the schema applied
func startPostgres(t *testing.T) *Repositories {
	t.Helper()
	if !dockerAvailable() {
		t.Skip("Skipping test: Docker not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "registro",
				"POSTGRES_PASSWORD": "registro",
				"POSTGRES_DB":       "registro",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://registro:registro@%s:%s/registro?sslmode=disable", host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	migrator := migrations.NewMigrator(pool)
	require.NoError(t, migrator.MigrateUp(ctx))
	require.NoError(t, migrator.Close())

	return NewRepositories(pool)
}

func TestPostgresRepositories(t *testing.T) {
	repos := startPostgres(t)
	ctx := context.Background()

	roleID, err := repos.Roles.Create(ctx, &models.Role{Name: models.RoleTeacher, Description: "Personal docente"})
	require.NoError(t, err)

	careerID, err := repos.Careers.Create(ctx, &models.Career{Name: "Software", Duration: 8})
	require.NoError(t, err)

	t.Run("unique violations name the column", func(t *testing.T) {
		_, err := repos.Careers.Create(ctx, &models.Career{Name: "Software", Duration: 9})
		require.Error(t, err)

		var ce *ConstraintError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "nombre", ce.Field)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("missing foreign keys are invalid references", func(t *testing.T) {
		_, err := repos.Students.Create(ctx, &models.Student{
			CareerID: 999, FirstName: "Luis", LastName: "Mora", Cedula: "1102030405", Email: "luis@uni.edu",
		})
		var ce *ConstraintError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "carrera_id", ce.Field)
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("account and profile are created together", func(t *testing.T) {
		user := &models.User{Email: "ana@uni.edu", Password: "hash", RoleID: roleID}
		teacher := &models.Teacher{FirstName: "Ana", LastName: "Pérez", Cedula: "0102030405", Email: "ana@uni.edu"}
		require.NoError(t, repos.Users.CreateWithProfile(ctx, user, teacher, nil))

		stored, err := repos.Users.GetByEmail(ctx, "ana@uni.edu")
		require.NoError(t, err)
		assert.Equal(t, models.RoleTeacher, stored.RoleName)

		found, err := repos.Teachers.FindByFullName(ctx, "Ana", "Pérez")
		require.NoError(t, err)
		require.Len(t, found, 1)
		require.NotNil(t, found[0].UserID)
		assert.Equal(t, user.ID, *found[0].UserID)
	})

	t.Run("failed profile rolls back the account", func(t *testing.T) {
		user := &models.User{Email: "otro@uni.edu", Password: "hash", RoleID: roleID}
		dup := &models.Teacher{FirstName: "Eva", LastName: "Ruiz", Cedula: "0102030405", Email: "eva@uni.edu"}
		require.Error(t, repos.Users.CreateWithProfile(ctx, user, dup, nil))

		_, err := repos.Users.GetByEmail(ctx, "otro@uni.edu")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("referenced rows cannot be deleted", func(t *testing.T) {
		_, err := repos.Students.Create(ctx, &models.Student{
			CareerID: careerID, FirstName: "Luis", LastName: "Mora", Cedula: "1102030405", Email: "luis@uni.edu",
		})
		require.NoError(t, err)

		err = repos.Careers.Delete(ctx, careerID)
		assert.True(t, errors.Is(err, ErrReferenced), "got %v", err)
	})

	t.Run("search by term and date range", func(t *testing.T) {
		found, err := repos.Careers.Search(ctx, Filter{Term: "soft", TermColumns: []string{"nombre"}})
		require.NoError(t, err)
		assert.Len(t, found, 1)

		periodID, err := repos.Periods.Create(ctx, &models.Period{
			Name: "2024-1", StartDate: models.MustDate("2024-03-01"), EndDate: models.MustDate("2024-08-31"), State: models.PeriodOpen,
		})
		require.NoError(t, err)
		students, err := repos.Students.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, students)

		_, err = repos.Enrollments.Create(ctx, &models.Enrollment{
			StudentID: students[0].ID, PeriodID: periodID, Date: models.MustDate("2024-03-10"), State: models.EnrollmentActive,
		})
		require.NoError(t, err)

		from := models.MustDate("2024-03-01").Time
		to := models.MustDate("2024-03-31").Time
		enrolled, err := repos.Enrollments.Search(ctx, Filter{DateColumn: "fecha", From: &from, To: &to})
		require.NoError(t, err)
		assert.Len(t, enrolled, 1)

		before := models.MustDate("2024-02-28").Time
		enrolled, err = repos.Enrollments.Search(ctx, Filter{DateColumn: "fecha", To: &before})
		require.NoError(t, err)
		assert.Empty(t, enrolled)
	})

	t.Run("recovery pins expire", func(t *testing.T) {
		user, err := repos.Users.GetByEmail(ctx, "ana@uni.edu")
		require.NoError(t, err)

		now := time.Now()
		require.NoError(t, repos.RecoveryPins.Create(ctx, user.ID, "digest", now.Add(-time.Minute)))
		pin, err := repos.RecoveryPins.GetLatest(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "digest", pin.PinHash)

		purged, err := repos.RecoveryPins.DeleteExpired(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), purged)
	})

	t.Run("replacing a pin keeps only the new one", func(t *testing.T) {
		user, err := repos.Users.GetByEmail(ctx, "ana@uni.edu")
		require.NoError(t, err)

		expires := time.Now().Add(time.Hour)
		require.NoError(t, repos.RecoveryPins.Replace(ctx, user.ID, "primero", expires))
		require.NoError(t, repos.RecoveryPins.Replace(ctx, user.ID, "segundo", expires))

		pin, err := repos.RecoveryPins.GetLatest(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "segundo", pin.PinHash)

		purged, err := repos.RecoveryPins.DeleteExpired(ctx, expires.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(1), purged)
	})

	t.Run("failed password update leaves the pin redeemable", func(t *testing.T) {
		user, err := repos.Users.GetByEmail(ctx, "ana@uni.edu")
		require.NoError(t, err)
		require.NoError(t, repos.RecoveryPins.Replace(ctx, user.ID, "digest", time.Now().Add(time.Hour)))
		pin, err := repos.RecoveryPins.GetLatest(ctx, user.ID)
		require.NoError(t, err)

		err = repos.RecoveryPins.Redeem(ctx, pin.ID, 999999, "nuevo-hash")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)

		pin, err = repos.RecoveryPins.GetLatest(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, pin.UsedAt)

		require.NoError(t, repos.RecoveryPins.Redeem(ctx, pin.ID, user.ID, "nuevo-hash"))
		stored, err := repos.Users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "nuevo-hash", stored.Password)

		assert.ErrorIs(t, repos.RecoveryPins.Redeem(ctx, pin.ID, user.ID, "otro-hash"), ErrNotFound)
	})

	t.Run("search terms are matched literally", func(t *testing.T) {
		_, err := repos.Careers.Create(ctx, &models.Career{Name: "Redes_100%", Duration: 8})
		require.NoError(t, err)

		found, err := repos.Careers.Search(ctx, Filter{Term: "%", TermColumns: []string{"nombre"}})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Redes_100%", found[0].Name)

		found, err = repos.Careers.Search(ctx, Filter{Term: "s_1", TermColumns: []string{"nombre"}})
		require.NoError(t, err)
		assert.Len(t, found, 1)

		found, err = repos.Careers.Search(ctx, Filter{Term: "o_t", TermColumns: []string{"nombre"}})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("values wider than the column are rejected", func(t *testing.T) {
		_, err := repos.Careers.Create(ctx, &models.Career{Name: strings.Repeat("x", 101), Duration: 8})
		assert.ErrorIs(t, err, ErrValueTooLong)
	})
}
