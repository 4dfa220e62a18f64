//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/specflow/quote-server/internal/model"
	repo "github.com/specflow/quote-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "quote_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/quote_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestJournalRepository_Append(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	journal := repo.NewJournalRepository(conn)

	entry := model.EstimateEntry{
		ID:        uuid.New(),
		Width:     36,
		Height:    80,
		Material:  "steel",
		Hardware:  []string{"hinges", "handle"},
		Total:     1535.00,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, journal.Append(ctx, entry))

	var (
		width, height, total float64
		material             string
	)
	err = conn.QueryRow(ctx, `SELECT width, height, material, total FROM estimates WHERE id = $1`, entry.ID).
		Scan(&width, &height, &material, &total)
	require.NoError(t, err)
	require.Equal(t, entry.Width, width)
	require.Equal(t, entry.Height, height)
	require.Equal(t, entry.Material, material)
	require.Equal(t, entry.Total, total)
}
