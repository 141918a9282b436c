//go:build integration

package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shenikar/fire_dispatch_system/internal/models"
	"github.com/shenikar/fire_dispatch_system/internal/service"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

// setupSchema накатывает стартовую миграцию в контейнер
func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	migration, err := os.ReadFile("../../migrations/000001_init.up.sql")
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	_, err = pool.Exec(ctx, string(migration))
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE responses, personnel, residents, societies, fire_stations CASCADE`)
	require.NoError(t, err, "truncate tables")
}

func newTestSocietyRepo(t *testing.T) service.SocietyRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSocietyRepository(testPool, redisClient)
}

func seedSociety(t *testing.T, repo service.SocietyRepository) *models.Society {
	t.Helper()
	society := &models.Society{
		Name:           "Green Valley",
		Address:        "12 Lake Road",
		Area:           "North",
		City:           "Pune",
		SecretaryName:  "Anna",
		SecretaryEmail: "anna@greenvalley.test",
		SecretaryPhone: "+70000000001",
		PasswordHash:   "hash",
		Location:       &models.Location{Latitude: 18.52, Longitude: 73.85},
	}
	require.NoError(t, repo.Create(context.Background(), society))
	return society
}

func TestClaimFire_ConcurrentClaims_OnlyOneWins(t *testing.T) {
	// Подготовка
	truncateAll(t)
	repo := newTestSocietyRepo(t)
	society := seedSociety(t, repo)

	// Действие: несколько конкурентных попыток включить одну тревогу
	const attempts = 8
	results := make(chan bool, attempts)
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := repo.ClaimFire(context.Background(), society.ID)
			results <- claimed
			errs <- err
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	// Проверки: условный UPDATE пропускает ровно одного
	for err := range errs {
		require.NoError(t, err)
	}
	won := 0
	for claimed := range results {
		if claimed {
			won++
		}
	}
	assert.Equal(t, 1, won, "exactly one concurrent claim must win")

	status, err := repo.GetFireStatus(context.Background(), society.ID)
	require.NoError(t, err)
	assert.True(t, status.IsActive)
	assert.NotNil(t, status.ActivatedAt)
}

func TestClaimFire_AfterRelease_ClaimableAgain(t *testing.T) {
	// Подготовка
	truncateAll(t)
	repo := newTestSocietyRepo(t)
	society := seedSociety(t, repo)

	claimed, err := repo.ClaimFire(context.Background(), society.ID)
	require.NoError(t, err)
	require.True(t, claimed)

	// Повторная попытка при активной тревоге не проходит
	claimed, err = repo.ClaimFire(context.Background(), society.ID)
	require.NoError(t, err)
	assert.False(t, claimed)

	// Действие: откат снимает тревогу и освобождает строку
	require.NoError(t, repo.ReleaseFire(context.Background(), society.ID))

	status, err := repo.GetFireStatus(context.Background(), society.ID)
	require.NoError(t, err)
	assert.False(t, status.IsActive)
	assert.Nil(t, status.RespondingStation)

	// Проверки: после отката тревогу можно включить снова
	claimed, err = repo.ClaimFire(context.Background(), society.ID)
	require.NoError(t, err)
	assert.True(t, claimed)
}
