package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
)

var (
	testDBOnce sync.Once
	testDB     *sqlx.DB
	testDBErr  error
)

// integrationDB returns a shared connection with the schema applied, or skips
// the test when no database is reachable.
func integrationDB(t *testing.T) *sqlx.DB {
	t.Helper()

	testDBOnce.Do(func() {
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_NAME", "rings_closed_test"),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		testDB, testDBErr = sqlx.ConnectContext(ctx, "postgres", dsn)
		if testDBErr != nil {
			return
		}
		testDBErr = EnsureSchema(ctx, testDB, zap.NewNop())
	})

	if testDBErr != nil {
		t.Skipf("Database connection failed (skipping integration tests): %v", testDBErr)
	}
	return testDB
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func seedUser(t *testing.T, db *sqlx.DB) *domain.User {
	t.Helper()

	user, err := domain.NewUser(uuid.NewString(), fmt.Sprintf("user_%s@example.com", uuid.NewString()))
	require.NoError(t, err)
	user.PasswordHash = "dummy_hash_per_test"

	require.NoError(t, NewPostgresUserRepository(db.DB).Create(context.Background(), user))
	return user
}
