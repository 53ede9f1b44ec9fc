package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/rings-closed-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/rings-closed-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/services"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/workers"
)

const testUserHeader = "X-Test-User"

type testEnv struct {
	router    *gin.Engine
	users     *repository.InMemoryUserRepository
	activity  *repository.InMemoryActivityRepository
	snapshots *repository.InMemorySnapshotRepository
	worker    *workers.StreakWorker
}

// newTestEnv wires the activity and streak handlers over in-memory storage.
// Requests are authenticated as the user named in testUserHeader.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:     repository.NewInMemoryUserRepository(),
		activity:  repository.NewInMemoryActivityRepository(),
		snapshots: repository.NewInMemorySnapshotRepository(),
	}
	env.worker = workers.NewStreakWorker(env.users, env.activity, env.snapshots, workers.Options{QueueSize: 50}, zap.NewNop())

	activityHandler := NewActivityHandler(services.NewActivityService(env.activity, env.worker))
	streakHandler := NewStreakHandler(services.NewStreakService(env.users, env.activity, env.snapshots))

	env.router = gin.New()
	group := env.router.Group("")
	group.Use(func(c *gin.Context) {
		if id := c.GetHeader(testUserHeader); id != "" {
			c.Set(middleware.ContextUserIDKey, id)
		}
		c.Next()
	})
	activityHandler.RegisterRoutes(group)
	streakHandler.RegisterRoutes(group)

	return env
}

func (e *testEnv) addUser(t *testing.T, id, tz string) {
	t.Helper()
	user, err := domain.NewUser(id, id+"@rings.app")
	require.NoError(t, err)
	require.NoError(t, user.SetTimezone(tz))
	require.NoError(t, e.users.Create(context.Background(), user))
}

func (e *testEnv) do(method, path, userID string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(testUserHeader, userID)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func closedDay(y, m, d int) map[string]any {
	return map[string]any{
		"year": y, "month": m, "day": d,
		"active_energy_burned": 520, "active_energy_burned_goal": 500,
		"exercise_minutes": 35, "exercise_minutes_goal": 30,
		"stand_hours": 12, "stand_hours_goal": 12,
	}
}
