package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"groanzone/database"
	"groanzone/internal/http-api/models"
	"groanzone/internal/http-api/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory SQLite database for one test. The
// shared-cache name keeps the database alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	require.NoError(t, repository.NewUserRepository(db).Create(user))
	return user
}

func createTestJoke(t *testing.T, db *gorm.DB, authorID, setup, punchline string) *models.Joke {
	t.Helper()
	svc := NewJokeService(repository.NewJokeRepository(db))
	resp, err := svc.Create(authorID, setup, punchline)
	require.NoError(t, err)

	joke, err := repository.NewJokeRepository(db).GetByID(resp.ID)
	require.NoError(t, err)
	return joke
}
