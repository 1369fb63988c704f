package service

import (
	"testing"

	"groanzone/internal/http-api/authz"
	"groanzone/internal/http-api/dto"
	"groanzone/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJokeRoundTrip(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	svc := NewJokeService(repository.NewJokeRepository(db))

	created, err := svc.Create(author.ID, "Why?", "Because.")
	require.NoError(t, err)

	detail, err := svc.GetDetail(created.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Why?", detail.Setup)
	assert.Equal(t, "Because.", detail.Punchline)
	assert.Equal(t, "author", detail.AuthorUsername)
	assert.True(t, detail.CreatedAt.Equal(detail.UpdatedAt))
}

func TestCreateJokeRequiresSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewJokeService(repository.NewJokeRepository(db))

	_, err := svc.Create("", "Why?", "Because.")
	assert.ErrorIs(t, err, authz.ErrUnauthenticated)
}

func TestUpdateJokeIDMismatchCheckedFirst(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "other")
	joke := createTestJoke(t, db, author.ID, "setup one", "punchline one")
	svc := NewJokeService(repository.NewJokeRepository(db))

	// even a non-owner gets the mismatch error, not the ownership one
	_, err := svc.Update(joke.ID, other.ID, dto.UpdateJokeDTO{
		ID:        joke.ID + 2,
		Setup:     "changed",
		Punchline: "changed",
	})
	assert.ErrorIs(t, err, ErrIDMismatch)
}

func TestUpdateJokeNotFound(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	svc := NewJokeService(repository.NewJokeRepository(db))

	_, err := svc.Update(12345, author.ID, dto.UpdateJokeDTO{
		ID:        12345,
		Setup:     "changed",
		Punchline: "changed",
	})
	assert.ErrorIs(t, err, ErrJokeNotFound)
}

func TestUpdateJokeForbiddenForNonOwner(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "other")
	joke := createTestJoke(t, db, author.ID, "setup one", "punchline one")
	svc := NewJokeService(repository.NewJokeRepository(db))

	_, err := svc.Update(joke.ID, other.ID, dto.UpdateJokeDTO{
		ID:        joke.ID,
		Setup:     "changed",
		Punchline: "changed",
	})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestUpdateJokeByOwner(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	joke := createTestJoke(t, db, author.ID, "setup one", "punchline one")
	svc := NewJokeService(repository.NewJokeRepository(db))

	updated, err := svc.Update(joke.ID, author.ID, dto.UpdateJokeDTO{
		ID:        joke.ID,
		Setup:     "setup two",
		Punchline: "punchline two",
	})
	require.NoError(t, err)
	assert.Equal(t, "setup two", updated.Setup)
	assert.Equal(t, "punchline two", updated.Punchline)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
	// ownership never moves
	assert.Equal(t, author.ID, updated.UserID)
}

func TestDeleteJokeForbiddenForNonOwner(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "other")
	joke := createTestJoke(t, db, author.ID, "setup one", "punchline one")
	svc := NewJokeService(repository.NewJokeRepository(db))

	err := svc.Delete(joke.ID, joke.ID, other.ID)
	assert.ErrorIs(t, err, authz.ErrForbidden)

	// the joke survives the attempt
	_, err = svc.GetDetail(joke.ID, other.ID)
	assert.NoError(t, err)
}

func TestDeleteJokeIDMismatchBeforeExistence(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	svc := NewJokeService(repository.NewJokeRepository(db))

	// joke 555 does not exist; the body/path mismatch still wins
	err := svc.Delete(555, 777, author.ID)
	assert.ErrorIs(t, err, ErrIDMismatch)
}

func TestDeleteJokeCascadesRatings(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	rater := createTestUser(t, db, "rater")
	joke := createTestJoke(t, db, author.ID, "setup one", "punchline one")

	ratingRepo := repository.NewRatingRepository(db)
	jokeRepo := repository.NewJokeRepository(db)
	ratingSvc := NewRatingService(ratingRepo, jokeRepo)
	_, err := ratingSvc.UpsertRating(rater.ID, joke.ID, 4)
	require.NoError(t, err)

	svc := NewJokeService(jokeRepo)
	require.NoError(t, svc.Delete(joke.ID, joke.ID, author.ID))

	_, err = svc.GetDetail(joke.ID, author.ID)
	assert.ErrorIs(t, err, ErrJokeNotFound)

	count, err := ratingRepo.CountRatings(joke.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestListPreservesStoreOrder(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	rater := createTestUser(t, db, "rater")

	first := createTestJoke(t, db, author.ID, "first setup", "first punchline")
	second := createTestJoke(t, db, author.ID, "second setup", "second punchline")

	jokeRepo := repository.NewJokeRepository(db)
	ratingSvc := NewRatingService(repository.NewRatingRepository(db), jokeRepo)
	_, err := ratingSvc.UpsertRating(rater.ID, second.ID, 4)
	require.NoError(t, err)

	svc := NewJokeService(jokeRepo)
	listing, err := svc.List(rater.ID)
	require.NoError(t, err)

	require.Equal(t, 2, listing.TotalCount)
	assert.Equal(t, first.ID, listing.AllJokes[0].ID)
	assert.Equal(t, second.ID, listing.AllJokes[1].ID)

	assert.Equal(t, 0, listing.AllJokes[0].RatingCount)
	assert.False(t, listing.AllJokes[0].RatedByMe)
	assert.Equal(t, 1, listing.AllJokes[1].RatingCount)
	assert.Equal(t, 4.0, listing.AllJokes[1].AvgRating)
	assert.True(t, listing.AllJokes[1].RatedByMe)
}

func TestDetailIncludesIndividualRatings(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	rater := createTestUser(t, db, "rater")
	joke := createTestJoke(t, db, author.ID, "setup one", "punchline one")

	jokeRepo := repository.NewJokeRepository(db)
	ratingSvc := NewRatingService(repository.NewRatingRepository(db), jokeRepo)
	_, err := ratingSvc.UpsertRating(rater.ID, joke.ID, 2)
	require.NoError(t, err)

	svc := NewJokeService(jokeRepo)
	detail, err := svc.GetDetail(joke.ID, rater.ID)
	require.NoError(t, err)

	require.Len(t, detail.Ratings, 1)
	assert.Equal(t, "rater", detail.Ratings[0].Username)
	assert.Equal(t, 2, detail.Ratings[0].Value)
	assert.True(t, detail.RatedByMe)
}
