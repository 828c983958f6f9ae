package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"bookit/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDraft() *domain.CheckoutDraft {
	return &domain.CheckoutDraft{
		ID:           "4d1b0f2e",
		ExperienceID: 7,
		Title:        "Kayaking Adventure",
		Date:         "2025-06-01",
		Time:         "10:00 am",
		Quantity:     2,
		Price:        999,
		Subtotal:     1998,
		Taxes:        360,
		Total:        2358,
		CreatedAt:    time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestDraftRepository_Save(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	repo := NewDraftRepository(rdb, 30*time.Minute)

	d := testDraft()
	data, err := json.Marshal(d)
	require.NoError(t, err)

	mock.ExpectSet("checkout:draft:4d1b0f2e", data, 30*time.Minute).SetVal("OK")

	err = repo.Save(context.Background(), d)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepository_Get(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	repo := NewDraftRepository(rdb, 30*time.Minute)

	d := testDraft()
	data, err := json.Marshal(d)
	require.NoError(t, err)

	mock.ExpectGet("checkout:draft:4d1b0f2e").SetVal(string(data))

	got, err := repo.Get(context.Background(), "4d1b0f2e")

	require.NoError(t, err)
	assert.Equal(t, d, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepository_Get_ExpiredOrMissing(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	repo := NewDraftRepository(rdb, 30*time.Minute)

	mock.ExpectGet("checkout:draft:nope").RedisNil()

	_, err := repo.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
