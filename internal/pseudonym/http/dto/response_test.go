package dto_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/http/dto"
)

func TestMapBatchToResponse(t *testing.T) {
	now := time.Now().UTC()
	batchID := uuid.Must(uuid.NewV7())
	batch := &domain.Batch{
		ID:          batchID,
		Digits:      5,
		MinDistance: 3,
		DryRun:      true,
		Report: domain.Report{
			{Prefix: "1000", Requested: 2, Generated: 2},
			{Prefix: "2000", Requested: 9, Generated: 4},
		},
		Pseudonyms: []*domain.Pseudonym{
			{
				ID:        uuid.Must(uuid.NewV7()),
				BatchID:   batchID,
				Prefix:    "1000",
				Code:      "123456",
				Value:     "1000123456",
				CreatedAt: now,
			},
		},
		CreatedAt: now,
	}

	response := dto.MapBatchToResponse(batch)

	assert.Equal(t, batchID.String(), response.ID)
	assert.Equal(t, 5, response.Digits)
	assert.Equal(t, 3, response.MinDistance)
	assert.True(t, response.DryRun)
	assert.False(t, response.Fulfilled)

	require.Len(t, response.Report, 2)
	assert.True(t, response.Report[0].Fulfilled)
	assert.False(t, response.Report[1].Fulfilled)
	assert.Equal(t, 9, response.Report[1].Requested)
	assert.Equal(t, 4, response.Report[1].Generated)

	require.Len(t, response.Pseudonyms, 1)
	assert.Equal(t, "1000123456", response.Pseudonyms[0].Value)
	assert.Equal(t, batchID.String(), response.Pseudonyms[0].BatchID)
}

func TestMapBatchToResponse_EmptyBatch(t *testing.T) {
	batch := &domain.Batch{
		ID:        uuid.Must(uuid.NewV7()),
		CreatedAt: time.Now().UTC(),
	}

	response := dto.MapBatchToResponse(batch)

	assert.NotNil(t, response.Report)
	assert.NotNil(t, response.Pseudonyms)
	assert.Empty(t, response.Report)
	assert.Empty(t, response.Pseudonyms)
	assert.True(t, response.Fulfilled)
}

func TestMapPseudonymsToListResponse(t *testing.T) {
	now := time.Now().UTC()
	pseudonyms := []*domain.Pseudonym{
		{
			ID:        uuid.Must(uuid.NewV7()),
			BatchID:   uuid.Must(uuid.NewV7()),
			Prefix:    "1000",
			Code:      "123456",
			Value:     "1000123456",
			CreatedAt: now,
		},
		{
			ID:        uuid.Must(uuid.NewV7()),
			BatchID:   uuid.Must(uuid.NewV7()),
			Prefix:    "2000",
			Code:      "654321",
			Value:     "2000654321",
			CreatedAt: now,
		},
	}

	response := dto.MapPseudonymsToListResponse(pseudonyms)

	require.Len(t, response.Data, 2)
	assert.Equal(t, pseudonyms[0].ID.String(), response.Data[0].ID)
	assert.Equal(t, pseudonyms[0].Value, response.Data[0].Value)
	assert.Equal(t, pseudonyms[1].Prefix, response.Data[1].Prefix)
	assert.Equal(t, pseudonyms[1].CreatedAt, response.Data[1].CreatedAt)
}

func TestMapPseudonymsToListResponse_Empty(t *testing.T) {
	response := dto.MapPseudonymsToListResponse(nil)

	assert.NotNil(t, response.Data)
	assert.Empty(t, response.Data)
}
