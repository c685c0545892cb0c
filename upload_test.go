// SPDX-License-Identifier: Apache-2.0

package crunchdao

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/crunchdao/crunchdao-go/internal/transport"
	"github.com/crunchdao/crunchdao-go/models"
)

func validPredictions(t *testing.T) *models.Table {
	t.Helper()
	table := models.NewTable(
		models.Column{Name: "id", Type: models.ColumnString},
		models.Column{Name: "pred", Type: models.ColumnFloat},
	)
	require.NoError(t, table.Append("Moon_1", "0.42"))
	require.NoError(t, table.Append("Moon_2", "0.58"))
	return table
}

// ── validation (no network) ─────────────────────────────────────────────────

func TestUpload_NilTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, _ := newMockedClient(t, ctrl, "k")

	_, err := client.Upload(context.Background(), nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpload_EmptyTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, _ := newMockedClient(t, ctrl, "k")
	empty := models.NewTable(
		models.Column{Name: "id", Type: models.ColumnString},
		models.Column{Name: "pred", Type: models.ColumnFloat},
	)

	_, err := client.Upload(context.Background(), empty)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpload_SingleColumnTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, _ := newMockedClient(t, ctrl, "k")
	narrow := models.NewTable(models.Column{Name: "pred", Type: models.ColumnFloat})
	require.NoError(t, narrow.Append("0.42"))

	_, err := client.Upload(context.Background(), narrow)
	assert.ErrorIs(t, err, ErrValidation)
}

// ── submission ──────────────────────────────────────────────────────────────

func TestUpload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, backend := newMockedClient(t, ctrl, "k")
	ctx := context.Background()

	wantPayload := []byte("id,pred\nMoon_1,0.42\nMoon_2,0.58\n")
	backend.EXPECT().
		UploadSubmission(ctx, wantPayload, "predictions.csv", "xgboost v3").
		Return(int64(77), nil)

	id, err := client.Upload(ctx, validPredictions(t), WithComment("xgboost v3"))
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
}

func TestUpload_UnknownKeyMapsToAuthentication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, backend := newMockedClient(t, ctrl, "stale-key")
	ctx := context.Background()

	backend.EXPECT().
		UploadSubmission(ctx, gomock.Any(), "predictions.csv", "").
		Return(int64(0), fmt.Errorf("%w: unknown api key", transport.ErrNotFound))

	_, err := client.Upload(ctx, validPredictions(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestUpload_ClosedRoundMapsToUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, backend := newMockedClient(t, ctrl, "k")
	ctx := context.Background()

	backend.EXPECT().
		UploadSubmission(ctx, gomock.Any(), "predictions.csv", "").
		Return(int64(0), fmt.Errorf("%w: submissions are close", transport.ErrLocked))

	_, err := client.Upload(ctx, validPredictions(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpload)
	assert.Contains(t, err.Error(), "submissions are close")
}

func TestUpload_DuplicateMapsToUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, backend := newMockedClient(t, ctrl, "k")
	ctx := context.Background()

	backend.EXPECT().
		UploadSubmission(ctx, gomock.Any(), "predictions.csv", "").
		Return(int64(0), fmt.Errorf("%w: duplicate submission", transport.ErrConflict))

	_, err := client.Upload(ctx, validPredictions(t))
	assert.ErrorIs(t, err, ErrUpload)
}
