package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrosync/backend/internal/domain"
	"github.com/metrosync/backend/internal/repo"
	"github.com/metrosync/backend/testutil"
)

func TestPassengerRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewPassengerRepo(tx)
	ctx := context.Background()

	email := testutil.UniqueEmail()
	got, err := r.Create(ctx, domain.Passenger{
		FirstName:   "Ada",
		LastName:    "Osei",
		Email:       email,
		PhoneNumber: "555-0101",
	})

	require.NoError(t, err)
	assert.NotZero(t, got.ID, "ID should be DB-generated")
	assert.Equal(t, email, got.Email)
	assert.False(t, got.RegisteredAt.IsZero(), "RegisteredAt should be set by DB")
}

func TestPassengerRepo_Create_DuplicateEmail(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewPassengerRepo(tx)
	ctx := context.Background()

	p := domain.Passenger{FirstName: "Ada", LastName: "Osei", Email: testutil.UniqueEmail()}
	_, err := r.Create(ctx, p)
	require.NoError(t, err)

	_, err = r.Create(ctx, p)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPassengerRepo_GetByID_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewPassengerRepo(tx)

	_, err := r.GetByID(context.Background(), -1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPassengerRepo_Update_PartialPatch(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewPassengerRepo(tx)
	ctx := context.Background()

	created := createTestPassenger(t, tx)

	name := "Grace"
	got, err := r.Update(ctx, created.ID, domain.PassengerPatch{FirstName: &name})

	require.NoError(t, err)
	assert.Equal(t, "Grace", got.FirstName)
	// Untouched fields keep their stored values.
	assert.Equal(t, created.LastName, got.LastName)
	assert.Equal(t, created.Email, got.Email)
}

func TestPassengerRepo_Update_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewPassengerRepo(tx)

	name := "Grace"
	_, err := r.Update(context.Background(), -1, domain.PassengerPatch{FirstName: &name})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPassengerRepo_Delete(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewPassengerRepo(tx)
	ctx := context.Background()

	created := createTestPassenger(t, tx)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err := r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPassengerRepo_Delete_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewPassengerRepo(tx)

	err := r.Delete(context.Background(), -1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPassengerRepo_Delete_StillHasCards(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewPassengerRepo(tx)
	ctx := context.Background()

	card := createTestCard(t, tx)

	// The FK from cards is RESTRICT: deleting the owner must fail with a
	// conflict, not cascade.
	err := r.Delete(ctx, card.PassengerID)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPassengerRepo_List(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewPassengerRepo(tx)
	ctx := context.Background()

	createTestPassenger(t, tx)
	createTestPassenger(t, tx)

	got, err := r.List(ctx)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(got), 2)
}
