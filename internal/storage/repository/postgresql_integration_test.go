package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

var renewalDate = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

func TestStorage_Users(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("create and read user", func(t *testing.T) {
		created, err := storage.CreateUser(ctx, "alice", "alice@example.com", "hashedpassword")
		require.NoError(t, err)
		assert.Equal(t, "alice", created.Username)
		assert.True(t, created.IsActive)

		got, err := storage.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := storage.CreateUser(ctx, "alice", "other@example.com", "hashedpassword")
		assert.ErrorIs(t, err, models.ErrAlreadyExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := storage.CreateUser(ctx, "bob", "alice@example.com", "hashedpassword")
		assert.ErrorIs(t, err, models.ErrAlreadyExists)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := storage.GetUserByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("deactivate keeps row", func(t *testing.T) {
		got, err := storage.DeactivateUser(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, got.IsActive)

		still, err := storage.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, still.IsActive)
	})

	t.Run("reset password by email", func(t *testing.T) {
		got, err := storage.UpdatePasswordHash(ctx, "alice@example.com", "newhash")
		require.NoError(t, err)
		assert.Equal(t, "newhash", got.PasswordHash)

		_, err = storage.UpdatePasswordHash(ctx, "ghost@example.com", "newhash")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestStorage_Magazines(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	created, err := storage.CreateMagazine(ctx, models.DummyMagazine{
		Name:        "Vogue",
		Description: "fashion",
		BasePrice:   10,
	})
	require.NoError(t, err)

	t.Run("read", func(t *testing.T) {
		got, err := storage.GetMagazine(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Vogue", got.Name)
		assert.InDelta(t, 10, got.BasePrice, 1e-9)
	})

	t.Run("list", func(t *testing.T) {
		got, err := storage.ListMagazines(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("partial update touches only given fields", func(t *testing.T) {
		newPrice := 12.5
		got, err := storage.UpdateMagazine(ctx, created.ID, models.MagazineUpdate{BasePrice: &newPrice})
		require.NoError(t, err)
		assert.Equal(t, "Vogue", got.Name)
		assert.InDelta(t, 12.5, got.BasePrice, 1e-9)
	})

	t.Run("update missing magazine", func(t *testing.T) {
		name := "Ghost"
		_, err := storage.UpdateMagazine(ctx, 9999, models.MagazineUpdate{Name: &name})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("delete is physical", func(t *testing.T) {
		count, err := storage.DeleteMagazine(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		_, err = storage.GetMagazine(ctx, created.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)

		count, err = storage.DeleteMagazine(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("delete of referenced magazine fails, rows stay", func(t *testing.T) {
		factory := NewTestDataFactory(storage)
		refID := factory.CreateMagazine(t, "Wired", "tech", 7)
		planID := factory.CreatePlan(t, "monthly", 30, 1, 0, refID)

		_, err := storage.DeleteMagazine(ctx, refID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrNotFound)

		var count int
		err = storage.DB.QueryRow(`SELECT COUNT(*) FROM plans WHERE id = $1`, planID).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestStorage_Plans(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	magazineID := factory.CreateMagazine(t, "Vogue", "fashion", 10)

	created, err := storage.CreatePlan(ctx, models.DummyPlan{
		Title:         "monthly",
		RenewalPeriod: 30,
		Tier:          1,
		Discount:      0.2,
		MagazineID:    magazineID,
	})
	require.NoError(t, err)

	t.Run("read", func(t *testing.T) {
		got, err := storage.GetPlan(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "monthly", got.Title)
		assert.InDelta(t, 0.2, got.Discount, 1e-9)
		assert.Equal(t, magazineID, got.MagazineID)
	})

	t.Run("partial update", func(t *testing.T) {
		period := 90
		got, err := storage.UpdatePlan(ctx, created.ID, models.PlanUpdate{RenewalPeriod: &period})
		require.NoError(t, err)
		assert.Equal(t, 90, got.RenewalPeriod)
		assert.Equal(t, "monthly", got.Title)
	})

	t.Run("delete", func(t *testing.T) {
		count, err := storage.DeletePlan(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		_, err = storage.GetPlan(ctx, created.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestStorage_Subscriptions(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	userID := factory.CreateUser(t, "alice", "alice@example.com", "hashedpassword", true)
	otherUserID := factory.CreateUser(t, "bob", "bob@example.com", "hashedpassword", true)
	magazineID := factory.CreateMagazine(t, "Vogue", "fashion", 10)
	planID := factory.CreatePlan(t, "monthly", 30, 1, 0.2, magazineID)

	created, err := storage.CreateSubscription(ctx, models.Subscription{
		UserID:      userID,
		MagazineID:  magazineID,
		PlanID:      planID,
		Price:       8.0,
		RenewalDate: renewalDate,
		IsActive:    true,
	})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, created.Price, 1e-9)
	assert.True(t, created.IsActive)

	t.Run("exists check", func(t *testing.T) {
		exists, err := storage.SubscriptionExists(ctx, userID, magazineID, planID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = storage.SubscriptionExists(ctx, otherUserID, magazineID, planID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("list includes inactive and does not mutate", func(t *testing.T) {
		factory.CreateSubscription(t, otherUserID, magazineID, planID, 8.0, renewalDate, false)

		got, err := storage.ListSubscriptions(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)

		again, err := storage.ListSubscriptions(ctx)
		require.NoError(t, err)
		assert.Len(t, again, 2)
	})

	t.Run("read missing", func(t *testing.T) {
		_, err := storage.GetSubscription(ctx, 9999)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("update overwrites full row", func(t *testing.T) {
		updated, err := storage.UpdateSubscription(ctx, created.ID, models.Subscription{
			UserID:      userID,
			MagazineID:  magazineID,
			PlanID:      planID,
			Price:       5.0,
			RenewalDate: renewalDate.AddDate(0, 1, 0),
			IsActive:    true,
		})
		require.NoError(t, err)
		assert.InDelta(t, 5.0, updated.Price, 1e-9)
	})

	t.Run("sub-cent price and timestamp survive the round trip", func(t *testing.T) {
		glossyID := factory.CreateMagazine(t, "Glossy", "art", 9.99)
		glossyPlanID := factory.CreatePlan(t, "monthly", 30, 1, 0.1234, glossyID)

		var discount float64
		err := storage.DB.QueryRow(`SELECT discount FROM plans WHERE id = $1`, glossyPlanID).Scan(&discount)
		require.NoError(t, err)
		assert.Equal(t, 0.1234, discount)

		at := time.Date(2026, 10, 1, 13, 45, 30, 0, time.UTC)
		sub, err := storage.CreateSubscription(ctx, models.Subscription{
			UserID:      userID,
			MagazineID:  glossyID,
			PlanID:      glossyPlanID,
			Price:       7.992,
			RenewalDate: at,
			IsActive:    true,
		})
		require.NoError(t, err)
		assert.Equal(t, 7.992, sub.Price)

		got, err := storage.GetSubscription(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, 7.992, got.Price)
		assert.True(t, got.RenewalDate.Equal(at))
	})

	t.Run("deactivate scoped to owner", func(t *testing.T) {
		count, err := storage.DeactivateSubscription(ctx, created.ID, otherUserID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		count, err = storage.DeactivateSubscription(ctx, created.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := storage.GetSubscription(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})
}
