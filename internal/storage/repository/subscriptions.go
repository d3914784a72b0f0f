package repository

import (
	"context"
	"fmt"

	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

// ListSubscriptions возвращает все подписки. Чтение не имеет побочных
// эффектов: деактивация выполняется только отдельной операцией.
func (s *Storage) ListSubscriptions(ctx context.Context) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, magazine_id, plan_id, price, renewal_date, is_active
			  FROM subscriptions
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Subscription
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.MagazineID, &sub.PlanID,
			&sub.Price, &sub.RenewalDate, &sub.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &sub)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetSubscription возвращает подписку по её ID.
func (s *Storage) GetSubscription(ctx context.Context, id int) (*models.Subscription, error) {
	const op = "storage.GetSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, magazine_id, plan_id, price, renewal_date, is_active
			  FROM subscriptions
			  WHERE id = $1`
	sub := &models.Subscription{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&sub.ID, &sub.UserID, &sub.MagazineID, &sub.PlanID,
		&sub.Price, &sub.RenewalDate, &sub.IsActive); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return sub, nil
}

// SubscriptionExists сообщает, есть ли подписка с данной тройкой
// (user, magazine, plan). Инвариант уникальности тройки проверяется
// здесь, а не ограничением в схеме.
func (s *Storage) SubscriptionExists(ctx context.Context, userID, magazineID, planID int) (bool, error) {
	const op = "storage.SubscriptionExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (
			      SELECT 1 FROM subscriptions
			      WHERE user_id = $1 AND magazine_id = $2 AND plan_id = $3
			  )`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, userID, magazineID, planID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// CreateSubscription вставляет новую подписку и возвращает созданную запись.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (*models.Subscription, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (user_id, magazine_id, plan_id, price, renewal_date, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, user_id, magazine_id, plan_id, price, renewal_date, is_active`
	created := &models.Subscription{}
	row := s.DB.QueryRowContext(ctx, query, sub.UserID, sub.MagazineID, sub.PlanID,
		sub.Price, sub.RenewalDate, sub.IsActive)
	if err := row.Scan(&created.ID, &created.UserID, &created.MagazineID, &created.PlanID,
		&created.Price, &created.RenewalDate, &created.IsActive); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// UpdateSubscription перезаписывает подписку целиком: сервис заранее
// вычисляет итоговые значения полей, включая пересчитанную цену.
func (s *Storage) UpdateSubscription(ctx context.Context, id int, sub models.Subscription) (*models.Subscription, error) {
	const op = "storage.UpdateSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET user_id = $1, magazine_id = $2, plan_id = $3,
			      price = $4, renewal_date = $5
			  WHERE id = $6
			  RETURNING id, user_id, magazine_id, plan_id, price, renewal_date, is_active`
	updated := &models.Subscription{}
	row := s.DB.QueryRowContext(ctx, query, sub.UserID, sub.MagazineID, sub.PlanID,
		sub.Price, sub.RenewalDate, id)
	if err := row.Scan(&updated.ID, &updated.UserID, &updated.MagazineID, &updated.PlanID,
		&updated.Price, &updated.RenewalDate, &updated.IsActive); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return updated, nil
}

// DeactivateSubscription помечает подписку неактивной, но только если она
// принадлежит указанному пользователю. Возвращает количество изменённых строк.
func (s *Storage) DeactivateSubscription(ctx context.Context, id, userID int) (int, error) {
	const op = "storage.DeactivateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET is_active = false
			  WHERE id = $1 AND user_id = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
