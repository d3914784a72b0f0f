package repository

import (
	"context"
	"fmt"

	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

// ListPlans возвращает все тарифы.
func (s *Storage) ListPlans(ctx context.Context) ([]*models.Plan, error) {
	const op = "storage.ListPlans"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, renewal_period, tier, discount, magazine_id
			  FROM plans
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Plan
	for rows.Next() {
		var p models.Plan
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.RenewalPeriod,
			&p.Tier, &p.Discount, &p.MagazineID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetPlan возвращает тариф по его ID.
func (s *Storage) GetPlan(ctx context.Context, id int) (*models.Plan, error) {
	const op = "storage.GetPlan"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, renewal_period, tier, discount, magazine_id
			  FROM plans
			  WHERE id = $1`
	p := &models.Plan{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.RenewalPeriod,
		&p.Tier, &p.Discount, &p.MagazineID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return p, nil
}

// CreatePlan вставляет новый тариф и возвращает созданную запись.
func (s *Storage) CreatePlan(ctx context.Context, req models.DummyPlan) (*models.Plan, error) {
	const op = "storage.CreatePlan"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO plans (title, description, renewal_period, tier, discount, magazine_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, title, description, renewal_period, tier, discount, magazine_id`
	p := &models.Plan{}
	row := s.DB.QueryRowContext(ctx, query, req.Title, req.Description,
		req.RenewalPeriod, req.Tier, req.Discount, req.MagazineID)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.RenewalPeriod,
		&p.Tier, &p.Discount, &p.MagazineID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// UpdatePlan обновляет только переданные поля тарифа и возвращает
// обновлённую запись.
func (s *Storage) UpdatePlan(ctx context.Context, id int, req models.PlanUpdate) (*models.Plan, error) {
	const op = "storage.UpdatePlan"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE plans
			  SET title = COALESCE($1, title),
			      description = COALESCE($2, description),
			      renewal_period = COALESCE($3, renewal_period),
			      tier = COALESCE($4, tier),
			      discount = COALESCE($5, discount),
			      magazine_id = COALESCE($6, magazine_id)
			  WHERE id = $7
			  RETURNING id, title, description, renewal_period, tier, discount, magazine_id`
	p := &models.Plan{}
	row := s.DB.QueryRowContext(ctx, query, req.Title, req.Description,
		req.RenewalPeriod, req.Tier, req.Discount, req.MagazineID, id)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.RenewalPeriod,
		&p.Tier, &p.Discount, &p.MagazineID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return p, nil
}

// DeletePlan удаляет тариф по ID и возвращает количество удалённых строк.
func (s *Storage) DeletePlan(ctx context.Context, id int) (int, error) {
	const op = "storage.DeletePlan"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM plans WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
