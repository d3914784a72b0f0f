package repository

import (
	"context"
	"fmt"

	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

// ListMagazines возвращает все журналы.
func (s *Storage) ListMagazines(ctx context.Context) ([]*models.Magazine, error) {
	const op = "storage.ListMagazines"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, base_price
			  FROM magazines
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Magazine
	for rows.Next() {
		var m models.Magazine
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.BasePrice); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetMagazine возвращает журнал по его ID.
func (s *Storage) GetMagazine(ctx context.Context, id int) (*models.Magazine, error) {
	const op = "storage.GetMagazine"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, base_price
			  FROM magazines
			  WHERE id = $1`
	m := &models.Magazine{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &m.BasePrice); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return m, nil
}

// CreateMagazine вставляет новый журнал и возвращает созданную запись.
func (s *Storage) CreateMagazine(ctx context.Context, req models.DummyMagazine) (*models.Magazine, error) {
	const op = "storage.CreateMagazine"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO magazines (name, description, base_price)
			  VALUES ($1, $2, $3)
			  RETURNING id, name, description, base_price`
	m := &models.Magazine{}
	row := s.DB.QueryRowContext(ctx, query, req.Name, req.Description, req.BasePrice)
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &m.BasePrice); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// UpdateMagazine обновляет только переданные поля журнала и возвращает
// обновлённую запись. nil-поля остаются без изменений.
func (s *Storage) UpdateMagazine(ctx context.Context, id int, req models.MagazineUpdate) (*models.Magazine, error) {
	const op = "storage.UpdateMagazine"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE magazines
			  SET name = COALESCE($1, name),
			      description = COALESCE($2, description),
			      base_price = COALESCE($3, base_price)
			  WHERE id = $4
			  RETURNING id, name, description, base_price`
	m := &models.Magazine{}
	row := s.DB.QueryRowContext(ctx, query, req.Name, req.Description, req.BasePrice, id)
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &m.BasePrice); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return m, nil
}

// DeleteMagazine удаляет журнал по ID и возвращает количество удалённых строк.
func (s *Storage) DeleteMagazine(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteMagazine"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM magazines WHERE id = $1`
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
