package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

// MagazineRepository определяет методы для работы с журналами в хранилище.
type MagazineRepository interface {
	ListMagazines(ctx context.Context) ([]*models.Magazine, error)
	GetMagazine(ctx context.Context, id int) (*models.Magazine, error)
	CreateMagazine(ctx context.Context, req models.DummyMagazine) (*models.Magazine, error)
	UpdateMagazine(ctx context.Context, id int, req models.MagazineUpdate) (*models.Magazine, error)
	DeleteMagazine(ctx context.Context, id int) (int, error)
}

// MagazineService реализует операции над журналами.
type MagazineService struct {
	repo MagazineRepository
	log  *slog.Logger
}

// NewMagazineService создает новый экземпляр MagazineService.
func NewMagazineService(repo MagazineRepository, log *slog.Logger) *MagazineService {
	return &MagazineService{
		repo: repo,
		log:  log,
	}
}

// List возвращает все журналы.
func (s *MagazineService) List(ctx context.Context) ([]*models.Magazine, error) {
	return s.repo.ListMagazines(ctx)
}

// Read возвращает журнал по ID.
func (s *MagazineService) Read(ctx context.Context, id int) (*models.Magazine, error) {
	return s.repo.GetMagazine(ctx, id)
}

// Create создает новый журнал.
func (s *MagazineService) Create(ctx context.Context, req models.DummyMagazine) (*models.Magazine, error) {
	const op = "services.magazine.Create"
	magazine, err := s.repo.CreateMagazine(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new magazine", slog.Int("id", magazine.ID))
	return magazine, nil
}

// Update изменяет только переданные поля журнала.
func (s *MagazineService) Update(ctx context.Context, id int, req models.MagazineUpdate) (*models.Magazine, error) {
	return s.repo.UpdateMagazine(ctx, id, req)
}

// Remove полностью удаляет журнал. Отсутствующий ID даёт models.ErrNotFound.
func (s *MagazineService) Remove(ctx context.Context, id int) error {
	const op = "services.magazine.Remove"
	count, err := s.repo.DeleteMagazine(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	s.log.Info("deleted magazine", slog.Int("id", id))
	return nil
}
