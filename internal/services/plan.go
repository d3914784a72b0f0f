package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

// PlanRepository определяет методы для работы с тарифами в хранилище.
type PlanRepository interface {
	ListPlans(ctx context.Context) ([]*models.Plan, error)
	GetPlan(ctx context.Context, id int) (*models.Plan, error)
	CreatePlan(ctx context.Context, req models.DummyPlan) (*models.Plan, error)
	UpdatePlan(ctx context.Context, id int, req models.PlanUpdate) (*models.Plan, error)
	DeletePlan(ctx context.Context, id int) (int, error)
}

// MagazineGetter нужен для проверки существования журнала при привязке тарифа.
type MagazineGetter interface {
	GetMagazine(ctx context.Context, id int) (*models.Magazine, error)
}

// PlanService реализует операции над тарифами.
type PlanService struct {
	repo      PlanRepository
	magazines MagazineGetter
	log       *slog.Logger
}

// NewPlanService создает новый экземпляр PlanService.
func NewPlanService(repo PlanRepository, magazines MagazineGetter, log *slog.Logger) *PlanService {
	return &PlanService{
		repo:      repo,
		magazines: magazines,
		log:       log,
	}
}

// List возвращает все тарифы.
func (s *PlanService) List(ctx context.Context) ([]*models.Plan, error) {
	return s.repo.ListPlans(ctx)
}

// Read возвращает тариф по ID.
func (s *PlanService) Read(ctx context.Context, id int) (*models.Plan, error) {
	return s.repo.GetPlan(ctx, id)
}

// Create создает новый тариф. Период продления должен быть положительным,
// журнал обязан существовать.
func (s *PlanService) Create(ctx context.Context, req models.DummyPlan) (*models.Plan, error) {
	const op = "services.plan.Create"
	if req.RenewalPeriod <= 0 {
		return nil, fmt.Errorf("%s: renewal period must be greater than zero: %w", op, models.ErrInvalidInput)
	}
	if _, err := s.magazines.GetMagazine(ctx, req.MagazineID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	plan, err := s.repo.CreatePlan(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new plan", slog.Int("id", plan.ID), slog.Int("magazine_id", plan.MagazineID))
	return plan, nil
}

// Update изменяет только переданные поля тарифа. Новый magazine_id
// проверяется на существование.
func (s *PlanService) Update(ctx context.Context, id int, req models.PlanUpdate) (*models.Plan, error) {
	const op = "services.plan.Update"
	if req.RenewalPeriod != nil && *req.RenewalPeriod <= 0 {
		return nil, fmt.Errorf("%s: renewal period must be greater than zero: %w", op, models.ErrInvalidInput)
	}
	if req.MagazineID != nil {
		if _, err := s.magazines.GetMagazine(ctx, *req.MagazineID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return s.repo.UpdatePlan(ctx, id, req)
}

// Remove полностью удаляет тариф. Отсутствующий ID даёт models.ErrNotFound.
func (s *PlanService) Remove(ctx context.Context, id int) error {
	const op = "services.plan.Remove"
	count, err := s.repo.DeletePlan(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	s.log.Info("deleted plan", slog.Int("id", id))
	return nil
}
