package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	ListSubscriptions(ctx context.Context) ([]*models.Subscription, error)
	GetSubscription(ctx context.Context, id int) (*models.Subscription, error)
	SubscriptionExists(ctx context.Context, userID, magazineID, planID int) (bool, error)
	CreateSubscription(ctx context.Context, sub models.Subscription) (*models.Subscription, error)
	UpdateSubscription(ctx context.Context, id int, sub models.Subscription) (*models.Subscription, error)
	DeactivateSubscription(ctx context.Context, id, userID int) (int, error)
}

// CatalogRepository разрешает внешние ссылки подписки: пользователя,
// журнал и тариф.
type CatalogRepository interface {
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetMagazine(ctx context.Context, id int) (*models.Magazine, error)
	GetPlan(ctx context.Context, id int) (*models.Plan, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// SubscriptionService реализует бизнес-логику работы с подписками,
// включая вычисление цены и кеширование чтений.
type SubscriptionService struct {
	repo    SubscriptionRepository
	catalog CatalogRepository
	cache   Cache
	log     *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, catalog CatalogRepository, cache Cache, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:    repo,
		catalog: catalog,
		cache:   cache,
		log:     log,
	}
}

// CalculatePrice возвращает цену подписки: базовая цена журнала
// со скидкой тарифа.
func CalculatePrice(basePrice, discount float64) float64 {
	return basePrice * (1 - discount)
}

// Create создает новую подписку. Дубликат тройки (user, magazine, plan)
// отклоняется, внешние ссылки должны разрешаться, вычисленная цена
// должна быть строго положительной.
func (s *SubscriptionService) Create(ctx context.Context, req models.DummySubscription) (*models.Subscription, error) {
	const op = "services.subscription.Create"

	if _, err := s.catalog.GetUser(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("%s: user: %w", op, err)
	}
	magazine, err := s.catalog.GetMagazine(ctx, req.MagazineID)
	if err != nil {
		return nil, fmt.Errorf("%s: magazine: %w", op, err)
	}
	plan, err := s.catalog.GetPlan(ctx, req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("%s: plan: %w", op, err)
	}

	exists, err := s.repo.SubscriptionExists(ctx, req.UserID, req.MagazineID, req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil, fmt.Errorf("%s: subscription: %w", op, models.ErrAlreadyExists)
	}

	price := CalculatePrice(magazine.BasePrice, plan.Discount)
	if price <= 0 {
		return nil, fmt.Errorf("%s: price must be greater than zero: %w", op, models.ErrInvalidInput)
	}

	created, err := s.repo.CreateSubscription(ctx, models.Subscription{
		UserID:      req.UserID,
		MagazineID:  req.MagazineID,
		PlanID:      req.PlanID,
		Price:       price,
		RenewalDate: req.RenewalDate,
		IsActive:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new subscription", slog.Int("id", created.ID))

	cacheKey := fmt.Sprintf("subscription:%d", created.ID)
	if err := s.cache.Set(cacheKey, created, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return created, nil
}

// List возвращает все подписки. Операция только читает данные.
func (s *SubscriptionService) List(ctx context.Context) ([]*models.Subscription, error) {
	return s.repo.ListSubscriptions(ctx)
}

// Read возвращает подписку по ID, используя кеш или репозиторий.
func (s *SubscriptionService) Read(ctx context.Context, id int) (*models.Subscription, error) {
	var result *models.Subscription
	cacheKey := fmt.Sprintf("subscription:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.GetSubscription(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Update применяет частичное обновление и пересчитывает цену по
// итоговой паре журнал+тариф.
func (s *SubscriptionService) Update(ctx context.Context, id int, req models.SubscriptionUpdate) (*models.Subscription, error) {
	const op = "services.subscription.Update"

	current, err := s.repo.GetSubscription(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	next := *current
	if req.UserID != nil {
		if _, err := s.catalog.GetUser(ctx, *req.UserID); err != nil {
			return nil, fmt.Errorf("%s: user: %w", op, err)
		}
		next.UserID = *req.UserID
	}
	if req.MagazineID != nil {
		next.MagazineID = *req.MagazineID
	}
	if req.PlanID != nil {
		next.PlanID = *req.PlanID
	}
	if req.RenewalDate != nil {
		next.RenewalDate = *req.RenewalDate
	}

	magazine, err := s.catalog.GetMagazine(ctx, next.MagazineID)
	if err != nil {
		return nil, fmt.Errorf("%s: magazine: %w", op, err)
	}
	plan, err := s.catalog.GetPlan(ctx, next.PlanID)
	if err != nil {
		return nil, fmt.Errorf("%s: plan: %w", op, err)
	}
	next.Price = CalculatePrice(magazine.BasePrice, plan.Discount)

	updated, err := s.repo.UpdateSubscription(ctx, id, next)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated subscription", slog.Int("id", id))

	cacheKey := fmt.Sprintf("subscription:%d", id)
	if err := s.cache.Set(cacheKey, updated, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return updated, nil
}

// Deactivate помечает подписку вызывающего пользователя неактивной.
// Чужая или отсутствующая подписка даёт models.ErrNotFound.
func (s *SubscriptionService) Deactivate(ctx context.Context, id, userID int) error {
	const op = "services.subscription.Deactivate"

	cacheKey := fmt.Sprintf("subscription:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.DeactivateSubscription(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	s.log.Info("deactivated subscription", slog.Int("id", id))
	return nil
}
