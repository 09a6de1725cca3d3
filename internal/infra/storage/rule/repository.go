package rule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kmosk/space-reservation-service/internal/domain"
	"github.com/kmosk/space-reservation-service/pkg/psqlbuilder"
	"github.com/kmosk/space-reservation-service/pkg/txmanager"
)

// Repository репозиторий правил расписания (weekly operating hours)
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindActiveRule возвращает активное правило для помещения и дня недели.
// Приоритет реализован как явный двухуровневый поиск, а не одним запросом
// с "space_id = ? OR space_id IS NULL":
//  1. правило конкретного помещения
//  2. правило по умолчанию (space_id IS NULL)
//
// Если не найдено ни одного, возвращает ErrRuleNotFound.
func (r *Repository) FindActiveRule(ctx context.Context, spaceID int64, dayOfWeek int) (*domain.AvailabilityRule, error) {
	rule, err := r.findActiveRule(ctx, &spaceID, dayOfWeek)
	if err == nil {
		return rule, nil
	}
	if err != ErrRuleNotFound {
		return nil, err
	}

	return r.findActiveRule(ctx, nil, dayOfWeek)
}

func (r *Repository) findActiveRule(ctx context.Context, spaceID *int64, dayOfWeek int) (*domain.AvailabilityRule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"space_id",
		"day_of_week",
		"open_time",
		"close_time",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("availability_rules").
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		Limit(1)

	if spaceID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"space_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"space_id": *spaceID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveRule - build select query: %v", ErrBuildQuery, err)
	}

	var rule domain.AvailabilityRule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&rule.SpaceID,
		&rule.DayOfWeek,
		&rule.OpenTime,
		&rule.CloseTime,
		&rule.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveRule - scan rule: %v", ErrScanRow, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
