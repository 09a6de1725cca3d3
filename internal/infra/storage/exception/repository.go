package exception

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/kmosk/space-reservation-service/internal/domain"
	"github.com/kmosk/space-reservation-service/pkg/psqlbuilder"
	"github.com/kmosk/space-reservation-service/pkg/txmanager"
	"github.com/kmosk/space-reservation-service/pkg/types"
)

// Repository репозиторий исключений расписания (закрытия и особые часы на дату)
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindForDate возвращает исключение, применимое к помещению на дату.
// Приоритет реализован как явный двухуровневый поиск:
//  1. исключение конкретного помещения
//  2. исключение по умолчанию (space_id IS NULL)
//
// Если не найдено ни одного, возвращает ErrExceptionNotFound.
func (r *Repository) FindForDate(ctx context.Context, spaceID int64, date time.Time) (*domain.DateException, error) {
	exc, err := r.findForDate(ctx, &spaceID, date)
	if err == nil {
		return exc, nil
	}
	if err != ErrExceptionNotFound {
		return nil, err
	}

	return r.findForDate(ctx, nil, date)
}

func (r *Repository) findForDate(ctx context.Context, spaceID *int64, date time.Time) (*domain.DateException, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"space_id",
		"date",
		"is_closed",
		"override_open_time",
		"override_close_time",
		"created_at",
		"updated_at",
	).
		From("exceptions").
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		OrderBy("id ASC").
		Limit(1)

	if spaceID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"space_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"space_id": *spaceID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindForDate - build select query: %v", ErrBuildQuery, err)
	}

	var exc domain.DateException
	var overrideOpen, overrideClose sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&exc.ID,
		&exc.SpaceID,
		&exc.Date,
		&exc.IsClosed,
		&overrideOpen,
		&overrideClose,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrExceptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindForDate - scan exception: %v", ErrScanRow, err)
	}

	if exc.OverrideOpenTime, err = toTimeString(overrideOpen); err != nil {
		return nil, fmt.Errorf("%w: FindForDate - override_open_time: %v", ErrScanRow, err)
	}
	if exc.OverrideCloseTime, err = toTimeString(overrideClose); err != nil {
		return nil, fmt.Errorf("%w: FindForDate - override_close_time: %v", ErrScanRow, err)
	}

	exc.CreatedAt = createdAt.Time
	exc.UpdatedAt = updatedAt.Time

	return &exc, nil
}

// toTimeString конвертирует nullable time-колонку в *types.TimeString
func toTimeString(v sql.NullString) (*types.TimeString, error) {
	if !v.Valid {
		return nil, nil
	}
	ts, err := types.NewTimeStringFromString(v.String)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
