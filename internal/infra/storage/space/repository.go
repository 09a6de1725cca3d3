package space

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kmosk/space-reservation-service/internal/domain"
	"github.com/kmosk/space-reservation-service/pkg/psqlbuilder"
	"github.com/kmosk/space-reservation-service/pkg/txmanager"
)

// Repository репозиторий помещений
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория помещений
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое помещение
func (r *Repository) Create(ctx context.Context, space *domain.Space) (*domain.Space, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	images, err := marshalImages(space.Images)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal images: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("spaces").
		Columns(
			"name",
			"description",
			"price_per_hour",
			"capacity",
			"images",
		).
		Values(
			space.Name,
			space.Description,
			space.PricePerHour,
			space.Capacity,
			images,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&space.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return space, nil
}

// GetByID получает помещение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	space, err := scanSpace(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan space: %v", ErrScanRow, err)
	}

	return space, nil
}

// List получает список помещений с пагинацией
func (r *Repository) List(ctx context.Context, filter domain.SpacesFilter) ([]*domain.Space, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	limit := filter.Limit
	if limit <= 0 || limit > domain.MaxListLimit {
		limit = domain.DefaultListLimit
	}

	selectBuilder := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		OrderBy("id ASC").
		Limit(uint64(limit))

	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(uint64(filter.Offset))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	spaces := make([]*domain.Space, 0)
	for rows.Next() {
		space, err := scanSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		spaces = append(spaces, space)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}

// Update обновляет помещение
func (r *Repository) Update(ctx context.Context, space *domain.Space) (*domain.Space, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	images, err := marshalImages(space.Images)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - marshal images: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("spaces").
		Set("name", space.Name).
		Set("description", space.Description).
		Set("price_per_hour", space.PricePerHour).
		Set("capacity", space.Capacity).
		Set("images", images).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": space.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return space, nil
}

// Delete удаляет помещение
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

var spaceColumns = []string{
	"id",
	"name",
	"description",
	"price_per_hour",
	"capacity",
	"images",
	"created_at",
	"updated_at",
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSpace(row rowScanner) (*domain.Space, error) {
	var space domain.Space
	var images []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&space.ID,
		&space.Name,
		&space.Description,
		&space.PricePerHour,
		&space.Capacity,
		&images,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(images) > 0 {
		if err := json.Unmarshal(images, &space.Images); err != nil {
			return nil, fmt.Errorf("unmarshal images: %w", err)
		}
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return &space, nil
}

// marshalImages сериализует список изображений в jsonb, пустой список - как []
func marshalImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	return json.Marshal(images)
}
