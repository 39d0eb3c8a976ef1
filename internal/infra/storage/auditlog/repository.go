package auditlog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

var entryColumns = []string{
	"id",
	"slot_id",
	"previous_state",
	"new_state",
	"changed_by",
	"timestamp",
}

// Repository репозиторий журнала переходов состояний.
// Записи только добавляются и читаются; единственный путь удаления
// это каскад при удалении слота.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись о переходе состояния.
// Вызывается только сервисом слотов внутри транзакции create/setState.
func (r *Repository) Append(ctx context.Context, entry *domain.AuditEntry) (*domain.AuditEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	entry.ID = uuid.NewString()

	var previousState *string
	if entry.PreviousState != nil {
		s := string(*entry.PreviousState)
		previousState = &s
	}

	query, args, err := psqlbuilder.Insert("slot_logs").
		Columns("id", "slot_id", "previous_state", "new_state", "changed_by").
		Values(entry.ID, entry.SlotID, previousState, entry.NewState, entry.ChangedBy).
		Suffix("RETURNING timestamp").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&entry.Timestamp); err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return entry, nil
}

// ListBySlot возвращает записи журнала слота, новые первыми, не более limit.
// Для неизвестного слота возвращается пустой список, не ошибка.
func (r *Repository) ListBySlot(ctx context.Context, slotID string, limit uint64) ([]*domain.AuditEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns...).
		From("slot_logs").
		Where(squirrel.Eq{"slot_id": slotID}).
		OrderBy("timestamp DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// ListSince возвращает записи с timestamp >= filter.Since, опционально
// отфильтрованные по newState. Порядок не гарантируется, агрегирует вызывающий.
func (r *Repository) ListSince(ctx context.Context, filter domain.AuditWindowFilter) ([]*domain.AuditEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(entryColumns...).
		From("slot_logs").
		Where(squirrel.GtOrEq{"timestamp": filter.Since})

	if len(filter.NewStates) > 0 {
		stateStrings := make([]string, len(filter.NewStates))
		for i, s := range filter.NewStates {
			stateStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"new_state": stateStrings})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSince - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSince - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// DeleteBySlot удаляет все записи журнала слота.
// Вызывается только каскадом удаления слота. Отсутствие записей не ошибка.
func (r *Repository) DeleteBySlot(ctx context.Context, slotID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_logs").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBySlot - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBySlot - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBySlot - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanEntries сканирует результаты запроса в слайс записей журнала
func (r *Repository) scanEntries(rows *sql.Rows) ([]*domain.AuditEntry, error) {
	entries := make([]*domain.AuditEntry, 0)

	for rows.Next() {
		var entry domain.AuditEntry
		var previousState sql.NullString

		err := rows.Scan(
			&entry.ID,
			&entry.SlotID,
			&previousState,
			&entry.NewState,
			&entry.ChangedBy,
			&entry.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}

		if previousState.Valid {
			state := domain.SlotState(previousState.String)
			entry.PreviousState = &state
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
