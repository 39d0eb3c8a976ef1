package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
)

// Service сервис управления парковочными слотами.
// Каждая мутация слота и соответствующая ей запись журнала выполняются
// в одной транзакции: успешный create/setState всегда оставляет ровно
// одну запись, удаление не оставляет осиротевших записей.
type Service struct {
	slotRepo  SlotRepository
	auditRepo AuditLogRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	auditRepo AuditLogRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:  slotRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Create создает слот в состоянии Free и пишет первую запись журнала
// (previousState = null). Уникальность метки обеспечивает индекс БД.
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: creating slot label=%q type=%q actor=%s", req.Label, req.Type, req.Actor)

	newSlot, err := req.ToDomainSlot()
	if err != nil {
		s.logger.Warn("Create: validation failed for label=%q: %v", req.Label, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created *domain.Slot
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = s.slotRepo.Create(ctx, newSlot)
		if err != nil {
			return err
		}

		_, err = s.auditRepo.Append(ctx, &domain.AuditEntry{
			SlotID:        created.ID,
			PreviousState: nil,
			NewState:      created.State,
			ChangedBy:     req.Actor,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateLabel) {
			s.logger.Warn("Create: duplicate label=%q", newSlot.Label)
			return nil, ErrDuplicateLabel
		}
		s.logger.Error("Create: failed to create slot label=%q: %v", newSlot.Label, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: slot created id=%s label=%q", created.ID, created.Label)
	return models.FromDomainSlot(created), nil
}

// List возвращает все слоты, отсортированные по метке
func (s *Service) List(ctx context.Context) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}

// GetByID возвращает слот по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.SlotResponse, error) {
	foundSlot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(foundSlot), nil
}

// SetState переводит слот в новое состояние и пишет запись журнала с
// предыдущим состоянием. Переход в текущее состояние допустим и тоже
// журналируется, система не выделяет self-transition в особый случай.
func (s *Service) SetState(ctx context.Context, id string, req *models.UpdateStateRequest) (*models.SlotResponse, error) {
	s.logger.Info("SetState: slot id=%s -> state=%q actor=%s", id, req.State, req.Actor)

	targetState, err := models.ToDomainSlotState(req.State)
	if err != nil {
		s.logger.Warn("SetState: invalid state=%q for slot id=%s", req.State, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var updated *domain.Slot
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// Читаем с блокировкой строки, чтобы previousState в журнале
		// отражал реальный порядок конкурентных переходов
		current, err := s.slotRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		previousState := current.State

		updated, err = s.slotRepo.UpdateState(ctx, id, targetState)
		if err != nil {
			return err
		}

		_, err = s.auditRepo.Append(ctx, &domain.AuditEntry{
			SlotID:        updated.ID,
			PreviousState: &previousState,
			NewState:      updated.State,
			ChangedBy:     req.Actor,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("SetState: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("SetState: failed for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetState - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetState: slot id=%s now in state=%s", updated.ID, updated.State)
	return models.FromDomainSlot(updated), nil
}

// Delete удаляет слот и каскадно все записи его журнала
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting slot id=%s", id)

	var removedLogs int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.slotRepo.Delete(ctx, id); err != nil {
			return err
		}

		var err error
		removedLogs, err = s.auditRepo.DeleteBySlot(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%s not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: failed for slot id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: slot id=%s deleted, %d log entries removed", id, removedLogs)
	return nil
}

// GetLogs возвращает записи журнала слота, новые первыми, не более limit.
// Для неизвестного слота возвращается пустой список.
func (s *Service) GetLogs(ctx context.Context, slotID string, limit uint64) (*models.SlotLogListResponse, error) {
	entries, err := s.auditRepo.ListBySlot(ctx, slotID, limit)
	if err != nil {
		s.logger.Error("GetLogs: repository error for slot id=%s: %v", slotID, err)
		return nil, fmt.Errorf("%w: GetLogs - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetLogs: fetched %d entries for slot id=%s", len(entries), slotID)
	return models.FromDomainAuditEntryList(entries), nil
}
