package drone

import (
	"context"
	"fmt"

	"fleet/internal/entities"
)

type Drone struct {
	repository Repository
}

func New(repository Repository) *Drone {
	return &Drone{
		repository: repository,
	}
}

func (s *Drone) CreateDrone(ctx context.Context, droneModify entities.DroneModify) (*entities.Drone, error) {
	if droneModify.Code == nil ||
		droneModify.BatteryLevel == nil ||
		droneModify.MaxPayload == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidCode(*droneModify.Code) {
		return nil, ErrInvalidCode
	}
	if !isValidBatteryLevel(*droneModify.BatteryLevel) {
		return nil, ErrInvalidBatteryLevel
	}
	if !isValidMaxPayload(*droneModify.MaxPayload) {
		return nil, ErrInvalidMaxPayload
	}
	if droneModify.Status != nil && !isValidStatus(droneModify.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if droneModify.Location != nil && !isValidLocation(*droneModify.Location) {
		return nil, ErrInvalidLocation
	}

	if droneModify.Status == nil {
		defaultStatus := entities.DefaultDroneStatus
		droneModify.Status = &defaultStatus
	}

	created, err := s.repository.Create(ctx, droneModify)
	if err != nil {
		return nil, fmt.Errorf("create drone: %w", err)
	}

	return created, nil
}

func (s *Drone) UpdateDrone(ctx context.Context, droneModify entities.DroneModify) (*entities.Drone, error) {
	if droneModify.ID == nil {
		return nil, ErrInvalidDroneID
	}
	if droneModify.Code == nil &&
		droneModify.Status == nil &&
		droneModify.BatteryLevel == nil &&
		droneModify.MaxPayload == nil &&
		droneModify.Location == nil &&
		droneModify.LastMaintenance == nil &&
		droneModify.NextMaintenance == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if droneModify.Code != nil && !isValidCode(*droneModify.Code) {
		return nil, ErrInvalidCode
	}
	if droneModify.Status != nil && !isValidStatus(droneModify.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if droneModify.BatteryLevel != nil && !isValidBatteryLevel(*droneModify.BatteryLevel) {
		return nil, ErrInvalidBatteryLevel
	}
	if droneModify.MaxPayload != nil && !isValidMaxPayload(*droneModify.MaxPayload) {
		return nil, ErrInvalidMaxPayload
	}
	if droneModify.Location != nil && !isValidLocation(*droneModify.Location) {
		return nil, ErrInvalidLocation
	}

	updated, err := s.repository.Update(ctx, droneModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update drone: %w", err)
	}
	return updated, nil
}

func (s *Drone) GetDrone(ctx context.Context, id int64) (*entities.Drone, error) {
	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get drone: %w", err)
	}

	return found, nil
}

func (s *Drone) GetDrones(ctx context.Context) ([]entities.Drone, error) {
	drones, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get drones: %w", err)
	}

	return drones, nil
}

func (s *Drone) SetDroneStatus(ctx context.Context, id int64, status entities.DroneStatusType) (*entities.Drone, error) {
	if id <= 0 {
		return nil, ErrInvalidDroneID
	}
	if !isValidStatus(status.String()) {
		return nil, ErrInvalidStatus
	}

	droneModify := entities.DroneModify{
		ID:     &id,
		Status: &status,
	}

	updated, err := s.repository.Update(ctx, droneModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update drone status: %w", err)
	}
	return updated, nil
}

func (s *Drone) DeleteDrone(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidDroneID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete drone: %w", err)
	}
	return nil
}

// AcquireForDelivery переводит дрона AVAILABLE -> IN_DELIVERY одним условным
// апдейтом. Два конкурентных вызова на одного дрона: ровно один получает
// успех, второй ErrDroneNotAvailable.
func (s *Drone) AcquireForDelivery(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidDroneID
	}

	rowsAffected, err := s.repository.UpdateStatusWhereCurrent(ctx, id, entities.DroneAvailable, entities.DroneInDelivery)
	if err != nil {
		return fmt.Errorf("acquire drone for delivery: %w", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	// условие не сработало: либо дрона нет, либо он не AVAILABLE
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return fmt.Errorf("acquire drone for delivery: %w", err)
	}
	return ErrDroneNotAvailable
}

// Release возвращает дрона в AVAILABLE без проверки текущего статуса.
func (s *Drone) Release(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidDroneID
	}

	availableStatus := entities.DroneAvailable
	droneModify := entities.DroneModify{
		ID:     &id,
		Status: &availableStatus,
	}

	if _, err := s.repository.Update(ctx, droneModify); err != nil {
		return fmt.Errorf("release drone: %w", err)
	}
	return nil
}

func (s *Drone) ApplyTelemetry(ctx context.Context, telemetry entities.DroneTelemetry) (*entities.Drone, error) {
	if !isValidCode(telemetry.Code) {
		return nil, ErrInvalidCode
	}
	if telemetry.BatteryLevel == nil && telemetry.Location == nil {
		return nil, fmt.Errorf("empty telemetry payload: %w", ErrMissingRequiredFields)
	}
	if telemetry.BatteryLevel != nil && !isValidBatteryLevel(*telemetry.BatteryLevel) {
		return nil, ErrInvalidBatteryLevel
	}
	if telemetry.Location != nil && !isValidLocation(*telemetry.Location) {
		return nil, ErrInvalidLocation
	}

	found, err := s.repository.GetByCode(ctx, telemetry.Code)
	if err != nil {
		return nil, fmt.Errorf("get drone by code: %w", err)
	}

	droneModify := entities.DroneModify{
		ID:           &found.ID,
		BatteryLevel: telemetry.BatteryLevel,
		Location:     telemetry.Location,
	}

	updated, err := s.repository.Update(ctx, droneModify)
	if err != nil {
		return nil, fmt.Errorf("apply telemetry: %w", err)
	}
	return updated, nil
}

// SweepMaintenanceDue отправляет в MAINTENANCE всех AVAILABLE дронов с
// истёкшим next_maintenance. Дроны IN_DELIVERY не трогаем, их заберёт
// следующий проход после освобождения.
func (s *Drone) SweepMaintenanceDue(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.UpdateMaintenanceWhereDue(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep maintenance due: %w", err)
	}

	return rowsAffected, nil
}
