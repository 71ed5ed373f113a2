package service

import (
	"context"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/repository"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	clientRepo repository.ClientRepository
}

func NewDeviceService(deviceRepo repository.DeviceRepository, clientRepo repository.ClientRepository) DeviceService {
	return &deviceService{deviceRepo: deviceRepo, clientRepo: clientRepo}
}

func (s *deviceService) Create(ctx context.Context, input DeviceInput) (*domain.Device, error) {
	if input.OwnerID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *input.OwnerID); err != nil {
			return nil, err
		}
	}
	d := &domain.Device{}
	applyDeviceInput(d, input)
	if d.ManufactoringStatus == "" {
		d.ManufactoringStatus = domain.ManufactoringStatusPending
	}
	if d.OperationalStatus == "" {
		d.OperationalStatus = domain.OperationalStatusInManufacturing
	}
	if err := s.deviceRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *deviceService) Get(ctx context.Context, id int64) (*domain.Device, error) {
	return s.deviceRepo.GetByID(ctx, id)
}

func (s *deviceService) GetByReaderSerial(ctx context.Context, serial string) (*domain.Device, error) {
	return s.deviceRepo.GetByReaderSerial(ctx, serial)
}

func (s *deviceService) GetByCPUSerial(ctx context.Context, serial string) (*domain.Device, error) {
	return s.deviceRepo.GetByCPUSerial(ctx, serial)
}

func (s *deviceService) GetByBatterySerial(ctx context.Context, serial string) (*domain.Device, error) {
	return s.deviceRepo.GetByBatterySerial(ctx, serial)
}

func (s *deviceService) List(ctx context.Context, filter domain.DeviceFilter, page, pageSize int) ([]domain.Device, int, error) {
	return s.deviceRepo.List(ctx, filter, page, pageSize)
}

func (s *deviceService) Update(ctx context.Context, id int64, input DeviceInput) (*domain.Device, error) {
	d, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.OwnerID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *input.OwnerID); err != nil {
			return nil, err
		}
	}
	applyDeviceInput(d, input)
	if err := s.deviceRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *deviceService) SetManufactoringStatus(ctx context.Context, id int64, status domain.ManufactoringStatus) (*domain.Device, error) {
	d, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.ManufactoringStatus = status
	// Finishing manufacturing makes the device operationally available.
	if status == domain.ManufactoringStatusCompleted && d.OperationalStatus == domain.OperationalStatusInManufacturing {
		d.OperationalStatus = domain.OperationalStatusAvailable
	}
	if err := s.deviceRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *deviceService) SetOperationalStatus(ctx context.Context, id int64, status domain.OperationalStatus) (*domain.Device, error) {
	d, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.OperationalStatus = status
	if err := s.deviceRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *deviceService) AssignOwner(ctx context.Context, id int64, ownerID *int64) (*domain.Device, error) {
	d, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ownerID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *ownerID); err != nil {
			return nil, err
		}
	}
	d.OwnerID = ownerID
	if err := s.deviceRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *deviceService) Retire(ctx context.Context, id int64) (*domain.Device, error) {
	return s.SetOperationalStatus(ctx, id, domain.OperationalStatusRetired)
}

func applyDeviceInput(d *domain.Device, input DeviceInput) {
	if input.Model != "" {
		d.Model = input.Model
	}
	if input.ManufactoringCode != "" {
		d.ManufactoringCode = input.ManufactoringCode
	}
	if input.ManufactoringStatus != "" {
		d.ManufactoringStatus = input.ManufactoringStatus
	}
	if input.OperationalStatus != "" {
		d.OperationalStatus = input.OperationalStatus
	}
	d.AvailableForRental = input.AvailableForRental
	d.SerialNumber = input.SerialNumber
	d.PortCount = input.PortCount
	d.FrequencyRegion = input.FrequencyRegion
	d.ManufacturingDate = input.ManufacturingDate
	d.Notes = input.Notes
	d.OwnerID = input.OwnerID
	d.Reader1SerialNumber = input.Reader1SerialNumber
	d.Reader2SerialNumber = input.Reader2SerialNumber
	d.CPUSerialNumber = input.CPUSerialNumber
	d.BatterySerialNumber = input.BatterySerialNumber
	d.TSPowerModel = input.TSPowerModel
	d.CPUFirmware = input.CPUFirmware
	d.GX1ReadersRegion = input.GX1ReadersRegion
	d.HasGSM = input.HasGSM
	d.HasGUN = input.HasGUN
	d.BluetoothAdapter = input.BluetoothAdapter
	d.CoreVersion = input.CoreVersion
	d.Heatsinks = input.Heatsinks
	d.PICVersion = input.PICVersion
}
