package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/logger"
	"timing-rental-backend/internal/repository"
	"timing-rental-backend/internal/utils"
)

// rentalService is the reservation engine. Create, Return and Cancel each
// run their whole validate-then-mutate sequence inside one serializable
// transaction so that two concurrent rentals can never both claim the same
// device, product quantity or unit.
type rentalService struct {
	reg repository.Registry
}

func NewRentalService(reg repository.Registry) RentalService {
	return &rentalService{reg: reg}
}

func (s *rentalService) Create(ctx context.Context, input CreateRentalInput) (*domain.Rental, error) {
	var created *domain.Rental
	err := s.reg.WithinTx(ctx, func(tx repository.Registry) error {
		if _, err := tx.Clients().GetByID(ctx, input.ClientID); err != nil {
			return err
		}

		rental := &domain.Rental{
			ClientID:        input.ClientID,
			StartDate:       input.StartDate,
			ExpectedEndDate: input.ExpectedEndDate,
			Status:          domain.RentalStatusActive,
			Notes:           input.Notes,
			Devices:         []domain.RentalDevice{},
			Products:        []domain.RentalProduct{},
			ProductUnits:    []domain.RentalProductUnit{},
			ChipRanges:      []domain.RentalChipRange{},
		}

		if err := s.reserveDevices(ctx, tx, rental, input.DeviceIDs); err != nil {
			return err
		}
		if err := s.reserveProducts(ctx, tx, rental, input.Products); err != nil {
			return err
		}
		if err := s.reserveProductUnits(ctx, tx, rental, input.ProductUnitIDs); err != nil {
			return err
		}
		if err := s.bookChipRanges(ctx, tx, rental, input.ChipRanges); err != nil {
			return err
		}

		if err := tx.Rentals().Create(ctx, rental); err != nil {
			return err
		}

		detail, err := tx.Rentals().GetDetail(ctx, rental.ID)
		if err != nil {
			return err
		}
		created = detail
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.WithService("rental").Info("rental created",
		"rental_id", created.ID,
		"client_id", created.ClientID,
		"devices", len(created.Devices),
		"products", len(created.Products),
		"product_units", len(created.ProductUnits),
		"chip_ranges", len(created.ChipRanges))
	return created, nil
}

func (s *rentalService) reserveDevices(ctx context.Context, tx repository.Registry, rental *domain.Rental, deviceIDs []int64) error {
	if len(deviceIDs) == 0 {
		return nil
	}
	devices, err := tx.Devices().GetByIDs(ctx, deviceIDs)
	if err != nil {
		return err
	}
	if len(devices) != len(deviceIDs) {
		return domain.ErrDeviceNotFound
	}
	for _, d := range devices {
		if !d.AvailableForRental {
			return domain.ErrDeviceNotAvailableForRental
		}
		if d.OperationalStatus != domain.OperationalStatusAvailable {
			return domain.ErrDeviceNotAvailable
		}
	}
	if err := tx.Devices().SetOperationalStatus(ctx, deviceIDs, domain.OperationalStatusRented); err != nil {
		return err
	}
	for _, id := range deviceIDs {
		rental.Devices = append(rental.Devices, domain.RentalDevice{DeviceID: id})
	}
	return nil
}

func (s *rentalService) reserveProducts(ctx context.Context, tx repository.Registry, rental *domain.Rental, lines []RentalProductInput) error {
	if len(lines) == 0 {
		return nil
	}
	// Validate every line before moving any quantity so a failing line does
	// not depend on position.
	for _, line := range lines {
		if line.Quantity <= 0 {
			return domain.ErrQuantityMustBePositive
		}
		p, err := tx.Products().GetByID(ctx, line.ProductID)
		if err != nil {
			return err
		}
		if p.AvailableQuantity < line.Quantity {
			return domain.ErrNotEnoughProductQuantity
		}
	}
	for _, line := range lines {
		ok, err := tx.Products().RentQuantity(ctx, line.ProductID, line.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotEnoughProductQuantity
		}
		rental.Products = append(rental.Products, domain.RentalProduct{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return nil
}

func (s *rentalService) reserveProductUnits(ctx context.Context, tx repository.Registry, rental *domain.Rental, unitIDs []int64) error {
	if len(unitIDs) == 0 {
		return nil
	}
	units, err := tx.ProductUnits().GetByIDs(ctx, unitIDs)
	if err != nil {
		return err
	}
	if len(units) != len(unitIDs) {
		return domain.ErrProductUnitNotFound
	}
	for _, u := range units {
		if u.Status != domain.ProductUnitStatusAvailable {
			return domain.ErrProductUnitNotAvailable
		}
	}
	if err := tx.ProductUnits().SetStatus(ctx, unitIDs, domain.ProductUnitStatusRented); err != nil {
		return err
	}
	for _, id := range unitIDs {
		rental.ProductUnits = append(rental.ProductUnits, domain.RentalProductUnit{ProductUnitID: id})
	}
	return nil
}

// bookChipRanges records the requested intervals on the rental. Booking
// carries no reservation state on the chip type: ranges are not checked for
// overlap against other rentals and are never released.
func (s *rentalService) bookChipRanges(ctx context.Context, tx repository.Registry, rental *domain.Rental, ranges []ChipRangeInput) error {
	if len(ranges) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(ranges))
	seen := make(map[int64]bool)
	for _, cr := range ranges {
		if !seen[cr.ChipTypeID] {
			seen[cr.ChipTypeID] = true
			ids = append(ids, cr.ChipTypeID)
		}
	}
	chipTypes, err := tx.ChipTypes().GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(chipTypes) != len(ids) {
		return domain.ErrChipTypeNotFound
	}
	for _, cr := range ranges {
		if cr.RangeStart > cr.RangeEnd {
			return domain.ErrInvalidChipRange
		}
		rental.ChipRanges = append(rental.ChipRanges, domain.RentalChipRange{
			ChipTypeID: cr.ChipTypeID,
			RangeStart: cr.RangeStart,
			RangeEnd:   cr.RangeEnd,
		})
	}
	return nil
}

func (s *rentalService) Get(ctx context.Context, id int64) (*domain.Rental, error) {
	return s.reg.Rentals().GetDetail(ctx, id)
}

func (s *rentalService) List(ctx context.Context, filter domain.RentalFilter, page, pageSize int) ([]domain.Rental, int, error) {
	return s.reg.Rentals().List(ctx, filter, page, pageSize)
}

func (s *rentalService) Update(ctx context.Context, id int64, input UpdateRentalInput) (*domain.Rental, error) {
	rental, err := s.reg.Rentals().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, domain.ErrRentalNotActive
	}
	if input.StartDate != nil {
		rental.StartDate = *input.StartDate
	}
	if input.ExpectedEndDate != nil {
		rental.ExpectedEndDate = *input.ExpectedEndDate
	}
	if input.Notes != nil {
		rental.Notes = *input.Notes
	}
	if err := s.reg.Rentals().Update(ctx, rental); err != nil {
		return nil, err
	}
	return s.reg.Rentals().GetDetail(ctx, id)
}

func (s *rentalService) Return(ctx context.Context, id int64) (*domain.Rental, error) {
	now := time.Now()
	return s.close(ctx, id, domain.RentalStatusReturned, &now)
}

func (s *rentalService) Cancel(ctx context.Context, id int64) (*domain.Rental, error) {
	return s.close(ctx, id, domain.RentalStatusCancelled, nil)
}

// close releases every held resource and stamps the terminal status. Return
// and Cancel release identically; only the final status and the actual end
// date differ. Closing an already-closed rental fails without touching
// inventory.
func (s *rentalService) close(ctx context.Context, id int64, status domain.RentalStatus, endedAt *time.Time) (*domain.Rental, error) {
	var closed *domain.Rental
	err := s.reg.WithinTx(ctx, func(tx repository.Registry) error {
		rental, err := tx.Rentals().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rental.Status != domain.RentalStatusActive {
			return domain.ErrRentalNotActive
		}

		if len(rental.Devices) > 0 {
			ids := make([]int64, len(rental.Devices))
			for i, d := range rental.Devices {
				ids[i] = d.DeviceID
			}
			if err := tx.Devices().SetOperationalStatus(ctx, ids, domain.OperationalStatusAvailable); err != nil {
				return err
			}
		}

		for _, line := range rental.Products {
			ok, err := tx.Products().ReturnQuantity(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrNotEnoughRentedQuantity
			}
		}

		if len(rental.ProductUnits) > 0 {
			ids := make([]int64, len(rental.ProductUnits))
			for i, u := range rental.ProductUnits {
				ids[i] = u.ProductUnitID
			}
			if err := tx.ProductUnits().SetStatus(ctx, ids, domain.ProductUnitStatusAvailable); err != nil {
				return err
			}
		}

		// Chip ranges stay on the rental untouched.

		rental.Status = status
		rental.ActualEndDate = endedAt
		if err := tx.Rentals().Update(ctx, rental); err != nil {
			return err
		}

		detail, err := tx.Rentals().GetDetail(ctx, id)
		if err != nil {
			return err
		}
		closed = detail
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.WithService("rental").Info("rental closed", "rental_id", id, "status", string(status))
	return closed, nil
}

func (s *rentalService) ChipSequence(ctx context.Context, id int64) ([]domain.ChipSequenceRange, error) {
	rental, err := s.reg.Rentals().GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	result := make([]domain.ChipSequenceRange, 0, len(rental.ChipRanges))
	for _, cr := range rental.ChipRanges {
		ct := cr.ChipType
		if ct == nil {
			// The chip type was deleted after booking; skip the range rather
			// than failing the whole report.
			continue
		}
		result = append(result, domain.ChipSequenceRange{
			ChipType:            ct.Name,
			ChipTypeDisplayName: ct.DisplayName,
			RangeStart:          cr.RangeStart,
			RangeEnd:            cr.RangeEnd,
			Sequence:            ct.SequenceInRange(cr.RangeStart, cr.RangeEnd),
		})
	}
	return result, nil
}

func (s *rentalService) ChipFile(ctx context.Context, rentalID, chipTypeID int64) (string, []byte, error) {
	rental, err := s.reg.Rentals().GetDetail(ctx, rentalID)
	if err != nil {
		return "", nil, err
	}

	var chipType *domain.ChipType
	var items []domain.SequenceItem
	for _, cr := range rental.ChipRanges {
		if cr.ChipTypeID != chipTypeID || cr.ChipType == nil {
			continue
		}
		chipType = cr.ChipType
		items = append(items, cr.ChipType.SequenceInRange(cr.RangeStart, cr.RangeEnd)...)
	}
	if chipType == nil {
		return "", nil, domain.ErrChipTypeNotInRental
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Chip", "Code"}); err != nil {
		return "", nil, err
	}
	for _, item := range items {
		if err := w.Write([]string{strconv.Itoa(item.Chip), item.Code}); err != nil {
			return "", nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, err
	}

	clientName := ""
	if rental.Client != nil {
		clientName = rental.Client.Name
	}
	filename := fmt.Sprintf("%s-%s-%s-rent.csv",
		utils.SanitizeFilename(clientName),
		utils.FormatDateForFilename(rental.StartDate),
		utils.SanitizeFilename(chipType.Name))

	return filename, buf.Bytes(), nil
}
