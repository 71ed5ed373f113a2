package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/logger"
	"timing-rental-backend/internal/repository"
)

type chipTypeService struct {
	chipTypeRepo repository.ChipTypeRepository
}

func NewChipTypeService(chipTypeRepo repository.ChipTypeRepository) ChipTypeService {
	return &chipTypeService{chipTypeRepo: chipTypeRepo}
}

func (s *chipTypeService) Create(ctx context.Context, input ChipTypeInput) (*domain.ChipType, error) {
	ct := &domain.ChipType{
		Name:        input.Name,
		DisplayName: input.DisplayName,
		TotalStock:  input.TotalStock,
	}
	if err := s.chipTypeRepo.Create(ctx, ct); err != nil {
		return nil, err
	}
	return ct, nil
}

func (s *chipTypeService) Get(ctx context.Context, id int64) (*domain.ChipType, error) {
	return s.chipTypeRepo.GetByID(ctx, id)
}

func (s *chipTypeService) List(ctx context.Context) ([]domain.ChipType, error) {
	return s.chipTypeRepo.List(ctx)
}

func (s *chipTypeService) Update(ctx context.Context, id int64, input ChipTypeInput) (*domain.ChipType, error) {
	ct, err := s.chipTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		ct.Name = input.Name
	}
	if input.DisplayName != "" {
		ct.DisplayName = input.DisplayName
	}
	if input.TotalStock != 0 {
		ct.TotalStock = input.TotalStock
	}
	if err := s.chipTypeRepo.Update(ctx, ct); err != nil {
		return nil, err
	}
	return ct, nil
}

func (s *chipTypeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.chipTypeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.chipTypeRepo.Delete(ctx, id)
}

// UploadSequence parses a Chip,Code CSV and replaces the chip type's stored
// sequence. Column order is free, header names are case-insensitive, the
// delimiter is auto-detected as comma or semicolon and a UTF-8 BOM is
// stripped. Returns the number of parsed rows.
func (s *chipTypeService) UploadSequence(ctx context.Context, id int64, file io.Reader) (*domain.ChipType, int, error) {
	ct, err := s.chipTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	sequence, err := parseSequenceCSV(file)
	if err != nil {
		return nil, 0, err
	}

	if err := s.chipTypeRepo.UpdateSequence(ctx, id, sequence); err != nil {
		return nil, 0, err
	}
	ct.SequenceData = sequence
	logger.WithService("chiptype").Info("sequence uploaded", "chip_type_id", id, "rows", len(sequence))
	return ct, len(sequence), nil
}

// GetSequence returns the full stored sequence.
func (s *chipTypeService) GetSequence(ctx context.Context, id int64) ([]domain.SequenceItem, error) {
	ct, err := s.chipTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ct.SequenceData == nil {
		return []domain.SequenceItem{}, nil
	}
	return ct.SequenceData, nil
}

func (s *chipTypeService) GetSequenceRange(ctx context.Context, id int64, start, end int) ([]domain.SequenceItem, error) {
	if start > end {
		return nil, domain.ErrInvalidChipRange
	}
	ct, err := s.chipTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ct.SequenceInRange(start, end), nil
}

func parseSequenceCSV(file io.Reader) ([]domain.SequenceItem, error) {
	br := bufio.NewReader(file)

	// Strip the UTF-8 BOM Excel likes to prepend.
	if bom, err := br.Peek(3); err == nil && bytes.Equal(bom, []byte{0xEF, 0xBB, 0xBF}) {
		br.Discard(3)
	}

	headerLine, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, domain.ErrCSVParse
	}
	delimiter := byte(',')
	if strings.Count(headerLine, ";") > strings.Count(headerLine, ",") {
		delimiter = ';'
	}

	reader := csv.NewReader(io.MultiReader(strings.NewReader(headerLine), br))
	reader.Comma = rune(delimiter)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, domain.ErrCSVEmpty
	}
	if err != nil {
		return nil, domain.ErrCSVParse
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.ErrCSVParse
		}
		if blankRecord(record) {
			continue
		}
		records = append(records, record)
	}

	// An empty file beats a bad header: column validation only applies once
	// there is at least one data row.
	if len(records) == 0 {
		return nil, domain.ErrCSVEmpty
	}

	chipCol, codeCol := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "chip":
			chipCol = i
		case "code":
			codeCol = i
		}
	}
	if chipCol < 0 || codeCol < 0 {
		return nil, domain.ErrCSVInvalidColumns
	}

	sequence := make([]domain.SequenceItem, 0, len(records))
	for i, record := range records {
		if chipCol >= len(record) || codeCol >= len(record) {
			return nil, domain.ErrCSVParse
		}
		chip, err := strconv.Atoi(strings.TrimSpace(record[chipCol]))
		if err != nil {
			// Row numbers are 1-based and the header is row 1.
			return nil, domain.CSVInvalidChipValue(i + 2)
		}
		sequence = append(sequence, domain.SequenceItem{Chip: chip, Code: strings.TrimSpace(record[codeCol])})
	}
	return sequence, nil
}

func blankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
