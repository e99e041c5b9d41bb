package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

// CreateRecordCommand carries the creation form. Status is not part of it:
// new records always start EN_ROUTE.
type CreateRecordCommand struct {
	Counterparty string  `json:"counterparty"`
	Product      string  `json:"product"`
	Brand        string  `json:"brand"`
	Group        string  `json:"group"`
	Season       string  `json:"season"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
	Warehouse    string  `json:"warehouse"`
	Payment      string  `json:"payment"`
	Featured     bool    `json:"featured"`
	Scope        authz.Scope
}

// UpdateRecordCommand additionally exposes Status and NotificationSent,
// which only the edit form may change.
type UpdateRecordCommand struct {
	ID               uint
	Counterparty     string  `json:"counterparty"`
	Product          string  `json:"product"`
	Brand            string  `json:"brand"`
	Group            string  `json:"group"`
	Season           string  `json:"season"`
	Quantity         int     `json:"quantity"`
	UnitPrice        float64 `json:"unit_price"`
	TotalPrice       float64 `json:"total_price"`
	Status           string  `json:"status"`
	Warehouse        string  `json:"warehouse"`
	Payment          string  `json:"payment"`
	NotificationSent bool    `json:"notification_sent"`
	Featured         bool    `json:"featured"`
	Scope            authz.Scope
}

// SaveRecordHandler covers record creation and full updates
type SaveRecordHandler struct {
	records domain.RecordRepository
}

func NewSaveRecordHandler(records domain.RecordRepository) *SaveRecordHandler {
	return &SaveRecordHandler{records: records}
}

func (h *SaveRecordHandler) HandleCreate(ctx context.Context, cmd CreateRecordCommand) (*domain.TireRecord, error) {
	record := &domain.TireRecord{
		Counterparty: strings.TrimSpace(cmd.Counterparty),
		Product:      strings.TrimSpace(cmd.Product),
		Brand:        strings.TrimSpace(cmd.Brand),
		Group:        cmd.Group,
		Season:       cmd.Season,
		Quantity:     cmd.Quantity,
		UnitPrice:    cmd.UnitPrice,
		TotalPrice:   cmd.TotalPrice,
		Status:       domain.StatusEnRoute,
		Warehouse:    cmd.Warehouse,
		Payment:      cmd.Payment,
		Featured:     cmd.Featured,
		OwnerID:      cmd.Scope.UserID,
	}
	if err := validateRecord(record); err != nil {
		return nil, err
	}

	record.Normalize()
	if err := createRecord(ctx, h.records, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (h *SaveRecordHandler) HandleUpdate(ctx context.Context, cmd UpdateRecordCommand) (*domain.TireRecord, error) {
	record, err := findRecord(ctx, h.records, cmd.Scope, cmd.ID)
	if err != nil {
		return nil, err
	}

	record.Counterparty = strings.TrimSpace(cmd.Counterparty)
	record.Product = strings.TrimSpace(cmd.Product)
	record.Brand = strings.TrimSpace(cmd.Brand)
	record.Group = cmd.Group
	record.Season = cmd.Season
	record.Quantity = cmd.Quantity
	record.UnitPrice = cmd.UnitPrice
	record.TotalPrice = cmd.TotalPrice
	record.Status = cmd.Status
	record.Warehouse = cmd.Warehouse
	record.Payment = cmd.Payment
	record.NotificationSent = cmd.NotificationSent
	record.Featured = cmd.Featured

	if err := validateRecord(record); err != nil {
		return nil, err
	}

	record.Normalize()
	if err := updateRecord(ctx, h.records, record); err != nil {
		return nil, err
	}
	return record, nil
}

// createRecord, findRecord and updateRecord prefer the span-recording
// variants when the repository provides them.
func createRecord(ctx context.Context, records domain.RecordRepository, record *domain.TireRecord) error {
	if traced, ok := records.(domain.ContextRecordRepository); ok {
		return traced.CreateWithContext(ctx, record)
	}
	return records.Create(record)
}

func findRecord(ctx context.Context, records domain.RecordRepository, scope authz.Scope, id uint) (*domain.TireRecord, error) {
	if traced, ok := records.(domain.ContextRecordRepository); ok {
		return traced.FindByIDWithContext(ctx, scope, id)
	}
	return records.FindByID(scope, id)
}

func updateRecord(ctx context.Context, records domain.RecordRepository, record *domain.TireRecord) error {
	if traced, ok := records.(domain.ContextRecordRepository); ok {
		return traced.UpdateWithContext(ctx, record)
	}
	return records.Update(record)
}

func validateRecord(record *domain.TireRecord) error {
	if record.Counterparty == "" {
		return fmt.Errorf("counterparty is required: %w", apperr.ErrValidation)
	}
	if record.Product == "" {
		return fmt.Errorf("product is required: %w", apperr.ErrValidation)
	}
	if record.Status != "" && !domain.ValidStatus(record.Status) {
		return fmt.Errorf("invalid status %q: %w", record.Status, apperr.ErrValidation)
	}
	if !domain.ValidGroup(record.Group) {
		return fmt.Errorf("invalid group %q: %w", record.Group, apperr.ErrValidation)
	}
	if !domain.ValidSeason(record.Season) {
		return fmt.Errorf("invalid season %q: %w", record.Season, apperr.ErrValidation)
	}
	if !domain.ValidWarehouse(record.Warehouse) {
		return fmt.Errorf("invalid warehouse %q: %w", record.Warehouse, apperr.ErrValidation)
	}
	if !domain.ValidPayment(record.Payment) {
		return fmt.Errorf("invalid payment method %q: %w", record.Payment, apperr.ErrValidation)
	}
	return nil
}
