package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/pkg/authz"
)

var tracer = otel.Tracer("inventory-repository")

// GormRecordRepositoryWithTracing wraps GormRecordRepository with tracing
type GormRecordRepositoryWithTracing struct {
	*GormRecordRepository
}

// NewGormRecordRepositoryWithTracing creates a new repository with tracing
func NewGormRecordRepositoryWithTracing(db *gorm.DB) *GormRecordRepositoryWithTracing {
	return &GormRecordRepositoryWithTracing{
		GormRecordRepository: NewGormRecordRepository(db),
	}
}

// Create with tracing
func (r *GormRecordRepositoryWithTracing) CreateWithContext(ctx context.Context, record *domain.TireRecord) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("record.counterparty", record.Counterparty),
			attribute.String("record.status", record.Status),
			attribute.Int("record.quantity", record.Quantity),
		),
	)
	defer span.End()

	err := r.GormRecordRepository.Create(record)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("record.id", int(record.ID)))
	return nil
}

// FindByID with tracing
func (r *GormRecordRepositoryWithTracing) FindByIDWithContext(ctx context.Context, scope authz.Scope, id uint) (*domain.TireRecord, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("record.id", int(id)),
			attribute.Bool("scope.admin", scope.Admin),
		),
	)
	defer span.End()

	record, err := r.GormRecordRepository.FindByID(scope, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("record.status", record.Status))
	return record, nil
}

// List with tracing
func (r *GormRecordRepositoryWithTracing) ListWithContext(ctx context.Context, scope authz.Scope, filter domain.RecordFilter) ([]domain.TireRecord, error) {
	_, span := tracer.Start(ctx, "repository.List",
		trace.WithAttributes(
			attribute.Int("query.limit", filter.Limit),
			attribute.Int("query.offset", filter.Offset),
			attribute.String("query.status", filter.Status),
		),
	)
	defer span.End()

	records, err := r.GormRecordRepository.List(scope, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(records)))
	return records, nil
}

// Update with tracing
func (r *GormRecordRepositoryWithTracing) UpdateWithContext(ctx context.Context, record *domain.TireRecord) error {
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("record.id", int(record.ID)),
			attribute.String("record.status", record.Status),
		),
	)
	defer span.End()

	err := r.GormRecordRepository.Update(record)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
