package query

import (
	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/pkg/authz"
)

type ReviewedReportQuery struct {
	Filter domain.RecordFilter
	Scope  authz.Scope
	Year   int
}

// ReviewedReport carries the archive page: the reviewed rows plus the chart
// data rendered next to them.
type ReviewedReport struct {
	Records       []domain.TireRecord   `json:"records"`
	BrandCounts   []domain.BrandCount   `json:"brand_counts"`
	PaymentCounts []domain.PaymentCount `json:"payment_counts"`
	SeasonMatrix  SeasonMatrix          `json:"season_matrix"`
}

type ReviewedReportHandler struct {
	records domain.RecordRepository
}

func NewReviewedReportHandler(records domain.RecordRepository) *ReviewedReportHandler {
	return &ReviewedReportHandler{records: records}
}

func (h *ReviewedReportHandler) Handle(q ReviewedReportQuery) (*ReviewedReport, error) {
	q.Filter.Reviewed = true
	q.Filter.Status = ""

	report := &ReviewedReport{}

	var err error
	report.Records, err = h.records.List(q.Scope, q.Filter)
	if err != nil {
		return nil, err
	}

	report.BrandCounts, err = h.records.BrandDistribution(q.Scope, q.Year, 10)
	if err != nil {
		return nil, err
	}

	report.PaymentCounts, err = h.records.PaymentDistribution(q.Scope, q.Year)
	if err != nil {
		return nil, err
	}

	cells, err := h.records.SeasonGroupQuantities(q.Scope, q.Year)
	if err != nil {
		return nil, err
	}
	report.SeasonMatrix = buildSeasonMatrix(cells)

	return report, nil
}
