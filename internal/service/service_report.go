package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-achieve-portal/internal/adapter"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/models"
)

// reportDateLayout is the wire format of the report period fields.
const reportDateLayout = "2006-01-02"

type reportService struct {
	adapter adapter.ReportAPI
	logger  *logger.Logger
}

func NewReportService(reportAPI adapter.ReportAPI, log *logger.Logger) ReportService {
	return &reportService{adapter: reportAPI, logger: log}
}

func (r *reportService) Generate(ctx context.Context, f models.ReportFilter) (models.ReportResponse, error) {
	if err := validatePeriod(f.StartDate, f.EndDate); err != nil {
		return models.ReportResponse{}, err
	}

	resp, err := r.adapter.GenerateReport(ctx, f)
	if err != nil {
		return models.ReportResponse{}, mapAdapterError(err)
	}

	r.logger.Info().Str("func", "reportService.Generate").Str("file", resp.Filename).Msg("report generated")
	return resp, nil
}

func (r *reportService) Reports(ctx context.Context) ([]models.ReportFile, error) {
	files, err := r.adapter.GetReports(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return files, nil
}

func (r *reportService) Download(ctx context.Context, filename string) ([]byte, error) {
	data, err := r.adapter.FetchReport(ctx, filename)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return data, nil
}

// validatePeriod checks the optional report period: each present date must
// parse, and when both are present the start must not be after the end.
func validatePeriod(start, end string) error {
	var from, to time.Time
	var err error

	if start != "" {
		if from, err = time.Parse(reportDateLayout, start); err != nil {
			return ErrInvalidDateRange
		}
	}
	if end != "" {
		if to, err = time.Parse(reportDateLayout, end); err != nil {
			return ErrInvalidDateRange
		}
	}
	if start != "" && end != "" && from.After(to) {
		return ErrInvalidDateRange
	}
	return nil
}
