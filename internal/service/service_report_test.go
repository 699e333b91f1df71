package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/mock"
	"github.com/MKhiriev/go-achieve-portal/models"
)

func newReportFixture(t *testing.T, ctrl *gomock.Controller) (ReportService, *mock.MockReportAPI) {
	t.Helper()
	mockAPI := mock.NewMockReportAPI(ctrl)
	return NewReportService(mockAPI, logger.Nop()), mockAPI
}

func TestReportService_Generate_PeriodValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newReportFixture(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  models.ReportFilter
		wantErr bool
	}{
		{name: "empty filter", filter: models.ReportFilter{}},
		{name: "valid period", filter: models.ReportFilter{StartDate: "2026-01-01", EndDate: "2026-06-30"}},
		{name: "same day", filter: models.ReportFilter{StartDate: "2026-03-15", EndDate: "2026-03-15"}},
		{name: "start only", filter: models.ReportFilter{StartDate: "2026-01-01"}},
		{name: "end only", filter: models.ReportFilter{EndDate: "2026-06-30"}},
		{name: "start after end", filter: models.ReportFilter{StartDate: "2026-07-01", EndDate: "2026-06-30"}, wantErr: true},
		{name: "garbage start date", filter: models.ReportFilter{StartDate: "01/07/2026"}, wantErr: true},
		{name: "garbage end date", filter: models.ReportFilter{EndDate: "tomorrow"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if !test.wantErr {
				mockAPI.EXPECT().
					GenerateReport(ctx, test.filter).
					Return(models.ReportResponse{Success: true, Filename: "report.pdf"}, nil)
			}

			_, err := svc.Generate(ctx, test.filter)

			if test.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReportService_ReportsAndDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newReportFixture(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().GetReports(ctx).Return([]models.ReportFile{{Filename: "report.pdf"}}, nil)
	files, err := svc.Reports(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)

	mockAPI.EXPECT().FetchReport(ctx, "report.pdf").Return([]byte("%PDF-1.7"), nil)
	data, err := svc.Download(ctx, "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), data)
}
