package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

// reportHeader is the fixed first row of the billing report.
var reportHeader = []string{
	"Student Name", "Email", "Room", "Month", "Mess Bill", "Room Due", "Total", "Status",
}

type ReportService struct {
	repo ports.HostelRepository
}

var _ ports.ReportService = (*ReportService)(nil)

func NewReportService(repo ports.HostelRepository) *ReportService {
	return &ReportService{repo: repo}
}

// BillingReport renders all bills joined with student name/email/room, one
// row per bill in storage order. Bills whose student record is missing keep a
// placeholder row rather than being dropped.
func (s *ReportService) BillingReport(ctx context.Context) ([]byte, error) {
	bills, err := s.repo.Bills(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.repo.Users(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(reportHeader); err != nil {
		return nil, err
	}

	for _, b := range bills {
		name, email, room := "Unknown", "N/A", "No Room"
		if u, ok := byID[b.StudentID]; ok {
			name, email = u.Name, u.Email
			if u.RoomNumber != "" {
				room = u.RoomNumber
			}
		}
		record := []string{
			name,
			email,
			room,
			b.Month,
			strconv.Itoa(b.MessBill),
			strconv.Itoa(b.RoomDue),
			strconv.Itoa(b.Total()),
			string(b.Status),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
