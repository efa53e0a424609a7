package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/test/mocks"
)

func TestReportService_BillingReport(t *testing.T) {
	student := mocks.CreateTestStudent()
	student.RoomNumber = "H001"

	repo := mocks.NewMockHostelRepository()
	repo.SeedUsers(student)
	repo.SeedBills(
		domain.Bill{ID: "b1", StudentID: student.ID, Month: "January", MessBill: 2500, RoomDue: 1500, Status: domain.BillUnpaid},
		domain.Bill{ID: "b2", StudentID: "ghost", Month: "February", MessBill: 2000, RoomDue: 1000, Status: domain.BillPaid},
	)
	service := NewReportService(repo)

	out, err := service.BillingReport(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("report is not valid csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}

	wantHeader := []string{"Student Name", "Email", "Room", "Month", "Mess Bill", "Room Due", "Total", "Status"}
	if !reflect.DeepEqual(records[0], wantHeader) {
		t.Errorf("header = %v, want %v", records[0], wantHeader)
	}

	wantRow := []string{student.Name, student.Email, "H001", "January", "2500", "1500", "4000", "UNPAID"}
	if !reflect.DeepEqual(records[1], wantRow) {
		t.Errorf("row = %v, want %v", records[1], wantRow)
	}

	// A bill whose student record is gone keeps a placeholder row.
	wantGhost := []string{"Unknown", "N/A", "No Room", "February", "2000", "1000", "3000", "PAID"}
	if !reflect.DeepEqual(records[2], wantGhost) {
		t.Errorf("ghost row = %v, want %v", records[2], wantGhost)
	}
}

func TestReportService_BillingReport_NoRoomAllocated(t *testing.T) {
	student := mocks.CreateTestStudent()

	repo := mocks.NewMockHostelRepository()
	repo.SeedUsers(student)
	repo.SeedBills(domain.Bill{ID: "b1", StudentID: student.ID, Month: "January", MessBill: 2500, RoomDue: 1500, Status: domain.BillUnpaid})
	service := NewReportService(repo)

	out, err := service.BillingReport(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("report is not valid csv: %v", err)
	}
	if records[1][2] != "No Room" {
		t.Errorf("room cell = %q, want \"No Room\" for unallocated student", records[1][2])
	}
}

func TestReportService_BillingReport_Empty(t *testing.T) {
	service := NewReportService(mocks.NewMockHostelRepository())

	out, err := service.BillingReport(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("report is not valid csv: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("empty report should contain only the header, got %d records", len(records))
	}
}
