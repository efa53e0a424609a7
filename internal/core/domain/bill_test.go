package domain

import "testing"

func TestToggleBillStatus(t *testing.T) {
	bill := Bill{ID: "b1", MessBill: 2500, RoomDue: 1500, Status: BillUnpaid}

	paid := ToggleBillStatus(bill)
	if paid.Status != BillPaid {
		t.Errorf("expected PAID after toggle, got %s", paid.Status)
	}
	if paid.MessBill != 2500 || paid.RoomDue != 1500 {
		t.Errorf("toggle must not touch amounts: %+v", paid)
	}

	// Toggling twice returns the original status.
	back := ToggleBillStatus(paid)
	if back.Status != BillUnpaid {
		t.Errorf("expected UNPAID after double toggle, got %s", back.Status)
	}
}

func TestBillTotal(t *testing.T) {
	bill := Bill{MessBill: 2500, RoomDue: 1500}
	if got := bill.Total(); got != 4000 {
		t.Errorf("Total() = %d, want 4000", got)
	}
}

func TestValidMonth(t *testing.T) {
	for _, m := range Months {
		if !ValidMonth(m) {
			t.Errorf("month %q should be valid", m)
		}
	}
	for _, m := range []string{"", "january", "Jan", "Smarch"} {
		if ValidMonth(m) {
			t.Errorf("month %q should be invalid", m)
		}
	}
}

func aggregateFixture() []Bill {
	return []Bill{
		{ID: "b1", StudentID: "s1", Month: "January", MessBill: 2500, RoomDue: 1500, Status: BillUnpaid},
		{ID: "b2", StudentID: "s1", Month: "February", MessBill: 2500, RoomDue: 1500, Status: BillPaid},
		{ID: "b3", StudentID: "s1", Month: "March", MessBill: 2000, RoomDue: 1000, Status: BillUnpaid},
		{ID: "b4", StudentID: "s2", Month: "January", MessBill: 2500, RoomDue: 1500, Status: BillUnpaid},
		{ID: "b5", StudentID: "s2", Month: "February", MessBill: 3000, RoomDue: 2000, Status: BillPaid},
	}
}

func TestTotalBilled(t *testing.T) {
	if got := TotalBilled(aggregateFixture()); got != 20000 {
		t.Errorf("TotalBilled = %d, want 20000", got)
	}
	if got := TotalBilled(nil); got != 0 {
		t.Errorf("TotalBilled(nil) = %d, want 0", got)
	}
}

func TestOutstanding(t *testing.T) {
	if got := Outstanding(aggregateFixture()); got != 11000 {
		t.Errorf("Outstanding = %d, want 11000", got)
	}
}

func TestStudentDue(t *testing.T) {
	bills := aggregateFixture()
	if got := StudentDue(bills, "s1"); got != 7000 {
		t.Errorf("StudentDue(s1) = %d, want 7000", got)
	}
	if got := StudentDue(bills, "s2"); got != 4000 {
		t.Errorf("StudentDue(s2) = %d, want 4000", got)
	}
	if got := StudentDue(bills, "s3"); got != 0 {
		t.Errorf("StudentDue(s3) = %d, want 0", got)
	}
}
