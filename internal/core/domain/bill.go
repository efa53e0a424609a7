package domain

type BillStatus string

const (
	BillPaid   BillStatus = "PAID"
	BillUnpaid BillStatus = "UNPAID"
)

// Default amounts pre-filled when the manager issues a bill without choosing
// explicit amounts.
const (
	DefaultMessBill = 2500
	DefaultRoomDue  = 1500
)

var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Bill is a monthly invoice line. At most one bill exists per
// (StudentID, Month) pair; re-issuing replaces the amounts and resets the
// status to UNPAID.
type Bill struct {
	ID        string     `json:"id"`
	StudentID string     `json:"student_id"`
	Month     string     `json:"month"`
	MessBill  int        `json:"mess_bill"`
	RoomDue   int        `json:"room_due"`
	Status    BillStatus `json:"status"`
}

// Total is the combined amount of the invoice line.
func (b Bill) Total() int {
	return b.MessBill + b.RoomDue
}

// ToggleBillStatus flips PAID and UNPAID, leaving amounts untouched. It is
// its own inverse.
func ToggleBillStatus(b Bill) Bill {
	if b.Status == BillPaid {
		b.Status = BillUnpaid
	} else {
		b.Status = BillPaid
	}
	return b
}

// ValidMonth reports whether m is one of the twelve fixed month names.
func ValidMonth(m string) bool {
	for _, month := range Months {
		if month == m {
			return true
		}
	}
	return false
}

// BillByID returns the bill with the given id.
func BillByID(bills []Bill, id string) (Bill, bool) {
	for _, b := range bills {
		if b.ID == id {
			return b, true
		}
	}
	return Bill{}, false
}

// TotalBilled is the sum of all bill amounts regardless of payment status.
func TotalBilled(bills []Bill) int {
	total := 0
	for _, b := range bills {
		total += b.Total()
	}
	return total
}

// Outstanding is the sum of amounts over exactly the UNPAID bills.
func Outstanding(bills []Bill) int {
	total := 0
	for _, b := range bills {
		if b.Status == BillUnpaid {
			total += b.Total()
		}
	}
	return total
}

// StudentDue is the outstanding amount for a single student.
func StudentDue(bills []Bill, studentID string) int {
	total := 0
	for _, b := range bills {
		if b.StudentID == studentID && b.Status == BillUnpaid {
			total += b.Total()
		}
	}
	return total
}
