package utils

import (
	"fmt"
	"io"
	"strings"
	"time"

	"langham-hms/models"
)

// TimestampLayout is used for every generated-on / bill date stamp.
const TimestampLayout = "2006-01-02 15:04:05"

const (
	HotelName       = "LANGHAM HOTEL MANAGEMENT SYSTEM"
	NoAllocationMsg = "No rooms currently allocated."
)

// Rule returns a line of n copies of ch.
func Rule(ch string, n int) string {
	return strings.Repeat(ch, n)
}

// Money formats an amount with two decimals and a dollar sign.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// WriteRoomTable prints the room details table.
func WriteRoomTable(w io.Writer, rooms []models.Room) {
	fmt.Fprintf(w, "%-10s %-10s %-10s %-10s %-10s\n", "Room No", "Type", "Price", "Capacity", "Status")
	fmt.Fprintln(w, Rule("-", 50))
	for _, r := range rooms {
		fmt.Fprintf(w, "%-10s %-10s $%-9.2f %-10d %-10s\n", r.Number, r.Type, r.Price, r.Capacity, r.Status)
	}
}

// WriteAllocationTable prints the fixed-width allocation table shared by the
// screen listing and the report file.
func WriteAllocationTable(w io.Writer, allocs []models.Allocation) {
	fmt.Fprintf(w, "%-10s %-15s %-8s %-12s %-12s\n", "Room No", "Customer", "Nights", "Check-in", "Total Cost")
	fmt.Fprintln(w, Rule("-", 67))
	for _, a := range allocs {
		fmt.Fprintf(w, "%-10s %-15s %-8d %-12s $%-11.2f\n", a.RoomNumber, a.CustomerName, a.Nights, a.CheckInDate, a.TotalCost)
	}
}

// WriteAllocationReport renders the report file body.
func WriteAllocationReport(w io.Writer, allocs []models.Allocation, now time.Time) {
	fmt.Fprintln(w, HotelName)
	fmt.Fprintln(w, "Room Allocation Report")
	fmt.Fprintln(w, Rule("=", 50))
	fmt.Fprintf(w, "Generated on: %s\n\n", now.Format(TimestampLayout))

	if len(allocs) == 0 {
		fmt.Fprintln(w, NoAllocationMsg)
		return
	}
	WriteAllocationTable(w, allocs)
}

// WriteBill prints the customer bill.
func WriteBill(w io.Writer, b models.Bill) {
	fmt.Fprintln(w, Rule("=", 40))
	fmt.Fprintln(w, "           LANGHAM HOTEL BILL")
	fmt.Fprintln(w, Rule("=", 40))
	fmt.Fprintf(w, "Room Number: %s\n", b.RoomNumber)
	fmt.Fprintf(w, "Customer: %s\n", b.CustomerName)
	fmt.Fprintf(w, "Check-in Date: %s\n", b.CheckInDate)
	fmt.Fprintf(w, "Number of Nights: %d\n", b.Nights)
	fmt.Fprintf(w, "Total Amount: %s\n", Money(b.TotalCost))
	fmt.Fprintf(w, "Bill Date: %s\n", b.GeneratedAt.Format(TimestampLayout))
	fmt.Fprintln(w, Rule("=", 40))
	fmt.Fprintln(w, "Thank you for staying with LANGHAM Hotels!")
	fmt.Fprintln(w, Rule("=", 40))
}
