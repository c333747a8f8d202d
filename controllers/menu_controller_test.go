package controllers

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"langham-hms/models"
	"langham-hms/services"
)

// syncBuffer lets the test read output while Run is still writing.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type menuFixture struct {
	hotel   *services.HotelService
	reports *services.ReportService
	out     *syncBuffer
}

func newMenuFixture(t *testing.T) *menuFixture {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	reg := services.NewRoomRegistry()
	hotel := services.NewHotelService(reg, services.NewAllocationLedger(reg), nil, logger)
	return &menuFixture{
		hotel:   hotel,
		reports: services.NewReportService(hotel, t.TempDir(), "12345", logger),
		out:     &syncBuffer{},
	}
}

func (f *menuFixture) run(t *testing.T, script ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	m := NewMenuController(f.hotel, f.reports, in, f.out, logger)
	m.Run(context.Background())
	return f.out.String()
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestMenuFullStay(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t,
		"1", "101", "Single", "100", "1", "",
		"4", "101", "Alice", "3", "2025-06-10", "",
		"5", "",
		"2", "101", "",
		"6", "101", "",
		"3", "",
		"0",
	)

	assertContains(t, out,
		"Welcome to LANGHAM Hotel Management System!",
		"Room 101 added successfully!",
		"Room 101 - Single - $100.00/night",
		"Room 101 allocated to Alice successfully!",
		"Total cost: $300.00",
		"101        Alice           3        2025-06-10   $300.00",
		"State Error: Cannot delete occupied room! Please de-allocate first.",
		"LANGHAM HOTEL BILL",
		"Total Amount: $300.00",
		"Thank you for staying with LANGHAM Hotels!",
		"Room 101 has been de-allocated successfully!",
		"101        Single     $100.00    1          Available",
		"Goodbye!",
	)
	if len(f.hotel.ListActive()) != 0 {
		t.Fatal("expected no active allocations")
	}
}

func TestMenuInputErrorsAreRecoverable(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t,
		"42", "",
		"1", "101", "Twin", "100", "1", "",
		"1", "101", "Single", "abc", "1", "",
		"1", "101", "Single", "", "1", "",
		"1", "101", "Single", "100", "1", "",
		"1", "101", "Double", "150", "2", "",
		"4", "101", "Bob", "2", "2025/06/10", "",
		"4", "999", "Bob", "2", "2025-06-10", "",
		"0",
	)

	assertContains(t, out,
		"Input Error: Invalid choice! Please enter a number between 0-9.",
		"Input Error: Invalid room type! Please enter Single, Double, or Suite.",
		"Input Error: Price must be a number!",
		"Input Error: Price cannot be empty!",
		"Duplicate Error: Room 101 already exists!",
		"Input Error: Invalid date format! Please use YYYY-MM-DD.",
		"Not Found Error: Room 999 not found!",
	)
	rooms := f.hotel.ListRooms()
	if len(rooms) != 1 || rooms[0].Type != models.RoomTypeSingle || rooms[0].Status != models.RoomStatusAvailable {
		t.Fatalf("unexpected rooms %+v", rooms)
	}
}

func TestMenuReportsRoomProblemsBeforeFieldErrors(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t,
		"1", "101", "Single", "100", "1", "",
		"1", "102", "Double", "150", "2", "",
		"4", "102", "Carol", "1", "2025-06-10", "",
		"1", "101", "Twin", "abc", "x", "",
		"4", "999", "Bob", "abc", "2025-06-10", "",
		"4", "102", "", "abc", "bad", "",
		"4", "101", "", "abc", "bad", "",
		"0",
	)

	assertContains(t, out,
		"Duplicate Error: Room 101 already exists!",
		"Not Found Error: Room 999 not found!",
		"State Error: Room 102 is not available!",
		"Input Error: Customer name cannot be empty!",
	)
	if strings.Contains(out, "must be a whole number") || strings.Contains(out, "Invalid room type") {
		t.Fatalf("field errors reported ahead of room errors:\n%s", out)
	}
}

func TestMenuGuards(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t, "2", "", "4", "", "6", "", "3", "", "5", "", "0")

	assertContains(t, out,
		"No rooms available to delete!",
		"No rooms available for allocation!",
		"No allocated rooms for billing!",
		"No rooms available!",
		"No rooms currently allocated!",
	)
}

func TestMenuFileOperations(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t,
		"8", "",
		"9", "",
		"1", "201", "Suite", "250", "4", "",
		"4", "201", "Carol", "2", "2025-07-01", "",
		"7", "",
		"8", "",
		"9", "",
		"9", "",
		"8", "",
		"0",
	)

	assertContains(t, out,
		"IO Error: File "+f.reports.Path()+" does not exist!",
		"Room allocation data saved to "+f.reports.Path()+" successfully!",
		"--- FILE CONTENT ---",
		"201        Carol           2        2025-07-01   $500.00",
		"Backup created: ",
		"Original file "+f.reports.Path()+" has been cleared.",
		"Original file is empty, nothing to backup.",
		"IO Error: File is empty!",
	)
	data, err := os.ReadFile(f.reports.Path())
	if err != nil || len(data) != 0 {
		t.Fatalf("expected cleared report, got %q, %v", data, err)
	}
}

func TestMenuEOFExitsGracefully(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t, "1", "101")

	assertContains(t, out, "Goodbye!")
	if len(f.hotel.ListRooms()) != 0 {
		t.Fatal("expected partial input to leave the registry untouched")
	}
}

func TestMenuInterrupt(t *testing.T) {
	f := newMenuFixture(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	m := NewMenuController(f.hotel, f.reports, pr, f.out, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(f.out.String(), "Enter your choice") {
		if time.Now().After(deadline) {
			t.Fatal("menu never prompted")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("menu did not stop after cancel")
	}
	assertContains(t, f.out.String(), "Application interrupted by user. Exiting...")

	go pw.Write([]byte("late line\n"))
	stopped := make(chan struct{})
	go func() {
		m.readerWG.Wait()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("stdin reader still running after Run returned")
	}
}
