package controllers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"langham-hms/apperror"
	"langham-hms/models"
	"langham-hms/services"
	"langham-hms/utils"
)

// errInterrupted ends the loop when the run context is cancelled.
var errInterrupted = errors.New("interrupted")

// MenuController drives the interactive 0-9 menu.
type MenuController struct {
	Hotel   *services.HotelService
	Reports *services.ReportService

	out      io.Writer
	lines    <-chan string
	done     chan struct{}
	stopOnce sync.Once
	readerWG sync.WaitGroup
	logger   *logrus.Logger
}

// NewMenuController starts reading lines from in. The reader goroutine ends
// when in reaches EOF or after Run returns and the next line arrives.
func NewMenuController(hotel *services.HotelService, reports *services.ReportService, in io.Reader, out io.Writer, logger *logrus.Logger) *MenuController {
	lines := make(chan string)
	m := &MenuController{Hotel: hotel, Reports: reports, out: out, lines: lines, done: make(chan struct{}), logger: logger}

	m.readerWG.Add(1)
	go func() {
		defer m.readerWG.Done()
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-m.done:
				return
			}
		}
		if err := sc.Err(); err != nil {
			logger.WithError(err).Warn("stdin read failed")
		}
	}()
	return m
}

// Run loops until the operator exits, input ends, or ctx is cancelled.
func (m *MenuController) Run(ctx context.Context) {
	defer m.stopOnce.Do(func() { close(m.done) })
	fmt.Fprintln(m.out, "Welcome to LANGHAM Hotel Management System!")

	for {
		m.displayMenu()
		choice, err := m.prompt(ctx, "\nEnter your choice (0-9): ")
		if err != nil {
			m.stop(err)
			return
		}

		if choice == "0" {
			m.farewell()
			return
		}
		if err := m.dispatch(ctx, choice); err != nil {
			if errors.Is(err, errInterrupted) || errors.Is(err, io.EOF) {
				m.stop(err)
				return
			}
			m.printError(err)
		}

		if _, err := m.prompt(ctx, "\nPress Enter to continue..."); err != nil {
			m.stop(err)
			return
		}
	}
}

func (m *MenuController) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return m.addRoom(ctx)
	case "2":
		return m.deleteRoom(ctx)
	case "3":
		m.displayRooms()
		return nil
	case "4":
		return m.allocateRoom(ctx)
	case "5":
		m.displayAllocations()
		return nil
	case "6":
		return m.billAndRelease(ctx)
	case "7":
		return m.saveReport()
	case "8":
		return m.displayReport()
	case "9":
		return m.backupReport()
	default:
		return apperror.New(apperror.KindInvalidArgument, "Invalid choice! Please enter a number between 0-9.")
	}
}

func (m *MenuController) displayMenu() {
	rule := utils.Rule("=", 50)
	fmt.Fprintln(m.out, "\n"+rule)
	fmt.Fprintln(m.out, "    "+utils.HotelName)
	fmt.Fprintln(m.out, rule)
	fmt.Fprintln(m.out, "1. Add Room")
	fmt.Fprintln(m.out, "2. Delete Room")
	fmt.Fprintln(m.out, "3. Display Room Details")
	fmt.Fprintln(m.out, "4. Allocate Room")
	fmt.Fprintln(m.out, "5. Display Room Allocation Details")
	fmt.Fprintln(m.out, "6. Billing & De-Allocation")
	fmt.Fprintln(m.out, "7. Save Room Allocation to File")
	fmt.Fprintln(m.out, "8. Display Room Allocation from File")
	fmt.Fprintln(m.out, "9. Backup and Clear Room Allocation File")
	fmt.Fprintln(m.out, "0. Exit Application")
	fmt.Fprintln(m.out, rule)
}

func (m *MenuController) addRoom(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- ADD ROOM ---")

	var form models.RoomForm
	var err error
	if form.Number, err = m.prompt(ctx, "Enter room number: "); err != nil {
		return err
	}
	if form.Type, err = m.prompt(ctx, "Enter room type (Single/Double/Suite): "); err != nil {
		return err
	}
	if form.Price, err = m.prompt(ctx, "Enter room price per night: "); err != nil {
		return err
	}
	if form.Capacity, err = m.prompt(ctx, "Enter room capacity: "); err != nil {
		return err
	}

	if err := m.Hotel.CheckNewRoom(form.Number); err != nil {
		return err
	}
	in, err := form.Input()
	if err != nil {
		return err
	}
	room, err := m.Hotel.AddRoom(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Room %s added successfully!\n", room.Number)
	return nil
}

func (m *MenuController) deleteRoom(ctx context.Context) error {
	if len(m.Hotel.ListRooms()) == 0 {
		fmt.Fprintln(m.out, "No rooms available to delete!")
		return nil
	}

	fmt.Fprintln(m.out, "\n--- DELETE ROOM ---")
	number, err := m.prompt(ctx, "Enter room number to delete: ")
	if err != nil {
		return err
	}
	if err := m.Hotel.RemoveRoom(number); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Room %s deleted successfully!\n", number)
	return nil
}

func (m *MenuController) displayRooms() {
	fmt.Fprintln(m.out, "\n--- ROOM DETAILS ---")
	rooms := m.Hotel.ListRooms()
	if len(rooms) == 0 {
		fmt.Fprintln(m.out, "No rooms available!")
		return
	}
	utils.WriteRoomTable(m.out, rooms)
}

func (m *MenuController) allocateRoom(ctx context.Context) error {
	available := m.Hotel.ListAvailable()
	if len(available) == 0 {
		fmt.Fprintln(m.out, "No rooms available for allocation!")
		return nil
	}

	fmt.Fprintln(m.out, "\n--- ALLOCATE ROOM ---")
	fmt.Fprintln(m.out, "Available Rooms:")
	for _, r := range available {
		fmt.Fprintf(m.out, "Room %s - %s - %s/night\n", r.Number, r.Type, utils.Money(r.Price))
	}

	var form models.AllocationForm
	var err error
	if form.RoomNumber, err = m.prompt(ctx, "Enter room number to allocate: "); err != nil {
		return err
	}
	if form.CustomerName, err = m.prompt(ctx, "Enter customer name: "); err != nil {
		return err
	}
	if form.Nights, err = m.prompt(ctx, "Enter number of nights: "); err != nil {
		return err
	}
	if form.CheckInDate, err = m.prompt(ctx, "Enter check-in date (YYYY-MM-DD): "); err != nil {
		return err
	}

	if err := m.Hotel.CheckAllocatable(form.RoomNumber); err != nil {
		return err
	}
	in, err := form.Input()
	if err != nil {
		return err
	}
	alloc, err := m.Hotel.Allocate(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Room %s allocated to %s successfully!\n", alloc.RoomNumber, alloc.CustomerName)
	fmt.Fprintf(m.out, "Total cost: %s\n", utils.Money(alloc.TotalCost))
	return nil
}

func (m *MenuController) displayAllocations() {
	fmt.Fprintln(m.out, "\n--- ROOM ALLOCATION DETAILS ---")
	allocs := m.Hotel.ListActive()
	if len(allocs) == 0 {
		fmt.Fprintln(m.out, "No rooms currently allocated!")
		return
	}
	utils.WriteAllocationTable(m.out, allocs)
}

func (m *MenuController) billAndRelease(ctx context.Context) error {
	if len(m.Hotel.ListActive()) == 0 {
		fmt.Fprintln(m.out, "No allocated rooms for billing!")
		return nil
	}

	fmt.Fprintln(m.out, "\n--- BILLING & DE-ALLOCATION ---")
	number, err := m.prompt(ctx, "Enter room number for billing: ")
	if err != nil {
		return err
	}

	bill, err := m.Hotel.BillAndRelease(ctx, number)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out)
	utils.WriteBill(m.out, bill)
	fmt.Fprintf(m.out, "\nRoom %s has been de-allocated successfully!\n", bill.RoomNumber)
	return nil
}

func (m *MenuController) saveReport() error {
	path, err := m.Reports.Save()
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Room allocation data saved to %s successfully!\n", path)
	return nil
}

func (m *MenuController) displayReport() error {
	content, err := m.Reports.Display()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\n--- FILE CONTENT ---")
	fmt.Fprintln(m.out, content)
	return nil
}

func (m *MenuController) backupReport() error {
	res, err := m.Reports.BackupAndClear()
	if err != nil {
		return err
	}
	if !res.Created {
		fmt.Fprintln(m.out, "Original file is empty, nothing to backup.")
		return nil
	}
	fmt.Fprintf(m.out, "Backup created: %s\n", res.BackupPath)
	fmt.Fprintf(m.out, "Original file %s has been cleared.\n", res.ReportPath)
	return nil
}

// prompt writes label and waits for one trimmed line.
func (m *MenuController) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(m.out, label)
	select {
	case <-ctx.Done():
		return "", errInterrupted
	case line, ok := <-m.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

func (m *MenuController) stop(err error) {
	if errors.Is(err, errInterrupted) {
		fmt.Fprintln(m.out, "\n\nApplication interrupted by user. Exiting...")
		return
	}
	fmt.Fprintln(m.out)
	m.farewell()
}

func (m *MenuController) farewell() {
	fmt.Fprintln(m.out, "\nThank you for using LANGHAM Hotel Management System!")
	fmt.Fprintln(m.out, "Goodbye!")
}

func (m *MenuController) printError(err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindUnknown {
		m.logger.WithError(err).Error("unclassified error")
	}
	fmt.Fprintf(m.out, "%s: %s\n", kind.Label(), err)
}
