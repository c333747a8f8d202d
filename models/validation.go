package models

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"langham-hms/apperror"
)

// DateLayout is the only accepted check-in date format.
const DateLayout = "2006-01-02"

// NewRoomInput carries the fields for registering a room.
type NewRoomInput struct {
	Number   string  `validate:"required"`
	Type     string  `validate:"required,roomtype"`
	Price    float64 `validate:"gt=0"`
	Capacity int     `validate:"gt=0"`
}

// NewAllocationInput carries the fields for allocating a room.
type NewAllocationInput struct {
	RoomNumber   string `validate:"required"`
	CustomerName string `validate:"required"`
	Nights       int    `validate:"gt=0"`
	CheckInDate  string `validate:"required,ymd"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("ymd", dateField); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("roomtype", roomTypeField); err != nil {
		panic(err)
	}
	return v
}

func dateField(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

func roomTypeField(fl validator.FieldLevel) bool {
	_, err := ParseRoomType(fl.Field().String())
	return err == nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

var fieldMessages = map[string]string{
	"Number":       "Room number cannot be empty!",
	"Type":         "Invalid room type! Please enter Single, Double, or Suite.",
	"Price":        "Price must be greater than 0!",
	"Capacity":     "Capacity must be greater than 0!",
	"RoomNumber":   "Room number cannot be empty!",
	"CustomerName": "Customer name cannot be empty!",
	"Nights":       "Number of nights must be greater than 0!",
	"CheckInDate":  "Invalid date format! Please use YYYY-MM-DD.",
}

// Validate trims the input and checks it. Failures are KindInvalidArgument.
func (in *NewRoomInput) Validate() error {
	in.Number = strings.TrimSpace(in.Number)
	in.Type = strings.TrimSpace(in.Type)
	if math.IsInf(in.Price, 0) {
		return apperror.New(apperror.KindInvalidArgument, fieldMessages["Price"])
	}
	return structError(validate.Struct(in))
}

// Validate trims the input and checks it. Failures are KindInvalidArgument.
func (in *NewAllocationInput) Validate() error {
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CheckInDate = strings.TrimSpace(in.CheckInDate)
	return structError(validate.Struct(in))
}

func structError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := fieldMessages[verrs[0].Field()]; ok {
			return apperror.New(apperror.KindInvalidArgument, msg)
		}
		return apperror.Wrap(apperror.KindInvalidArgument, "invalid "+verrs[0].Field(), err)
	}
	return apperror.Wrap(apperror.KindInvalidArgument, "invalid input", err)
}
