package validation

import (
	"fmt"
	"regexp"

	"github.com/iudanet/gophotel/internal/models"
)

// PropertyIDPattern - slug объекта размещения: строчные латинские буквы, цифры, дефис
var PropertyIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

const (
	// MaxRoomNumber наибольший допустимый номер комнаты
	MaxRoomNumber = 9999
	// MaxFloor верхний этаж
	MaxFloor = 200
)

// ValidatePropertyID проверяет идентификатор объекта ("grand-hotel-1")
func ValidatePropertyID(id string) error {
	if id == "" {
		return fmt.Errorf("property id cannot be empty")
	}
	if !PropertyIDPattern.MatchString(id) {
		return fmt.Errorf("property id can only contain lowercase letters, numbers and dashes (max 64)")
	}
	return nil
}

// ValidateRoom проверяет поля нового номера до отправки на сервер
func ValidateRoom(number, floor int, kind string) error {
	if number < 1 || number > MaxRoomNumber {
		return fmt.Errorf("room number must be between 1 and %d", MaxRoomNumber)
	}
	if floor < 0 || floor > MaxFloor {
		return fmt.Errorf("floor must be between 0 and %d", MaxFloor)
	}
	switch kind {
	case models.RoomKindStandard, models.RoomKindDouble, models.RoomKindSuite:
	default:
		return fmt.Errorf("room kind must be one of %s, %s, %s",
			models.RoomKindStandard, models.RoomKindDouble, models.RoomKindSuite)
	}
	return nil
}
