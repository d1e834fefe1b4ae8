package utils

import (
	"math/rand"
	"time"

	"github.com/mhr996/school-dash-sub003/models"
	"gorm.io/gorm"
)

const bookingReferenceLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateUniqueBookingReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, bookingReferenceLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		reference := "BK-" + string(b)

		var booking models.Booking
		err := tx.Where("booking_reference = ?", reference).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return reference, nil
			}
			return "", err
		}
	}
}
