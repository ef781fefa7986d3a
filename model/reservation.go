package model

import "time"

// Reservation is one booked hour slot of the rehearsal room. Date carries the
// day plus the hour, minutes and seconds zero. Records are never deleted.
type Reservation struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Email             string    `gorm:"size:50" json:"email"`
	Date              time.Time `gorm:"index" json:"date"`
	IsGuitarTaken     bool      `json:"isGuitarTaken"`
	IsBassTaken       bool      `json:"isBassTaken"`
	IsDrumsTaken      bool      `json:"isDrumsTaken"`
	IsPianoTaken      bool      `json:"isPianoTaken"`
	IsMicrophoneTaken bool      `json:"isMicrophoneTaken"`
	IsOpen            bool      `json:"isOpen"`
}

type AddReservationInput struct {
	Email             string `json:"email" validate:"max=50"`
	Date              string `json:"date" validate:"required,datetime=2006-01-02"`
	Hour              int    `json:"hour"`
	IsGuitarTaken     bool   `json:"isGuitarTaken"`
	IsBassTaken       bool   `json:"isBassTaken"`
	IsDrumsTaken      bool   `json:"isDrumsTaken"`
	IsPianoTaken      bool   `json:"isPianoTaken"`
	IsMicrophoneTaken bool   `json:"isMicrophoneTaken"`
	IsOpen            bool   `json:"isOpen"`
}

// SubmitRequest is the parsed form of AddReservationInput handed to the
// service by the validate middleware.
type SubmitRequest struct {
	Email             string
	Date              time.Time
	Hour              int
	IsGuitarTaken     bool
	IsBassTaken       bool
	IsDrumsTaken      bool
	IsPianoTaken      bool
	IsMicrophoneTaken bool
	IsOpen            bool
}
