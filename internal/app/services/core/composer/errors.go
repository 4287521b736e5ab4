package composer

import "errors"

var (
	// ErrUserRejected is returned when the operator declines a day removal.
	// Nothing is mutated.
	ErrUserRejected = errors.New("composer: removal rejected by user")

	// ErrInvalidAnchorState is returned when uniform-apply is requested while the
	// anchor window is missing or degenerate. Nothing is mutated.
	ErrInvalidAnchorState = errors.New("composer: anchor window is missing or degenerate")

	ErrInvalidCatalog = errors.New("composer: day catalog must hold 7 distinct days ordered 1..7")
)

const (
	AnchorAlertMessage        = "Please fill a valid from and to time for the first day before applying it to all days."
	RemoveDayConfirmMessage   = "Are you sure you want to remove %s from the schedule?"
	OverlayAnchorAlertMessage = "Please fill a valid from and to time for the first selected day before applying it to all days."
)

// Confirmer answers a blocking yes/no question.
type Confirmer interface {
	Confirm(message string) bool
}

// Notifier reports a validation failure to the operator.
type Notifier interface {
	Alert(message string)
}

type ConfirmFunc func(message string) bool

func (f ConfirmFunc) Confirm(message string) bool {
	return f(message)
}

// StaticConfirmer answers every question with the same decision.
type StaticConfirmer bool

func (c StaticConfirmer) Confirm(string) bool {
	return bool(c)
}

// AlertRecorder collects alerts so they can be returned to the caller.
type AlertRecorder struct {
	messages []string
}

func (r *AlertRecorder) Alert(message string) {
	r.messages = append(r.messages, message)
}

func (r *AlertRecorder) Messages() []string {
	return r.messages
}
