package domain

import "errors"

// Error kinds. Match with errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Messages returned to API clients
const (
	MsgUserNotFound      = "User not found"
	MsgPlanetNotFound    = "Planet not found"
	MsgPeopleNotFound    = "People not found"
	MsgFavoriteNotFound  = "Favorite not found"
	MsgPlanetDuplicate   = "Planet already added as favorite"
	MsgPeopleDuplicate   = "People already added as favorite"
	MsgFavoritePlanetDel = "Favorite Planet deleted"
	MsgFavoritePeopleDel = "Favorite People deleted"
)

// Error is a domain failure carrying a client-facing message
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NotFound returns an ErrNotFound with the given message
func NotFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// Conflict returns an ErrConflict with the given message
func Conflict(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

// IsExpected reports whether err is a client-caused outcome rather than a
// storage failure
func IsExpected(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict)
}
