package gradient

import "fmt"

// BoundsError is returned when a position falls outside the known values of
// a channel.
type BoundsError struct {
	Position float32
	Known    int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("position %v outside of [0, %d]", e.Position, e.Known-1)
}

// Is reports whether target is a BoundsError, so errors.Is(err, &BoundsError{})
// matches any bounds violation.
func (e *BoundsError) Is(target error) bool {
	_, ok := target.(*BoundsError)
	return ok
}

// SettingsError is returned when a settings file holds an unusable anchor.
type SettingsError struct {
	Field   string
	Index   int
	Message string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("invalid %s[%d]: %s", e.Field, e.Index, e.Message)
}

func (e *SettingsError) Is(target error) bool {
	_, ok := target.(*SettingsError)
	return ok
}
