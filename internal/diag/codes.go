package diag

import "fmt"

// Code identifies a diagnostic category.
type Code uint16

const (
	UnknownCode Code = 0

	// Normalization pass (3xxx).
	TransInfo Code = 3000
	// TransDiscrNoSwitch: a discriminant read is not followed by an
	// integer switch consuming it.
	TransDiscrNoSwitch Code = 3001
	// TransDiscrNotEnum: the scrutinee of a discriminant read does not
	// resolve to an enum declaration.
	TransDiscrNotEnum Code = 3002
	// TransDiscrUnknownValue: a switch case value does not correspond to
	// any variant discriminant of the scrutinee's enum.
	TransDiscrUnknownValue Code = 3003

	// Trait resolution (4xxx).
	TransUnsolvedClause Code = 4001
)

func (c Code) String() string {
	return fmt.Sprintf("L%04d", uint16(c))
}
