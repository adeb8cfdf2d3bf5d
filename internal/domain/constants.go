package domain

// Business validation constants
const (
	// MinClientNameLength is the minimum accepted client name length.
	MinClientNameLength = 2

	// ClientPhonePattern is the canonical Brazilian mobile format,
	// e.g. "(11) 99999-9999". Bookings with any other formatting are
	// rejected rather than normalized.
	ClientPhonePattern = `^\(\d{2}\) \d{5}-\d{4}$`

	// MaxReasonLength bounds the free-text reason on closures and blocks.
	MaxReasonLength = 500
)

// DefaultBlockDurationMinutes is the block length the manager UI derives
// when only a start time is chosen.
const DefaultBlockDurationMinutes = 30

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
