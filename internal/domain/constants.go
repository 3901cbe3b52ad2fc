package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500

	// DefaultMemberCancellationCutoffMinutes minimum time left before the
	// session start for a member to cancel it. Exactly the cutoff is allowed.
	DefaultMemberCancellationCutoffMinutes = 120
)

// Default conflict policies. Both are overridable from config.
var (
	// DefaultTrainerLiveStatuses a trainer cannot be double-booked even
	// against completed sessions of the same day.
	DefaultTrainerLiveStatuses = []SessionStatus{StatusScheduled, StatusCompleted}

	// DefaultMemberLiveStatuses used for member-initiated bookings, for both
	// the member's and the target trainer's calendar.
	DefaultMemberLiveStatuses = []SessionStatus{StatusScheduled}
)
