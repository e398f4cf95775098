package call

type Status string

const (
	StatusPending        Status = "pending"
	StatusCompleted      Status = "completed"
	StatusFailed         Status = "failed"
	StatusQuoted         Status = "quoted"
	StatusConfirmedQuote Status = "confirmed_quote"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusQuoted, StatusConfirmedQuote:
		return true
	default:
		return false
	}
}

// IsActive reports whether a record with this status should block a new
// outbound call for the same VIN. Failed calls may be retried.
func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusQuoted:
		return true
	default:
		return false
	}
}
