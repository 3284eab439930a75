package constants

const (
	HeaderXRequestID = "X-Request-ID"

	ContextKeyRequestID = "request_id"

	ContentTypeCSV = "text/csv; charset=utf-8"

	// DateLayout is the textual form of membership dates in storage, API and CSV.
	DateLayout = "2006-01-02"

	// MonthLayout labels monthly series buckets.
	MonthLayout = "2006-01"

	TableClients  = "clients"
	TablePayments = "payments"

	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgClientNotFound      = "Client not found"
)
