package dtos

// APIResponse is the stable JSON envelope every endpoint answers with.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// LoginResponse is the payload of a successful login.
type LoginResponse struct {
	SessionID string       `json:"sessionId"`
	User      SessionUser  `json:"user"`
}

// SessionUser is the user view carried inside session responses.
type SessionUser struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Role      string  `json:"role"`
	MemberID  *string `json:"memberId,omitempty"`
	VisitorID *string `json:"visitorId,omitempty"`
}

// CsrfTokenResponse is the payload of GET /api/csrf-token.
type CsrfTokenResponse struct {
	Token string `json:"token"`
}

// CatechumenUpdateResponse annotates a catechumen write with the promotion
// side effect, when it fired.
type CatechumenUpdateResponse struct {
	Catechumen    any    `json:"catechumen"`
	MemberCreated bool   `json:"memberCreated"`
	MemberID      string `json:"memberId,omitempty"`
	MemberName    string `json:"memberName,omitempty"`
}

// TreasuryReportRow is one aggregated line of the monthly treasury report.
type TreasuryReportRow struct {
	Month    string  `json:"month" db:"month"`
	Category string  `json:"category" db:"category"`
	Total    float64 `json:"total" db:"total"`
}

// ExportLinkResponse carries a signed single-use download link.
type ExportLinkResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}

// MyDataResponse aggregates everything stored about a data subject.
type MyDataResponse struct {
	Member   any `json:"member,omitempty"`
	Visitor  any `json:"visitor,omitempty"`
	Tithes   any `json:"tithes,omitempty"`
	Consents any `json:"consents"`
	Requests any `json:"requests"`
}
