package dtos

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LogoutRequest is the body of POST /api/auth/logout
type LogoutRequest struct {
	SessionID string `json:"sessionId"`
}

type MemberRequest struct {
	FullName           string  `json:"fullName"`
	BirthDate          string  `json:"birthDate"`
	Gender             string  `json:"gender"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
	Address            string  `json:"address"`
	CommunionStatus    string  `json:"communionStatus"`
	EcclesiasticalRole string  `json:"ecclesiasticalRole"`
	MemberStatus       string  `json:"memberStatus"`
	AdmissionDate      string  `json:"admissionDate"`
	LgpdConsentURL     *string `json:"lgpdConsentUrl"`
	PastoralNotes      *string `json:"pastoralNotes"`
}

type CatechumenRequest struct {
	FullName               string  `json:"fullName"`
	StartDate              string  `json:"startDate"`
	ExpectedProfessionDate *string `json:"expectedProfessionDate"`
	Stage                  string  `json:"stage"`
	ProfessorID            string  `json:"professorId"`
	Notes                  *string `json:"notes"`
}

type VisitorRequest struct {
	FullName  string  `json:"fullName"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	FirstSeen string  `json:"firstSeen"`
	Notes     *string `json:"notes"`
}

type SeminarianRequest struct {
	MemberID    string  `json:"memberId"`
	Seminary    string  `json:"seminary"`
	StartYear   int     `json:"startYear"`
	ExpectedEnd *int    `json:"expectedEnd"`
	Notes       *string `json:"notes"`
}

type TitheRequest struct {
	MemberID string  `json:"memberId"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

type OfferingRequest struct {
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	ServiceType *string `json:"serviceType"`
}

type BookstoreSaleRequest struct {
	Item     string  `json:"item"`
	Quantity int     `json:"quantity"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

type LoanRequest struct {
	Description  string  `json:"description"`
	TotalAmount  float64 `json:"totalAmount"`
	Installments int     `json:"installments"`
	StartDate    string  `json:"startDate"`
}

type ExpenseRequest struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	Paid        bool    `json:"paid"`
}

type DiaconalHelpRequest struct {
	Beneficiary string  `json:"beneficiary"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
}

type BulletinRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type LgpdConsentRequest struct {
	Purpose string `json:"purpose"`
	Granted bool   `json:"granted"`
}

type LgpdRequestRequest struct {
	RequestType string  `json:"requestType"`
	Details     *string `json:"details"`
}
