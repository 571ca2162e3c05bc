package api

import "encoding/json"

// ListParams carries the conventional list-endpoint query parameters.
// Type-specific filters (status, partyId, ...) go in Filters.
type ListParams struct {
	Page    int
	Limit   int
	Search  string
	Filters map[string]string
}

// Pagination is the trailing block of every list response.
type Pagination struct {
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// List is the items/pagination shape shared by all collection endpoints.
type List[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// User is the authenticated profile record. The shape is dictated by the
// backend; the client only ever checks presence, never validity.
type User struct {
	ID       int    `json:"userId"`
	Name     string `json:"userName"`
	Email    string `json:"userEmail"`
	Mobile   string `json:"userMobile"`
	Business string `json:"userBusinessName,omitempty"`
	Address  string `json:"userBusinessAddress,omitempty"`
}

// AuthResult is the payload of a successful login or register call.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest is the full profile payload for /auth/register.
type RegisterRequest struct {
	Name     string `json:"userName"`
	Email    string `json:"userEmail"`
	Mobile   string `json:"userMobile"`
	Business string `json:"userBusinessName,omitempty"`
	Password string `json:"userPassword"`
}

// Party is a customer or office the agency bills against.
type Party struct {
	ID             int     `json:"partyId"`
	Name           string  `json:"partyName"`
	TypeID         int     `json:"partyTypeId"`
	TypeName       string  `json:"partyType,omitempty"`
	ContactNo      string  `json:"partyContactNo"`
	Address        string  `json:"partyAddress,omitempty"`
	OpeningBalance float64 `json:"partyOpeningBalance,omitempty"`
	BalanceType    string  `json:"partyBalanceType,omitempty"`
	CurrentBalance float64 `json:"partyCurrentBalance,omitempty"`
	VehicleCount   int     `json:"partyNumberofvehicles,omitempty"`
}

// PartyBalance is the /parties/:id/balance payload.
type PartyBalance struct {
	PartyID int     `json:"partyId"`
	Balance float64 `json:"balance"`
	Type    string  `json:"balanceType"`
}

// Vehicle belongs to a party.
type Vehicle struct {
	ID        int    `json:"vehId"`
	Number    string `json:"vehNumber"`
	PartyID   int    `json:"partyId"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Document tracks a registration paper and its expiry.
type Document struct {
	ID          int    `json:"docId"`
	Number      string `json:"docNumber"`
	TypeID      int    `json:"docTypeId"`
	PartyID     int    `json:"docPartyId"`
	VehicleID   int    `json:"docVehicleId,omitempty"`
	VehicleNo   string `json:"docVehicleNo,omitempty"`
	IssueDate   string `json:"docIssueDate,omitempty"`
	ExpiryDate  string `json:"docExpiryDate,omitempty"`
	Description string `json:"docDescription,omitempty"`
	FileURL     string `json:"docCloudinaryUrl,omitempty"`
	Status      string `json:"status,omitempty"`
}

// DocumentCounts is the /documents/stats/counts payload.
type DocumentCounts struct {
	Total    int `json:"total"`
	Expiring int `json:"expiring"`
	Expired  int `json:"expired"`
}

// Ledger is one debit/credit entry against a party.
type Ledger struct {
	ID           int     `json:"ledgerId"`
	PartyID      int     `json:"partyId"`
	Type         string  `json:"ledgerType"`
	Amount       float64 `json:"ledgerAmount"`
	BalanceAfter float64 `json:"ledgerBalanceAfter,omitempty"`
	Date         string  `json:"ledgerDate,omitempty"`
	Description  string  `json:"ledgerDescription,omitempty"`
}

// LedgerSummary aggregates credits and debits.
type LedgerSummary struct {
	TotalCredit float64 `json:"totalCredit"`
	TotalDebit  float64 `json:"totalDebit"`
	Balance     float64 `json:"balance"`
}

// Expense is an office expense, optionally with a receipt attachment.
type Expense struct {
	ID            int     `json:"expId"`
	CategoryID    int     `json:"expCategoryId"`
	Amount        float64 `json:"expAmount"`
	Date          string  `json:"expDate,omitempty"`
	Description   string  `json:"expDescription,omitempty"`
	PaymentModeID int     `json:"expPaymentModeId,omitempty"`
	ReceiptURL    string  `json:"expReceiptUrl,omitempty"`
}

// ExpenseSummary is the /expenses/summary payload.
type ExpenseSummary struct {
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"byCategory,omitempty"`
}

// Notification is a backend-generated reminder, typically document expiry.
type Notification struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Party     string `json:"party,omitempty"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// MasterRecord is a row of any master-data table. Field names differ per
// table (ptmName, dtmName, ...), so rows stay dynamic and the schema layer
// names the keys.
type MasterRecord map[string]json.RawMessage

// String returns the record's value for key as a plain string, tolerating
// both JSON strings and numbers.
func (r MasterRecord) String(key string) string {
	raw, ok := r[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// Bool returns the record's value for key as a bool. The second return
// reports whether the key was present at all.
func (r MasterRecord) Bool(key string) (bool, bool) {
	raw, ok := r[key]
	if !ok {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, true
	}
	return string(raw) == "1", true
}

// Int returns the record's value for key as an int.
func (r MasterRecord) Int(key string) (int, bool) {
	raw, ok := r[key]
	if !ok {
		return 0, false
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return n, true
}

// DashboardStats is the /dashboard/stats payload.
type DashboardStats struct {
	TotalParties    int     `json:"totalParties"`
	TotalVehicles   int     `json:"totalVehicles"`
	TotalDocuments  int     `json:"totalDocuments"`
	ExpiringSoon    int     `json:"expiringSoon"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
}

// RevenuePoint is one month of /dashboard/monthly-revenue.
type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// ExpenseSlice is one category of /dashboard/expense-breakdown.
type ExpenseSlice struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// DocumentStatus is the /dashboard/document-status payload.
type DocumentStatus struct {
	Valid    int `json:"valid"`
	Expiring int `json:"expiring"`
	Expired  int `json:"expired"`
}
