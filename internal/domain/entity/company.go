package entity

import "time"

// CompanyID is the fixed primary key of the singleton company row.
const CompanyID = 1

// Company is the organization profile (single row, id = 1).
type Company struct {
	ID        int
	Name      string
	Address   string
	Phone     string
	Email     string
	TaxID     string // URA TIN
	Currency  string // e.g. UGX
	LogoPath  string
	UpdatedAt time.Time
}
