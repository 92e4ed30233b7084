package dto

import "time"

// UpdateCompanyRequest profile fields of the singleton company row.
type UpdateCompanyRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	TaxID    *string `json:"tax_id"`
	Currency *string `json:"currency" validate:"omitempty,len=3"`
}

// CompanyResponse company profile output.
type CompanyResponse struct {
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	TaxID     string    `json:"tax_id"`
	Currency  string    `json:"currency"`
	LogoPath  string    `json:"logo_path,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
