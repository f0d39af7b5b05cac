package model

type Organization struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Code           string    `json:"code,omitempty"`
	IsVendor       bool      `json:"is_vendor"`
	AccountingCode *string   `json:"accounting_code,omitempty"`
	Addresses      []Address `json:"addresses,omitempty"`
}

type Address struct {
	AddressLine string `json:"address_line,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	IsPrimary   bool   `json:"is_primary"`
}
