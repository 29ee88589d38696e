package lineitems

// CompanyInfo is the quote builder's customer record. Fields are free text
// with empty-string defaults; nothing is validated.
type CompanyInfo struct {
	Name    string `json:"name"`
	RUT     string `json:"rut"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Company field keys accepted by Store.SetCompanyField.
const (
	CompanyFieldName    = "name"
	CompanyFieldRUT     = "rut"
	CompanyFieldAddress = "address"
	CompanyFieldPhone   = "phone"
	CompanyFieldEmail   = "email"
)

// Snapshot is the durable shape of one store: the exact JSON blob written
// under the store's storage key. CompanyInfo is only present for the quote
// store.
type Snapshot struct {
	Items       []Item       `json:"items"`
	CompanyInfo *CompanyInfo `json:"companyInfo,omitempty"`
}
