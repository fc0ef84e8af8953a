package contract

// Record represents one row of the 'contratos' table. Every attribute is
// stored as free text; date and numeric semantics are applied at read time
// by the parsers, never enforced on write.
type Record struct {
	ID int64 `db:"id" json:"id"`

	ProcessCode       string `db:"process_code" json:"process_code"`
	ProcessName       string `db:"process_name" json:"process_name"`
	ProcessStatus     string `db:"process_status" json:"process_status"`
	ContractType      string `db:"contract_type" json:"contract_type"`
	FundingSource     string `db:"funding_source" json:"funding_source"`
	SelectionModality string `db:"selection_modality" json:"selection_modality"`

	StructuringDate     string `db:"structuring_date" json:"structuring_date"`
	LegalSubmissionDate string `db:"legal_submission_date" json:"legal_submission_date"`
	LegalResponseDate   string `db:"legal_response_date" json:"legal_response_date"`

	ContractNumber string `db:"contract_number" json:"contract_number"`

	EstimatedValue    string `db:"estimated_value" json:"estimated_value"`
	CDPAddition       string `db:"cdp_addition" json:"cdp_addition"`
	CDPReduction      string `db:"cdp_reduction" json:"cdp_reduction"`
	CDPTotal          string `db:"cdp_total" json:"cdp_total"`
	ContractedValue   string `db:"contracted_value" json:"contracted_value"`
	CDPBalance        string `db:"cdp_balance" json:"cdp_balance"`
	ExecutionAddition string `db:"execution_addition" json:"execution_addition"`
	TotalContracted   string `db:"total_contracted" json:"total_contracted"`

	Supervisor       string `db:"supervisor" json:"supervisor"`
	SupervisorBackup string `db:"supervisor_backup" json:"supervisor_backup"`
	OticLawyer       string `db:"otic_lawyer" json:"otic_lawyer"`
	OticTechLead     string `db:"otic_tech_lead" json:"otic_tech_lead"`
	ContractLawyers  string `db:"contract_lawyers" json:"contract_lawyers"`
	GitEconomist     string `db:"git_economist" json:"git_economist"`

	StartDate   string `db:"start_date" json:"start_date"`
	StartMonth1 string `db:"start_month_1" json:"start_month_1"`
	StartMonth2 string `db:"start_month_2" json:"start_month_2"`
	EndDate     string `db:"end_date" json:"end_date"`
	LicenseEnd  string `db:"license_end" json:"license_end"`

	Provider         string `db:"provider" json:"provider"`
	SharepointLink   string `db:"sharepoint_link" json:"sharepoint_link"`
	PeriodicTracking string `db:"periodic_tracking" json:"periodic_tracking"`
	AlertSent        string `db:"alert_sent" json:"alert_sent"`
}
