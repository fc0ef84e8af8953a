package contract

// Kind decides which filter predicate and export typing a field gets.
type Kind string

const (
	KindText        Kind = "text"
	KindDate        Kind = "date"
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
)

// FieldSpec describes one contract attribute: its stable key (also the SQL
// column name), the label operators know it by, its kind, and the typed
// accessors on Record. The catalog below is the single source of truth for
// the store schema, the filter engine, the export serializer and the CSV
// importer.
type FieldSpec struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Kind  Kind   `json:"kind"`

	// ExportNumber forces a numeric cell on export for fields that are
	// filtered as plain text (contract number, start-month labels).
	ExportNumber bool `json:"-"`

	Get func(*Record) string `json:"-"`
	Set func(*Record, string) `json:"-"`
}

// Fields is the canonical field list, in storage and export column order.
var Fields = []FieldSpec{
	{Key: "process_code", Label: "Código Interno / Proceso", Kind: KindCategorical,
		Get: func(r *Record) string { return r.ProcessCode }, Set: func(r *Record, v string) { r.ProcessCode = v }},
	{Key: "process_name", Label: "Nombre del Proceso / Objeto del Contrato", Kind: KindCategorical,
		Get: func(r *Record) string { return r.ProcessName }, Set: func(r *Record, v string) { r.ProcessName = v }},
	{Key: "process_status", Label: "Estado Actual del Proceso", Kind: KindCategorical,
		Get: func(r *Record) string { return r.ProcessStatus }, Set: func(r *Record, v string) { r.ProcessStatus = v }},
	{Key: "contract_type", Label: "Tipo de Contrato", Kind: KindCategorical,
		Get: func(r *Record) string { return r.ContractType }, Set: func(r *Record, v string) { r.ContractType = v }},
	{Key: "funding_source", Label: "Fuente de financiamiento", Kind: KindCategorical,
		Get: func(r *Record) string { return r.FundingSource }, Set: func(r *Record, v string) { r.FundingSource = v }},
	{Key: "selection_modality", Label: "Modalidad de selección", Kind: KindCategorical,
		Get: func(r *Record) string { return r.SelectionModality }, Set: func(r *Record, v string) { r.SelectionModality = v }},
	{Key: "structuring_date", Label: "Fecha de estructuración", Kind: KindDate,
		Get: func(r *Record) string { return r.StructuringDate }, Set: func(r *Record, v string) { r.StructuringDate = v }},
	{Key: "legal_submission_date", Label: "Fecha de envio a Contratos", Kind: KindDate,
		Get: func(r *Record) string { return r.LegalSubmissionDate }, Set: func(r *Record, v string) { r.LegalSubmissionDate = v }},
	{Key: "legal_response_date", Label: "Fecha de respuesta de contratos", Kind: KindDate,
		Get: func(r *Record) string { return r.LegalResponseDate }, Set: func(r *Record, v string) { r.LegalResponseDate = v }},
	{Key: "contract_number", Label: "Número del contrato", Kind: KindText, ExportNumber: true,
		Get: func(r *Record) string { return r.ContractNumber }, Set: func(r *Record, v string) { r.ContractNumber = v }},
	{Key: "estimated_value", Label: "Valor estimado en la vigencia actual", Kind: KindNumeric,
		Get: func(r *Record) string { return r.EstimatedValue }, Set: func(r *Record, v string) { r.EstimatedValue = v }},
	{Key: "cdp_addition", Label: "Adición CDP", Kind: KindNumeric,
		Get: func(r *Record) string { return r.CDPAddition }, Set: func(r *Record, v string) { r.CDPAddition = v }},
	{Key: "cdp_reduction", Label: "Valor disminuido CDP", Kind: KindNumeric,
		Get: func(r *Record) string { return r.CDPReduction }, Set: func(r *Record, v string) { r.CDPReduction = v }},
	{Key: "cdp_total", Label: "Valor total CDP", Kind: KindNumeric,
		Get: func(r *Record) string { return r.CDPTotal }, Set: func(r *Record, v string) { r.CDPTotal = v }},
	{Key: "contracted_value", Label: "Valor contratado", Kind: KindNumeric,
		Get: func(r *Record) string { return r.ContractedValue }, Set: func(r *Record, v string) { r.ContractedValue = v }},
	{Key: "cdp_balance", Label: "Saldo disponible CDP", Kind: KindNumeric,
		Get: func(r *Record) string { return r.CDPBalance }, Set: func(r *Record, v string) { r.CDPBalance = v }},
	{Key: "execution_addition", Label: "Adición en la ejecución", Kind: KindNumeric,
		Get: func(r *Record) string { return r.ExecutionAddition }, Set: func(r *Record, v string) { r.ExecutionAddition = v }},
	{Key: "total_contracted", Label: "Valor total contratado", Kind: KindNumeric,
		Get: func(r *Record) string { return r.TotalContracted }, Set: func(r *Record, v string) { r.TotalContracted = v }},
	{Key: "supervisor", Label: "Supervisor", Kind: KindCategorical,
		Get: func(r *Record) string { return r.Supervisor }, Set: func(r *Record, v string) { r.Supervisor = v }},
	{Key: "supervisor_backup", Label: "Supervisor (Apoyo)", Kind: KindText,
		Get: func(r *Record) string { return r.SupervisorBackup }, Set: func(r *Record, v string) { r.SupervisorBackup = v }},
	{Key: "otic_lawyer", Label: "Abogado OTIC", Kind: KindText,
		Get: func(r *Record) string { return r.OticLawyer }, Set: func(r *Record, v string) { r.OticLawyer = v }},
	{Key: "otic_tech_lead", Label: "Estructurador Técnico OTIC", Kind: KindText,
		Get: func(r *Record) string { return r.OticTechLead }, Set: func(r *Record, v string) { r.OticTechLead = v }},
	{Key: "contract_lawyers", Label: "Abogados GIT Gestión Contractual", Kind: KindText,
		Get: func(r *Record) string { return r.ContractLawyers }, Set: func(r *Record, v string) { r.ContractLawyers = v }},
	{Key: "git_economist", Label: "Economico GIT", Kind: KindText,
		Get: func(r *Record) string { return r.GitEconomist }, Set: func(r *Record, v string) { r.GitEconomist = v }},
	{Key: "start_date", Label: "Fecha acta de inicio / Fecha Inicio", Kind: KindDate,
		Get: func(r *Record) string { return r.StartDate }, Set: func(r *Record, v string) { r.StartDate = v }},
	{Key: "start_month_1", Label: "Mes de inicio1", Kind: KindText, ExportNumber: true,
		Get: func(r *Record) string { return r.StartMonth1 }, Set: func(r *Record, v string) { r.StartMonth1 = v }},
	{Key: "start_month_2", Label: "Mes de inicio2", Kind: KindText, ExportNumber: true,
		Get: func(r *Record) string { return r.StartMonth2 }, Set: func(r *Record, v string) { r.StartMonth2 = v }},
	{Key: "end_date", Label: "Fecha Final Contrato", Kind: KindDate,
		Get: func(r *Record) string { return r.EndDate }, Set: func(r *Record, v string) { r.EndDate = v }},
	{Key: "license_end", Label: "Fecha final de licencia/servicio", Kind: KindDate,
		Get: func(r *Record) string { return r.LicenseEnd }, Set: func(r *Record, v string) { r.LicenseEnd = v }},
	{Key: "provider", Label: "Proveedor / Contratista", Kind: KindCategorical,
		Get: func(r *Record) string { return r.Provider }, Set: func(r *Record, v string) { r.Provider = v }},
	{Key: "sharepoint_link", Label: "Enlace SharePoint", Kind: KindText,
		Get: func(r *Record) string { return r.SharepointLink }, Set: func(r *Record, v string) { r.SharepointLink = v }},
	{Key: "periodic_tracking", Label: "Seguimiento periódico", Kind: KindText,
		Get: func(r *Record) string { return r.PeriodicTracking }, Set: func(r *Record, v string) { r.PeriodicTracking = v }},
	{Key: "alert_sent", Label: "Alerta Enviada", Kind: KindText,
		Get: func(r *Record) string { return r.AlertSent }, Set: func(r *Record, v string) { r.AlertSent = v }},
}

// Options lists the fixed choice sets for the enumerated categorical fields,
// keyed by field key. Free categorical fields (provider, supervisor, process
// code and name) take their options from the distinct observed values.
var Options = map[string][]string{
	"process_status": {
		"Iniciado", "Estructuración", "En proceso de selección", "Adjudicado",
		"Perfeccionamiento del Contrato", "En Ejecución", "Liquidado",
	},
	"contract_type":  {"Bienes y servicios"},
	"funding_source": {"Funcionamiento", "Inversión"},
	"selection_modality": {
		"Mínima Cuantía", "Selección Abreviada - Acuerdo Marco", "Contratación Directa",
	},
}

var fieldsByKey = func() map[string]FieldSpec {
	m := make(map[string]FieldSpec, len(Fields))
	for _, f := range Fields {
		m[f.Key] = f
	}
	return m
}()

var fieldsByLabel = func() map[string]FieldSpec {
	m := make(map[string]FieldSpec, len(Fields))
	for _, f := range Fields {
		m[f.Label] = f
	}
	return m
}()

// FieldByKey looks a field up by its stable key.
func FieldByKey(key string) (FieldSpec, bool) {
	f, ok := fieldsByKey[key]
	return f, ok
}

// FieldByLabel looks a field up by its display label. Used by the CSV
// importer so exports of the legacy tool load back without renaming headers.
func FieldByLabel(label string) (FieldSpec, bool) {
	f, ok := fieldsByLabel[label]
	return f, ok
}

// Columns returns the SQL column names in canonical order.
func Columns() []string {
	cols := make([]string, len(Fields))
	for i, f := range Fields {
		cols[i] = f.Key
	}
	return cols
}
