package logging

// Standard field names for structured log output.
const (
	FieldFile          = "file_path"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldStrategy      = "strategy"
	FieldPeriod        = "period"
	FieldDueDate       = "due_date"
	FieldStatus        = "status"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldCount         = "count"
	FieldFormat        = "format"
	FieldScore         = "score"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
