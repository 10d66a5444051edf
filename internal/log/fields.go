package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldKey       = "key"
	FieldRecordID  = "record_id"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldCount     = "count"
	FieldRevision  = "revision"
	FieldBackend   = "backend"
	FieldPath      = "path"
)

// Standard component names.
const (
	ComponentApp    = "app"
	ComponentStore  = "store"
	ComponentKV     = "kv"
	ComponentBudget = "budget"
	ComponentCLI    = "cli"
)
