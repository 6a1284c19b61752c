package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldSessionID = "session_id"
	FieldCustomer  = "customer"
	FieldRate      = "rate"
	FieldQuantity  = "quantity"
	FieldAmount    = "amount"
	FieldDate      = "date"
	FieldMonth     = "month"
	FieldRecords   = "records"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentSession  = "session"
	ComponentEntry    = "entry"
	ComponentCustomer = "customer"
	ComponentReport   = "report"
	ComponentExport   = "export"
	ComponentTemplate = "template"
)

// Operations defines standard operation names
const (
	OpUpsert   = "upsert"
	OpAppend   = "append"
	OpList     = "list"
	OpRender   = "render"
	OpExport   = "export"
	OpSweep    = "sweep"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
