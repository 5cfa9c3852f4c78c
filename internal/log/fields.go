package log

// Canonical field names.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldRequestID = "request_id"

	FieldMethod   = "method"
	FieldPath     = "path"
	FieldStatus   = "status"
	FieldDuration = "duration_ms"
	FieldRemote   = "remote"

	FieldEntry    = "entry"
	FieldBindings = "bindings"
	FieldURL      = "url"
)
