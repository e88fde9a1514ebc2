package forms

// FieldAttr describes how a contact form field should render. This is
// static presentation configuration consumed by the template layer.
type FieldAttr struct {
	Class       string
	Placeholder string
	Required    bool
	Rows        int // textarea rows; 0 for single-line inputs
}

// ContactFieldAttrs holds the per-field widget configuration for the
// contact form, keyed by field name.
var ContactFieldAttrs = map[string]FieldAttr{
	"name":    {Class: "form-input", Placeholder: "Your Full Name *", Required: true},
	"email":   {Class: "form-input", Placeholder: "your.email@example.com *", Required: true},
	"subject": {Class: "form-input", Placeholder: "What would you like to discuss? *", Required: true},
	"message": {Class: "form-textarea", Placeholder: "Tell me about your project, question, or how I can help you... *", Required: true, Rows: 5},
	"phone":   {Class: "form-input", Placeholder: "Your Phone Number (Optional)"},
	"company": {Class: "form-input", Placeholder: "Your Company/Organization (Optional)"},
}
