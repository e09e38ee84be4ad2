package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Element Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryProps,
		Message:  "Data attribute value cannot be converted",
		Detail:   "A value under the data prop is neither a scalar nor JSON encodable.",
		DocURL:   "https://vstyle.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryRender,
		Message:  "Component rendered no node",
		Detail:   "A component returned nil where the page expects an element.",
		DocURL:   "https://vstyle.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryRender,
		Message:  "Unsupported element target",
		Detail:   "An element can only be created from a tag name or a component.",
		DocURL:   "https://vstyle.dev/docs/errors/E003",
	},

	// ============================================
	// Configuration Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid vstyle.json",
		Detail:   "The configuration file is not valid JSON or has fields of the wrong type.",
		DocURL:   "https://vstyle.dev/docs/errors/E120",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The dev server port must be between 1 and 65535.",
		DocURL:   "https://vstyle.dev/docs/errors/E122",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Invalid class prefix",
		Detail:   "The sheet prefix must start with a letter and contain only letters, digits, '-' and '_'.",
		DocURL:   "https://vstyle.dev/docs/errors/E123",
	},

	// ============================================
	// CLI Errors (E140-E149)
	// ============================================

	"E141": {
		Category: CategoryCLI,
		Message:  "vstyle.json not found",
		Detail:   "No vstyle.json was found in the current directory or any parent directory.",
		DocURL:   "https://vstyle.dev/docs/errors/E141",
	},

	// ============================================
	// Publish Errors (E150-E159)
	// ============================================

	"E150": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		Detail:   "An object could not be written to the bucket.",
		DocURL:   "https://vstyle.dev/docs/errors/E150",
	},
	"E151": {
		Category: CategoryPublish,
		Message:  "Bucket not configured",
		Detail:   "Set publish.bucket in vstyle.json or pass --bucket.",
		DocURL:   "https://vstyle.dev/docs/errors/E151",
	},

	// ============================================
	// Render Errors (E160-E169)
	// ============================================

	"E160": {
		Category: CategoryRender,
		Message:  "Invalid tag",
		Detail:   "The element tag cannot be written to HTML safely.",
		DocURL:   "https://vstyle.dev/docs/errors/E160",
	},
	"E161": {
		Category: CategoryRender,
		Message:  "Unknown node kind",
		Detail:   "The renderer met a node kind it does not know how to serialize.",
		DocURL:   "https://vstyle.dev/docs/errors/E161",
	},

	// ============================================
	// Build Errors (E170-E179)
	// ============================================

	"E170": {
		Category: CategoryBuild,
		Message:  "Build output failed",
		Detail:   "A build artifact could not be written to the output directory.",
		DocURL:   "https://vstyle.dev/docs/errors/E170",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
