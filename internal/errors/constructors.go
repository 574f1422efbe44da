package errors

// Convenience functions for common error patterns

// Config errors

func ConfigLoadError(path string, cause error) *RagplanError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "failed to load configuration").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *RagplanError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Generation errors

func DocumentError(message string, cause error) *RagplanError {
	return Wrap(cause, CategoryDocument, SeverityFatal, message)
}

func RenderError(format string, cause error) *RagplanError {
	return Wrap(cause, CategoryRender, SeverityFatal, "document rendering failed").
		WithContext("format", format)
}

func WriteError(path string, cause error) *RagplanError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to write output file").
		WithContext("path", path)
}

// Journal errors

func JournalError(operation string, cause error) *RagplanError {
	return Wrap(cause, CategoryStorage, SeverityError, "journal operation failed").
		WithContext("operation", operation)
}

// Internal errors

func InternalError(message string, cause error) *RagplanError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
