package errors

import "fmt"

// GenerationError represents a failure while rendering constructor sources
type GenerationError struct {
	*BaseError
	GenerationType string // what was being generated, e.g. "constructors" or "template"
	TargetFile     string // file or template name
	Stage          string // parse, execute, format, write
}

// WrapGenerateError wraps an error with a "failed to generate" message
func WrapGenerateError(generationType, item string, cause error) *GenerationError {
	message := withCause(fmt.Sprintf("failed to generate %s", item), cause)
	return &GenerationError{
		BaseError:      Wrap(GenerationErrorCode, message, cause),
		GenerationType: generationType,
		TargetFile:     item,
	}
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *GenerationError {
	message := withCause(fmt.Sprintf("failed to %s template '%s'", operation, templateName), cause)
	return &GenerationError{
		BaseError:      Wrap(TemplateErrorCode, message, cause),
		GenerationType: "template",
		TargetFile:     templateName,
		Stage:          operation,
	}
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := withCause(fmt.Sprintf("failed to %s file '%s'", operation, path), cause)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	message := withCause(fmt.Sprintf("failed to %s configuration '%s'", operation, configType), cause)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}

// withCause appends the cause so wrapped errors read well on their own
func withCause(message string, cause error) string {
	if cause == nil {
		return message
	}
	return message + ": " + cause.Error()
}
