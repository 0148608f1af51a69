package errors

import (
	stderrors "errors"
	"fmt"
)

// NewGrammarError reports a tag body that does not match its micro-grammar.
// raw is the full tag text, e.g. "@route get /info", and is quoted in the message.
func NewGrammarError(tag, raw string) *BaseError {
	return Newf(GrammarErrorCode, "%q is not a valid %s definition", raw, tag).
		WithContext("tag", tag).
		WithContext("raw", raw).
		WithSuggestion(fmt.Sprintf("Use the form: @%s {name} rest", tag))
}

// NewDuplicateApplicationError reports a second @application block.
func NewDuplicateApplicationError(path string) *BaseError {
	return Newf(DuplicateApplicationErrorCode,
		"expected exactly one application definition, found 2 or more (%s)", path).
		WithLocation(SourceLocation{File: path}).
		WithSuggestion("Keep a single @application block across the scanned tree")
}

// NewMissingApplicationError reports a scan that found no @application block.
func NewMissingApplicationError(root string) *BaseError {
	return New(MissingApplicationErrorCode,
		"expected exactly one application definition, but none was found").
		WithContext("root", root).
		WithSuggestion("Annotate one declaration with @application <name>")
}

// NewSourceParseError reports a source file the frontend could not parse.
func NewSourceParseError(path string, line, column int, detail string) *BaseError {
	return Newf(SourceParseErrorCode, "syntax error: %s", detail).
		WithLocation(SourceLocation{File: path, Line: line, Column: column})
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configPath, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, configPath)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_path", configPath).
		WithContext("operation", operation)
}

// WrapGenerateError wraps an error with a "failed to generate" message
func WrapGenerateError(format string, cause error) *BaseError {
	return Wrap(GenerationErrorCode, fmt.Sprintf("failed to generate %s document", format), cause).
		WithContext("format", format)
}

// WrapFileError attaches the file being processed to an error raised while
// assembling it. A docspec error without a location gets path as its
// location and keeps its code; any other error becomes a source-parse error.
func WrapFileError(path string, cause error) error {
	if cause == nil {
		return nil
	}
	var base *BaseError
	if stderrors.As(cause, &base) {
		if base.Loc.IsEmpty() {
			base.Loc = SourceLocation{File: path}
		}
		return cause
	}
	return Wrap(SourceParseErrorCode, "failed to process file", cause).
		WithLocation(SourceLocation{File: path})
}
