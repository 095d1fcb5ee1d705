package services

import "fmt"

// ConfigurationError means the provider client was never initialized.
// It is not retried; the operator must fix the configuration and restart.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "OpenAI設定がありません: " + e.Reason
}

// ValidationError means caller-supplied input violates a precondition.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProviderError means the external provider call failed, or its payload
// could not be decoded or persisted.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
