package domain

import "errors"

var (
	// ErrNoTestDeclaration means the line is neither a test class nor a test method declaration.
	ErrNoTestDeclaration = errors.New("no test declaration")
	// ErrClassResolution means the source file could not be mapped to a class name.
	ErrClassResolution = errors.New("class name resolution failed")
	// ErrConfigNotFound means no stored descriptor exists for a configuration name.
	ErrConfigNotFound = errors.New("run configuration not found")
	// ErrInvalidTarget means a class or method name is not a valid identifier.
	ErrInvalidTarget = errors.New("invalid run target")
	// ErrDuplicateProvider means a provider ID was registered twice.
	ErrDuplicateProvider = errors.New("provider already registered")
	// ErrUnknownProvider means no provider is registered under an ID.
	ErrUnknownProvider = errors.New("unknown provider")
)
