package errs

// Cross-layer sentinel errors; feature-specific ones live next to their use cases
var (
	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Persistence outcomes, attached by the repository layer with Mark
	ErrRecordNotFound   = New("record not found")
	ErrDuplicateRecord  = New("record already exists")
	ErrRecordReferenced = New("record violates a foreign key")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
