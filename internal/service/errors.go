package service

// ApplicationError is a business-rule failure that the transport layer
// maps to a status code.  Name identifies the kind, Message is safe to
// show to clients.
type ApplicationError interface {
	error
	Name() string
}

// NotFoundError reports that a referenced entity (enrollment, room,
// booking, user) does not exist.
type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }
func (e *NotFoundError) Name() string  { return "NotFoundError" }

// ForbiddenError reports a business-rule violation: unpaid, remote or
// hotel-less ticket, or a full room.
type ForbiddenError struct{ Message string }

func (e *ForbiddenError) Error() string { return e.Message }
func (e *ForbiddenError) Name() string  { return "ForbiddenError" }

// ConflictError reports a uniqueness violation such as a taken email.
type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }
func (e *ConflictError) Name() string  { return "ConflictError" }

// UnauthorizedError reports bad credentials.
type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }
func (e *UnauthorizedError) Name() string  { return "UnauthorizedError" }

// InvalidDataError reports a request that fails input validation.
type InvalidDataError struct{ Message string }

func (e *InvalidDataError) Error() string { return e.Message }
func (e *InvalidDataError) Name() string  { return "InvalidDataError" }

func notFound(msg string) error  { return &NotFoundError{Message: msg} }
func forbidden(msg string) error { return &ForbiddenError{Message: msg} }
