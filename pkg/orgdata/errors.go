package orgdata

import (
	"errors"
	"fmt"
)

// ErrorReason classifies why a registry operation was rejected
type ErrorReason string

const (
	ReasonUnknown             ErrorReason = ""
	ReasonUnitNotFound        ErrorReason = "UnitNotFound"
	ReasonEmployeeNotFound    ErrorReason = "EmployeeNotFound"
	ReasonManagerNotFound     ErrorReason = "ManagerNotFound"
	ReasonDuplicateUnit       ErrorReason = "DuplicateUnit"
	ReasonDuplicateHead       ErrorReason = "DuplicateHead"
	ReasonInvalidRole         ErrorReason = "InvalidRole"
	ReasonMissingManager      ErrorReason = "MissingManager"
	ReasonManagerCannotManage ErrorReason = "ManagerCannotManage"
	ReasonHeadHasNoManager    ErrorReason = "HeadHasNoManager"
	ReasonCannotDeleteHead    ErrorReason = "CannotDeleteHead"
	ReasonHasReports          ErrorReason = "HasReports"
	ReasonManagementCycle     ErrorReason = "ManagementCycle"
)

// Error is returned by every Organization operation that rejects its input.
// The message is the diagnostic shown to the user verbatim.
type Error struct {
	Reason  ErrorReason
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error with the same reason, so the sentinels below work with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Reason == e.Reason
}

var (
	ErrUnitNotFound        = &Error{Reason: ReasonUnitNotFound, Message: "unit not found"}
	ErrEmployeeNotFound    = &Error{Reason: ReasonEmployeeNotFound, Message: "employee not found"}
	ErrManagerNotFound     = &Error{Reason: ReasonManagerNotFound, Message: "manager not found"}
	ErrDuplicateUnit       = &Error{Reason: ReasonDuplicateUnit, Message: "unit already exists"}
	ErrDuplicateHead       = &Error{Reason: ReasonDuplicateHead, Message: "head of organization already exists"}
	ErrInvalidRole         = &Error{Reason: ReasonInvalidRole, Message: "invalid role"}
	ErrMissingManager      = &Error{Reason: ReasonMissingManager, Message: "manager is required"}
	ErrManagerCannotManage = &Error{Reason: ReasonManagerCannotManage, Message: "role can not manage"}
	ErrHeadHasNoManager    = &Error{Reason: ReasonHeadHasNoManager, Message: "head of organization has no manager"}
	ErrCannotDeleteHead    = &Error{Reason: ReasonCannotDeleteHead, Message: "head of organization can not be deleted"}
	ErrHasReports          = &Error{Reason: ReasonHasReports, Message: "employee has reports"}
	ErrManagementCycle     = &Error{Reason: ReasonManagementCycle, Message: "assignment creates a reporting cycle"}
)

func newError(reason ErrorReason, format string, args ...interface{}) *Error {
	return &Error{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// ReasonForError returns the reason carried by err, or ReasonUnknown if err
// did not come from the registry
func ReasonForError(err error) ErrorReason {
	var orgErr *Error
	if errors.As(err, &orgErr) {
		return orgErr.Reason
	}
	return ReasonUnknown
}

// IsNotFound is true for any of the lookup failures: unit, employee or manager
func IsNotFound(err error) bool {
	switch ReasonForError(err) {
	case ReasonUnitNotFound, ReasonEmployeeNotFound, ReasonManagerNotFound:
		return true
	}
	return false
}

// IsConflict is true when the operation collided with an existing unit or head
func IsConflict(err error) bool {
	switch ReasonForError(err) {
	case ReasonDuplicateUnit, ReasonDuplicateHead:
		return true
	}
	return false
}

func unitNotFound(name string) *Error {
	return newError(ReasonUnitNotFound, "Unit %s does not exist.", name)
}

func employeeNotFound() *Error {
	return newError(ReasonEmployeeNotFound, "Employee with this id was not found.")
}

func managerNotFound(id int) *Error {
	return newError(ReasonManagerNotFound, "Manager with id %d not found.", id)
}

func managerCannotManage(role Role) *Error {
	return newError(ReasonManagerCannotManage, "Employee with role %s can not manage.", role)
}

func wrongAddEmployeeFormat(reason ErrorReason, detail string) *Error {
	return newError(reason, "Wrong format for add employee command.\n\t%s", detail)
}
