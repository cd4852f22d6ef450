// Package errs provides the standardized error taxonomy for the donation
// platform. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The taxonomy distinguishes the categories callers need to react to:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or missing input, caller-correctable
//   - ObjectNotFoundError: a referenced id does not resolve
//   - StatusConflictError: a precondition on an entity's current status does
//     not hold, including lost concurrent races
//   - InvalidTransitionError: a status edge the state machine does not permit
//   - PermissionDeniedError: the caller lacks the required role or ownership
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies by
//     category without coupling to the concrete struct
//
// None of these errors are retried automatically; StatusConflictError is the
// only category a caller is expected to resubmit after re-reading state.
package errs
