// Package errors provides the structured error type used to carry symbolic,
// machine-identifiable failures across a process boundary.
//
// A callee picks a kind that identifies why an operation failed and may add a
// short reason for developers and free-form details for diagnostics:
//
//	return errors.New("logged-out", "The user must be logged in to post a comment.", "")
//
// Callers branch on the kind, never on the message:
//
//	if errors.HasKind(err, "logged-out") {
//	    // ask the user to sign in
//	}
//
// The message reported by Error() is fixed at construction: "<reason> [<kind>]"
// when a reason is given, "[<kind>]" otherwise.
//
// # Refinements
//
// Other failure shapes are defined with MakeType and by embedding *VehoError:
//
//	var QuotaType = errors.MakeType("QuotaError")
//
//	type QuotaError struct {
//	    *errors.VehoError
//	    Limit int
//	}
//
// A refinement keeps the message rule and stack capture of the base, reports
// its own name from ErrorType, and still satisfies IsStructured and As.
package errors
