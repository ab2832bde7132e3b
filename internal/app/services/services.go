package services

// Services defined in this package:
// - CourseTypeService: course type lifecycle and name uniqueness
// - CourseService: course lifecycle and name uniqueness
// - OfferingService: offering lifecycle, pair uniqueness, capacity
// - StudentService: student lifecycle and contact validation
// - RegistrationService: registrations, duplicate and capacity checks
// - UIService: view, selections, toast and confirm-dialog flow
//
// Services own what the original forms did: field validation, id and
// timestamp generation, cross-collection checks against the current state,
// and the success toasts. The store itself trusts dispatched records.
// Mutating operations run their checks and dispatches through store.Update,
// one critical section, so concurrent requests cannot interleave between a
// check and its apply.
