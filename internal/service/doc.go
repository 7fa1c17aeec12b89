// Package service contains the application use cases of the task board: user
// registration and login, and the category, priority, board and task lifecycles.
//
// Services receive their stores and collaborators through constructor
// injection and never touch infrastructure directly. Every failure leaves a
// service as a *Error tagged with a Kind; the API layer converts that kind to a
// status code in one place.
//
// The ExistenceChecker implements the entity existence gate: before a task is
// created or updated every supplied reference is checked, in a fixed order,
// for format and then for a live record.
package service
