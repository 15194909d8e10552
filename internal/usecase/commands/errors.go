package commands

import "boat-reservation/internal/pkg/errs"

var (
	ErrTimeSlotNotFound     = errs.Define("time slot not found", errs.ErrNotFound)
	ErrReservationNotFound  = errs.Define("reservation not found", errs.ErrNotFound)
	ErrBoatNotFound         = errs.Define("boat not found", errs.ErrNotFound)
	ErrCruisePeriodNotFound = errs.Define("cruise period not found", errs.ErrNotFound)
	ErrNoBoatAvailable      = errs.Define("no boat is available for this time slot", errs.ErrConflict)
	ErrNotReservationOwner  = errs.Define("reservation belongs to another user", errs.ErrForbidden)
	ErrAdminRequired        = errs.Define("admin role is required", errs.ErrForbidden)
)
