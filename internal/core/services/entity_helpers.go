package services

import (
	"fmt"

	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
)

// strVal dereferences an optional request field, treating nil as empty.
func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// normalizeRef validates an incoming attachment reference and reduces it to
// the bare file id, which is the canonical stored form. Clients sometimes send
// the full share URL; both are accepted.
func normalizeRef(raw string) (string, error) {
	ref, err := domain.ParseAttachmentRef(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return ref.FileID, nil
}

// checkEditable rejects writes against records whose status locks them.
// A record under review must have its approval request cancelled first, and
// only admins may touch an approved record.
func checkEditable(status domain.Status, actor domain.Actor) error {
	switch status {
	case domain.StatusPending:
		return fmt.Errorf("%w: record is awaiting approval, cancel the request first", apperrors.ErrConflict)
	case domain.StatusApproved:
		if !actor.IsAdmin() {
			return fmt.Errorf("%w: approved records may only be changed by an admin", apperrors.ErrForbidden)
		}
	}
	return nil
}

// checkSubmittable rejects approval submissions for records not in a
// submittable status. DRAFT, REVISION and REJECTED records may be resubmitted.
func checkSubmittable(status domain.Status) error {
	switch status {
	case domain.StatusDraft, domain.StatusRevision, domain.StatusRejected:
		return nil
	case domain.StatusPending:
		return fmt.Errorf("%w: record is already awaiting approval", apperrors.ErrConflict)
	case domain.StatusApproved:
		return fmt.Errorf("%w: record is already approved", apperrors.ErrConflict)
	}
	return fmt.Errorf("%w: record status %s cannot be submitted for approval", apperrors.ErrConflict, status)
}
