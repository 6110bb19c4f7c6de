package domain_test

import (
	"testing"

	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestApproval_CanTransitionTo(t *testing.T) {
	pending := &domain.Approval{Status: domain.ApprovalPending}
	assert.True(t, pending.CanTransitionTo(domain.ApprovalApproved))
	assert.True(t, pending.CanTransitionTo(domain.ApprovalRejected))
	assert.True(t, pending.CanTransitionTo(domain.ApprovalRevision))
	assert.True(t, pending.CanTransitionTo(domain.ApprovalCancelled))
	assert.False(t, pending.CanTransitionTo(domain.ApprovalPending))
	assert.False(t, pending.CanTransitionTo(domain.ApprovalStatus("BOGUS")))
}

func TestApproval_TerminalStatusesDoNotTransition(t *testing.T) {
	for _, s := range []domain.ApprovalStatus{
		domain.ApprovalApproved,
		domain.ApprovalRejected,
		domain.ApprovalRevision,
		domain.ApprovalCancelled,
	} {
		a := &domain.Approval{Status: s}
		assert.False(t, a.CanTransitionTo(domain.ApprovalApproved), string(s))
		assert.False(t, a.CanTransitionTo(domain.ApprovalRejected), string(s))
	}
}

func TestEntityStatusAfter(t *testing.T) {
	assert.Equal(t, domain.StatusApproved, domain.EntityStatusAfter(domain.ApprovalApproved))
	assert.Equal(t, domain.StatusRejected, domain.EntityStatusAfter(domain.ApprovalRejected))
	assert.Equal(t, domain.StatusRevision, domain.EntityStatusAfter(domain.ApprovalRevision))
	// a withdrawn request returns the entity to an editable state
	assert.Equal(t, domain.StatusDraft, domain.EntityStatusAfter(domain.ApprovalCancelled))
}

func TestEntityType_IsApprovable(t *testing.T) {
	assert.True(t, domain.EntityFinance.IsApprovable())
	assert.True(t, domain.EntityLetter.IsApprovable())
	assert.True(t, domain.EntityDocument.IsApprovable())
	assert.True(t, domain.EntityEvent.IsApprovable())
	assert.False(t, domain.EntityGallery.IsApprovable())
	assert.False(t, domain.EntityArticle.IsApprovable())
}
