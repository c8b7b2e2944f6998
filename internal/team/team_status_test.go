package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		byAdmin bool
		wantErr error
	}{
		{"leader submits draft", StatusDraft, StatusPending, false, nil},
		{"leader resubmits pending", StatusPending, StatusPending, false, ErrInvalidTransition},
		{"leader resubmits rejected", StatusRejected, StatusPending, false, ErrInvalidTransition},
		{"admin forces pending", StatusDraft, StatusPending, true, ErrInvalidTransition},

		{"admin approves pending", StatusPending, StatusApproved, true, nil},
		{"admin approves rejected", StatusRejected, StatusApproved, true, nil},
		{"admin unblocks via approval", StatusBlocked, StatusApproved, true, nil},
		{"admin approves draft", StatusDraft, StatusApproved, true, ErrInvalidTransition},
		{"leader self-approves", StatusPending, StatusApproved, false, ErrAdminOnly},

		{"admin rejects pending", StatusPending, StatusRejected, true, nil},
		{"admin rejects approved", StatusApproved, StatusRejected, true, nil},
		{"admin blocks approved", StatusApproved, StatusBlocked, true, nil},
		{"admin blocks draft", StatusDraft, StatusBlocked, true, nil},
		{"leader rejects", StatusPending, StatusRejected, false, ErrAdminOnly},
		{"leader blocks", StatusApproved, StatusBlocked, false, ErrAdminOnly},

		{"unknown target", StatusPending, "archived", true, ErrInvalidTransition},
		{"unknown source", "limbo", StatusApproved, true, ErrInvalidTransition},
		{"admin resets to draft", StatusBlocked, StatusDraft, true, ErrInvalidTransition},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to, tc.byAdmin)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusDraft, StatusPending, StatusApproved, StatusRejected, StatusBlocked} {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus(""))
}
