package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator(t *testing.T) {
	tr, err := NewTranslator("en")
	require.NoError(t, err)

	data := map[string]any{"LeaveType": "SICK", "StartDate": "2025-06-10", "EndDate": "2025-06-11", "DecidedBy": "MANAGER"}

	t.Run("default locale", func(t *testing.T) {
		assert.Equal(t, "Leave approved", tr.T("", "leave_approved_title", nil))
		assert.Equal(t,
			"Your SICK leave from 2025-06-10 to 2025-06-11 was approved by MANAGER.",
			tr.T("en", "leave_approved_message", data),
		)
	})

	t.Run("accept-language header", func(t *testing.T) {
		assert.Equal(t, "Cuti ditolak", tr.T("id-ID,id;q=0.9,en;q=0.8", "leave_rejected_title", nil))
	})

	t.Run("unsupported locale falls back", func(t *testing.T) {
		assert.Equal(t, "Leave rejected", tr.T("fr", "leave_rejected_title", nil))
	})

	t.Run("unknown message id", func(t *testing.T) {
		assert.Equal(t, "nope", tr.T("en", "nope", nil))
	})

	assert.Len(t, tr.Languages(), 2)
}

func TestNewTranslator_InvalidDefault(t *testing.T) {
	_, err := NewTranslator("!!")
	assert.Error(t, err)
}
