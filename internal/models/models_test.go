package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationDecodesCanonicalFields(t *testing.T) {
	payload := `{
		"id": "n1",
		"titolo": "Saggio",
		"messaggio": "Sabato ore 18",
		"tipo": "generale",
		"destinatari_ids": ["s1", "s2"],
		"attivo": true
	}`

	var n Notification
	require.NoError(t, json.Unmarshal([]byte(payload), &n))
	assert.Equal(t, "n1", n.ID)
	assert.Equal(t, "Saggio", n.Title)
	assert.Equal(t, NotificationGeneral, n.Type)
	assert.Equal(t, []string{"s1", "s2"}, n.RecipientIDs)
	assert.True(t, n.Active)
}

func TestNotificationNormalisesLegacyAliases(t *testing.T) {
	payload := `{
		"notification_id": "n2",
		"title": "Pagamento in scadenza",
		"message": "Quota di marzo",
		"notification_type": "pagamento",
		"recipient_ids": ["s3"],
		"is_active": true,
		"created_at": "2026-02-01T10:00:00Z"
	}`

	var n Notification
	require.NoError(t, json.Unmarshal([]byte(payload), &n))
	assert.Equal(t, "n2", n.ID)
	assert.Equal(t, "Pagamento in scadenza", n.Title)
	assert.Equal(t, "Quota di marzo", n.Message)
	assert.Equal(t, NotificationPayment, n.Type)
	assert.Equal(t, []string{"s3"}, n.RecipientIDs)
	assert.True(t, n.Active)
	require.NotNil(t, n.CreatedAt)
}

func TestNotificationCanonicalWinsOverAlias(t *testing.T) {
	payload := `{"id": "canonical", "notification_id": "legacy", "titolo": "A", "title": "B"}`

	var n Notification
	require.NoError(t, json.Unmarshal([]byte(payload), &n))
	assert.Equal(t, "canonical", n.ID)
	assert.Equal(t, "A", n.Title)
}

func TestUserLegacyNameAlias(t *testing.T) {
	payload := `{"id": "u1", "ruolo": "allievo", "name": "Maria Rossi", "email": "m@example.com"}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(payload), &u))
	assert.Equal(t, "Maria Rossi", u.GivenName)

	canonical := `{"id": "u2", "ruolo": "allievo", "nome": "Maria", "name": "legacy"}`
	var u2 User
	require.NoError(t, json.Unmarshal([]byte(canonical), &u2))
	assert.Equal(t, "Maria", u2.GivenName)
}

func TestUserRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleTeacher.Valid())
	assert.True(t, RoleStudent.Valid())
	assert.False(t, UserRole("superuser").Valid())
	assert.False(t, UserRole("").Valid())
}
