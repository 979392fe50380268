package email

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/lumenworks/backoffice/internal/shared/services/markdown"
)

type mockDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *mockDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func newTestService(d *mockDialer) *SMTPEmailService {
	svc := NewSMTPEmailService(SMTPConfig{
		Host:        "localhost",
		Port:        1025,
		FromAddress: "noreply@example.com",
		FromName:    "Back Office",
	}, markdown.NewRenderer())
	svc.dialer = d
	return svc
}

func TestSMTPEmailService_Send(t *testing.T) {
	d := &mockDialer{}
	svc := newTestService(d)

	require.NoError(t, svc.Send("tenant@example.com", "Quotation approved", "Final price **750 USD**"))
	require.Len(t, d.sent, 1)

	var buf bytes.Buffer
	_, err := d.sent[0].WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "tenant@example.com")
	assert.Contains(t, raw, "Quotation approved")
	assert.Contains(t, raw, "text/html")
	assert.Equal(t, []string{"tenant@example.com"}, d.sent[0].GetHeader("To"))
}

func TestSMTPEmailService_SendError(t *testing.T) {
	svc := newTestService(&mockDialer{err: errors.New("connection refused")})

	err := svc.Send("tenant@example.com", "s", "b")
	assert.ErrorContains(t, err, "connection refused")
}
