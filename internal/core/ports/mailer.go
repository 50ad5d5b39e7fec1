package ports

// Mailer is the outbound mail collaborator. Sending is synchronous,
// at-least-once, and best-effort: callers log failures but never roll back
// the mutation that triggered the mail.
type Mailer interface {
	Send(to, subject, body string) error
}
