package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
)

// Mailer sends the transactional emails of the application
type Mailer interface {
	SendRecoveryPin(ctx context.Context, toEmail, pin string, ttl time.Duration) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// Sender delivers one fully built message. The SMTP implementation is the
// production sender; tests substitute their own.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPMailer implements Mailer on top of a Sender guarded by a circuit breaker,
// so a dead mail server fails fast instead of holding request goroutines.
type SMTPMailer struct {
	sender  Sender
	breaker *gobreaker.CircuitBreaker[struct{}]
	logger  zerolog.Logger
	devMode bool
}

// NewSMTPMailer creates the mailer. Without SMTP credentials the mailer logs
// messages instead of sending them.
func NewSMTPMailer(config SMTPConfig, logger zerolog.Logger) *SMTPMailer {
	return NewMailer(&smtpSender{config: config}, config.Username == "" || config.Password == "", logger)
}

// NewMailer wires an arbitrary Sender behind the breaker
func NewMailer(sender Sender, devMode bool, logger zerolog.Logger) *SMTPMailer {
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "smtp",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Mail circuit breaker changed state")
		},
	})

	return &SMTPMailer{
		sender:  sender,
		breaker: breaker,
		logger:  logger,
		devMode: devMode,
	}
}

// SendRecoveryPin mails the password recovery PIN
func (m *SMTPMailer) SendRecoveryPin(ctx context.Context, toEmail, pin string, ttl time.Duration) error {
	if m.devMode {
		m.logger.Warn().
			Str("toEmail", toEmail).
			Str("pin", pin).
			Msg("SMTP credentials not configured - recovery email not sent. Use the PIN above for testing.")
		return nil
	}

	subject := "Recuperación de contraseña"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Recuperación de contraseña</h2>
				<p>Recibimos una solicitud para restablecer su contraseña.</p>
				<p>Su código de recuperación es:</p>
				<p style="font-size: 28px; letter-spacing: 6px; text-align: center;"><strong>%s</strong></p>
				<p>El código vence en %d minutos y solo puede usarse una vez.</p>
				<p>Si usted no solicitó este cambio, ignore este mensaje.</p>
			</div>
		</body>
		</html>
	`, pin, int(ttl.Minutes()))

	_, err := m.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, m.sender.Send(ctx, toEmail, subject, body)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %v", apperrors.ErrMailUnavailable, err)
		}
		m.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send recovery email")
		return fmt.Errorf("failed to send recovery email: %w", err)
	}

	m.logger.Info().Str("toEmail", toEmail).Msg("Recovery email sent")
	return nil
}

// sendTimeout bounds one SMTP exchange when the caller set no deadline
const sendTimeout = 30 * time.Second

type smtpSender struct {
	config SMTPConfig
}

// Send runs the whole SMTP exchange under ctx: the dial honours it, the
// connection deadline follows it, and cancelling ctx closes the connection.
func (s *smtpSender) Send(ctx context.Context, toEmail, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sendTimeout)
		defer cancel()
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", toEmail)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	msg.WriteString(htmlBody)

	conn, err := s.dial(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	deadline, _ := ctx.Deadline()
	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("failed to set SMTP deadline: %w", err)
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if err := s.deliver(conn, toEmail, msg.String()); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("failed to send email: %w", ctxErr)
		}
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return fmt.Errorf("failed to send email: %w", context.DeadlineExceeded)
		}
		return err
	}
	return nil
}

func (s *smtpSender) dial(ctx context.Context) (net.Conn, error) {
	address := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	if s.config.UseTLS {
		dialer := &tls.Dialer{Config: s.tlsConfig()}
		return dialer.DialContext(ctx, "tcp", address)
	}
	var dialer net.Dialer
	return dialer.DialContext(ctx, "tcp", address)
}

func (s *smtpSender) tlsConfig() *tls.Config {
	return &tls.Config{ServerName: s.config.Host, MinVersion: tls.VersionTLS12}
}

func (s *smtpSender) deliver(conn net.Conn, toEmail, msg string) error {
	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if !s.config.UseTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(s.tlsConfig()); err != nil {
				return fmt.Errorf("failed to start TLS: %w", err)
			}
		}
	}

	if ok, _ := client.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}
	if err := client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}
