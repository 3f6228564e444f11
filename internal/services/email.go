package services

import (
	"fmt"
	"net/smtp"

	"vitalpoint/internal/config"
	"vitalpoint/internal/logger"

	"go.uber.org/zap"
)

type EmailService struct {
	auth smtp.Auth
	from string
	host string
	port string
}

func NewEmailService(cfg *config.Config) *EmailService {
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	return &EmailService{
		auth: auth,
		from: cfg.SMTPUser,
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
	}
}

func (s *EmailService) Send(to []string, subject, body string) error {
	msg := []byte("Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
		body)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, s.auth, s.from, to, msg)
}

type EmailJob struct {
	To      []string
	Subject string
	Body    string
}

// EmailQueue buffers outgoing notifications so request handlers never wait
// on SMTP.
var EmailQueue = make(chan EmailJob, 100)

// StartEmailWorker drains EmailQueue. Run a few of these from app init.
func StartEmailWorker(emailService *EmailService) {
	for job := range EmailQueue {
		if err := emailService.Send(job.To, job.Subject, job.Body); err != nil {
			logger.Log.Error("failed to send email",
				zap.Strings("to", job.To),
				zap.String("subject", job.Subject),
				zap.Error(err),
			)
			continue
		}
		logger.Log.Info("email sent", zap.Strings("to", job.To), zap.String("subject", job.Subject))
	}
}
