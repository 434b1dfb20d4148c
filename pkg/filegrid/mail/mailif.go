package mail

import (
	"errors"

	"github.com/telsin/filegrid/pkg/filegrid"
	"github.com/telsin/filegrid/pkg/filegrid/mail/smtp_plain"
)

type FilegridMailerInterface interface {
	SendPlainTextMail(target string, title string, body string) error
	SendHTMLMail(target string, title string, body string) error
}

var ErrNotSupported = errors.New("mailer type not supported")

func InitializeMailer(cfg *filegrid.FilegridConfig) (FilegridMailerInterface, error) {
	switch cfg.Mailer.Type {
	case "smtp":
		return smtp_plain.NewFilegridSMTPPlainMailerInterface(cfg.Mailer.SMTPServer, cfg.Mailer.SMTPPort, cfg.Mailer.SMTPAuth, cfg.Mailer.User, cfg.Mailer.Password)
	}
	return nil, ErrNotSupported
}
