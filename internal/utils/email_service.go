package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"ysphere-server/configs"
)

// EmailService provides email delivery functionality
type EmailService struct {
	smtpHost     string
	smtpPort     int
	smtpUsername string
	smtpPassword string
	senderEmail  string
	senderName   string
}

// NewEmailService creates an EmailService from the email config.
func NewEmailService() *EmailService {
	cfg := configs.Configs.Email
	return &EmailService{
		smtpHost:     cfg.SmtpHost,
		smtpPort:     cfg.SmtpPort,
		smtpUsername: cfg.Username,
		smtpPassword: cfg.Password,
		senderEmail:  cfg.SenderEmail,
		senderName:   cfg.SenderName,
	}
}

// SendEmail sends one HTML email.
func (s *EmailService) SendEmail(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.smtpHost, s.smtpPort, s.smtpUsername, s.smtpPassword)

	return d.DialAndSend(m)
}

// GenerateResetPasswordHTML 產生密碼重置信的內容
func (s *EmailService) GenerateResetPasswordHTML(name, resetUrl string) string {
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 400px; margin: 0 auto; padding: 20px;">
          <div style="text-align: center; margin-bottom: 20px;">
            <h2 style="color: #333;">密碼重置請求</h2>
          </div>

          <div style="background: #f7f7f7; padding: 28px; border-radius: 5px; margin-bottom: 20px;">
            <p style="margin-top: 0; font-size: 14px; font-weight: 600">%s 您好，</p>
            <p style="font-size: 14px; font-weight: 500">我們收到了您的密碼重置請求。請點擊下方連結重置您的密碼：</p>
            <div style="text-align: center; margin: 40px 0;">
              <a href="%s"
                  style="background: #495866; color: white; padding: 12px 24px;
                        text-decoration: none; letter-spacing:2px; font-size:14px; border-radius: 5px; display: inline-block;">
                重置密碼
              </a>
            </div>
            <p style="color: #666; font-size: 13px;">
              此連結將在30分鐘後失效。<br>
            </p>
            <p style="color: #666; font-size: 13px;">
              如果您沒有請求重置密碼，請忽略此郵件。
            </p>
          </div>

          <div style="text-align: center; margin-top: 30px;">
            <p>感謝您的使用！</p>
            <p style="color: #666; margin-bottom: 20px;">Ysphere EIP System</p>
          </div>

          <div style="text-align: center; margin-top: 20px; color: #999; font-size: 12px;">
            <p>此為系統自動發送的郵件，請勿直接回覆</p>
          </div>
        </div>`, name, resetUrl)
}
