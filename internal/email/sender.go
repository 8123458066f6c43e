package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/decryptorventure/taxgo-app/internal/config"
	"github.com/decryptorventure/taxgo-app/pkg/vnd"
	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Sender delivers filing documents and compliance reminders over SMTP.
type Sender struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewSender creates a new email sender.
func NewSender(cfg *config.Config, log *logrus.Logger) *Sender {
	return &Sender{cfg: cfg, log: log}
}

// Enabled reports whether SMTP delivery is configured.
func (s *Sender) Enabled() bool {
	return s.cfg.EmailEnabled()
}

// SendFilingDocument mails a generated 01/CNKD declaration as an attachment.
func (s *Sender) SendFilingDocument(to, taxpayerName, fileName, xmlContent string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Tờ khai thuế 01/CNKD"
	e.Text = []byte(fmt.Sprintf(
		"Chào %s,\n\n"+
			"Tờ khai thuế mẫu 01/CNKD của bạn được đính kèm email này.\n"+
			"Tệp XML tương thích với hệ thống thuedientu.gdt.gov.vn.\n\n"+
			"TaxGo",
		taxpayerName,
	))
	if _, err := e.Attach(strings.NewReader(xmlContent), fileName, "text/xml"); err != nil {
		return fmt.Errorf("failed to attach filing document: %w", err)
	}

	if err := s.send(e); err != nil {
		s.log.Errorf("Failed to send filing document to %s: %v", to, err)
		return err
	}
	s.log.Infof("Filing document %s sent to %s", fileName, to)
	return nil
}

// SendComplianceReminder mails the daily license-fee status for the current
// annual revenue projection.
func (s *Sender) SendComplianceReminder(to string, projection, licenseFee decimal.Decimal) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Nhắc nhở tuân thủ thuế - TaxGo"

	body := fmt.Sprintf(
		"Dự báo doanh thu năm của bạn: %s.\n", vnd.Format(projection),
	)
	if licenseFee.IsPositive() {
		body += fmt.Sprintf(
			"Với mức doanh thu này, lệ phí môn bài phải nộp là %s/năm.\n",
			vnd.Format(licenseFee),
		)
	} else {
		body += "Bạn đang ở dưới ngưỡng phải nộp lệ phí môn bài.\n"
	}
	body += fmt.Sprintf("\nNgày kiểm tra: %s\nTaxGo", time.Now().Format("2006-01-02"))
	e.Text = []byte(body)

	if err := s.send(e); err != nil {
		s.log.Errorf("Failed to send compliance reminder to %s: %v", to, err)
		return err
	}
	s.log.Infof("Compliance reminder sent to %s", to)
	return nil
}

func (s *Sender) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
