package ses

import (
	"context"
	"fmt"
	"net/url"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"vendasim/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, url.QueryEscape(resetToken))

	subject := "Redefina sua senha do VendaSim"
	htmlBody := buildPasswordResetHTML(toName, resetURL)
	textBody := fmt.Sprintf("Olá %s,\n\nRecebemos um pedido para redefinir sua senha. Acesse o link abaixo para criar uma nova senha:\n%s\n\nEste link expira em 1 hora. Se você não solicitou a redefinição, ignore este e-mail.\n\nEquipe VendaSim", toName, resetURL)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	subject := "Bem-vindo ao VendaSim"
	htmlBody := buildWelcomeHTML(toName, s.frontendURL)
	textBody := fmt.Sprintf("Olá %s,\n\nSua conta no VendaSim foi criada. Acesse a plataforma para começar a treinar:\n%s\n\nEquipe VendaSim", toName, s.frontendURL)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildPasswordResetHTML(name, resetURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Redefina sua senha</h2>
  <p>Olá %s,</p>
  <p>Recebemos um pedido para redefinir sua senha do VendaSim. Clique no botão abaixo para criar uma nova senha:</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Redefinir Senha</a>
  </p>
  <p>Ou copie e cole este link no seu navegador:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <p style="color: #999; font-size: 12px;">Este link expira em 1 hora. Se você não solicitou a redefinição, ignore este e-mail.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">VendaSim - Simulador de Vendas</p>
</body>
</html>`, name, resetURL, resetURL)
}

func buildWelcomeHTML(name, frontendURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Bem-vindo ao VendaSim</h2>
  <p>Olá %s,</p>
  <p>Sua conta foi criada. Acesse a plataforma para iniciar suas simulações de venda:</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Acessar Plataforma</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">VendaSim - Simulador de Vendas</p>
</body>
</html>`, name, frontendURL)
}
