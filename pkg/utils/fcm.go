package utils

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

var fcmClient *messaging.Client

// InitFCM liga o push de novos formulários pro celular da recepção.
// Sem FCM_CREDENTIALS_FILE configurado, o recurso fica desligado e o
// servidor sobe normalmente.
func InitFCM() {
	credsPath := os.Getenv("FCM_CREDENTIALS_FILE")
	if credsPath == "" {
		log.Println("FCM desativado (FCM_CREDENTIALS_FILE não configurado)")
		return
	}

	opt := option.WithCredentialsFile(credsPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Printf("Erro ao iniciar o Firebase, notificações desativadas: %v", err)
		return
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.Printf("Erro no client de messaging, notificações desativadas: %v", err)
		return
	}

	fcmClient = client
	log.Println("🔥 Firebase Cloud Messaging pronto!")
}

// NotifyStaff avisa o dispositivo da equipe (FCM_STAFF_TOKEN) sobre um evento.
// No-op silencioso quando o FCM não está configurado.
func NotifyStaff(title string, body string, data map[string]string) error {
	token := os.Getenv("FCM_STAFF_TOKEN")
	if fcmClient == nil || token == "" {
		return nil
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := fcmClient.Send(context.Background(), message)
	if err != nil {
		log.Printf("Erro ao enviar notificação: %s", err)
		return err
	}
	return nil
}
