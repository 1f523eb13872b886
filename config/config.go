package config

import (
	"context"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var FirebaseAuth *auth.Client
var Firestore *firestore.Client

// FirebaseAPIKey is the web API key used for password sign-in through the
// Identity Toolkit endpoint. The admin SDK credentials cannot verify passwords.
var FirebaseAPIKey string

// AdminEmails is the allow-list of accounts permitted into the admin panel.
// Loaded from ADMIN_EMAILS (comma separated) so deployments can change it
// without a rebuild.
var AdminEmails []string

var SessionSecret []byte

// Production reports whether we run in a production-equivalent environment.
// Controls the Secure flag on cookies and error detail exposure.
var Production bool

type SMTPConfig struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

var SMTP SMTPConfig

func Init() {
	FirebaseAPIKey = os.Getenv("FIREBASE_API_KEY")
	if FirebaseAPIKey == "" {
		log.Fatal("FIREBASE_API_KEY is not set")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	SessionSecret = []byte(secret)

	for _, email := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			AdminEmails = append(AdminEmails, email)
		}
	}
	if len(AdminEmails) == 0 {
		log.Println("ADMIN_EMAILS is empty, admin panel login is disabled")
	}

	Production = os.Getenv("APP_ENV") == "production"

	SMTP = SMTPConfig{
		Host:      os.Getenv("SMTP_HOST"),
		Port:      os.Getenv("SMTP_PORT"),
		Username:  os.Getenv("SMTP_USERNAME"),
		Password:  os.Getenv("SMTP_PASSWORD"),
		FromEmail: os.Getenv("FROM_EMAIL"),
		FromName:  os.Getenv("FROM_NAME"),
	}
}

func InitFirebase() {
	ctx := context.Background()

	opt := option.WithCredentialsFile(os.Getenv("FIREBASE_CREDENTIALS_PATH"))
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("error initializing app: %v\n", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("error getting Auth client: %v\n", err)
	}
	FirebaseAuth = authClient

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("error getting Firestore client: %v\n", err)
	}
	Firestore = fsClient

	log.Println("Successfully connected to Firebase!")
}

func IsAdminEmail(email string) bool {
	email = strings.ToLower(email)
	for _, admin := range AdminEmails {
		if admin == email {
			return true
		}
	}
	return false
}
