// File: utils/firebase.go
package utils

import (
	"context"
	"log"

	"stayx/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	FirebaseApp     *firebase.App
	AuthClient      *auth.Client
	FirestoreClient *firestore.Client
	FCMClient       *messaging.Client
)

// FirebaseInit initializes the Firebase app and the Auth, Firestore and
// Messaging clients. Call once at startup before serving requests.
func FirebaseInit() {
	ctx := context.Background()

	var opts []option.ClientOption
	if config.AppConfig.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: config.AppConfig.FirebaseProjectID}, opts...)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}

	fcmClient, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}

	FirebaseApp = app
	AuthClient = authClient
	FirestoreClient = fsClient
	FCMClient = fcmClient
}

// GetFirestoreClient returns the global Firestore client.
func GetFirestoreClient() *firestore.Client {
	if FirestoreClient == nil {
		FirebaseInit()
	}
	return FirestoreClient
}

// GetAuthClient returns the global Firebase Auth client.
func GetAuthClient() *auth.Client {
	if AuthClient == nil {
		FirebaseInit()
	}
	return AuthClient
}
