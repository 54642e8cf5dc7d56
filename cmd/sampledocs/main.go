package main

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"

	"playaround/internal/adapter/repository"
	"playaround/internal/infrastructure/firebase"
	"playaround/internal/usecase"
	"playaround/pkg/config"
)

// Seeds Firestore with deterministic sample documents for local development.
// Safe to run multiple times; each document is written with merge semantics.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	opts := firebase.CredentialOptions(cfg.ServiceAccountJSON, cfg.ServiceAccountPath)
	if opts == nil {
		log.Printf("No credentials configured, using application default credentials")
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	seedRepo := repository.NewFirestoreSeedRepository(firestoreClient)
	seeder := usecase.NewSampleDocsUseCase(seedRepo)

	if err := seeder.Run(ctx); err != nil {
		log.Fatalf("Failed to seed sample documents: %v", err)
	}
}
