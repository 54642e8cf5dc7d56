package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"playaround/internal/domain/repository"
)

type firestoreSeedRepository struct {
	client *firestore.Client
}

func NewFirestoreSeedRepository(client *firestore.Client) repository.SeedRepository {
	return &firestoreSeedRepository{
		client: client,
	}
}

func (r *firestoreSeedRepository) Upsert(ctx context.Context, collectionPath, id string, data map[string]interface{}) error {
	payload := make(map[string]interface{}, len(data)+1)
	payload["updatedAt"] = firestore.ServerTimestamp
	for key, value := range data {
		payload[key] = value
	}

	_, err := r.client.Collection(collectionPath).Doc(id).Set(ctx, payload, firestore.MergeAll)
	return err
}

func (r *firestoreSeedRepository) Merge(ctx context.Context, collectionPath, id string, data map[string]interface{}) error {
	_, err := r.client.Collection(collectionPath).Doc(id).Set(ctx, data, firestore.MergeAll)
	return err
}

func (r *firestoreSeedRepository) Replace(ctx context.Context, collectionPath, id string, data interface{}) error {
	_, err := r.client.Collection(collectionPath).Doc(id).Set(ctx, data)
	return err
}
