package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"playaround/internal/adapter/repository"
	"playaround/internal/infrastructure/firebase"
	"playaround/internal/usecase"
	"playaround/pkg/config"
)

var opts config.ProfileSeedOptions

var rootCmd = &cobra.Command{
	Use:   "profileseed",
	Short: "Seed the demo player account with a complete public profile",
	Long: `Ensures the seed player account exists (creating it if missing and
marking its email as verified), then writes the users, player_profiles,
and public_profiles documents for it.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&opts.ServiceAccountPath, "service-account", "", "Path to the Firebase service account JSON file")
	rootCmd.Flags().StringVar(&opts.ProjectID, "project-id", "", "Firebase project ID")
	rootCmd.Flags().StringVar(&opts.Email, "email", "mahmadafzal880@gmail.com", "Seed user email")
	rootCmd.Flags().StringVar(&opts.Password, "password", "AHmed5114@", "Seed user password")

	rootCmd.MarkFlagRequired("service-account")
	rootCmd.MarkFlagRequired("project-id")
}

func run(cmd *cobra.Command, args []string) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	credential := option.WithCredentialsFile(opts.ServiceAccountPath)

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: opts.ProjectID}, credential)
	if err != nil {
		return fmt.Errorf("initialize Firebase: %w", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("initialize Firebase Auth: %w", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, opts.ProjectID, credential)
	if err != nil {
		return fmt.Errorf("create Firestore client: %w", err)
	}
	defer firestoreClient.Close()

	seeder := usecase.NewProfileSeedUseCase(
		firebase.NewFirebaseAuthClient(authClient),
		repository.NewFirestoreSeedRepository(firestoreClient),
		opts.Email,
		opts.Password,
	)

	uid, err := seeder.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println("\nNext steps:")
	fmt.Println(" - Run the app and sign in with the seeded credentials.")
	fmt.Printf(" - The public profile screen will surface the data for %s.\n", uid)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Printf("Seed failed: %v", err)
		os.Exit(1)
	}
}
