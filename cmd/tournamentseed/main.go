package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/spf13/cobra"

	"playaround/internal/adapter/repository"
	"playaround/internal/infrastructure/firebase"
	"playaround/internal/usecase"
	"playaround/pkg/config"
)

var opts config.TournamentSeedOptions

var rootCmd = &cobra.Command{
	Use:   "tournamentseed",
	Short: "Create a showcase tournament using existing Firestore data",
	Long: `Builds a fully populated sample tournament on top of the documents
already in Firestore: picks a venue and four rostered teams (fabricating
teams from user profiles when needed), then writes the tournament, three
matches in different lifecycle states, commentary, player stats, and
reactions.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&opts.ServiceAccountPath, "service-account", "", "Path to the Firebase Admin SDK JSON key (optional if already configured)")
	rootCmd.Flags().StringVar(&opts.TournamentName, "tournament-name", "Aurora Clash Invitational", "Name to assign to the generated tournament")
}

func run(cmd *cobra.Command, args []string) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	serviceAccountPath := opts.ServiceAccountPath
	if serviceAccountPath == "" {
		serviceAccountPath = cfg.ServiceAccountPath
	}
	credentials := firebase.CredentialOptions(cfg.ServiceAccountJSON, serviceAccountPath)
	if credentials == nil {
		fmt.Println("No service account configured, falling back to default credentials")
	}

	fmt.Println("Connecting to Firebase...")
	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, credentials...)
	if err != nil {
		return fmt.Errorf("create Firestore client: %w", err)
	}
	defer firestoreClient.Close()
	fmt.Println("Firebase initialized")

	seeder := usecase.NewTournamentSeedUseCase(
		repository.NewFirestoreShowcaseRepository(firestoreClient),
		opts.TournamentName,
	)

	summary, err := seeder.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

func printSummary(summary *usecase.SeedSummary) {
	fmt.Println("\nSample tournament seeded successfully")
	fmt.Printf("  Tournament Name : %s\n", summary.TournamentName)
	fmt.Printf("  Tournament ID   : %s\n", summary.TournamentID)
	fmt.Printf("  Venue           : %s\n", summary.VenueName)
	fmt.Println("  Matches:")
	for _, match := range summary.Matches {
		fmt.Printf("    - %s (%s) -> %s\n", match.MatchNumber, match.Status, match.ID)
	}
	fmt.Println("\nOpen this tournament in both the admin panel and the public detail")
	fmt.Println("view to verify synced data, commentary, reactions, and player stats.")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Printf("Seed failed: %v", err)
		os.Exit(1)
	}
}
