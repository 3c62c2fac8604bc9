// Command client is a smoke checker for a running gateway: it logs in with
// the given credentials, calls the gated routes and prints what it got.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-post-gateway/internal/adapter"
	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	address := flag.String("a", "localhost:3000", "gateway address")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	timeout := flag.Duration("t", 10*time.Second, "request timeout")
	register := flag.String("register", "", "register the account first with this username")
	flag.Parse()

	printBuildInfo()

	log := logger.NewLogger("go-post-client")

	gateway, err := adapter.NewHTTPGatewayAdapter(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create gateway adapter")
	}

	ctx := context.Background()

	if *register != "" {
		if _, err = gateway.Register(ctx, models.Registration{Email: *email, Password: *password, Username: *register}); err != nil {
			log.Fatal().Err(err).Msg("register")
		}
	}

	if _, err = gateway.CreateToken(ctx, models.Credentials{Email: *email, Password: *password}); err != nil {
		log.Fatal().Err(err).Msg("login")
	}

	account, err := gateway.Account(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("get account")
	}
	fmt.Fprintf(os.Stdout, "signed in as %s (%s)\n", account.Username, account.UserID)

	posts, err := gateway.ListPosts(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list posts")
	}
	for _, post := range posts {
		fmt.Fprintf(os.Stdout, "%s  %-12s %s\n", post.CreatedAt.Format(time.DateTime), post.Username, post.Message)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
