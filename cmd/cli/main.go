package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/client/cli"
	"github.com/dmitrijs2005/jobwizard/internal/client/config"
	"github.com/dmitrijs2005/jobwizard/internal/server/auth"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := issueToken(os.Args[2:]); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}

// issueToken signs an access token for a local actor, for use against a
// server sharing the same secret.
func issueToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	actor := fs.String("actor", "", "actor id")
	secret := fs.String("s", "", "signing secret")
	ttl := fs.Duration("t", 24*time.Hour, "token validity")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *actor == "" {
		return fmt.Errorf("-actor is required")
	}

	key := []byte(*secret)
	if len(key) == 0 {
		v, err := cli.GetSecret("Signing secret", os.Stderr)
		if err != nil {
			return err
		}
		key = v
	}

	token, err := auth.GenerateToken(*actor, key, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
