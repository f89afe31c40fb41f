package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/sportcoders/dynasty-mommy/crawler"
	"github.com/sportcoders/dynasty-mommy/db"
	"github.com/sportcoders/dynasty-mommy/sleeper"
)

func main() {
	minutes := flag.Int("minutes", 60, "how many minutes to run the crawler")
	seedLeague := flag.String("seed-league", "", "league ID to enqueue before crawling")
	updatePlayers := flag.Bool("update-players", false, "replace the players collection with a fresh snapshot and exit")
	flag.Parse()

	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	sleeperClient, err := sleeper.New()
	if err != nil {
		log.Fatalf("error creating sleeper client: %v", err)
	}

	c, err := crawler.New(clock, db, sleeperClient)
	if err != nil {
		log.Fatalf("error creating crawler: %v", err)
	}

	// Ctrl-c cancels the run; the crawler stops at the next work unit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *updatePlayers {
		if err := c.RefreshPlayers(ctx); err != nil {
			log.Fatalf("error refreshing players: %v", err)
		}
		return
	}

	if *seedLeague != "" {
		if err := c.SeedLeague(ctx, *seedLeague); err != nil {
			log.Fatalf("error seeding league %s: %v", *seedLeague, err)
		}
	}

	if err := c.Run(ctx, time.Duration(*minutes)*time.Minute); err != nil {
		log.Fatalf("crawl failed: %v", err)
	}
}
