package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/EyalPasha/Redzone-Companion-My-Players/cache"
	"github.com/EyalPasha/Redzone-Companion-My-Players/controller"
	"github.com/EyalPasha/Redzone-Companion-My-Players/db"
	"github.com/EyalPasha/Redzone-Companion-My-Players/scoreboard"
	"github.com/EyalPasha/Redzone-Companion-My-Players/sleeper"
	"github.com/EyalPasha/Redzone-Companion-My-Players/web"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
)

const defaultCacheQuota = 5 << 20 // 5 MiB, mirroring a browser storage quota

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	cacheDir := os.Getenv("CACHE_DIR")
	if cacheDir == "" {
		cacheDir = ".cache"
	}

	cacheQuota := int64(defaultCacheQuota)
	if quota := os.Getenv("CACHE_QUOTA_BYTES"); quota != "" {
		cacheQuota, err = strconv.ParseInt(quota, 10, 64)
		if err != nil {
			log.Fatalf("error parsing cache quota: %v", err)
		}
	}

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	sleeperClient, err := sleeper.New()
	if err != nil {
		log.Fatalf("error creating sleeper client: %v", err)
	}

	scoreboardClient, err := scoreboard.New()
	if err != nil {
		log.Fatalf("error creating scoreboard client: %v", err)
	}

	medium, err := cache.NewFileMedium(cacheDir, cacheQuota)
	if err != nil {
		log.Fatalf("error creating cache medium: %v", err)
	}
	localCache := cache.New(medium, clock, controller.PlayerCacheKey)

	ctrl, err := controller.New(clock, sleeperClient, scoreboardClient, db, localCache)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that updates the players table from sleeper every 24-hours
	wg.Add(1)
	go ctrl.RunPeriodicPlayerUpdates(24*time.Hour, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
