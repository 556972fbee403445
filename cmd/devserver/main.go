package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/emojiboard/client/pkg/devserver"
)

func main() {
	// Load dotenv
	godotenv.Load()

	// Init Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn: os.Getenv("SENTRY_DSN"),
	}); err != nil {
		panic(err)
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "5000"
	}
	log.Println("Serving dev backend on :" + port)
	if err := http.ListenAndServe(":"+port, devserver.New().Router()); err != nil {
		sentry.CaptureException(err)
		log.Fatal(err)
	}

	// Wait for Sentry events to flush
	sentry.Flush(time.Second * 5)
}
