package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/pwstools/pws-forward/internal/credentials"
	"github.com/pwstools/pws-forward/internal/metrics"
	"github.com/pwstools/pws-forward/internal/pws"
)

// pws-forward reads one measurement snapshot from a local metrics endpoint
// and publishes it to Weather Underground. It is invoked periodically by an
// external scheduler and does exactly one unit of work per run.
func main() {
	if len(os.Args) != 3 {
		log.Fatalf("usage: %s <credentials-file> <metrics-endpoint-url>", os.Args[0])
	}
	credsPath, endpoint := os.Args[1], os.Args[2]

	creds, err := credentials.Load(credsPath)
	if err != nil {
		log.Fatalf("failed to load credentials: %v", err)
	}

	ctx := context.Background()

	// No client timeout: the external scheduler bounds the process.
	fetcher := metrics.NewFetcher(http.DefaultClient)
	snapshot, err := fetcher.Fetch(ctx, endpoint)
	if err != nil {
		log.Fatalf("failed to fetch metrics: %v", err)
	}

	params := pws.MapSnapshot(snapshot)

	client := pws.NewClient(http.DefaultClient)
	result, err := client.Upload(ctx, params, creds)
	if err != nil {
		log.Fatalf("upload failed: %v", err)
	}

	fmt.Println(result.StatusCode)
	fmt.Println(result.Body)
}
