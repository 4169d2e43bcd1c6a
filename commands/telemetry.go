package commands

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"cloud.google.com/go/logging"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

type telemetry struct {
	sync.RWMutex
	esClient *elasticsearch.Client
}

const INDEX = "wordquiz-bench"

var telemetryInstance telemetry

func getTelemetryInstance(address string) *telemetry {
	elasticsearchTransport := elasticsearch.Config{
		Addresses: []string{
			address,
		},
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 1024,
		},
	}
	var err error
	telemetryInstance.esClient, err = elasticsearch.NewClient(elasticsearchTransport)
	if err != nil {
		log.Fatalf("Unable to create an elasticsearch client connection.")
	}
	return &telemetryInstance
}

func (t *telemetry) streamDataToElastic(dataItems []string) {
	var wg sync.WaitGroup
	for index, item := range dataItems {
		wg.Add(1)
		go func(i int, message string) {
			defer wg.Done()
			req := esapi.IndexRequest{
				Index:   INDEX,
				Body:    strings.NewReader(message),
				Refresh: "true",
			}

			res, err := req.Do(context.Background(), t.esClient)
			if err != nil {
				log.Printf("Unable to send the request to elastic.")
				return
			}
			defer res.Body.Close()
			if res.IsError() {
				log.Printf("[%s] Error Indexing Value [%s]", res.Status(), message)
			}
		}(index, item)
	}
	wg.Wait()
}

func streamDataToCloudLogging(project string, dataItems []string) error {
	ctx := context.Background()
	client, err := logging.NewClient(ctx, project)
	if err != nil {
		return fmt.Errorf("creating cloud logging client: %w", err)
	}

	logger := client.Logger(INDEX)
	for _, item := range dataItems {
		logger.Log(logging.Entry{Payload: item, Severity: logging.Info})
	}
	return client.Close()
}
