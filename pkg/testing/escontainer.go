package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

const defaultESImage = "docker.elastic.co/elasticsearch/elasticsearch:8.12.0"

// ESContainer is a running single-node Elasticsearch with security disabled,
// reachable at Address.
type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

type ESOption func(*esOptions)

type esOptions struct {
	image string
}

// WithESImage overrides the Elasticsearch image, e.g. to pin the version
// the deployment runs
func WithESImage(image string) ESOption {
	return func(o *esOptions) {
		o.image = image
	}
}

// NewESContainer starts an Elasticsearch container and registers its
// termination as a test cleanup.
func NewESContainer(ctx context.Context, tb testing.TB, opts ...ESOption) *ESContainer {
	tb.Helper()

	o := esOptions{image: defaultESImage}
	for _, opt := range opts {
		opt(&o)
	}

	container, err := elasticsearch.Run(ctx,
		o.image,
		elasticsearch.WithPassword(""),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/").
				WithPort("9200").
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		tb.Fatalf("failed to start elasticsearch container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			tb.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		tb.Fatalf("failed to resolve elasticsearch host: %v", err)
	}
	port, err := container.MappedPort(ctx, "9200")
	if err != nil {
		tb.Fatalf("failed to resolve elasticsearch port: %v", err)
	}

	return &ESContainer{
		Container: container,
		Address:   fmt.Sprintf("http://%s:%s", host, port.Port()),
	}
}
