package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudfront"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/twala-io/aws-cdk-amplify-with-waf/internal/invalidation"
)

func main() {
	log := zap.Must(zap.NewProduction()).Named("cache-invalidation")
	defer log.Sync() //nolint:errcheck

	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		runLambda(log)
		return
	}

	if err := simulateApp(log).Run(os.Args); err != nil {
		log.Fatal("simulation failed", zap.Error(err))
	}
}

func runLambda(log *zap.Logger) {
	cfg, err := invalidation.LoadConfig()
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	sess := session.Must(session.NewSession())
	handler := invalidation.NewHandler(cloudfront.New(sess), cfg, log)

	lambda.Start(handler.HandleEvent)
}

// simulateApp feeds a synthetic deployment event to the real handler, for
// poking at a live distribution without waiting for an Amplify build.
func simulateApp(log *zap.Logger) *cli.App {
	return &cli.App{
		Name:  "cache-invalidation",
		Usage: "Simulate an Amplify deployment event against the invalidation handler",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "distribution-id",
				Usage:    "CloudFront distribution to invalidate",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "app-id",
				Usage:    "Amplify app id of the simulated deployment",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "branch-name",
				Usage:    "Amplify branch of the simulated deployment",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "job-status",
				Usage: "Deployment status to simulate",
				Value: invalidation.StatusSucceed,
			},
		},
		Action: func(c *cli.Context) error {
			detail, err := json.Marshal(invalidation.Detail{
				AppID:      c.String("app-id"),
				BranchName: c.String("branch-name"),
				JobID:      "local-simulation",
				JobStatus:  c.String("job-status"),
			})
			if err != nil {
				return fmt.Errorf("marshalling event detail: %w", err)
			}

			cfg := invalidation.Config{
				DistributionID: c.String("distribution-id"),
				AppID:          c.String("app-id"),
				BranchName:     c.String("branch-name"),
			}
			sess := session.Must(session.NewSession())
			handler := invalidation.NewHandler(cloudfront.New(sess), cfg, log)

			return handler.HandleEvent(context.Background(), events.CloudWatchEvent{
				Source:     invalidation.EventSource,
				DetailType: invalidation.EventDetailType,
				Detail:     detail,
			})
		},
	}
}
