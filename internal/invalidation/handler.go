// Package invalidation turns Amplify deployment success events into
// CloudFront invalidations, so viewers stop seeing stale branch content the
// moment a deployment finishes.
package invalidation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudfront"
	"github.com/aws/aws-sdk-go/service/cloudfront/cloudfrontiface"
	"go.uber.org/zap"
)

// Field values Amplify publishes on the default event bus for deployments.
const (
	EventSource     = "aws.amplify"
	EventDetailType = "Amplify Deployment Status Change"
	StatusSucceed   = "SUCCEED"
)

// AllPaths invalidates the whole distribution; deployments can touch any
// object, so per-path invalidation buys nothing here.
const AllPaths = "/*"

// Detail is the payload of an Amplify deployment status event.
type Detail struct {
	AppID      string `json:"appId"`
	BranchName string `json:"branchName"`
	JobID      string `json:"jobId"`
	JobStatus  string `json:"jobStatus"`
}

// Matches reports whether an event is a successful deployment of the
// expected app and branch. The rule already filters delivery; re-checking
// keeps manual invocations and rule edits from flushing the wrong cache.
func (c Config) Matches(source, detailType string, d Detail) bool {
	if source != EventSource || detailType != EventDetailType {
		return false
	}
	if d.JobStatus != StatusSucceed {
		return false
	}
	if c.AppID != "" && d.AppID != c.AppID {
		return false
	}
	if c.BranchName != "" && d.BranchName != c.BranchName {
		return false
	}
	return true
}

type Handler struct {
	cf  cloudfrontiface.CloudFrontAPI
	cfg Config
	log *zap.Logger
}

func NewHandler(cf cloudfrontiface.CloudFrontAPI, cfg Config, log *zap.Logger) *Handler {
	return &Handler{cf: cf, cfg: cfg, log: log}
}

// HandleEvent creates exactly one invalidation covering every path of the
// configured distribution. Errors go back to the runtime so EventBridge's
// retry policy applies; the handler itself never retries. Invocations are
// independent: overlapping invalidations are accepted by CloudFront.
func (h *Handler) HandleEvent(ctx context.Context, event events.CloudWatchEvent) error {
	var detail Detail
	if err := json.Unmarshal(event.Detail, &detail); err != nil {
		return fmt.Errorf("unmarshalling event detail: %w", err)
	}

	log := h.log.With(
		zap.String("appId", detail.AppID),
		zap.String("branchName", detail.BranchName),
		zap.String("jobId", detail.JobID),
		zap.String("jobStatus", detail.JobStatus),
	)

	if !h.cfg.Matches(event.Source, event.DetailType, detail) {
		log.Info("ignoring event outside the fronted branch")
		return nil
	}

	// The event id makes re-delivery of the same event idempotent at the
	// CDN; CloudFront returns the existing invalidation for a repeated
	// caller reference.
	ref := event.ID
	if ref == "" {
		ref = time.Now().UTC().Format(time.RFC3339Nano)
	}

	out, err := h.cf.CreateInvalidationWithContext(ctx, &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(h.cfg.DistributionID),
		InvalidationBatch: &cloudfront.InvalidationBatch{
			CallerReference: aws.String(ref),
			Paths: &cloudfront.Paths{
				Quantity: aws.Int64(1),
				Items:    []*string{aws.String(AllPaths)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating invalidation for distribution %s: %w", h.cfg.DistributionID, err)
	}

	invalidationID := ""
	if out.Invalidation != nil {
		invalidationID = aws.StringValue(out.Invalidation.Id)
	}
	log.Info("invalidation created",
		zap.String("distributionId", h.cfg.DistributionID),
		zap.String("invalidationId", invalidationID),
	)
	return nil
}
