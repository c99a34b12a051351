// Package metrics holds the application's metric instruments. Counters are
// created from an OpenTelemetry meter provider and exported through the
// Prometheus endpoint wired up by the API server.
package metrics

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Counters groups the domain counters the service reports. A nil *Counters is
// valid and turns every Add call into a no-op, which keeps tests and tools
// that do not care about metrics free of wiring.
type Counters struct {
	subscriptionsAccepted metric.Int64Counter
	subscribersConfirmed  metric.Int64Counter
	newsletterEmailsSent  metric.Int64Counter
}

// NewCounters creates the domain counters on a meter from the given provider.
func NewCounters(mp metric.MeterProvider) (*Counters, error) {
	meter := mp.Meter("newsletter")

	subscriptionsAccepted, err := meter.Int64Counter("subscriptions_accepted_total",
		metric.WithDescription("Subscription requests accepted (new or resent)"))
	if err != nil {
		return nil, err
	}

	subscribersConfirmed, err := meter.Int64Counter("subscribers_confirmed_total",
		metric.WithDescription("Subscribers transitioned to confirmed"))
	if err != nil {
		return nil, err
	}

	newsletterEmailsSent, err := meter.Int64Counter("newsletter_emails_sent_total",
		metric.WithDescription("Newsletter issue emails delivered to the gateway"))
	if err != nil {
		return nil, err
	}

	return &Counters{
		subscriptionsAccepted: subscriptionsAccepted,
		subscribersConfirmed:  subscribersConfirmed,
		newsletterEmailsSent:  newsletterEmailsSent,
	}, nil
}

// AddSubscriptionAccepted increments the accepted-subscription counter.
func (c *Counters) AddSubscriptionAccepted(ctx context.Context) {
	if c == nil {
		return
	}
	c.subscriptionsAccepted.Add(ctx, 1)
}

// AddSubscriberConfirmed increments the confirmed-subscriber counter.
func (c *Counters) AddSubscriberConfirmed(ctx context.Context) {
	if c == nil {
		return
	}
	c.subscribersConfirmed.Add(ctx, 1)
}

// AddNewsletterEmailSent increments the delivered-email counter.
func (c *Counters) AddNewsletterEmailSent(ctx context.Context) {
	if c == nil {
		return
	}
	c.newsletterEmailsSent.Add(ctx, 1)
}
