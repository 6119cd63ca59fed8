// Package kafka publishes order events to a Kafka compatible broker.
package kafka

import (
	"errors"
	"strings"

	"github.com/twmb/franz-go/pkg/kgo"
)

var ErrNoBrokers = errors.New("kafka: no seed brokers configured")

// NewClient builds a franz-go client from a comma separated broker list.
func NewClient(brokersCSV string, opts ...kgo.Opt) (*kgo.Client, error) {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	opts = append([]kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}, opts...)
	return kgo.NewClient(opts...)
}
