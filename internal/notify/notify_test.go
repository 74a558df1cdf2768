package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_PerSubscriberQueues(t *testing.T) {
	b := NewBroker()
	a := b.Subscribe()
	c := b.Subscribe()

	b.Publish(Event{Topic: TopicRulesChanged})

	// Each subscriber consumes its own copy exactly once.
	require.Len(t, a.Drain(), 1)
	require.Len(t, c.Drain(), 1)
	assert.Empty(t, a.Drain())
	assert.Empty(t, c.Drain())
}

func TestPublish_BeforeSubscribeNotDelivered(t *testing.T) {
	b := NewBroker()
	b.Publish(Event{Topic: TopicRulesChanged})

	sub := b.Subscribe()
	assert.Empty(t, sub.Drain())
}

func TestClose(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe()
	sub.Close()

	b.Publish(Event{Topic: TopicRulesChanged})
	assert.Empty(t, sub.Drain())
}

func TestDrain_Order(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe()

	b.Publish(Event{Topic: "first"})
	b.Publish(Event{Topic: "second"})

	events := sub.Drain()
	require.Len(t, events, 2)
	assert.Equal(t, "first", events[0].Topic)
	assert.Equal(t, "second", events[1].Topic)
}
