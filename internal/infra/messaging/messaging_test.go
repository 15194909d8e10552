//go:build unit

package messaging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
	closed    bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.keys = append(c.keys, exchange+"/"+key)
	c.published = append(c.published, msg)
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func TestRabbitMQPublisher(t *testing.T) {
	ctx := context.Background()
	msg := Message{Key: "user-1", Type: "battery_assigned", Body: []byte(`{"a":1}`)}

	t.Run("永続メッセージとしてキューに送る", func(t *testing.T) {
		ch := &fakeChannel{}
		p := newRabbitMQPublisherWithChannel(ch, "user.notifications")

		require.NoError(t, p.Publish(ctx, msg))
		require.Len(t, ch.published, 1)
		assert.Equal(t, []string{"/user.notifications"}, ch.keys)
		assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)
		assert.Equal(t, ContentTypeJSON, ch.published[0].ContentType)
		assert.Equal(t, "battery_assigned", ch.published[0].Type)
		assert.Equal(t, "user-1", ch.published[0].Headers["key"])
		assert.Equal(t, msg.Body, ch.published[0].Body)

		require.NoError(t, p.Close())
		assert.True(t, ch.closed)
	})

	t.Run("送信失敗はエラーを返す", func(t *testing.T) {
		p := newRabbitMQPublisherWithChannel(&fakeChannel{err: amqp.ErrClosed}, "q")
		err := p.Publish(ctx, msg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, amqp.ErrClosed))
	})
}

func TestKafkaPublisher(t *testing.T) {
	ctx := context.Background()
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true

	t.Run("ユーザーIDをキーに送る", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, cfg)
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(pm *sarama.ProducerMessage) error {
			key, err := pm.Key.Encode()
			if err != nil {
				return err
			}
			if string(key) != "user-1" {
				return errors.New("unexpected key " + string(key))
			}
			if pm.Topic != "user-notifications" {
				return errors.New("unexpected topic " + pm.Topic)
			}
			return nil
		})

		p := NewKafkaPublisher(producer, "user-notifications")
		require.NoError(t, p.Publish(ctx, Message{Key: "user-1", Type: "notification", Body: []byte(`{}`)}))
		require.NoError(t, p.Close())
	})

	t.Run("ブローカーエラーはエラーを返す", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, cfg)
		producer.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)

		p := NewKafkaPublisher(producer, "user-notifications")
		err := p.Publish(ctx, Message{Key: "user-1", Body: []byte(`{}`)})
		require.Error(t, err)
		assert.True(t, errors.Is(err, sarama.ErrNotLeaderForPartition))
		require.NoError(t, p.Close())
	})
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, p.Publish(context.Background(), Message{Key: "user-1", Type: "notification", Body: []byte("hello")}))
	assert.Contains(t, buf.String(), "Notification published")
	assert.Contains(t, buf.String(), "key=user-1")
	assert.NoError(t, p.Close())
}
