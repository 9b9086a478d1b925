package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"accounts/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	testProjectID = "accounts-test"
	testTopicID   = "account-events"
)

func newFakePubSub(t *testing.T, createTopic bool) (*pstest.Server, []option.ClientOption) {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	opts := []option.ClientOption{option.WithGRPCConn(conn)}

	if createTopic {
		ctx := context.Background()
		admin, err := pubsub.NewClient(ctx, testProjectID, opts...)
		require.NoError(t, err)

		_, err = admin.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
			Name: "projects/" + testProjectID + "/topics/" + testTopicID,
		})
		require.NoError(t, err)
	}

	return srv, opts
}

func TestGooglePubSubPublisher_PublishAccountCreated(t *testing.T) {
	srv, opts := newFakePubSub(t, true)
	ctx := context.Background()

	publisher, err := NewGooglePubSubPublisher(ctx, testProjectID, testTopicID, slog.New(slog.DiscardHandler), opts...)
	require.NoError(t, err)

	require.NoError(t, publisher.PublishAccountCreated(ctx, newTestEvent()))
	require.NoError(t, publisher.Close())

	messages := srv.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "account.created", messages[0].Attributes["event_type"])
	assert.Equal(t, "valid_id", messages[0].Attributes["account_id"])
	assert.Equal(t, "req-1", messages[0].Attributes["request_id"])

	var event service.AccountCreatedEvent
	require.NoError(t, json.Unmarshal(messages[0].Data, &event))
	assert.Equal(t, *newTestEvent(), event)
}

func TestGooglePubSubPublisher_MissingTopic(t *testing.T) {
	_, opts := newFakePubSub(t, false)

	publisher, err := NewGooglePubSubPublisher(context.Background(), testProjectID, testTopicID, slog.New(slog.DiscardHandler), opts...)
	require.Error(t, err)
	assert.Nil(t, publisher)
	assert.Contains(t, err.Error(), "failed to get topic")
}
