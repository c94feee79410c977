package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"

	"github.com/kelanaapp/kelana/internal/pkg/models"
)

func newMockedRedisClient() (*RedisClient, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return &RedisClient{client: db}, mock
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host: "invalid-host",
		Port: 9999,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetAndGet(t *testing.T) {
	client, mock := newMockedRedisClient()
	ctx := context.Background()

	mock.ExpectSet("rate:key", "1", time.Minute).SetVal("OK")
	mock.ExpectGet("rate:key").SetVal("1")

	assert.NoError(t, client.Set(ctx, "rate:key", "1", time.Minute))

	val, err := client.Get(ctx, "rate:key")
	assert.NoError(t, err)
	assert.Equal(t, "1", val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Delete(t *testing.T) {
	client, mock := newMockedRedisClient()

	mock.ExpectDel("rate:key").SetVal(1)

	assert.NoError(t, client.Delete(context.Background(), "rate:key"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Ping(t *testing.T) {
	client, mock := newMockedRedisClient()

	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, client.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
