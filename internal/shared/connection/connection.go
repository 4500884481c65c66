package connection

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var retryDelay = 5 * time.Second

func ConnectGORMWithRetry(
	host, user, password, dbname, port, sslmode string,
	maxRetries int,
) (*gorm.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode,
	)

	var lastErr error

	for i := 1; i <= maxRetries; i++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			lastErr = err
			log.Printf("⚠️ GORM open failed (%d/%d): %v", i, maxRetries, err)
			time.Sleep(retryDelay)
			continue
		}

		sqlDB, err := db.DB()
		if err != nil {
			lastErr = err
			log.Printf("⚠️ get sql.DB failed (%d/%d): %v", i, maxRetries, err)
			time.Sleep(retryDelay)
			continue
		}

		if err := sqlDB.Ping(); err != nil {
			lastErr = err
			log.Printf("⚠️ DB ping failed (%d/%d): %v", i, maxRetries, err)
			time.Sleep(retryDelay)
			continue
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)

		log.Println("✅ GORM connected to database")
		return db, nil
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, lastErr)
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		lastErr = rdb.Ping(ctx).Err()
		cancel()
		if lastErr == nil {
			log.Println("✅ Connected to Redis")
			return rdb, nil
		}

		log.Printf("⚠️ Redis retry %d/%d failed: %v", i, maxRetries, lastErr)
		time.Sleep(retryDelay)
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("redis connection failed after %d retries: %w", maxRetries, lastErr)
}

// ConnectKafkaWithRetry dials the broker once to make sure it is reachable, then hands back
// a Writer. The writer routes by message Topic, so it is shared by every outbox topic.
func ConnectKafkaWithRetry(broker string, maxRetries int) (*kafkago.Writer, error) {
	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		conn, err := kafkago.Dial("tcp", broker)
		if err == nil {
			_ = conn.Close()
			log.Println("✅ Connected to Kafka")
			return &kafkago.Writer{
				Addr:                   kafkago.TCP(broker),
				Balancer:               &kafkago.Hash{},
				RequiredAcks:           kafkago.RequireAll,
				AllowAutoTopicCreation: true,
			}, nil
		}
		lastErr = err
		log.Printf("⚠️ Kafka retry %d/%d failed: %v", i, maxRetries, err)
		time.Sleep(retryDelay)
	}
	return nil, fmt.Errorf("kafka connection failed after %d retries: %w", maxRetries, lastErr)
}

func ConnectMongoWithRetry(uri, database string, maxRetries int) (*mongo.Database, func(context.Context) error, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		lastErr = client.Ping(ctx, readpref.Primary())
		cancel()
		if lastErr == nil {
			log.Printf("✅ Connected to MongoDB: %s", database)
			return client.Database(database), client.Disconnect, nil
		}
		log.Printf("⚠️ MongoDB retry %d/%d failed: %v", i, maxRetries, lastErr)
		time.Sleep(retryDelay)
	}

	_ = client.Disconnect(context.Background())
	return nil, nil, fmt.Errorf("mongodb connection failed after %d retries: %w", maxRetries, lastErr)
}
