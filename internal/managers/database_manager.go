// package managers handles the business logic and orchestrates interactions between the application and the database.
package managers

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"acronym-finder/internal/interfaces"
	"acronym-finder/internal/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const defaultMongoDatabase = "acronym_finder"

// DatabaseMgr defines the interface for database management.
// It owns the store connection and vends the repositories built on it.
type DatabaseMgr interface {
	Acronyms() repositories.AcronymRepository
	Users() repositories.UserRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// DatabaseManager is responsible for managing the PostgreSQL connection pool.
type DatabaseManager struct {
	Pool       interfaces.PgxPoolIface
	repository *repositories.PostgresRepository
}

// NewDatabaseManager creates and initializes a new instance of DatabaseManager with the provided database connection pool.
func NewDatabaseManager(pool interfaces.PgxPoolIface) DatabaseMgr {
	log.Info("Initializing database manager")
	return &DatabaseManager{
		Pool:       pool,
		repository: repositories.NewPostgresRepository(pool),
	}
}

func (dbMgr *DatabaseManager) Acronyms() repositories.AcronymRepository {
	return dbMgr.repository
}

func (dbMgr *DatabaseManager) Users() repositories.UserRepository {
	return dbMgr.repository
}

func (dbMgr *DatabaseManager) Ping(ctx context.Context) error {
	return dbMgr.Pool.Ping(ctx)
}

func (dbMgr *DatabaseManager) Close(_ context.Context) error {
	dbMgr.Pool.Close()
	return nil
}

// MongoDatabaseManager is responsible for managing the MongoDB client.
type MongoDatabaseManager struct {
	Client     *mongo.Client
	repository *repositories.MongoRepository
}

// NewMongoDatabaseManager creates a manager whose repositories live in the given database.
func NewMongoDatabaseManager(client *mongo.Client, database string) *MongoDatabaseManager {
	log.Info("Initializing mongo database manager")
	return &MongoDatabaseManager{
		Client:     client,
		repository: repositories.NewMongoRepository(client.Database(database)),
	}
}

func (dbMgr *MongoDatabaseManager) Acronyms() repositories.AcronymRepository {
	return dbMgr.repository
}

func (dbMgr *MongoDatabaseManager) Users() repositories.UserRepository {
	return dbMgr.repository
}

func (dbMgr *MongoDatabaseManager) Ping(ctx context.Context) error {
	return dbMgr.Client.Ping(ctx, readpref.Primary())
}

func (dbMgr *MongoDatabaseManager) Close(ctx context.Context) error {
	return dbMgr.Client.Disconnect(ctx)
}

// ConnectDatabase opens the store named by databaseURL and prepares its schema.
// postgres:// and postgresql:// select PostgreSQL, mongodb:// and mongodb+srv:// select MongoDB.
func ConnectDatabase(ctx context.Context, databaseURL string) (DatabaseMgr, error) {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	switch parsed.Scheme {
	case "postgres", "postgresql":
		return connectPostgres(ctx, databaseURL)
	case "mongodb", "mongodb+srv":
		return connectMongo(ctx, databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", parsed.Scheme)
	}
}

func connectPostgres(ctx context.Context, databaseURL string) (DatabaseMgr, error) {
	log.Info("Initializing database")

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error configuring database: %w", err)
	}

	config.MinConns = 2
	config.MaxConns = 20
	config.MaxConnIdleTime = time.Minute * 2
	config.HealthCheckPeriod = time.Minute * 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	if err := repositories.RunMigrations(ctx, databaseURL); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("Connected to database")
	return NewDatabaseManager(pool), nil
}

func connectMongo(ctx context.Context, databaseURL string) (DatabaseMgr, error) {
	log.Info("Initializing mongo database")

	connString, err := connstring.ParseAndValidate(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error configuring database: %w", err)
	}
	database := connString.Database
	if database == "" {
		database = defaultMongoDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	dbMgr := NewMongoDatabaseManager(client, database)
	if err := dbMgr.repository.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Infof("Connected to mongo database %s", database)
	return dbMgr, nil
}
