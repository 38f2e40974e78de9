package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/rentwise/rentwise/config"
	"github.com/rentwise/rentwise/internal/infrastructure/rabbitmq"
	"github.com/rentwise/rentwise/internal/infrastructure/redisbus"
	"github.com/rentwise/rentwise/pkg/helpers"
	"github.com/rentwise/rentwise/pkg/mailer"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	jwtManager *helpers.JWTManager

	mailgunClient *mailer.Mailgun
	rabbitPub     *rabbitmq.Publisher
	broadcaster   *redisbus.Broadcaster
	esClient      *elasticsearch.Client
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetMailgun(m *mailer.Mailgun)              { mailgunClient = m }
func GetMailgun() *mailer.Mailgun               { return mailgunClient }
func SetRabbitPub(p *rabbitmq.Publisher)        { rabbitPub = p }
func GetRabbitPub() *rabbitmq.Publisher         { return rabbitPub }
func SetBroadcaster(b *redisbus.Broadcaster)    { broadcaster = b }
func GetBroadcaster() *redisbus.Broadcaster     { return broadcaster }
func SetES(c *elasticsearch.Client)             { esClient = c }
func GetES() *elasticsearch.Client              { return esClient }
