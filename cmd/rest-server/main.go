package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/didip/tollbooth/v6"
	"github.com/didip/tollbooth/v6/limiter"
	esv7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"
	"go.uber.org/zap"

	"github.com/frezix0/todo-api/cmd/internal"
	internaldomain "github.com/frezix0/todo-api/internal"
	"github.com/frezix0/todo-api/internal/elasticsearch"
	envvar "github.com/frezix0/todo-api/internal/envar"
	"github.com/frezix0/todo-api/internal/kafka"
	"github.com/frezix0/todo-api/internal/memcached"
	"github.com/frezix0/todo-api/internal/postgresql"
	"github.com/frezix0/todo-api/internal/rabbitmq"
	"github.com/frezix0/todo-api/internal/redis"
	"github.com/frezix0/todo-api/internal/rest"
	"github.com/frezix0/todo-api/internal/service"
)

const version = "1.0.0"

//go:embed static
var content embed.FS

func main() {
	var env, address string

	flag.StringVar(&env, "env", "", "Environment Variables filename")
	flag.StringVar(&address, "address", ":9234", "HTTP Server Address")
	flag.Parse()

	errC, err := run(env, address)
	if err != nil {
		log.Fatalf("Couldn't run: %s", err)
	}

	if err := <-errC; err != nil {
		log.Fatalf("Error while running: %s", err)
	}
}

func run(env, address string) (<-chan error, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "zap.NewProduction")
	}

	if err := envvar.Load(env); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "envvar.Load")
	}

	vault, err := internal.NewVaultProvider()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "internal.NewVaultProvider")
	}

	conf := envvar.New(vault)

	pool, err := internal.NewPostgreSQL(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "internal.NewPostgreSQL")
	}

	es, err := internal.NewElasticSearch(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "internal.NewElasticSearch")
	}

	mc, err := internal.NewMemcached(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "internal.NewMemcached")
	}

	msgBroker, closeBroker, err := newMessageBroker(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "newMessageBroker")
	}

	if _, err := internal.NewOTExporter(conf); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "internal.NewOTExporter")
	}

	logging := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Info(r.Method,
				zap.Time("time", time.Now()),
				zap.String("url", r.URL.String()),
			)

			h.ServeHTTP(w, r)
		})
	}

	requestID := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set("X-Request-Id", id)

			h.ServeHTTP(w, r)
		})
	}

	srv, err := newServer(serverConfig{
		Address:       address,
		DB:            pool,
		ElasticSearch: es,
		Memcached:     mc,
		MsgBroker:     msgBroker,
		Metrics:       promhttp.Handler(),
		Middlewares: []func(next http.Handler) http.Handler{
			otelchi.Middleware("todo-api-server"),
			requestID,
			logging,
		},
		Logger:     logger,
		Pagination: newPagination(conf),
	})
	if err != nil {
		return nil, fmt.Errorf("newServer %w", err)
	}

	errC := make(chan error, 1)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		defer func() {
			logger.Sync()
			pool.Close()
			closeBroker()
			stop()
			cancel()
			close(errC)
		}()

		srv.SetKeepAlivesEnabled(false)

		if err := srv.Shutdown(ctxTimeout); err != nil {
			errC <- err
		}

		logger.Info("Shutdown completed")
	}()

	go func() {
		logger.Info("Listening and serving", zap.String("address", address))

		// "ListenAndServe always returns a non-nil error. After Shutdown or
		// Close, the returned error is ErrServerClosed."
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errC <- err
		}
	}()

	return errC, nil
}

// newMessageBroker selects the event publisher named by MESSAGE_BROKER,
// kafka is the default.
func newMessageBroker(conf *envvar.Configuration) (service.TodoMessageBrokerRepository, func(), error) {
	broker, err := conf.Get("MESSAGE_BROKER")
	if err != nil {
		return nil, nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "conf.Get MESSAGE_BROKER")
	}

	switch broker {
	case "kafka", "":
		producer, err := internal.NewKafkaProducer(conf)
		if err != nil {
			return nil, nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "internal.NewKafkaProducer")
		}

		return kafka.NewTodo(producer.Producer, producer.Topic), func() { producer.Producer.Close() }, nil
	case "rabbitmq":
		rmq, err := internal.NewRabbitMQ(conf)
		if err != nil {
			return nil, nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "internal.NewRabbitMQ")
		}

		msgBroker, err := rabbitmq.NewTodo(rmq.Channel)
		if err != nil {
			return nil, nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "rabbitmq.NewTodo")
		}

		return msgBroker, rmq.Close, nil
	case "redis":
		rdb, err := internal.NewRedis(conf)
		if err != nil {
			return nil, nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "internal.NewRedis")
		}

		return redis.NewTodo(rdb), func() { _ = rdb.Close() }, nil
	}

	return nil, nil, internaldomain.NewErrorf(internaldomain.ErrorCodeInvalidArgument, "unsupported MESSAGE_BROKER %q", broker)
}

func newPagination(conf *envvar.Configuration) internaldomain.Pagination {
	pagination := internaldomain.Pagination{
		DefaultLimit: 10,
		MaxLimit:     50,
	}

	if v, err := conf.Get("PAGINATION_DEFAULT_LIMIT"); err == nil && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			pagination.DefaultLimit = n
		}
	}

	if v, err := conf.Get("PAGINATION_MAX_LIMIT"); err == nil && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= pagination.DefaultLimit {
			pagination.MaxLimit = n
		}
	}

	return pagination
}

type serverConfig struct {
	Address       string
	DB            *pgxpool.Pool
	ElasticSearch *esv7.Client
	Memcached     *memcache.Client
	MsgBroker     service.TodoMessageBrokerRepository
	Metrics       http.Handler
	Middlewares   []func(next http.Handler) http.Handler
	Logger        *zap.Logger
	Pagination    internaldomain.Pagination
}

func newServer(conf serverConfig) (*http.Server, error) {
	router := chi.NewRouter()
	router.Use(render.SetContentType(render.ContentTypeJSON))

	for _, mw := range conf.Middlewares {
		router.Use(mw)
	}

	repo := memcached.NewTodo(conf.Memcached, postgresql.NewTodo(conf.DB, conf.Pagination), conf.Logger)
	search := elasticsearch.NewTodo(conf.ElasticSearch)

	todoSvc := service.NewTodo(conf.Logger, repo, search, conf.MsgBroker)
	categorySvc := service.NewCategory(postgresql.NewCategory(conf.DB))

	router.Route("/api", func(r chi.Router) {
		rest.NewTodoHandler(todoSvc, conf.Pagination).Register(r)
		rest.NewCategoryHandler(categorySvc).Register(r)
	})

	rest.NewHealthHandler(version).Register(router)
	rest.RegisterOpenAPI(router)

	fsys, _ := fs.Sub(content, "static")
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(fsys))))
	router.Handle("/metrics", conf.Metrics)

	lmt := tollbooth.NewLimiter(3, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Second})
	lmtmw := tollbooth.LimitHandler(lmt, router)

	return &http.Server{
		Handler:           lmtmw,
		Addr:              conf.Address,
		ReadTimeout:       1 * time.Second,
		ReadHeaderTimeout: 1 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}, nil
}
