package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	rv8 "github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/frezix0/todo-api/cmd/internal"
	internaldomain "github.com/frezix0/todo-api/internal"
	"github.com/frezix0/todo-api/internal/elasticsearch"
	envvar "github.com/frezix0/todo-api/internal/envar"
)

func main() {
	var env, opsAddress string

	flag.StringVar(&env, "env", "", "Environment Variables filename")
	flag.StringVar(&opsAddress, "ops-address", ":9237", "Ops HTTP Server Address")
	flag.Parse()

	errC, err := run(env, opsAddress)
	if err != nil {
		log.Fatalf("Couldn't run: %s", err)
	}

	if err := <-errC; err != nil {
		log.Fatalf("Error while running: %s", err)
	}
}

func run(env, opsAddress string) (<-chan error, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("zap.NewProduction %w", err)
	}

	if err := envvar.Load(env); err != nil {
		return nil, fmt.Errorf("envvar.Load %w", err)
	}

	vault, err := internal.NewVaultProvider()
	if err != nil {
		return nil, fmt.Errorf("internal.NewVaultProvider %w", err)
	}

	conf := envvar.New(vault)

	es, err := internal.NewElasticSearch(conf)
	if err != nil {
		return nil, fmt.Errorf("internal.NewElasticSearch %w", err)
	}

	rdb, err := internal.NewRedis(conf)
	if err != nil {
		return nil, fmt.Errorf("internal.NewRedis %w", err)
	}

	if _, err := internal.NewOTExporter(conf); err != nil {
		return nil, fmt.Errorf("internal.NewOTExporter %w", err)
	}

	opsSrv := internal.NewOpsServer(opsAddress)

	srv := &Server{
		logger: logger,
		sub:    rdb.PSubscribe(context.Background(), "todos.event.*"),
		todo:   elasticsearch.NewTodo(es),
		doneC:  make(chan struct{}),
	}

	errC := make(chan error, 1)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)

		defer func() {
			logger.Sync()
			rdb.Close()
			stop()
			cancel()
			close(errC)
		}()

		if err := opsSrv.Shutdown(ctxTimeout); err != nil {
			errC <- err
		}

		if err := srv.Shutdown(ctxTimeout); err != nil {
			errC <- err
		}

		logger.Info("Shutdown completed")
	}()

	go func() {
		logger.Info("Serving ops requests", zap.String("address", opsAddress))

		if err := opsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errC <- err
		}
	}()

	go func() {
		logger.Info("Listening and serving")

		if err := srv.ListenAndServe(); err != nil {
			errC <- err
		}
	}()

	return errC, nil
}

// Server subscribes to the todo event channels and keeps the search index up
// to date. Redis Pub/Sub has no acknowledgment, failed messages are logged
// and skipped.
type Server struct {
	logger *zap.Logger
	sub    *rv8.PubSub
	todo   *elasticsearch.Todo
	doneC  chan struct{}
}

// ListenAndServe receives messages until the subscription is closed.
func (s *Server) ListenAndServe() error {
	go func() {
		for msg := range s.sub.Channel() {
			s.logger.Info("Received message", zap.String("channel", msg.Channel))

			var evt struct {
				Type  string
				Value internaldomain.Todo
			}

			if err := json.NewDecoder(strings.NewReader(msg.Payload)).Decode(&evt); err != nil {
				s.logger.Info("Ignoring invalid message", zap.Error(err))
				continue
			}

			var err error

			switch evt.Type {
			case "todos.event.created", "todos.event.updated":
				err = s.todo.Index(context.Background(), evt.Value)
			case "todos.event.deleted":
				err = s.todo.Delete(context.Background(), evt.Value.ID)
			default:
				continue
			}

			if err != nil {
				s.logger.Error("Indexing failed", zap.String("type", evt.Type), zap.Error(err))
				continue
			}

			s.logger.Info("Consumed", zap.String("type", evt.Type))
		}

		s.logger.Info("No more messages to consume, exiting")
		s.doneC <- struct{}{}
	}()

	return nil
}

// Shutdown closes the subscription and waits for the receive loop to drain.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	if err := s.sub.Close(); err != nil {
		return fmt.Errorf("sub.Close %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context.Done: %w", ctx.Err())
		case <-s.doneC:
			return nil
		}
	}
}
