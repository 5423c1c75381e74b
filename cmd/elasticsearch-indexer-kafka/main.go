package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.uber.org/zap"

	"github.com/frezix0/todo-api/cmd/internal"
	internaldomain "github.com/frezix0/todo-api/internal"
	"github.com/frezix0/todo-api/internal/elasticsearch"
	envvar "github.com/frezix0/todo-api/internal/envar"
)

func main() {
	var env, opsAddress string

	flag.StringVar(&env, "env", "", "Environment Variables filename")
	flag.StringVar(&opsAddress, "ops-address", ":9235", "Ops HTTP Server Address")
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

	consumer, err := internal.NewKafkaConsumer(conf, "elasticsearch-indexer")
	if err != nil {
		return nil, fmt.Errorf("internal.NewKafkaConsumer %w", err)
	}

	if _, err := internal.NewOTExporter(conf); err != nil {
		return nil, fmt.Errorf("internal.NewOTExporter %w", err)
	}

	opsSrv := internal.NewOpsServer(opsAddress)

	srv := &Server{
		logger: logger,
		kafka:  consumer,
		todo:   elasticsearch.NewTodo(es),
		doneC:  make(chan struct{}),
		closeC: make(chan struct{}),
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
			consumer.Consumer.Unsubscribe()
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

// Server consumes todo events and keeps the search index up to date.
type Server struct {
	logger *zap.Logger
	kafka  *internal.KafkaConsumer
	todo   *elasticsearch.Todo
	doneC  chan struct{}
	closeC chan struct{}
}

// ListenAndServe polls the topic until Shutdown is called, indexed or deleted
// documents are committed, undecodable messages are committed and skipped.
func (s *Server) ListenAndServe() error {
	commit := func(msg *kafka.Message) {
		if _, err := s.kafka.Consumer.CommitMessage(msg); err != nil {
			s.logger.Error("commit failed", zap.Error(err))
		}
	}

	go func() {
		run := true

		for run {
			select {
			case <-s.closeC:
				run = false
			default:
				msg, ok := s.kafka.Consumer.Poll(150).(*kafka.Message)
				if !ok {
					continue
				}

				var evt struct {
					Type  string
					Value internaldomain.Todo
				}

				if err := json.NewDecoder(bytes.NewReader(msg.Value)).Decode(&evt); err != nil {
					s.logger.Info("Ignoring invalid message", zap.Error(err))
					commit(msg)
					continue
				}

				ok = false

				switch evt.Type {
				case "todos.event.created", "todos.event.updated":
					if err := s.todo.Index(context.Background(), evt.Value); err == nil {
						ok = true
					}
				case "todos.event.deleted":
					if err := s.todo.Delete(context.Background(), evt.Value.ID); err == nil {
						ok = true
					}
				}

				if ok {
					s.logger.Info("Consumed", zap.String("type", evt.Type))
					commit(msg)
				}
			}
		}

		s.logger.Info("No more messages to consume, exiting")
		s.doneC <- struct{}{}
	}()

	return nil
}

// Shutdown stops the polling loop and waits for it to drain.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	close(s.closeC)

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context.Done: %w", ctx.Err())
		case <-s.doneC:
			return nil
		}
	}
}
