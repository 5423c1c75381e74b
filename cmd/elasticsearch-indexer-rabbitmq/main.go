package main

import (
	"bytes"
	"context"
	"encoding/gob"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/frezix0/todo-api/cmd/internal"
	internaldomain "github.com/frezix0/todo-api/internal"
	"github.com/frezix0/todo-api/internal/elasticsearch"
	envvar "github.com/frezix0/todo-api/internal/envar"
)

const rabbitMQConsumerName = "elasticsearch-indexer"

func main() {
	var env, opsAddress string

	flag.StringVar(&env, "env", "", "Environment Variables filename")
	flag.StringVar(&opsAddress, "ops-address", ":9236", "Ops HTTP Server Address")
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

	es, err := internal.NewElasticSearch(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "internal.NewElasticSearch")
	}

	rmq, err := internal.NewRabbitMQ(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "internal.NewRabbitMQ")
	}

	if _, err := internal.NewOTExporter(conf); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "internal.NewOTExporter")
	}

	opsSrv := internal.NewOpsServer(opsAddress)

	srv := &Server{
		logger: logger,
		rmq:    rmq,
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
			rmq.Close()
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

// Server binds an anonymous queue to the todo events exchange and keeps the
// search index up to date.
type Server struct {
	logger *zap.Logger
	rmq    *internal.RabbitMQ
	todo   *elasticsearch.Todo
	doneC  chan struct{}
}

// ListenAndServe consumes deliveries until the consumer is cancelled, indexed
// or deleted documents are acked, undecodable ones are nacked without requeue.
func (s *Server) ListenAndServe() error {
	queue, err := s.rmq.Channel.QueueDeclare(
		"",    // name
		false, // durable
		false, // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "channel.QueueDeclare")
	}

	err = s.rmq.Channel.QueueBind(
		queue.Name,      // queue name
		"todos.event.*", // routing key
		"todos",         // exchange
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "channel.QueueBind")
	}

	msgs, err := s.rmq.Channel.Consume(
		queue.Name,           // queue
		rabbitMQConsumerName, // consumer
		false,                // auto-ack
		false,                // exclusive
		false,                // no-local
		false,                // no-wait
		nil,                  // args
	)
	if err != nil {
		return internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "channel.Consume")
	}

	go func() {
		for msg := range msgs {
			s.logger.Info("Received message", zap.String("routing_key", msg.RoutingKey))

			var nack bool

			switch msg.RoutingKey {
			case "todos.event.created", "todos.event.updated":
				todo, err := decodeTodo(msg.Body)
				if err != nil {
					s.logger.Info("Ignoring message, invalid", zap.Error(err))
					nack = true
					break
				}

				if err := s.todo.Index(context.Background(), todo); err != nil {
					nack = true
				}
			case "todos.event.deleted":
				id, err := decodeID(msg.Body)
				if err != nil {
					s.logger.Info("Ignoring message, invalid", zap.Error(err))
					nack = true
					break
				}

				if err := s.todo.Delete(context.Background(), id); err != nil {
					nack = true
				}
			default:
				nack = true
			}

			if nack {
				s.logger.Info("Nacking", zap.String("routing_key", msg.RoutingKey))
				msg.Nack(false, false)
			} else {
				s.logger.Info("Acking", zap.String("routing_key", msg.RoutingKey))
				msg.Ack(false)
			}
		}

		s.logger.Info("No more messages to consume, exiting")
		s.doneC <- struct{}{}
	}()

	return nil
}

// Shutdown cancels the consumer and waits for in-flight deliveries to drain.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	if err := s.rmq.Channel.Cancel(rabbitMQConsumerName, false); err != nil {
		return internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "channel.Cancel")
	}

	for {
		select {
		case <-ctx.Done():
			return internaldomain.WrapErrorf(ctx.Err(), internaldomain.ErrorCodeUnkown, "context.Done")
		case <-s.doneC:
			return nil
		}
	}
}

func decodeTodo(b []byte) (internaldomain.Todo, error) {
	var res internaldomain.Todo

	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&res); err != nil {
		return internaldomain.Todo{}, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "gob.Decode")
	}

	return res, nil
}

func decodeID(b []byte) (int64, error) {
	var res int64

	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&res); err != nil {
		return 0, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "gob.Decode")
	}

	return res, nil
}
