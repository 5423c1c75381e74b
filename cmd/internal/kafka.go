package internal

import (
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	internaldomain "github.com/frezix0/todo-api/internal"
	envvar "github.com/frezix0/todo-api/internal/envar"
)

// KafkaProducer holds the producer and the topic todo events go to.
type KafkaProducer struct {
	Producer *kafka.Producer
	Topic    string
}

// KafkaConsumer holds the consumer subscribed to the todo events topic.
type KafkaConsumer struct {
	Consumer *kafka.Consumer
}

// NewKafkaProducer instantiates the Kafka producer using configuration
// defined in environment variables.
func NewKafkaProducer(conf *envvar.Configuration) (*KafkaProducer, error) {
	server, topic, err := kafkaValues(conf)
	if err != nil {
		return nil, err
	}

	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": server,
	})
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "kafka.NewProducer")
	}

	return &KafkaProducer{
		Producer: producer,
		Topic:    topic,
	}, nil
}

// NewKafkaConsumer instantiates the Kafka consumer using configuration
// defined in environment variables, already subscribed to the todo events
// topic.
func NewKafkaConsumer(conf *envvar.Configuration, groupID string) (*KafkaConsumer, error) {
	server, topic, err := kafkaValues(conf)
	if err != nil {
		return nil, err
	}

	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  server,
		"group.id":           groupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	})
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "kafka.NewConsumer")
	}

	if err := consumer.SubscribeTopics([]string{topic}, nil); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "consumer.SubscribeTopics")
	}

	return &KafkaConsumer{
		Consumer: consumer,
	}, nil
}

func kafkaValues(conf *envvar.Configuration) (server, topic string, err error) {
	host, err := conf.Get("KAFKA_HOST")
	if err != nil {
		return "", "", internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "conf.Get KAFKA_HOST")
	}

	port, err := conf.Get("KAFKA_PORT")
	if err != nil {
		return "", "", internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "conf.Get KAFKA_PORT")
	}

	topic, err = conf.Get("KAFKA_TOPIC")
	if err != nil {
		return "", "", internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnkown, "conf.Get KAFKA_TOPIC")
	}

	return fmt.Sprintf("%s:%s", host, port), topic, nil
}
