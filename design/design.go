// Package design holds the C4 model describing the architecture, render it
// with mdl.
package design

import (
	. "goa.design/model/dsl"
)

var _ = Design("Todo API", "C4 model for the todo-api microservice", func() {
	var (
		postgres = SoftwareSystem("PostgreSQL", "Stores todos, categories and the schema version.", func() {
			Tag("database")
			External()
		})

		elasticsearch = SoftwareSystem("ElasticSearch", "Indexes todos for full text search.", func() {
			Tag("database")
			External()
		})

		memcached = SoftwareSystem("Memcached", "Caches todos in front of PostgreSQL.", func() {
			Tag("database")
			External()
		})

		broker = SoftwareSystem("Message Broker", "Kafka, RabbitMQ or Redis, carries todo events.", func() {
			Tag("queue")
			External()
		})

		vault = SoftwareSystem("Vault", "Serves secrets to every binary.", func() {
			External()
		})
	)

	var system = SoftwareSystem("Todo API", "Lets consumers manage todos and categories.", func() {
		Container("REST Server", "Serves the JSON API, publishes todo events.", "Go", func() {
			Uses(postgres, "Reads from and writes to", "pgx", Synchronous)
			Uses(elasticsearch, "Searches", "HTTP", Synchronous)
			Uses(memcached, "Reads from and writes to", "gomemcache", Synchronous)
			Uses(broker, "Publishes todo events to", "", Asynchronous)
			Uses(vault, "Reads secrets from", "HTTP", Synchronous)
		})

		Container("ElasticSearch Indexer", "Consumes todo events, updates the search index.", "Go", func() {
			Uses(broker, "Consumes todo events from", "", Asynchronous)
			Uses(elasticsearch, "Indexes and deletes documents in", "HTTP", Synchronous)
			Uses(vault, "Reads secrets from", "HTTP", Synchronous)
		})

		Container("Migrate", "Walks the database schema up and down.", "Go", func() {
			Uses(postgres, "Applies migrations to", "sqlx", Synchronous)
			Uses(vault, "Reads secrets from", "HTTP", Synchronous)
		})
	})

	Person("API Consumer", "Creates, lists and completes todos.", func() {
		Uses(system, "Makes requests to", "HTTP/JSON", Synchronous)
		Tag("person")
	})

	Views(func() {
		SystemContextView(system, "SystemContext", "Everything the service talks to.", func() {
			AddAll()
			AutoLayout(RankTopBottom)
		})

		ContainerView(system, "Containers", "The binaries and their backing services.", func() {
			AddAll()
			AutoLayout(RankLeftRight)
		})

		Styles(func() {
			ElementStyle("person", func() {
				Shape(ShapePerson)
				Background("#08427b")
				Color("#ffffff")
			})

			ElementStyle("database", func() {
				Shape(ShapeCylinder)
			})

			ElementStyle("queue", func() {
				Shape(ShapePipe)
			})
		})
	})
})
