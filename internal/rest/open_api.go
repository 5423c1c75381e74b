package rest

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/ghodss/yaml"
	"github.com/go-chi/chi/v5"
)

// NewOpenAPI3 instantiates the OpenAPI specification for this service.
func NewOpenAPI3() openapi3.T {
	swagger := openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       "Todo API",
			Description: "REST APIs used for interacting with the Todo Service",
			Version:     "1.0.0",
			License: &openapi3.License{
				Name: "MIT",
				URL:  "https://opensource.org/licenses/MIT",
			},
		},
		Servers: openapi3.Servers{
			&openapi3.Server{
				Description: "Local development",
				URL:         "http://0.0.0.0:9234/api",
			},
		},
	}

	swagger.Components.Schemas = openapi3.Schemas{
		"Priority": openapi3.NewSchemaRef("",
			openapi3.NewStringSchema().
				WithEnum("low", "medium", "high").
				WithDefault("medium")),
		"Category": openapi3.NewSchemaRef("",
			openapi3.NewObjectSchema().
				WithProperty("id", openapi3.NewInt64Schema()).
				WithProperty("name", openapi3.NewStringSchema().WithMaxLength(100)).
				WithProperty("color", openapi3.NewStringSchema().WithPattern(`^#[0-9a-fA-F]{6}$`)).
				WithProperty("created_at", openapi3.NewDateTimeSchema())),
		"CategoryWithCount": openapi3.NewSchemaRef("",
			openapi3.NewObjectSchema().
				WithProperty("id", openapi3.NewInt64Schema()).
				WithProperty("name", openapi3.NewStringSchema().WithMaxLength(100)).
				WithProperty("color", openapi3.NewStringSchema().WithPattern(`^#[0-9a-fA-F]{6}$`)).
				WithProperty("created_at", openapi3.NewDateTimeSchema()).
				WithProperty("todo_count", openapi3.NewInt64Schema())),
		"Todo": openapi3.NewSchemaRef("",
			openapi3.NewObjectSchema().
				WithProperty("id", openapi3.NewInt64Schema()).
				WithProperty("title", openapi3.NewStringSchema().WithMaxLength(200)).
				WithProperty("description", openapi3.NewStringSchema().WithNullable()).
				WithProperty("completed", openapi3.NewBoolSchema()).
				WithPropertyRef("priority", &openapi3.SchemaRef{Ref: "#/components/schemas/Priority"}).
				WithProperty("due_date", openapi3.NewDateTimeSchema().WithNullable()).
				WithProperty("category_id", openapi3.NewInt64Schema().WithNullable()).
				WithPropertyRef("category", &openapi3.SchemaRef{Ref: "#/components/schemas/Category"}).
				WithProperty("created_at", openapi3.NewDateTimeSchema()).
				WithProperty("updated_at", openapi3.NewDateTimeSchema())),
		"PaginationMeta": openapi3.NewSchemaRef("",
			openapi3.NewObjectSchema().
				WithProperty("current_page", openapi3.NewInt64Schema()).
				WithProperty("per_page", openapi3.NewInt64Schema()).
				WithProperty("total", openapi3.NewInt64Schema()).
				WithProperty("total_pages", openapi3.NewInt64Schema()).
				WithProperty("has_next", openapi3.NewBoolSchema()).
				WithProperty("has_prev", openapi3.NewBoolSchema())),
		"TodoSummary": openapi3.NewSchemaRef("",
			openapi3.NewObjectSchema().
				WithProperty("total", openapi3.NewInt64Schema()).
				WithProperty("completed", openapi3.NewInt64Schema()).
				WithProperty("pending", openapi3.NewInt64Schema()).
				WithProperty("high_priority", openapi3.NewInt64Schema()).
				WithProperty("medium_priority", openapi3.NewInt64Schema()).
				WithProperty("low_priority", openapi3.NewInt64Schema()).
				WithProperty("overdue", openapi3.NewInt64Schema())),
	}

	swagger.Components.RequestBodies = openapi3.RequestBodies{
		"CreateTodosRequest": &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription("Request used for creating a todo.").
				WithRequired(true).
				WithJSONSchema(openapi3.NewObjectSchema().
					WithProperty("title", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(200)).
					WithProperty("description", openapi3.NewStringSchema().WithNullable()).
					WithPropertyRef("priority", &openapi3.SchemaRef{Ref: "#/components/schemas/Priority"}).
					WithProperty("due_date", openapi3.NewDateTimeSchema().WithNullable()).
					WithProperty("category_id", openapi3.NewInt64Schema().WithNullable())),
		},
		"UpdateTodosRequest": &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription("Request used for updating a todo, absent fields keep their stored values.").
				WithRequired(true).
				WithJSONSchema(openapi3.NewObjectSchema().
					WithProperty("title", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(200)).
					WithProperty("description", openapi3.NewStringSchema().WithNullable()).
					WithPropertyRef("priority", &openapi3.SchemaRef{Ref: "#/components/schemas/Priority"}).
					WithProperty("due_date", openapi3.NewDateTimeSchema().WithNullable()).
					WithProperty("category_id", openapi3.NewInt64Schema().WithNullable())),
		},
		"UpdateTodoStatusRequest": &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription("Request used for setting the completion of a todo.").
				WithRequired(true).
				WithJSONSchema(openapi3.NewObjectSchema().
					WithProperty("completed", openapi3.NewBoolSchema())),
		},
		"SearchTodosRequest": &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription("Request used for searching todos.").
				WithRequired(true).
				WithJSONSchema(openapi3.NewObjectSchema().
					WithProperty("title", openapi3.NewStringSchema().WithNullable()).
					WithProperty("description", openapi3.NewStringSchema().WithNullable()).
					WithPropertyRef("priority", &openapi3.SchemaRef{Ref: "#/components/schemas/Priority"}).
					WithProperty("completed", openapi3.NewBoolSchema().WithNullable()).
					WithProperty("from", openapi3.NewInt64Schema()).
					WithProperty("size", openapi3.NewInt64Schema())),
		},
		"CreateCategoriesRequest": &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription("Request used for creating a category.").
				WithRequired(true).
				WithJSONSchema(openapi3.NewObjectSchema().
					WithProperty("name", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(100)).
					WithProperty("color", openapi3.NewStringSchema().WithPattern(`^#[0-9a-fA-F]{6}$`))),
		},
		"UpdateCategoriesRequest": &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription("Request used for updating a category, absent fields keep their stored values.").
				WithRequired(true).
				WithJSONSchema(openapi3.NewObjectSchema().
					WithProperty("name", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(100)).
					WithProperty("color", openapi3.NewStringSchema().WithPattern(`^#[0-9a-fA-F]{6}$`))),
		},
	}

	todos := openapi3.NewArraySchema()
	todos.Items = &openapi3.SchemaRef{Ref: "#/components/schemas/Todo"}

	categories := openapi3.NewArraySchema()
	categories.Items = &openapi3.SchemaRef{Ref: "#/components/schemas/Category"}

	categoriesWithCounts := openapi3.NewArraySchema()
	categoriesWithCounts.Items = &openapi3.SchemaRef{Ref: "#/components/schemas/CategoryWithCount"}

	swagger.Components.Responses = openapi3.Responses{
		"ErrorResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response when errors happen.").
				WithJSONSchema(openapi3.NewObjectSchema().
					WithProperty("error", openapi3.NewStringSchema())),
		},
		"TodoResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response returned back after requesting a todo.").
				WithJSONSchemaRef(&openapi3.SchemaRef{Ref: "#/components/schemas/Todo"}),
		},
		"ListTodosResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response returned back after listing todos.").
				WithJSONSchema(openapi3.NewObjectSchema().
					WithPropertyRef("data", openapi3.NewSchemaRef("", todos)).
					WithPropertyRef("pagination", &openapi3.SchemaRef{Ref: "#/components/schemas/PaginationMeta"})),
		},
		"SearchTodosResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response returned back after searching todos.").
				WithJSONSchema(openapi3.NewObjectSchema().
					WithPropertyRef("todos", openapi3.NewSchemaRef("", todos)).
					WithProperty("total", openapi3.NewInt64Schema())),
		},
		"TodoSummaryResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response returned back after requesting the todo summary.").
				WithJSONSchemaRef(&openapi3.SchemaRef{Ref: "#/components/schemas/TodoSummary"}),
		},
		"CategoryResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response returned back after requesting a category.").
				WithJSONSchemaRef(&openapi3.SchemaRef{Ref: "#/components/schemas/Category"}),
		},
		"ListCategoriesResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response returned back after listing categories.").
				WithJSONSchemaRef(openapi3.NewSchemaRef("", categories)),
		},
		"ListCategoriesWithCountsResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response returned back after listing categories with their todo counts.").
				WithJSONSchemaRef(openapi3.NewSchemaRef("", categoriesWithCounts)),
		},
	}

	swagger.Paths = openapi3.Paths{
		"/todos": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "ListTodos",
				Parameters: openapi3.Parameters{
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("page").
							WithSchema(openapi3.NewInt64Schema().WithDefault(1)),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("per_page").
							WithSchema(openapi3.NewInt64Schema().WithDefault(10)),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("search").
							WithSchema(openapi3.NewStringSchema()),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("category_id").
							WithSchema(openapi3.NewInt64Schema()),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("completed").
							WithSchema(openapi3.NewBoolSchema()),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("priority").
							WithSchema(openapi3.NewStringSchema().WithEnum("low", "medium", "high")),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("sort_by").
							WithSchema(openapi3.NewStringSchema().
								WithEnum("created_at", "updated_at", "title", "priority", "due_date").
								WithDefault("created_at")),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("sort_order").
							WithSchema(openapi3.NewStringSchema().WithEnum("asc", "desc").WithDefault("desc")),
					},
				},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/ListTodosResponse"},
					"400": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
			Post: &openapi3.Operation{
				OperationID: "CreateTodo",
				RequestBody: &openapi3.RequestBodyRef{Ref: "#/components/requestBodies/CreateTodosRequest"},
				Responses: openapi3.Responses{
					"201": &openapi3.ResponseRef{Ref: "#/components/responses/TodoResponse"},
					"400": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
		"/todos/summary": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "TodoSummary",
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/TodoSummaryResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
		"/todos/search": &openapi3.PathItem{
			Post: &openapi3.Operation{
				OperationID: "SearchTodos",
				RequestBody: &openapi3.RequestBodyRef{Ref: "#/components/requestBodies/SearchTodosRequest"},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/SearchTodosResponse"},
					"400": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
		"/todos/{id}": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "ReadTodo",
				Parameters: openapi3.Parameters{
					&openapi3.ParameterRef{
						Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewInt64Schema()),
					},
				},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/TodoResponse"},
					"404": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
			Put: &openapi3.Operation{
				OperationID: "UpdateTodo",
				Parameters: openapi3.Parameters{
					&openapi3.ParameterRef{
						Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewInt64Schema()),
					},
				},
				RequestBody: &openapi3.RequestBodyRef{Ref: "#/components/requestBodies/UpdateTodosRequest"},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/TodoResponse"},
					"400": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"404": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
			Delete: &openapi3.Operation{
				OperationID: "DeleteTodo",
				Parameters: openapi3.Parameters{
					&openapi3.ParameterRef{
						Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewInt64Schema()),
					},
				},
				Responses: openapi3.Responses{
					"204": &openapi3.ResponseRef{
						Value: openapi3.NewResponse().WithDescription("Todo deleted."),
					},
					"404": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
		"/todos/{id}/complete": &openapi3.PathItem{
			Patch: &openapi3.Operation{
				OperationID: "UpdateTodoStatus",
				Parameters: openapi3.Parameters{
					&openapi3.ParameterRef{
						Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewInt64Schema()),
					},
				},
				RequestBody: &openapi3.RequestBodyRef{Ref: "#/components/requestBodies/UpdateTodoStatusRequest"},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/TodoResponse"},
					"404": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
		"/categories": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "ListCategories",
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/ListCategoriesResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
			Post: &openapi3.Operation{
				OperationID: "CreateCategory",
				RequestBody: &openapi3.RequestBodyRef{Ref: "#/components/requestBodies/CreateCategoriesRequest"},
				Responses: openapi3.Responses{
					"201": &openapi3.ResponseRef{Ref: "#/components/responses/CategoryResponse"},
					"400": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
		"/categories/with-counts": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "ListCategoriesWithCounts",
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/ListCategoriesWithCountsResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
		"/categories/{id}": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "ReadCategory",
				Parameters: openapi3.Parameters{
					&openapi3.ParameterRef{
						Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewInt64Schema()),
					},
				},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/CategoryResponse"},
					"404": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
			Put: &openapi3.Operation{
				OperationID: "UpdateCategory",
				Parameters: openapi3.Parameters{
					&openapi3.ParameterRef{
						Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewInt64Schema()),
					},
				},
				RequestBody: &openapi3.RequestBodyRef{Ref: "#/components/requestBodies/UpdateCategoriesRequest"},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/CategoryResponse"},
					"400": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"404": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
			Delete: &openapi3.Operation{
				OperationID: "DeleteCategory",
				Parameters: openapi3.Parameters{
					&openapi3.ParameterRef{
						Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewInt64Schema()),
					},
				},
				Responses: openapi3.Responses{
					"204": &openapi3.ResponseRef{
						Value: openapi3.NewResponse().WithDescription("Category deleted."),
					},
					"404": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"409": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
	}

	return swagger
}

// RegisterOpenAPI connects the handlers serving the OpenAPI specification to
// the router.
func RegisterOpenAPI(r chi.Router) {
	swagger := NewOpenAPI3()

	r.Get("/openapi3.json", func(w http.ResponseWriter, _ *http.Request) {
		renderResponse(w, &swagger, http.StatusOK)
	})

	r.Get("/openapi3.yaml", func(w http.ResponseWriter, _ *http.Request) {
		data, err := yaml.Marshal(&swagger)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/x-yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	})
}
