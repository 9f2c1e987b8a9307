package repository

import "github.com/Masterminds/squirrel"

// psql is the shared statement builder with Postgres placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
