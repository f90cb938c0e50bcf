// Package schemas provides the embedded goose migrations of the card store.
package schemas

import "embed"

// MigrationsDir is the directory of the migrations inside Migrations.
const MigrationsDir = "migrations"

// Migrations contains all SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
