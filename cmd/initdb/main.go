package main

import (
	"context"
	"time"

	"github.com/viewlist/viewlist-api/internal/infrastructure/postgres"
	"github.com/viewlist/viewlist-api/pkg/config"
	"github.com/viewlist/viewlist-api/pkg/logger"
)

// Each statement runs on its own so a failure points at the exact DDL.
// Ids are application-generated uuid strings stored as text; a malformed
// id in a lookup compares unequal instead of failing a uuid cast.
// The unique indexes on company.gst_no and users.email are the
// authoritative duplicate guards; application pre-checks only improve
// error messages. Sales references are RESTRICT so deleting a company
// or item with sales fails instead of cascading.
var statements = []struct {
	name string
	sql  string
}{
	{
		name: "create table company",
		sql: `CREATE TABLE IF NOT EXISTS company (
			id         VARCHAR(36) PRIMARY KEY,
			name       VARCHAR(100) NOT NULL,
			gst_no     VARCHAR(15)  NOT NULL,
			email      VARCHAR(100),
			phone      VARCHAR(13),
			address    VARCHAR(500) NOT NULL,
			city       VARCHAR(50)  NOT NULL,
			state      VARCHAR(50)  NOT NULL,
			pincode    VARCHAR(6)   NOT NULL,
			status     VARCHAR(10)  NOT NULL DEFAULT 'active'
				CHECK (status IN ('active', 'inactive')),
			created_at TIMESTAMPTZ  NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ  NOT NULL DEFAULT now()
		)`,
	},
	{
		name: "unique index company.gst_no",
		sql:  `CREATE UNIQUE INDEX IF NOT EXISTS company_gst_no_key ON company (gst_no)`,
	},
	{
		name: "unique index company.email",
		sql:  `CREATE UNIQUE INDEX IF NOT EXISTS company_email_key ON company (email)`,
	},
	{
		name: "create table item",
		sql: `CREATE TABLE IF NOT EXISTS item (
			id          VARCHAR(36) PRIMARY KEY,
			name        VARCHAR(100) NOT NULL,
			description VARCHAR(500),
			hsn_code    VARCHAR(10)  NOT NULL,
			status      VARCHAR(10)  NOT NULL DEFAULT 'active'
				CHECK (status IN ('active', 'inactive')),
			created_at  TIMESTAMPTZ  NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ  NOT NULL DEFAULT now()
		)`,
	},
	{
		name: "index item.hsn_code",
		sql:  `CREATE INDEX IF NOT EXISTS item_hsn_code_idx ON item (hsn_code)`,
	},
	{
		name: "create table sales",
		sql: `CREATE TABLE IF NOT EXISTS sales (
			id         VARCHAR(36) PRIMARY KEY,
			company_id VARCHAR(36) NOT NULL,
			item_id    VARCHAR(36) NOT NULL,
			unit       VARCHAR(10) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT sales_company_id_fkey FOREIGN KEY (company_id)
				REFERENCES company (id) ON DELETE RESTRICT,
			CONSTRAINT sales_item_id_fkey FOREIGN KEY (item_id)
				REFERENCES item (id) ON DELETE RESTRICT
		)`,
	},
	{
		name: "index sales.company_id",
		sql:  `CREATE INDEX IF NOT EXISTS sales_company_id_idx ON sales (company_id)`,
	},
	{
		name: "index sales.item_id",
		sql:  `CREATE INDEX IF NOT EXISTS sales_item_id_idx ON sales (item_id)`,
	},
	{
		name: "create table users",
		sql: `CREATE TABLE IF NOT EXISTS users (
			id            VARCHAR(36) PRIMARY KEY,
			name          VARCHAR(100) NOT NULL,
			email         VARCHAR(100) NOT NULL,
			password_hash VARCHAR(100) NOT NULL,
			created_at    TIMESTAMPTZ  NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ  NOT NULL DEFAULT now()
		)`,
	},
	{
		name: "unique index users.email",
		sql:  `CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	for _, st := range statements {
		if _, err := pool.Exec(ctx, st.sql); err != nil {
			log.Fatal().Err(err).Str("statement", st.name).Msg("schema setup failed")
		}
		log.Info().Str("statement", st.name).Msg("applied")
	}

	log.Info().Msg("database schema ready")
}
