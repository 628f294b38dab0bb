// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line flag and environment configuration.

# Configuration Sources

Flags take precedence, environment variables fill the gaps, then defaults:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

  - Port (-p, PORT): listen port, default 10000
  - DatabaseURL (-d, DATABASE_URL): sqlite file path or postgres connection
    string, default "database.db"
  - DatabaseType (-t, DATABASE_TYPE): "sqlite" or "postgres", default sqlite

A database URL is only mandatory for postgres; sqlite falls back to a file
in the working directory.
*/
package cliparse
