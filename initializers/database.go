package initializers

import (
	"database/sql"
	"log"
	"os"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/lib/pq"
)

var DB *goqu.Database

// Only session bookkeeping lives here; every content entity is owned
// by the upstream API.
const sessionSchema = `
CREATE TABLE IF NOT EXISTS portal_session (
	session_id      TEXT PRIMARY KEY,
	user_id         INTEGER NOT NULL,
	username        TEXT NOT NULL,
	upstream_token  TEXT NOT NULL,
	last_activity   TIMESTAMPTZ NOT NULL,
	datetime_create TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS session_notification (
	session_id TEXT NOT NULL REFERENCES portal_session (session_id) ON DELETE CASCADE,
	update_id  INTEGER NOT NULL,
	PRIMARY KEY (session_id, update_id)
);
`

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}

	err = db.Ping()
	if err != nil {
		log.Fatal(err)
	}

	if _, err := db.Exec(sessionSchema); err != nil {
		log.Fatal(err)
	}

	DB = goqu.New("postgres", db)
}
