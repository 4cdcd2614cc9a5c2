package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`
			CREATE TABLE topics (
				topic_id INTEGER PRIMARY KEY AUTOINCREMENT,
				topic_name TEXT NOT NULL,
				topic_normalised TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_topics_topic_name ON topics (topic_name COLLATE NOCASE)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_topics_topic_normalised ON topics (topic_normalised)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE books (
				book_id INTEGER PRIMARY KEY AUTOINCREMENT,
				composite_id TEXT UNIQUE,
				title TEXT NOT NULL,
				subtitle TEXT,
				publisher TEXT,
				place_of_publication TEXT,
				publication_year INTEGER,
				edition TEXT,
				pages INTEGER,
				isbn TEXT,
				format_original TEXT,
				format_expanded TEXT,
				condition TEXT,
				copies INTEGER,
				illustrations TEXT,
				packaging TEXT,
				topic_id INTEGER REFERENCES topics (topic_id),
				is_translation BOOLEAN NOT NULL DEFAULT FALSE,
				original_language TEXT,
				is_multivolume BOOLEAN NOT NULL DEFAULT FALSE,
				series_title TEXT,
				total_volumes INTEGER,
				is_removed BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_books_topic_id ON books (topic_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_books_is_removed ON books (is_removed)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE people (
				person_id INTEGER PRIMARY KEY AUTOINCREMENT,
				unified_id TEXT NOT NULL,
				family_name TEXT,
				given_names TEXT,
				name_particles TEXT,
				single_name TEXT,
				is_organisation BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_people_unified_id ON people (unified_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE books2people (
				b2p_id INTEGER PRIMARY KEY AUTOINCREMENT,
				book_id INTEGER REFERENCES books (book_id) ON DELETE CASCADE NOT NULL,
				person_id INTEGER REFERENCES people (person_id) ON DELETE CASCADE NOT NULL,
				display_name TEXT,
				sort_order INTEGER NOT NULL DEFAULT 0,
				is_author BOOLEAN NOT NULL DEFAULT FALSE,
				is_editor BOOLEAN NOT NULL DEFAULT FALSE,
				is_contributor BOOLEAN NOT NULL DEFAULT FALSE,
				is_translator BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_books2people_book_id ON books2people (book_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_books2people_person_id ON books2people (person_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE prices (
				price_id INTEGER PRIMARY KEY AUTOINCREMENT,
				book_id INTEGER REFERENCES books (book_id) ON DELETE CASCADE NOT NULL,
				amount INTEGER NOT NULL,
				imported_price BOOLEAN NOT NULL DEFAULT FALSE,
				source TEXT,
				date_added TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_prices_book_id ON prices (book_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE books2volumes (
				volume_id INTEGER PRIMARY KEY AUTOINCREMENT,
				book_id INTEGER REFERENCES books (book_id) ON DELETE CASCADE NOT NULL,
				volume_number INTEGER,
				volume_title TEXT,
				pages INTEGER,
				notes TEXT
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_books2volumes_book_id ON books2volumes (book_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE book_admin (
				book_id INTEGER PRIMARY KEY REFERENCES books (book_id) ON DELETE CASCADE,
				original_entry TEXT NOT NULL,
				parsing_confidence TEXT,
				needs_review BOOLEAN NOT NULL DEFAULT FALSE,
				verification_notes TEXT,
				topic_changed BOOLEAN NOT NULL DEFAULT FALSE,
				price_changed BOOLEAN NOT NULL DEFAULT FALSE,
				batch_id TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE users (
				user_id TEXT PRIMARY KEY,
				username TEXT NOT NULL UNIQUE COLLATE NOCASE,
				email TEXT NOT NULL UNIQUE COLLATE NOCASE,
				password_hash TEXT NOT NULL,
				role TEXT NOT NULL DEFAULT 'viewer',
				is_active BOOLEAN NOT NULL DEFAULT TRUE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		return nil
	}

	down := func(_ context.Context, db *bun.DB) error {
		for _, table := range []string{"users", "book_admin", "books2volumes", "prices", "books2people", "people", "books", "topics"} {
			_, err := db.Exec(`DROP TABLE IF EXISTS ` + table)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	Migrations.MustRegister(up, down)
}
