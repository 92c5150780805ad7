package library

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"git.lost.host/meutraa/bms/internal/game"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by Load for an unknown sum.
var ErrNotFound = errors.New("chart not in library")

type DefaultLibrary struct {
	db *sql.DB
}

func (l *DefaultLibrary) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	// A single connection keeps :memory: databases alive and writes ordered
	db.SetMaxOpenConns(1)

	initStatement := `
	create table if not exists charts
	  (
		  id text not null primary key,
		  sum text not null unique,
		  path text,
		  title text,
		  artist text,
		  genre text,
		  level integer,
		  bpm real,
		  length integer,
		  notes integer,
		  indexed integer,
		  data blob
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return err
	}

	l.db = db
	return nil
}

func (l *DefaultLibrary) Deinit() {
	if nil != l.db {
		l.db.Close()
	}
}

func (l *DefaultLibrary) Save(c *game.Chart) (*Entry, error) {
	data, err := json.Marshal(c)
	if nil != err {
		return nil, err
	}
	e := &Entry{
		ID:        uuid.New().String(),
		Sum:       c.Sum,
		Path:      c.Path,
		Title:     c.Title,
		Artist:    c.Artist,
		Genre:     c.Genre,
		PlayLevel: c.PlayLevel,
		BPM:       c.BPM(),
		Length:    c.Length(),
		NoteCount: c.NoteCount,
		Indexed:   time.Now().UTC().Truncate(time.Second),
	}
	_, err = l.db.Exec(`
	insert into charts(id, sum, path, title, artist, genre, level, bpm, length, notes, indexed, data)
	values(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	on conflict(sum) do update set
		path = excluded.path,
		title = excluded.title,
		artist = excluded.artist,
		genre = excluded.genre,
		level = excluded.level,
		bpm = excluded.bpm,
		length = excluded.length,
		notes = excluded.notes,
		indexed = excluded.indexed,
		data = excluded.data`,
		e.ID, e.Sum, e.Path, e.Title, e.Artist, e.Genre, e.PlayLevel, e.BPM,
		int64(e.Length), e.NoteCount, e.Indexed.Unix(), data)
	if nil != err {
		return nil, err
	}

	// The id is kept when an existing row was updated
	if err := l.db.QueryRow("select id from charts where sum = ?", e.Sum).Scan(&e.ID); nil != err {
		return nil, err
	}
	return e, nil
}

const columns = "id, sum, path, title, artist, genre, level, bpm, length, notes, indexed"

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner, extra ...interface{}) (Entry, error) {
	var e Entry
	var length, indexed int64
	dest := append([]interface{}{
		&e.ID, &e.Sum, &e.Path, &e.Title, &e.Artist, &e.Genre,
		&e.PlayLevel, &e.BPM, &length, &e.NoteCount, &indexed,
	}, extra...)
	if err := row.Scan(dest...); nil != err {
		return e, err
	}
	e.Length = time.Duration(length)
	e.Indexed = time.Unix(indexed, 0).UTC()
	return e, nil
}

func (l *DefaultLibrary) Load(sum string) (*Entry, error) {
	var data []byte
	e, err := scanEntry(l.db.QueryRow("select "+columns+", data from charts where sum = ?", sum), &data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if nil != err {
		return nil, err
	}
	e.Data = data
	return &e, nil
}

func (l *DefaultLibrary) List() ([]Entry, error) {
	entries := []Entry{}
	rows, err := l.db.Query("select " + columns + " from charts order by title, sum")
	if nil != err {
		return entries, err
	}
	defer rows.Close()
	for rows.Next() {
		e, err := scanEntry(rows)
		if nil != err {
			log.Println("unable to read library entry", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
