package persist

import (
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/tatterwing/lootkit/util/errors"
	_ "modernc.org/sqlite"
)

const createSlotsTableSQL = `
create table if not exists slots
(
    id         text primary key,
    name       text    not null,
    created_at integer not null,
    checksum   text    not null,
    encrypted  integer not null
)
`

// Index keeps per-slot snapshot metadata in a sqlite file next to the saves.
type Index struct {
	db *sql.DB
}

func OpenIndex(filePath string) (*Index, error) {
	db, err := sql.Open("sqlite", filePath)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	_, err = db.Exec(createSlotsTableSQL)
	if err != nil {
		_ = db.Close()
		return nil, errors.WithStack(err)
	}
	return &Index{db}, nil
}

func (ix *Index) Close() {
	_ = ix.db.Close()
}

type Slot struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Checksum  string
	Encrypted bool
}

func (ix *Index) Record(snap *Snapshot, name string) error {
	_, err := ix.db.Exec(
		"insert or replace into slots (id, name, created_at, checksum, encrypted) values (?, ?, ?, ?, ?)",
		snap.ID.String(), name, time.Now().Unix(), hex.EncodeToString(snap.Checksum[:]), snap.Encrypted)
	return errors.WithStack(err)
}

func (ix *Index) Slots() ([]Slot, error) {
	rows, err := ix.db.Query("select id, name, created_at, checksum, encrypted from slots order by created_at desc, id")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var slots []Slot
	for rows.Next() {
		var slot Slot
		var createdAt int64
		err = rows.Scan(&slot.ID, &slot.Name, &createdAt, &slot.Checksum, &slot.Encrypted)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		slot.CreatedAt = time.Unix(createdAt, 0)
		slots = append(slots, slot)
	}
	return slots, errors.WithStack(rows.Err())
}
