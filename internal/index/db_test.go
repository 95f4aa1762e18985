package index

import (
	"path/filepath"
	"testing"

	"github.com/Zuo-Peng/hl7-viewer/internal/hl7"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "sub", "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenDB_Reopen(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := OpenDB(path)
	req.NoError(err)
	req.NoError(db.Upsert(FileRecord{Path: "/a.hl7", Mtime: 10, Size: 20}))
	req.NoError(db.Close())

	db, err = OpenDB(path)
	req.NoError(err)
	defer db.Close()
	info, err := db.GetFileInfo("/a.hl7")
	req.NoError(err)
	req.Equal(&FileInfo{Mtime: 10, Size: 20}, info)
}

func TestDB_UpsertAndList(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	req.NoError(db.Upsert(FileRecord{Path: "/in/b.hl7", MessageType: "ORU^R01", PatientName: "John Doe", Segments: 5}))
	req.NoError(db.Upsert(FileRecord{Path: "/in/a.hl7", MessageType: "ADT^A01", PatientID: "M177", Segments: 3}))

	all, err := db.ListFiles(ListOptions{})
	req.NoError(err)
	req.Len(all, 2)
	req.Equal("/in/a.hl7", all[0].Path)
	req.Equal(3, all[0].Segments)
	req.NotEmpty(all[0].IndexedAt)

	byName, err := db.ListFiles(ListOptions{Filter: "john"})
	req.NoError(err)
	req.Len(byName, 1)
	req.Equal("/in/b.hl7", byName[0].Path)

	byType, err := db.ListFiles(ListOptions{Filter: "ADT"})
	req.NoError(err)
	req.Len(byType, 1)

	limited, err := db.ListFiles(ListOptions{Limit: 1})
	req.NoError(err)
	req.Len(limited, 1)

	n, err := db.FileCount()
	req.NoError(err)
	req.Equal(2, n)
}

func TestDB_GetFileInfoMissing(t *testing.T) {
	info, err := openTestDB(t).GetFileInfo("/nope")
	require.NoError(t, err)
	require.Nil(t, info)
}

func TestDB_RecordOpen(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	path := filepath.Join(t.TempDir(), "a.hl7")
	msg := hl7.Parse("MSH|^~\\&|LAB||||||ADT^A04|C1\nPID|1||P9||Roe^Ann")

	recent, err := db.ListFiles(ListOptions{Recent: true})
	req.NoError(err)
	req.Empty(recent)

	req.NoError(db.RecordOpen(path, msg, hl7.ExtractHeader(msg), hl7.ExtractPatient(msg)))

	recent, err = db.ListFiles(ListOptions{Recent: true})
	req.NoError(err)
	req.Len(recent, 1)
	req.Equal(path, recent[0].Path)
	req.Equal("ADT^A04", recent[0].MessageType)
	req.Equal("C1", recent[0].ControlID)
	req.Equal("Ann Roe", recent[0].PatientName)
	req.NotEmpty(recent[0].OpenedAt)

	// re-indexing keeps the open time
	req.NoError(db.Upsert(FileRecord{Path: path, Mtime: 1, Size: 2}))
	recent, err = db.ListFiles(ListOptions{Recent: true})
	req.NoError(err)
	req.Len(recent, 1)
	req.Equal(int64(2), recent[0].Size)
}
